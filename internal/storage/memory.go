package storage

import (
	"sync"

	"tableside-pos/internal/domain"
)

// OrderStore keeps the order collection for the lifetime of the process.
// Orders are stored by value and handed out as copies, so the only way to
// change one is UpdateStatus.
type OrderStore struct {
	mu     sync.RWMutex
	orders []domain.Order
	byID   map[string]int
}

func NewOrderStore() *OrderStore {
	return &OrderStore{byID: make(map[string]int)}
}

func (s *OrderStore) Append(order domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[order.ID] = len(s.orders)
	s.orders = append(s.orders, order)
}

func (s *OrderStore) Get(id string) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byID[id]
	if !ok {
		return domain.Order{}, false
	}
	return s.orders[idx], true
}

func (s *OrderStore) UpdateStatus(id string, status domain.OrderStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.byID[id]
	if !ok {
		return false
	}
	s.orders[idx].Status = status
	return true
}

// List returns orders in creation order, optionally filtered by status
// and/or table number (zero values mean no filter).
func (s *OrderStore) List(status domain.OrderStatus, tableNumber int) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := []domain.Order{}
	for _, order := range s.orders {
		if status != "" && order.Status != status {
			continue
		}
		if tableNumber != 0 && order.TableNumber != tableNumber {
			continue
		}
		orders = append(orders, order)
	}
	return orders
}

// HasActive reports whether any non-terminal order remains for the table,
// ignoring excludeID.
func (s *OrderStore) HasActive(tableNumber int, excludeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, order := range s.orders {
		if order.TableNumber != tableNumber || order.ID == excludeID {
			continue
		}
		if !order.Status.Terminal() {
			return true
		}
	}
	return false
}

// TableStore tracks live table occupancy, seeded from the catalog's table
// plan at startup.
type TableStore struct {
	mu     sync.RWMutex
	tables []domain.Table
	byNum  map[int]int
}

func NewTableStore(tables []domain.Table) *TableStore {
	s := &TableStore{
		tables: make([]domain.Table, len(tables)),
		byNum:  make(map[int]int, len(tables)),
	}
	copy(s.tables, tables)
	for i, t := range s.tables {
		s.byNum[t.Number] = i
	}
	return s
}

func (s *TableStore) List() []domain.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tables := make([]domain.Table, len(s.tables))
	copy(tables, s.tables)
	return tables
}

func (s *TableStore) Get(number int) (domain.Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byNum[number]
	if !ok {
		return domain.Table{}, false
	}
	return s.tables[idx], true
}

func (s *TableStore) SetStatus(number int, status domain.TableStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.byNum[number]
	if !ok {
		return false
	}
	s.tables[idx].Status = status
	return true
}
