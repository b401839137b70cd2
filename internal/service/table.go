package service

import (
	"fmt"

	"tableside-pos/internal/domain"
)

type TableService struct {
	tables TableRepository
	orders OrderRepository
}

func NewTableService(tables TableRepository, orders OrderRepository) *TableService {
	return &TableService{tables: tables, orders: orders}
}

func (s *TableService) List() []domain.Table {
	return s.tables.List()
}

// SetStatus overrides a table's occupancy. Unknown tables are an error, and a
// table with non-terminal orders cannot be marked empty.
func (s *TableService) SetStatus(number int, status domain.TableStatus) error {
	if !domain.ValidTableStatus(status) {
		return fmt.Errorf("%w: unknown table status %q", domain.ErrValidation, status)
	}
	if _, ok := s.tables.Get(number); !ok {
		return fmt.Errorf("%w: table %d", domain.ErrNotFound, number)
	}
	if status == domain.TableEmpty && s.orders.HasActive(number, "") {
		return fmt.Errorf("%w: table %d still has active orders", domain.ErrInvalidState, number)
	}
	s.tables.SetStatus(number, status)
	return nil
}

var _ TableServiceInterface = (*TableService)(nil)
