package service

import (
	"fmt"
	"sync"

	"tableside-pos/internal/domain"
)

// CartService holds the in-progress selection for the active session. Entries
// keep their insertion order; adding the same menu item with the same note
// merges into the existing entry.
type CartService struct {
	mu    sync.Mutex
	items []domain.CartItem
}

func NewCartService() *CartService {
	return &CartService{}
}

func (s *CartService) Add(item domain.CartItem) error {
	if err := validateCartItem(item); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.items {
		if existing.MenuItem.ID == item.MenuItem.ID && existing.Note == item.Note {
			s.items[i].Quantity += item.Quantity
			return nil
		}
	}
	s.items = append(s.items, item)
	return nil
}

func (s *CartService) Update(index int, item domain.CartItem) error {
	if err := validateCartItem(item); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("%w: cart index %d", domain.ErrNotFound, index)
	}
	s.items[index] = item
	return nil
}

func (s *CartService) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("%w: cart index %d", domain.ErrNotFound, index)
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return nil
}

func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a snapshot of the cart.
func (s *CartService) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *CartService) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var subtotal int64
	for _, item := range s.items {
		subtotal += item.MenuItem.Price * int64(item.Quantity)
	}
	return subtotal
}

func validateCartItem(item domain.CartItem) error {
	if item.MenuItem.ID == "" {
		return fmt.Errorf("%w: missing menu item", domain.ErrValidation)
	}
	if item.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}
	return nil
}

var _ CartServiceInterface = (*CartService)(nil)
