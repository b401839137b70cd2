package service

import (
	"context"

	"tableside-pos/internal/domain"
)

type OrderRepository interface {
	Append(order domain.Order)
	Get(id string) (domain.Order, bool)
	UpdateStatus(id string, status domain.OrderStatus) bool
	List(status domain.OrderStatus, tableNumber int) []domain.Order
	HasActive(tableNumber int, excludeID string) bool
}

type TableRepository interface {
	List() []domain.Table
	Get(number int) (domain.Table, bool)
	SetStatus(number int, status domain.TableStatus) bool
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type CartServiceInterface interface {
	Add(item domain.CartItem) error
	Update(index int, item domain.CartItem) error
	Remove(index int) error
	Clear()
	Items() []domain.CartItem
	Subtotal() int64
}

type OrderServiceInterface interface {
	Create(tableNumber int) (domain.Order, error)
	UpdateStatus(id string, status domain.OrderStatus) error
	Cancel(id string) error
	Get(id string) (domain.Order, error)
	List(status domain.OrderStatus, tableNumber int) []domain.Order
	ReceiptQR(id string) ([]byte, error)
}

type TableServiceInterface interface {
	List() []domain.Table
	SetStatus(number int, status domain.TableStatus) error
}

type SessionServiceInterface interface {
	Login(username string) (domain.User, string, error)
	Logout()
	Current() (domain.User, bool)
	SelectTable(number int) error
	ClearTableSelection()
	SelectedTable() (int, bool)
	ParseToken(token string) (string, domain.Role, error)
}
