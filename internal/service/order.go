package service

import (
	"context"
	"fmt"
	"time"

	"tableside-pos/internal/catalog"
	"tableside-pos/internal/domain"

	"github.com/google/uuid"
)

const (
	serviceChargePercent = 5
	vatPercent           = 8
)

// OrderService owns the order lifecycle: checkout freezes the cart into an
// immutable-priced order, status transitions run through the role gate and
// the forward transition table, and table occupancy follows as a side effect.
type OrderService struct {
	orders    OrderRepository
	tables    TableRepository
	cart      CartServiceInterface
	session   SessionServiceInterface
	catalog   *catalog.Catalog
	publisher OrderPublisher
	qr        QRGenerator
}

func NewOrderService(orders OrderRepository, tables TableRepository, cart CartServiceInterface,
	session SessionServiceInterface, cat *catalog.Catalog, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		orders:    orders,
		tables:    tables,
		cart:      cart,
		session:   session,
		catalog:   cat,
		publisher: publisher,
		qr:        qr,
	}
}

// Create checks out the current cart against a table. Unit prices are copied
// from the catalog at this instant; the cart is cleared only after the order
// and the table update have been applied.
func (s *OrderService) Create(tableNumber int) (domain.Order, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return domain.Order{}, fmt.Errorf("%w: cart is empty", domain.ErrInvalidState)
	}
	if _, ok := s.tables.Get(tableNumber); !ok {
		return domain.Order{}, fmt.Errorf("%w: table %d", domain.ErrNotFound, tableNumber)
	}

	orderItems := make([]domain.OrderItem, 0, len(items))
	var subtotal int64
	for _, item := range items {
		if item.Quantity < 1 {
			return domain.Order{}, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
		}
		menuItem, ok := s.catalog.MenuItem(item.MenuItem.ID)
		if !ok {
			return domain.Order{}, fmt.Errorf("%w: menu item %s", domain.ErrNotFound, item.MenuItem.ID)
		}
		lineSubtotal := menuItem.Price * int64(item.Quantity)
		orderItems = append(orderItems, domain.OrderItem{
			MenuItem:  menuItem,
			Quantity:  item.Quantity,
			UnitPrice: menuItem.Price,
			Note:      item.Note,
			Subtotal:  lineSubtotal,
		})
		subtotal += lineSubtotal
	}

	serviceCharge := roundPercent(subtotal, serviceChargePercent)
	vat := roundPercent(subtotal, vatPercent)
	var discount int64

	order := domain.Order{
		ID:            uuid.NewString(),
		TableNumber:   tableNumber,
		Items:         orderItems,
		Status:        domain.StatusNew,
		CreatedAt:     time.Now(),
		Subtotal:      subtotal,
		ServiceCharge: serviceCharge,
		VAT:           vat,
		Discount:      discount,
		Total:         subtotal + serviceCharge + vat - discount,
	}

	s.orders.Append(order)
	s.tables.SetStatus(tableNumber, domain.TableOccupied)
	s.cart.Clear()

	s.publish(domain.OrderEvent{
		Type:        domain.EventOrderCreated,
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		Status:      order.Status,
		Total:       order.Total,
		Occurred:    time.Now(),
	})

	return order, nil
}

// UpdateStatus moves an order to a new status. The role gate is checked
// before transition legality, so an unauthorized caller sees forbidden even
// for a move that would also be illegal.
func (s *OrderService) UpdateStatus(id string, status domain.OrderStatus) error {
	if !domain.ValidOrderStatus(status) {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	order, ok := s.orders.Get(id)
	if !ok {
		return fmt.Errorf("%w: order %s", domain.ErrNotFound, id)
	}
	if order.Status.Terminal() {
		return fmt.Errorf("%w: order is already %q", domain.ErrInvalidState, order.Status)
	}
	user, ok := s.session.Current()
	if !ok || !domain.RoleMayTransition(user.Role, order.Status) {
		return fmt.Errorf("%w: role may not update an order in status %q", domain.ErrForbidden, order.Status)
	}
	if !domain.CanTransition(order.Status, status) {
		return fmt.Errorf("%w: cannot move order from %q to %q", domain.ErrInvalidState, order.Status, status)
	}

	s.orders.UpdateStatus(id, status)

	// Completing the last active order for a table releases it.
	if status == domain.StatusCompleted && !s.orders.HasActive(order.TableNumber, id) {
		s.tables.SetStatus(order.TableNumber, domain.TableEmpty)
	}

	s.publish(domain.OrderEvent{
		Type:        domain.EventOrderStatusUpdated,
		OrderID:     id,
		TableNumber: order.TableNumber,
		Status:      status,
		Total:       order.Total,
		Occurred:    time.Now(),
	})

	return nil
}

func (s *OrderService) Cancel(id string) error {
	return s.UpdateStatus(id, domain.StatusCancelled)
}

func (s *OrderService) Get(id string) (domain.Order, error) {
	order, ok := s.orders.Get(id)
	if !ok {
		return domain.Order{}, fmt.Errorf("%w: order %s", domain.ErrNotFound, id)
	}
	return order, nil
}

func (s *OrderService) List(status domain.OrderStatus, tableNumber int) []domain.Order {
	return s.orders.List(status, tableNumber)
}

func (s *OrderService) ReceiptQR(id string) ([]byte, error) {
	if _, ok := s.orders.Get(id); !ok {
		return nil, fmt.Errorf("%w: order %s", domain.ErrNotFound, id)
	}
	return s.qr.Generate(id)
}

func (s *OrderService) publish(event domain.OrderEvent) {
	if s.publisher != nil {
		_ = s.publisher.PublishOrderEvent(context.Background(), event)
	}
}

// roundPercent computes percent% of amount with half-up rounding to the whole
// currency unit, using integer arithmetic only.
func roundPercent(amount, percent int64) int64 {
	return (amount*percent + 50) / 100
}

var _ OrderServiceInterface = (*OrderService)(nil)
