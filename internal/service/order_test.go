package service_test

import (
	"testing"
	"time"

	"tableside-pos/internal/catalog"
	"tableside-pos/internal/domain"
	"tableside-pos/internal/mocks"
	"tableside-pos/internal/service"
	"tableside-pos/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testPOS struct {
	catalog    *catalog.Catalog
	cart       *service.CartService
	session    *service.SessionService
	orders     *service.OrderService
	tables     *service.TableService
	orderStore *storage.OrderStore
	tableStore *storage.TableStore
	publisher  *mocks.OrderPublisher
}

func newTestPOS(t *testing.T) *testPOS {
	t.Helper()
	cat := catalog.Default()
	orderStore := storage.NewOrderStore()
	tableStore := storage.NewTableStore(cat.Tables())
	publisher := new(mocks.OrderPublisher)
	cart := service.NewCartService()
	session := service.NewSessionService(cat, cart, tableStore, []byte("test-secret"), time.Hour)
	orders := service.NewOrderService(orderStore, tableStore, cart, session, cat, publisher,
		service.DefaultQRGenerator{BaseURL: "http://localhost"})
	tables := service.NewTableService(tableStore, orderStore)
	return &testPOS{
		catalog:    cat,
		cart:       cart,
		session:    session,
		orders:     orders,
		tables:     tables,
		orderStore: orderStore,
		tableStore: tableStore,
		publisher:  publisher,
	}
}

func (p *testPOS) allowPublish() {
	p.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil)
}

func (p *testPOS) loginAs(t *testing.T, username string) {
	t.Helper()
	_, _, err := p.session.Login(username)
	require.NoError(t, err)
}

func (p *testPOS) addToCart(t *testing.T, menuItemID string, quantity int, note string) {
	t.Helper()
	item, ok := p.catalog.MenuItem(menuItemID)
	require.True(t, ok, "menu item %s missing from catalog", menuItemID)
	require.NoError(t, p.cart.Add(domain.CartItem{MenuItem: item, Quantity: quantity, Note: note}))
}

func (p *testPOS) tableStatus(t *testing.T, number int) domain.TableStatus {
	t.Helper()
	table, ok := p.tableStore.Get(number)
	require.True(t, ok)
	return table.Status
}

func TestCreateOrderTotals(t *testing.T) {
	pos := newTestPOS(t)
	pos.allowPublish()
	pos.loginAs(t, "server01")

	// Phở Bò 65000 x2, Bún Chả 55000 x1 with a note.
	pos.addToCart(t, "1", 2, "")
	pos.addToCart(t, "2", 1, "no onions")

	order, err := pos.orders.Create(3)
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, 3, order.TableNumber)
	assert.Equal(t, domain.StatusNew, order.Status)
	assert.Equal(t, int64(185000), order.Subtotal)
	assert.Equal(t, int64(9250), order.ServiceCharge)
	assert.Equal(t, int64(14800), order.VAT)
	assert.Equal(t, int64(0), order.Discount)
	assert.Equal(t, int64(209050), order.Total)
	assert.Equal(t, order.Total, order.Subtotal+order.ServiceCharge+order.VAT-order.Discount)

	require.Len(t, order.Items, 2)
	assert.Equal(t, int64(65000), order.Items[0].UnitPrice)
	assert.Equal(t, int64(130000), order.Items[0].Subtotal)
	assert.Equal(t, "no onions", order.Items[1].Note)

	assert.Equal(t, domain.TableOccupied, pos.tableStatus(t, 3))
	assert.Empty(t, pos.cart.Items(), "checkout clears the cart")
}

func TestCreateOrderTotalsIdempotent(t *testing.T) {
	pos := newTestPOS(t)
	pos.allowPublish()
	pos.loginAs(t, "server01")
	pos.addToCart(t, "3", 3, "")
	pos.addToCart(t, "9", 2, "less ice")

	order, err := pos.orders.Create(4)
	require.NoError(t, err)

	// Re-deriving the totals from the frozen items must reproduce the stored
	// values exactly.
	var subtotal int64
	for _, item := range order.Items {
		assert.Equal(t, item.UnitPrice*int64(item.Quantity), item.Subtotal)
		subtotal += item.Subtotal
	}
	assert.Equal(t, order.Subtotal, subtotal)
	assert.Equal(t, order.ServiceCharge, (subtotal*5+50)/100)
	assert.Equal(t, order.VAT, (subtotal*8+50)/100)
	assert.Equal(t, order.Total, subtotal+order.ServiceCharge+order.VAT-order.Discount)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	pos := newTestPOS(t)
	pos.loginAs(t, "server01")

	_, err := pos.orders.Create(3)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Empty(t, pos.orders.List("", 0), "no order may be created")
	assert.Equal(t, domain.TableEmpty, pos.tableStatus(t, 3), "table must be untouched")
	pos.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestCreateOrderUnknownTable(t *testing.T) {
	pos := newTestPOS(t)
	pos.loginAs(t, "server01")
	pos.addToCart(t, "1", 1, "")

	_, err := pos.orders.Create(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, pos.orders.List("", 0))
	assert.Len(t, pos.cart.Items(), 1, "cart survives a failed checkout")
}

func TestUpdateOrderStatusForwardFlow(t *testing.T) {
	pos := newTestPOS(t)
	pos.allowPublish()
	pos.loginAs(t, "manager01")
	pos.addToCart(t, "1", 1, "")

	order, err := pos.orders.Create(5)
	require.NoError(t, err)

	for _, status := range []domain.OrderStatus{domain.StatusPreparing, domain.StatusServed, domain.StatusCompleted} {
		require.NoError(t, pos.orders.UpdateStatus(order.ID, status))
		got, err := pos.orders.Get(order.ID)
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}

	assert.Equal(t, domain.TableEmpty, pos.tableStatus(t, 5), "completion releases the table")
}

func TestUpdateOrderStatusRejectsJumps(t *testing.T) {
	pos := newTestPOS(t)
	pos.allowPublish()
	pos.loginAs(t, "manager01")
	pos.addToCart(t, "1", 1, "")
	order, err := pos.orders.Create(5)
	require.NoError(t, err)

	tests := []struct {
		name   string
		status domain.OrderStatus
	}{
		{"skip to served", domain.StatusServed},
		{"skip to completed", domain.StatusCompleted},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.ErrorIs(t, pos.orders.UpdateStatus(order.ID, testCase.status), domain.ErrInvalidState)
		})
	}

	got, err := pos.orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNew, got.Status, "failed transitions leave the order unchanged")
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	pos := newTestPOS(t)
	pos.loginAs(t, "manager01")

	err := pos.orders.UpdateStatus("missing", domain.StatusPreparing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateOrderStatusUnknownStatus(t *testing.T) {
	pos := newTestPOS(t)
	pos.loginAs(t, "manager01")

	err := pos.orders.UpdateStatus("whatever", "shipped")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateOrderStatusRoleGate(t *testing.T) {
	tests := []struct {
		name     string
		username string
		advance  []domain.OrderStatus // applied as manager before the attempt
		target   domain.OrderStatus
		wantErr  error
	}{
		{"cashier may never act", "cashier01", nil, domain.StatusPreparing, domain.ErrForbidden},
		{"server may not act on new", "server01", nil, domain.StatusPreparing, domain.ErrForbidden},
		{"server marks served", "server01", []domain.OrderStatus{domain.StatusPreparing}, domain.StatusServed, nil},
		{"kitchen starts preparing", "kitchen01", nil, domain.StatusPreparing, nil},
		{"kitchen advances preparing", "kitchen01", []domain.OrderStatus{domain.StatusPreparing}, domain.StatusServed, nil},
		{"kitchen may not act on served", "kitchen01", []domain.OrderStatus{domain.StatusPreparing, domain.StatusServed}, domain.StatusCompleted, domain.ErrForbidden},
		{"manager completes", "manager01", []domain.OrderStatus{domain.StatusPreparing, domain.StatusServed}, domain.StatusCompleted, nil},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			pos := newTestPOS(t)
			pos.allowPublish()
			pos.loginAs(t, "manager01")
			pos.addToCart(t, "1", 1, "")
			order, err := pos.orders.Create(5)
			require.NoError(t, err)
			for _, status := range testCase.advance {
				require.NoError(t, pos.orders.UpdateStatus(order.ID, status))
			}

			pos.loginAs(t, testCase.username)
			err = pos.orders.UpdateStatus(order.ID, testCase.target)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTerminalOrdersRejectAnyUpdate(t *testing.T) {
	pos := newTestPOS(t)
	pos.allowPublish()
	pos.loginAs(t, "manager01")

	pos.addToCart(t, "1", 1, "")
	completed, err := pos.orders.Create(5)
	require.NoError(t, err)
	for _, status := range []domain.OrderStatus{domain.StatusPreparing, domain.StatusServed, domain.StatusCompleted} {
		require.NoError(t, pos.orders.UpdateStatus(completed.ID, status))
	}

	pos.addToCart(t, "2", 1, "")
	cancelled, err := pos.orders.Create(6)
	require.NoError(t, err)
	require.NoError(t, pos.orders.Cancel(cancelled.ID))

	for _, id := range []string{completed.ID, cancelled.ID} {
		for _, status := range []domain.OrderStatus{domain.StatusNew, domain.StatusPreparing, domain.StatusServed, domain.StatusCompleted, domain.StatusCancelled} {
			assert.ErrorIs(t, pos.orders.UpdateStatus(id, status), domain.ErrInvalidState)
		}
	}
}

func TestCancelOrder(t *testing.T) {
	pos := newTestPOS(t)
	pos.allowPublish()
	pos.loginAs(t, "manager01")
	pos.addToCart(t, "1", 1, "")
	order, err := pos.orders.Create(7)
	require.NoError(t, err)

	require.NoError(t, pos.orders.Cancel(order.ID))
	got, err := pos.orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)
	assert.Equal(t, domain.TableOccupied, pos.tableStatus(t, 7), "cancellation does not release the table")
}

func TestCancelOnlyFromNew(t *testing.T) {
	pos := newTestPOS(t)
	pos.allowPublish()
	pos.loginAs(t, "manager01")
	pos.addToCart(t, "1", 1, "")
	order, err := pos.orders.Create(7)
	require.NoError(t, err)
	require.NoError(t, pos.orders.UpdateStatus(order.ID, domain.StatusPreparing))

	assert.ErrorIs(t, pos.orders.Cancel(order.ID), domain.ErrInvalidState)
}

func TestCompletionReleasesTableOnlyWhenLastActiveOrder(t *testing.T) {
	pos := newTestPOS(t)
	pos.allowPublish()
	pos.loginAs(t, "manager01")

	pos.addToCart(t, "1", 1, "")
	first, err := pos.orders.Create(9)
	require.NoError(t, err)
	pos.addToCart(t, "2", 1, "")
	second, err := pos.orders.Create(9)
	require.NoError(t, err)

	for _, status := range []domain.OrderStatus{domain.StatusPreparing, domain.StatusServed, domain.StatusCompleted} {
		require.NoError(t, pos.orders.UpdateStatus(first.ID, status))
	}
	assert.Equal(t, domain.TableOccupied, pos.tableStatus(t, 9), "second order still active")

	for _, status := range []domain.OrderStatus{domain.StatusPreparing, domain.StatusServed, domain.StatusCompleted} {
		require.NoError(t, pos.orders.UpdateStatus(second.ID, status))
	}
	assert.Equal(t, domain.TableEmpty, pos.tableStatus(t, 9))
}

func TestOrderEventsPublished(t *testing.T) {
	pos := newTestPOS(t)
	pos.loginAs(t, "manager01")
	pos.addToCart(t, "1", 2, "")

	pos.publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(event domain.OrderEvent) bool {
		return event.Type == domain.EventOrderCreated &&
			event.TableNumber == 3 &&
			event.Status == domain.StatusNew &&
			event.Total == 146900 // 130000 + 6500 + 10400
	})).Return(nil).Once()

	order, err := pos.orders.Create(3)
	require.NoError(t, err)

	pos.publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(event domain.OrderEvent) bool {
		return event.Type == domain.EventOrderStatusUpdated &&
			event.OrderID == order.ID &&
			event.Status == domain.StatusPreparing
	})).Return(nil).Once()

	require.NoError(t, pos.orders.UpdateStatus(order.ID, domain.StatusPreparing))
	pos.publisher.AssertExpectations(t)
}

func TestListOrdersFilters(t *testing.T) {
	pos := newTestPOS(t)
	pos.allowPublish()
	pos.loginAs(t, "manager01")

	pos.addToCart(t, "1", 1, "")
	first, err := pos.orders.Create(3)
	require.NoError(t, err)
	pos.addToCart(t, "2", 1, "")
	second, err := pos.orders.Create(4)
	require.NoError(t, err)
	require.NoError(t, pos.orders.UpdateStatus(second.ID, domain.StatusPreparing))

	assert.Len(t, pos.orders.List("", 0), 2)

	byStatus := pos.orders.List(domain.StatusNew, 0)
	require.Len(t, byStatus, 1)
	assert.Equal(t, first.ID, byStatus[0].ID)

	byTable := pos.orders.List("", 4)
	require.Len(t, byTable, 1)
	assert.Equal(t, second.ID, byTable[0].ID)

	assert.Empty(t, pos.orders.List(domain.StatusNew, 4))
}

func TestReceiptQR(t *testing.T) {
	pos := newTestPOS(t)
	pos.allowPublish()
	pos.loginAs(t, "server01")
	pos.addToCart(t, "1", 1, "")
	order, err := pos.orders.Create(3)
	require.NoError(t, err)

	qr, err := pos.orders.ReceiptQR(order.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, qr)

	_, err = pos.orders.ReceiptQR("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
