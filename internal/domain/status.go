package domain

type OrderStatus string

const (
	StatusNew       OrderStatus = "new"
	StatusPreparing OrderStatus = "preparing"
	StatusServed    OrderStatus = "served"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case StatusNew, StatusPreparing, StatusServed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type TableStatus string

const (
	TableEmpty    TableStatus = "empty"
	TableOccupied TableStatus = "occupied"
	TableReserved TableStatus = "reserved"
)

func ValidTableStatus(s TableStatus) bool {
	switch s {
	case TableEmpty, TableOccupied, TableReserved:
		return true
	}
	return false
}

type Role string

const (
	RoleServer  Role = "server"
	RoleKitchen Role = "kitchen"
	RoleManager Role = "manager"
	RoleCashier Role = "cashier"
)

// statusFlow is the forward path of the order lifecycle. Completed and
// cancelled have no successor.
var statusFlow = map[OrderStatus]OrderStatus{
	StatusNew:       StatusPreparing,
	StatusPreparing: StatusServed,
	StatusServed:    StatusCompleted,
}

// roleTransitions lists, per role, the current statuses from which that role
// may move an order. Cashiers have no transition rights.
var roleTransitions = map[Role]map[OrderStatus]bool{
	RoleManager: {StatusNew: true, StatusPreparing: true, StatusServed: true},
	RoleKitchen: {StatusNew: true, StatusPreparing: true},
	RoleServer:  {StatusPreparing: true},
	RoleCashier: {},
}

func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// NextStatus returns the forward successor of s, or false when s is terminal.
func NextStatus(s OrderStatus) (OrderStatus, bool) {
	next, ok := statusFlow[s]
	return next, ok
}

// CanTransition reports whether moving an order from one status to another is
// legal. Cancellation is only reachable from new; everything else must follow
// the forward path.
func CanTransition(from, to OrderStatus) bool {
	if from.Terminal() {
		return false
	}
	if to == StatusCancelled {
		return from == StatusNew
	}
	return statusFlow[from] == to
}

// RoleMayTransition reports whether the role is allowed to act on an order in
// the given status. It gates the actor only; transition legality is checked
// separately by CanTransition.
func RoleMayTransition(role Role, current OrderStatus) bool {
	return roleTransitions[role][current]
}
