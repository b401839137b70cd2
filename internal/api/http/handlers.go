package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tableside-pos/internal/catalog"
	"tableside-pos/internal/domain"
	"tableside-pos/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog *catalog.Catalog
	Cart    service.CartServiceInterface
	Orders  service.OrderServiceInterface
	Tables  service.TableServiceInterface
	Session service.SessionServiceInterface
}

func NewHandler(cat *catalog.Catalog, cartSvc service.CartServiceInterface, orderSvc service.OrderServiceInterface,
	tableSvc service.TableServiceInterface, sessionSvc service.SessionServiceInterface) *Handler {
	return &Handler{
		Catalog: cat,
		Cart:    cartSvc,
		Orders:  orderSvc,
		Tables:  tableSvc,
		Session: sessionSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/login", h.login).Methods("POST")
	r.HandleFunc("/api/logout", h.requireAuth(h.logout)).Methods("POST")
	r.HandleFunc("/api/session", h.requireAuth(h.getSession)).Methods("GET")
	r.HandleFunc("/api/session/table", h.requireAuth(h.selectTable)).Methods("PUT")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/{id}", h.getMenuItem).Methods("GET")

	r.HandleFunc("/api/tables", h.getTables).Methods("GET")
	r.HandleFunc("/api/tables/{number}/status", h.requireAuth(h.setTableStatus)).Methods("PUT")

	r.HandleFunc("/api/cart", h.requireAuth(h.getCart)).Methods("GET")
	r.HandleFunc("/api/cart", h.requireAuth(h.addCartItem)).Methods("POST")
	r.HandleFunc("/api/cart/{index}", h.requireAuth(h.updateCartItem)).Methods("PUT")
	r.HandleFunc("/api/cart/{index}", h.requireAuth(h.removeCartItem)).Methods("DELETE")
	r.HandleFunc("/api/cart", h.requireAuth(h.clearCart)).Methods("DELETE")

	r.HandleFunc("/api/orders", h.requireAuth(h.createOrder)).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.requireAuth(h.updateOrderStatus)).Methods("PUT")
	r.HandleFunc("/api/orders/{id}", h.requireAuth(h.cancelOrder)).Methods("DELETE")
}

// requireAuth checks the bearer token and that a session is active before
// calling next.
func (h *Handler) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			http.Error(w, "Missing bearer token", http.StatusUnauthorized)
			return
		}
		if _, _, err := h.Session.ParseToken(token); err != nil {
			http.Error(w, "Invalid session token", http.StatusUnauthorized)
			return
		}
		if _, ok := h.Session.Current(); !ok {
			http.Error(w, "No active session", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "tableside-pos",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	user, token, err := h.Session.Login(req.Username)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"token": token, "user": user})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.Session.Logout()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	user, _ := h.Session.Current()
	resp := map[string]interface{}{"user": user}
	if number, ok := h.Session.SelectedTable(); ok {
		resp["selected_table"] = number
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) selectTable(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TableNumber *int `json:"table_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.TableNumber == nil {
		h.Session.ClearTableSelection()
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err := h.Session.SelectTable(*req.TableNumber); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	filter := catalog.MenuFilter{
		Search:        r.URL.Query().Get("q"),
		AvailableOnly: r.URL.Query().Get("available") == "true",
	}
	if raw := r.URL.Query().Get("category"); raw != "" {
		category := domain.MenuCategory(raw)
		if !domain.ValidCategory(category) {
			http.Error(w, "Unknown category "+raw, http.StatusBadRequest)
			return
		}
		filter.Category = category
	}
	respondJSON(w, http.StatusOK, h.Catalog.Menu(filter))
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.Catalog.MenuItem(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *Handler) getTables(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.Tables.List())
}

func (h *Handler) setTableStatus(w http.ResponseWriter, r *http.Request) {
	number, _ := strconv.Atoi(mux.Vars(r)["number"])
	var req struct {
		Status domain.TableStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Tables.SetStatus(number, req.Status); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":    h.Cart.Items(),
		"subtotal": h.Cart.Subtotal(),
	})
}

type cartItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Note       string `json:"note"`
}

func (h *Handler) resolveCartItem(req cartItemRequest) (domain.CartItem, bool) {
	item, ok := h.Catalog.MenuItem(req.MenuItemID)
	if !ok {
		return domain.CartItem{}, false
	}
	return domain.CartItem{MenuItem: item, Quantity: req.Quantity, Note: req.Note}, true
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item, ok := h.resolveCartItem(req)
	if !ok {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}
	if err := h.Cart.Add(item); err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":    h.Cart.Items(),
		"subtotal": h.Cart.Subtotal(),
	})
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		http.Error(w, "Invalid cart index", http.StatusBadRequest)
		return
	}
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item, ok := h.resolveCartItem(req)
	if !ok {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}
	if err := h.Cart.Update(index, item); err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":    h.Cart.Items(),
		"subtotal": h.Cart.Subtotal(),
	})
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		http.Error(w, "Invalid cart index", http.StatusBadRequest)
		return
	}
	if err := h.Cart.Remove(index); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.Cart.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TableNumber int `json:"table_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Orders.Create(req.TableNumber)
	RecordOrderOperation("create", err == nil)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	var status domain.OrderStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = domain.OrderStatus(raw)
		if !domain.ValidOrderStatus(status) {
			http.Error(w, "Unknown status "+raw, http.StatusBadRequest)
			return
		}
	}
	tableNumber := 0
	if raw := r.URL.Query().Get("table"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid table number", http.StatusBadRequest)
			return
		}
		tableNumber = n
	}
	respondJSON(w, http.StatusOK, h.Orders.List(status, tableNumber))
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Orders.ReceiptQR(mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	err := h.Orders.UpdateStatus(mux.Vars(r)["id"], req.Status)
	RecordOrderOperation("update_status", err == nil)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	order, err := h.Orders.Get(mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	err := h.Orders.Cancel(mux.Vars(r)["id"])
	RecordOrderOperation("cancel", err == nil)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, domain.ErrInvalidState):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
