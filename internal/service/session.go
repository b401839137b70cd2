package service

import (
	"fmt"
	"sync"
	"time"

	"tableside-pos/internal/catalog"
	"tableside-pos/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// SessionService holds the current identity and table selection for this
// terminal. Login resolves a staff user from the catalog and issues a signed
// token; logout clears the identity, the cart and the table selection.
type SessionService struct {
	mu            sync.Mutex
	current       *domain.User
	selectedTable int

	catalog *catalog.Catalog
	cart    CartServiceInterface
	tables  TableRepository
	secret  []byte
	ttl     time.Duration
}

func NewSessionService(cat *catalog.Catalog, cart CartServiceInterface, tables TableRepository,
	secret []byte, ttl time.Duration) *SessionService {
	return &SessionService{
		catalog: cat,
		cart:    cart,
		tables:  tables,
		secret:  secret,
		ttl:     ttl,
	}
}

func (s *SessionService) Login(username string) (domain.User, string, error) {
	user, ok := s.catalog.UserByUsername(username)
	if !ok {
		return domain.User{}, "", fmt.Errorf("%w: user %s", domain.ErrNotFound, username)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.ttl).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("sign session token: %w", err)
	}

	s.mu.Lock()
	s.current = &user
	s.mu.Unlock()

	return user, signed, nil
}

func (s *SessionService) Logout() {
	s.mu.Lock()
	s.current = nil
	s.selectedTable = 0
	s.mu.Unlock()
	s.cart.Clear()
}

func (s *SessionService) Current() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.User{}, false
	}
	return *s.current, true
}

func (s *SessionService) SelectTable(number int) error {
	if _, ok := s.tables.Get(number); !ok {
		return fmt.Errorf("%w: table %d", domain.ErrNotFound, number)
	}
	s.mu.Lock()
	s.selectedTable = number
	s.mu.Unlock()
	return nil
}

func (s *SessionService) ClearTableSelection() {
	s.mu.Lock()
	s.selectedTable = 0
	s.mu.Unlock()
}

func (s *SessionService) SelectedTable() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedTable, s.selectedTable != 0
}

// ParseToken validates a session token and returns the user id and role it
// carries.
func (s *SessionService) ParseToken(tokenString string) (string, domain.Role, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", fmt.Errorf("%w: invalid session token", domain.ErrForbidden)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", fmt.Errorf("%w: invalid session token", domain.ErrForbidden)
	}
	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	return userID, domain.Role(role), nil
}

var _ SessionServiceInterface = (*SessionService)(nil)
