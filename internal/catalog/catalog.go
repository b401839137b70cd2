package catalog

import (
	"strings"

	"tableside-pos/internal/domain"
)

// Catalog is the static reference data the rest of the system reads from:
// the menu, the table plan and the staff list. It is immutable after New.
type Catalog struct {
	menu   []domain.MenuItem
	tables []domain.Table
	users  []domain.User

	menuByID   map[string]domain.MenuItem
	userByName map[string]domain.User
}

func New(menu []domain.MenuItem, tables []domain.Table, users []domain.User) *Catalog {
	c := &Catalog{
		menu:       menu,
		tables:     tables,
		users:      users,
		menuByID:   make(map[string]domain.MenuItem, len(menu)),
		userByName: make(map[string]domain.User, len(users)),
	}
	for _, item := range menu {
		c.menuByID[item.ID] = item
	}
	for _, user := range users {
		c.userByName[user.Username] = user
	}
	return c
}

// Default builds the catalog from the seed data.
func Default() *Catalog {
	return New(seedMenu(), seedTables(), seedUsers())
}

type MenuFilter struct {
	Category      domain.MenuCategory
	AvailableOnly bool
	Search        string
}

func (c *Catalog) Menu(filter MenuFilter) []domain.MenuItem {
	items := []domain.MenuItem{}
	q := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, item := range c.menu {
		if filter.AvailableOnly && !item.Available {
			continue
		}
		if filter.Category != "" && !item.HasCategory(filter.Category) {
			continue
		}
		if q != "" && !matchesSearch(item, q) {
			continue
		}
		items = append(items, item)
	}
	return items
}

func matchesSearch(item domain.MenuItem, q string) bool {
	return strings.Contains(strings.ToLower(item.Name), q) ||
		strings.Contains(strings.ToLower(item.NameEn), q) ||
		strings.Contains(strings.ToLower(item.Description), q) ||
		strings.Contains(strings.ToLower(item.DescriptionEn), q)
}

func (c *Catalog) MenuItem(id string) (domain.MenuItem, bool) {
	item, ok := c.menuByID[id]
	return item, ok
}

// Tables returns the table plan with its seeded occupancy; the live occupancy
// is owned by the table store.
func (c *Catalog) Tables() []domain.Table {
	tables := make([]domain.Table, len(c.tables))
	copy(tables, c.tables)
	return tables
}

func (c *Catalog) Users() []domain.User {
	users := make([]domain.User, len(c.users))
	copy(users, c.users)
	return users
}

func (c *Catalog) UserByUsername(username string) (domain.User, bool) {
	user, ok := c.userByName[username]
	return user, ok
}
