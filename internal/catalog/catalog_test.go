package catalog_test

import (
	"testing"

	"tableside-pos/internal/catalog"
	"tableside-pos/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogSeed(t *testing.T) {
	cat := catalog.Default()

	assert.Len(t, cat.Menu(catalog.MenuFilter{}), 12)
	assert.Len(t, cat.Tables(), 20)
	assert.Len(t, cat.Users(), 4)

	item, ok := cat.MenuItem("1")
	require.True(t, ok)
	assert.Equal(t, "Beef Pho", item.NameEn)
	assert.Equal(t, int64(65000), item.Price)

	_, ok = cat.MenuItem("999")
	assert.False(t, ok)
}

func TestMenuFilterByCategory(t *testing.T) {
	cat := catalog.Default()

	desserts := cat.Menu(catalog.MenuFilter{Category: domain.CategoryDessert})
	require.Len(t, desserts, 2)
	for _, item := range desserts {
		assert.True(t, item.HasCategory(domain.CategoryDessert))
	}

	western := cat.Menu(catalog.MenuFilter{Category: domain.CategoryWestern})
	assert.Len(t, western, 4)
}

func TestMenuFilterAvailableOnly(t *testing.T) {
	menu := []domain.MenuItem{
		{ID: "a", NameEn: "A", Available: true},
		{ID: "b", NameEn: "B", Available: false},
	}
	cat := catalog.New(menu, nil, nil)

	assert.Len(t, cat.Menu(catalog.MenuFilter{}), 2)

	available := cat.Menu(catalog.MenuFilter{AvailableOnly: true})
	require.Len(t, available, 1)
	assert.Equal(t, "a", available[0].ID)
}

func TestMenuSearch(t *testing.T) {
	cat := catalog.Default()

	results := cat.Menu(catalog.MenuFilter{Search: "pho"})
	require.NotEmpty(t, results)
	assert.Equal(t, "1", results[0].ID)

	assert.Empty(t, cat.Menu(catalog.MenuFilter{Search: "sushi"}))
}

func TestUserByUsername(t *testing.T) {
	cat := catalog.Default()

	user, ok := cat.UserByUsername("manager01")
	require.True(t, ok)
	assert.Equal(t, domain.RoleManager, user.Role)

	_, ok = cat.UserByUsername("nobody")
	assert.False(t, ok)
}
