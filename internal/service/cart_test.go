package service_test

import (
	"testing"

	"tableside-pos/internal/domain"
	"tableside-pos/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartEntry(id string, price int64, quantity int, note string) domain.CartItem {
	return domain.CartItem{
		MenuItem: domain.MenuItem{ID: id, Name: "item-" + id, Price: price, Available: true},
		Quantity: quantity,
		Note:     note,
	}
}

func TestCartAddMergesSameItemAndNote(t *testing.T) {
	cart := service.NewCartService()

	require.NoError(t, cart.Add(cartEntry("1", 65000, 2, "")))
	require.NoError(t, cart.Add(cartEntry("2", 55000, 1, "")))
	require.NoError(t, cart.Add(cartEntry("1", 65000, 3, "")))

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].MenuItem.ID, "merged entry keeps its original position")
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, "2", items[1].MenuItem.ID)
}

func TestCartAddDifferentNoteAppends(t *testing.T) {
	cart := service.NewCartService()

	require.NoError(t, cart.Add(cartEntry("1", 65000, 1, "")))
	require.NoError(t, cart.Add(cartEntry("1", 65000, 1, "no onions")))

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "", items[0].Note)
	assert.Equal(t, "no onions", items[1].Note)
}

func TestCartAddValidation(t *testing.T) {
	cart := service.NewCartService()

	err := cart.Add(cartEntry("1", 65000, 0, ""))
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = cart.Add(domain.CartItem{Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Empty(t, cart.Items())
}

func TestCartUpdate(t *testing.T) {
	cart := service.NewCartService()
	require.NoError(t, cart.Add(cartEntry("1", 65000, 2, "")))

	tests := []struct {
		name    string
		index   int
		item    domain.CartItem
		wantErr error
	}{
		{"valid replace", 0, cartEntry("1", 65000, 4, "extra herbs"), nil},
		{"index out of bounds", 5, cartEntry("1", 65000, 1, ""), domain.ErrNotFound},
		{"negative index", -1, cartEntry("1", 65000, 1, ""), domain.ErrNotFound},
		{"quantity below one", 0, cartEntry("1", 65000, 0, ""), domain.ErrValidation},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := cart.Update(testCase.index, testCase.item)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	// The failed updates must not have touched the entry.
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
	assert.Equal(t, "extra herbs", items[0].Note)
}

func TestCartRemoveShiftsIndices(t *testing.T) {
	cart := service.NewCartService()
	require.NoError(t, cart.Add(cartEntry("1", 65000, 1, "")))
	require.NoError(t, cart.Add(cartEntry("2", 55000, 1, "")))
	require.NoError(t, cart.Add(cartEntry("3", 35000, 1, "")))

	require.NoError(t, cart.Remove(1))

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].MenuItem.ID)
	assert.Equal(t, "3", items[1].MenuItem.ID)

	assert.ErrorIs(t, cart.Remove(2), domain.ErrNotFound)
}

func TestCartClearAndSubtotal(t *testing.T) {
	cart := service.NewCartService()
	require.NoError(t, cart.Add(cartEntry("1", 65000, 2, "")))
	require.NoError(t, cart.Add(cartEntry("2", 55000, 1, "no onions")))

	assert.Equal(t, int64(185000), cart.Subtotal())

	cart.Clear()
	assert.Empty(t, cart.Items())
	assert.Equal(t, int64(0), cart.Subtotal())
}
