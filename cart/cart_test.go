package cart_test

import (
	"testing"
	"time"

	"github.com/broqhotels/broq-go/cart"
	"github.com/broqhotels/broq-go/tokenstore/storefake"
	"github.com/stretchr/testify/require"
)

func TestAddMergesExistingLines(t *testing.T) {
	c := cart.New(storefake.NewFakeStore())

	c.Add(cart.Line{ID: "food-1", Name: "Margherita", Price: 12.5, Quantity: 1})
	c.Add(cart.Line{ID: "food-1", Name: "Margherita", Price: 12.5, Quantity: 2})
	c.Add(cart.Line{ID: "food-2", Name: "Tiramisu", Price: 6, Quantity: 1})

	lines := c.Lines()
	require.Len(t, lines, 2)
	require.Equal(t, 3, lines[0].Quantity)
	require.InDelta(t, 43.5, c.Total(), 1e-9)
}

func TestAddAssignsIDWhenMissing(t *testing.T) {
	c := cart.New(storefake.NewFakeStore())
	c.Add(cart.Line{Name: "Espresso", Price: 3})

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.NotEmpty(t, lines[0].ID)
	require.Equal(t, 1, lines[0].Quantity)
}

func TestSetQuantityAndRemove(t *testing.T) {
	c := cart.New(storefake.NewFakeStore())
	c.Add(cart.Line{ID: "food-1", Name: "Margherita", Price: 10, Quantity: 2})

	c.SetQuantity("food-1", 5)
	require.InDelta(t, 50, c.Total(), 1e-9)

	c.SetQuantity("food-1", 0)
	require.Empty(t, c.Lines())

	c.Add(cart.Line{ID: "food-2", Name: "Tiramisu", Price: 6, Quantity: 1})
	c.Remove("food-2")
	require.Empty(t, c.Lines())
}

func TestMirrorSurvivesRestart(t *testing.T) {
	store := storefake.NewFakeStore()

	first := cart.New(store)
	first.Add(cart.Line{ID: "food-1", Name: "Margherita", Price: 12.5, Quantity: 2})

	second := cart.New(store)
	lines := second.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, "Margherita", lines[0].Name)
	require.Equal(t, 2, lines[0].Quantity)

	second.Clear()
	require.False(t, store.Contains())
	require.Empty(t, cart.New(store).Lines())
}

func TestCorruptMirrorYieldsEmptyCart(t *testing.T) {
	store := storefake.NewFakeStore()
	require.NoError(t, store.Save("{not json"))

	require.Empty(t, cart.New(store).Lines())
}

func TestNights(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.September, d, 0, 0, 0, 0, time.UTC)
	}

	require.Equal(t, 2, cart.Nights(day(10), day(12)))
	require.Equal(t, 0, cart.Nights(day(10), day(10)))
	require.Equal(t, 0, cart.Nights(day(12), day(10)))
	require.InDelta(t, 240, cart.StayTotal(120, cart.Nights(day(10), day(12))), 1e-9)
	require.InDelta(t, 0, cart.StayTotal(120, 0), 1e-9)
}
