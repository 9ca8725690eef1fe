package service

import (
	"testing"

	"go-retail-admin/internal/model"
	"go-retail-admin/internal/seed"
	"go-retail-admin/internal/store"
	"go-retail-admin/internal/ws"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const session = "tester@example.com"

func newCartFixture(t *testing.T) (CartService, *store.Stores) {
	t.Helper()
	stores := store.NewStores()
	for _, item := range seed.Items() {
		require.NoError(t, stores.Items.Insert(item))
	}
	for _, customer := range seed.Customers() {
		require.NoError(t, stores.Customers.Insert(customer))
	}

	hub := ws.NewHub()
	go hub.Run()

	return NewCartService(stores.Items, stores.Customers, stores.Orders, hub), stores
}

func TestAddStopsAtStockCeiling(t *testing.T) {
	cart, _ := newCartFixture(t)

	// Item 1 has qty 5; CanAdd gates each increment
	added := 0
	for cart.CanAdd(session, 1) {
		require.NoError(t, cart.Add(session, 1))
		added++
	}

	assert.Equal(t, 5, added)
	assert.False(t, cart.CanAdd(session, 1))

	view := cart.View(session)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 5, view.Lines[0].Quantity, "quantity never exceeds item qty")
}

func TestAddUnknownItem(t *testing.T) {
	cart, _ := newCartFixture(t)
	assert.ErrorIs(t, cart.Add(session, 999), ErrItemNotFound)
	assert.False(t, cart.CanAdd(session, 999))
}

func TestSetQuantityBounds(t *testing.T) {
	cart, _ := newCartFixture(t)
	require.NoError(t, cart.Add(session, 1))

	// Above stock: refused, line unchanged
	err := cart.SetQuantity(session, 1, 6) // item 1 qty is 5
	assert.ErrorIs(t, err, ErrStockExceeded)
	assert.Equal(t, 1, cart.View(session).Lines[0].Quantity)

	// Within stock: replaced
	require.NoError(t, cart.SetQuantity(session, 1, 4))
	assert.Equal(t, 4, cart.View(session).Lines[0].Quantity)

	// Below 1: line removed
	require.NoError(t, cart.SetQuantity(session, 1, 0))
	assert.Empty(t, cart.View(session).Lines)

	// No line staged for the item
	assert.ErrorIs(t, cart.SetQuantity(session, 2, 1), ErrLineNotFound)
	// Unknown item fails closed before any cart check
	assert.ErrorIs(t, cart.SetQuantity(session, 999, 1), ErrItemNotFound)
}

func TestRemoveDropsLineUnconditionally(t *testing.T) {
	cart, _ := newCartFixture(t)
	require.NoError(t, cart.Add(session, 1))

	cart.Remove(session, 1)
	assert.Empty(t, cart.View(session).Lines)

	cart.Remove(session, 1) // removing again is harmless
}

func TestTotalTracksLiveItemPrices(t *testing.T) {
	cart, stores := newCartFixture(t)
	require.NoError(t, cart.Add(session, 1))
	require.NoError(t, cart.SetQuantity(session, 1, 2))

	assert.True(t, cart.Total(session).Equal(decimal.NewFromInt(240)), "2 x 120")

	// Editing the price while the cart is open changes the total
	item, err := stores.Items.Get(1)
	require.NoError(t, err)
	item.Price = decimal.NewFromInt(100)
	require.NoError(t, stores.Items.Update(item))

	assert.True(t, cart.Total(session).Equal(decimal.NewFromInt(200)))
}

func TestPlaceOrderSnapshotsCartAndAdvancesLabel(t *testing.T) {
	cart, stores := newCartFixture(t)
	require.NoError(t, cart.SelectCustomer(session, 1))
	require.NoError(t, cart.Add(session, 1))
	require.NoError(t, cart.SetQuantity(session, 1, 2))

	assert.Equal(t, "ORD-0001", cart.View(session).OrderID)
	before := stores.Orders.Len()

	order, err := cart.PlaceOrder(session)
	require.NoError(t, err)

	assert.Equal(t, "ORD-0001", order.ID)
	assert.Equal(t, 1, order.CustomerID)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(240)))
	assert.Equal(t, []model.OrderLine{{ItemID: 1, Quantity: 2}}, order.Lines)
	assert.Equal(t, before+1, stores.Orders.Len(), "store grows by exactly 1")

	// Cart is reset and the label advanced
	view := cart.View(session)
	assert.Equal(t, "ORD-0002", view.OrderID)
	assert.Nil(t, view.CustomerID)
	assert.Empty(t, view.Lines)

	// A later price edit must not rewrite the stored snapshot
	item, _ := stores.Items.Get(1)
	item.Price = decimal.NewFromInt(999)
	require.NoError(t, stores.Items.Update(item))
	stored, err := stores.Orders.Get("ORD-0001")
	require.NoError(t, err)
	assert.True(t, stored.TotalAmount.Equal(decimal.NewFromInt(240)))
}

func TestPlaceOrderGuards(t *testing.T) {
	cart, _ := newCartFixture(t)

	_, err := cart.PlaceOrder(session)
	assert.ErrorIs(t, err, ErrNoCustomer)

	require.NoError(t, cart.SelectCustomer(session, 1))
	_, err = cart.PlaceOrder(session)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCartsAreSessionScoped(t *testing.T) {
	cart, _ := newCartFixture(t)
	require.NoError(t, cart.Add("one@example.com", 1))

	assert.Empty(t, cart.View("two@example.com").Lines)
	assert.Len(t, cart.View("one@example.com").Lines, 1)
}

func TestSelectCustomerRequiresExisting(t *testing.T) {
	cart, _ := newCartFixture(t)
	assert.Error(t, cart.SelectCustomer(session, 999))
}
