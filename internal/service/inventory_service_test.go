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

func newInventoryFixture(t *testing.T) (InventoryService, *store.Stores) {
	t.Helper()
	stores := store.NewStores()
	for _, item := range seed.Items() {
		require.NoError(t, stores.Items.Insert(item))
	}
	hub := ws.NewHub()
	go hub.Run()
	return NewInventoryService(stores.Items, hub), stores
}

func TestCreateItemAssignsNextID(t *testing.T) {
	svc, _ := newInventoryFixture(t)

	item, err := svc.CreateItem(model.Item{
		Name:   "Desert Boot",
		Price:  decimal.NewFromInt(140),
		Size:   "10",
		Qty:    6,
		Status: model.ItemActive,
	})
	require.NoError(t, err)
	assert.Equal(t, 9, item.ID, "seed tops out at 8")
}

func TestCreateItemValidation(t *testing.T) {
	svc, stores := newInventoryFixture(t)
	before := stores.Items.Len()

	cases := []struct {
		name string
		item model.Item
	}{
		{"missing name", model.Item{Size: "9", Qty: 1, Status: model.ItemActive}},
		{"negative price", model.Item{Name: "x", Price: decimal.NewFromInt(-1), Size: "9", Qty: 1, Status: model.ItemActive}},
		{"bad status", model.Item{Name: "x", Size: "9", Qty: 1, Status: "discontinued"}},
		{"bad image uri", model.Item{Name: "x", Image: "data:text/plain;base64,xx", Size: "9", Qty: 1, Status: model.ItemActive}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateItem(tc.item)
			assert.Error(t, err)
		})
	}

	assert.Equal(t, before, stores.Items.Len(), "rejected items never reach the store")
}

func TestStatusIsNotDerivedFromQty(t *testing.T) {
	svc, _ := newInventoryFixture(t)

	// qty 0 with active status is allowed; status is whatever the form sent
	item, err := svc.CreateItem(model.Item{Name: "Display Pair", Size: "9", Qty: 0, Status: model.ItemActive})
	require.NoError(t, err)
	assert.Equal(t, model.ItemActive, item.Status)
}

func TestListItemsSearchesNameSizeAndID(t *testing.T) {
	svc, _ := newInventoryFixture(t)

	byName := svc.ListItems(store.Projection{Query: "air"})
	require.Len(t, byName, 1)
	assert.Equal(t, "Air Max", byName[0].Name)

	bySize := svc.ListItems(store.Projection{Query: "11"})
	assert.Len(t, bySize, 2, "Slip-On and Running Shoes are size 11")

	byID := svc.ListItems(store.Projection{Query: "3"})
	require.NotEmpty(t, byID)
	assert.Equal(t, 3, byID[0].ID)
}

func TestUpdateMissingItem(t *testing.T) {
	svc, _ := newInventoryFixture(t)
	_, err := svc.UpdateItem(model.Item{ID: 999, Name: "x", Size: "9", Qty: 1, Status: model.ItemActive})
	assert.Error(t, err)
}
