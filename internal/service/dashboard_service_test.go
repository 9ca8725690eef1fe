package service

import (
	"testing"

	"go-retail-admin/internal/seed"
	"go-retail-admin/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStatsFromSeedData(t *testing.T) {
	stores := store.NewStores()
	for _, item := range seed.Items() {
		require.NoError(t, stores.Items.Insert(item))
	}
	for _, customer := range seed.Customers() {
		require.NoError(t, stores.Customers.Insert(customer))
	}
	for _, order := range seed.Orders() {
		require.NoError(t, stores.Orders.Insert(order))
	}

	stats := NewDashboardService(stores.Orders, stores.Customers, stores.Items).GetStats()

	assert.Equal(t, "2115", stats.TotalRevenue.String(), "sum of stored order totals")
	assert.Equal(t, 8, stats.TotalOrders)
	assert.Equal(t, 11, stats.TotalCustomers)
	assert.Equal(t, 4, stats.LowStockItems, "items with qty below 10")

	require.Len(t, stats.TopSelling, 5)
	assert.Equal(t, TopSeller{Name: "Slip-On", Sales: 6}, stats.TopSelling[0])
	assert.Equal(t, TopSeller{Name: "Running Shoes", Sales: 4}, stats.TopSelling[1])
}

func TestDashboardStatsEmptyStores(t *testing.T) {
	stores := store.NewStores()
	stats := NewDashboardService(stores.Orders, stores.Customers, stores.Items).GetStats()

	assert.True(t, stats.TotalRevenue.IsZero())
	assert.Zero(t, stats.TotalOrders)
	assert.Empty(t, stats.TopSelling)
}
