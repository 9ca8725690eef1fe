package service

import (
	"sort"

	"go-retail-admin/internal/model"
	"go-retail-admin/internal/store"

	"github.com/shopspring/decimal"
)

// LowStockThreshold marks items the overview counts as running low.
const LowStockThreshold = 10

type DashboardService interface {
	GetStats() DashboardStats
}

type DashboardStats struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalOrders    int             `json:"total_orders"`
	TotalCustomers int             `json:"total_customers"`
	LowStockItems  int             `json:"low_stock_items"`
	TopSelling     []TopSeller     `json:"top_selling"`
}

type TopSeller struct {
	Name  string `json:"name"`
	Sales int    `json:"sales"`
}

type dashboardService struct {
	orders    *store.Table[string, model.Order]
	customers *store.SeqTable[model.Customer]
	items     *store.SeqTable[model.Item]
}

func NewDashboardService(orders *store.Table[string, model.Order], customers *store.SeqTable[model.Customer], items *store.SeqTable[model.Item]) DashboardService {
	return &dashboardService{orders: orders, customers: customers, items: items}
}

// GetStats recomputes the overview from the live stores on every call.
// Revenue sums the stored order totals, not current prices.
func (s *dashboardService) GetStats() DashboardStats {
	orders := s.orders.List()

	revenue := decimal.Zero
	sales := make(map[int]int)
	for _, order := range orders {
		revenue = revenue.Add(order.TotalAmount)
		for _, line := range order.Lines {
			sales[line.ItemID] += line.Quantity
		}
	}

	lowStock := 0
	for _, item := range s.items.List() {
		if item.Qty < LowStockThreshold {
			lowStock++
		}
	}

	return DashboardStats{
		TotalRevenue:   revenue,
		TotalOrders:    len(orders),
		TotalCustomers: s.customers.Len(),
		LowStockItems:  lowStock,
		TopSelling:     s.topSellers(sales, 5),
	}
}

func (s *dashboardService) topSellers(sales map[int]int, limit int) []TopSeller {
	ids := make([]int, 0, len(sales))
	for id := range sales {
		ids = append(ids, id)
	}
	// Sales descending, item id ascending on ties so the order is stable
	sort.Slice(ids, func(i, j int) bool {
		if sales[ids[i]] != sales[ids[j]] {
			return sales[ids[i]] > sales[ids[j]]
		}
		return ids[i] < ids[j]
	})

	if len(ids) > limit {
		ids = ids[:limit]
	}
	top := make([]TopSeller, 0, len(ids))
	for _, id := range ids {
		name := "Unknown"
		if item, err := s.items.Get(id); err == nil {
			name = item.Name
		}
		top = append(top, TopSeller{Name: name, Sales: sales[id]})
	}
	return top
}
