package service

import (
	"time"

	"go-retail-admin/internal/model"
	"go-retail-admin/internal/store"

	"github.com/shopspring/decimal"
)

// OrderService is the read side of the order store: the transactions screen.
// Customer and item names are resolved at read time; references left dangling
// by deletes get a fallback label instead of failing.
type OrderService interface {
	ListTransactions(start, end *time.Time, p store.Projection) []TransactionRow
	GetTransaction(id string) (*TransactionDetail, error)
}

type TransactionRow struct {
	model.Order
	CustomerName string `json:"customer_name"`
}

type TransactionDetail struct {
	TransactionRow
	Lines []TransactionLine `json:"lines"`
}

// TransactionLine shows an order line against the current item table. Price
// is today's price for reference; Subtotal of the stored order is still the
// placement-time TotalAmount.
type TransactionLine struct {
	ItemID   int             `json:"item_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type orderService struct {
	orders    *store.Table[string, model.Order]
	customers *store.SeqTable[model.Customer]
	items     *store.SeqTable[model.Item]
}

func NewOrderService(orders *store.Table[string, model.Order], customers *store.SeqTable[model.Customer], items *store.SeqTable[model.Item]) OrderService {
	return &orderService{orders: orders, customers: customers, items: items}
}

func (s *orderService) customerName(id int) string {
	customer, err := s.customers.Get(id)
	if err != nil {
		return "Unknown Customer"
	}
	return customer.Name
}

func (s *orderService) ListTransactions(start, end *time.Time, p store.Projection) []TransactionRow {
	rows := make([]TransactionRow, 0, s.orders.Len())
	for _, order := range s.orders.List() {
		if start != nil && order.OrderDate.Before(*start) {
			continue
		}
		if end != nil && order.OrderDate.After(*end) {
			continue
		}
		rows = append(rows, TransactionRow{Order: order, CustomerName: s.customerName(order.CustomerID)})
	}

	return store.Apply(rows, p, store.Fields[TransactionRow]{
		Search: []string{"id", "customer_name", "total_amount"},
		Text: map[string]func(TransactionRow) string{
			"id":            func(r TransactionRow) string { return r.ID },
			"customer_name": func(r TransactionRow) string { return r.CustomerName },
		},
		Numeric: map[string]func(TransactionRow) float64{
			"total_amount": func(r TransactionRow) float64 { return r.TotalAmount.InexactFloat64() },
			"order_date":   func(r TransactionRow) float64 { return float64(r.OrderDate.Unix()) },
		},
	})
}

func (s *orderService) GetTransaction(id string) (*TransactionDetail, error) {
	order, err := s.orders.Get(id)
	if err != nil {
		return nil, err
	}

	detail := &TransactionDetail{
		TransactionRow: TransactionRow{Order: order, CustomerName: s.customerName(order.CustomerID)},
		Lines:          make([]TransactionLine, 0, len(order.Lines)),
	}
	for _, line := range order.Lines {
		tl := TransactionLine{ItemID: line.ItemID, Name: "Unknown", Quantity: line.Quantity}
		if item, err := s.items.Get(line.ItemID); err == nil {
			tl.Name = item.Name
			tl.Price = item.Price
		}
		detail.Lines = append(detail.Lines, tl)
	}
	return detail, nil
}
