package service

import (
	"errors"
	"sync"
	"time"

	"go-retail-admin/internal/model"
	"go-retail-admin/internal/store"
	"go-retail-admin/internal/ws"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrLineNotFound  = errors.New("item is not in the cart")
	ErrStockExceeded = errors.New("requested quantity exceeds available stock")
	ErrNoCustomer    = errors.New("no customer selected")
	ErrEmptyCart     = errors.New("cart is empty")
)

// CartService stages a pending order per session: a selected customer and at
// most one line per item. Stock is never reserved; the ceiling is only
// checked when a line is mutated.
type CartService interface {
	View(session string) CartView
	SelectCustomer(session string, customerID int) error
	CanAdd(session string, itemID int) bool
	Add(session string, itemID int) error
	SetQuantity(session string, itemID, quantity int) error
	Remove(session string, itemID int)
	Total(session string) decimal.Decimal
	PlaceOrder(session string) (*model.Order, error)
	Clear(session string)
}

// CartView is the cart as a screen renders it, with lines resolved against
// the live item table.
type CartView struct {
	OrderID    string          `json:"order_id"`
	CustomerID *int            `json:"customer_id"`
	Lines      []CartLine      `json:"lines"`
	Total      decimal.Decimal `json:"total"`
}

type CartLine struct {
	ItemID   int             `json:"item_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type cart struct {
	customerID *int
	lines      []model.OrderLine
}

type cartService struct {
	mu        sync.Mutex
	carts     map[string]*cart
	nextSeq   int
	items     *store.SeqTable[model.Item]
	customers *store.SeqTable[model.Customer]
	orders    *store.Table[string, model.Order]
	wsHub     *ws.Hub
}

func NewCartService(items *store.SeqTable[model.Item], customers *store.SeqTable[model.Customer], orders *store.Table[string, model.Order], hub *ws.Hub) CartService {
	return &cartService{
		carts:     make(map[string]*cart),
		nextSeq:   1,
		items:     items,
		customers: customers,
		orders:    orders,
		wsHub:     hub,
	}
}

func (s *cartService) get(session string) *cart {
	c, ok := s.carts[session]
	if !ok {
		c = &cart{}
		s.carts[session] = c
	}
	return c
}

func (s *cartService) View(session string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(session)

	view := CartView{
		OrderID: model.OrderLabel(s.nextSeq),
		Lines:   make([]CartLine, 0, len(c.lines)),
		Total:   s.total(c),
	}
	if c.customerID != nil {
		id := *c.customerID
		view.CustomerID = &id
	}
	for _, line := range c.lines {
		cl := CartLine{ItemID: line.ItemID, Quantity: line.Quantity}
		if item, err := s.items.Get(line.ItemID); err == nil {
			cl.Name = item.Name
			cl.Price = item.Price
		}
		view.Lines = append(view.Lines, cl)
	}
	return view
}

func (s *cartService) SelectCustomer(session string, customerID int) error {
	if _, err := s.customers.Get(customerID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(session).customerID = &customerID
	return nil
}

// CanAdd reports whether one more unit of the item fits under its stock
// ceiling. Add does not re-check; callers gate on CanAdd first, the same
// contract the add button had.
func (s *cartService) CanAdd(session string, itemID int) bool {
	item, err := s.items.Get(itemID)
	if err != nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quantityOf(s.get(session), itemID) < item.Qty
}

func (s *cartService) Add(session string, itemID int) error {
	if _, err := s.items.Get(itemID); err != nil {
		return ErrItemNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(session)
	for i, line := range c.lines {
		if line.ItemID == itemID {
			c.lines[i].Quantity++
			return nil
		}
	}
	c.lines = append(c.lines, model.OrderLine{ItemID: itemID, Quantity: 1})
	return nil
}

// SetQuantity replaces a line's quantity. It fails closed: an unknown item or
// a quantity above the live stock leaves the cart unchanged. Anything below 1
// drops the line.
func (s *cartService) SetQuantity(session string, itemID, quantity int) error {
	item, err := s.items.Get(itemID)
	if err != nil {
		return ErrItemNotFound
	}
	if quantity > item.Qty {
		return ErrStockExceeded
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(session)

	if quantity < 1 {
		s.drop(c, itemID)
		return nil
	}
	for i, line := range c.lines {
		if line.ItemID == itemID {
			c.lines[i].Quantity = quantity
			return nil
		}
	}
	return ErrLineNotFound
}

func (s *cartService) Remove(session string, itemID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drop(s.get(session), itemID)
}

// Total is recomputed from the live item table on every read, so editing a
// price while a cart is open changes the total. That mirrors the screen this
// came from and is intentional.
func (s *cartService) Total(session string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total(s.get(session))
}

func (s *cartService) PlaceOrder(session string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(session)

	if c.customerID == nil {
		return nil, ErrNoCustomer
	}
	if len(c.lines) == 0 {
		return nil, ErrEmptyCart
	}

	order := model.Order{
		ID:          model.OrderLabel(s.nextSeq),
		OrderDate:   time.Now(),
		CustomerID:  *c.customerID,
		TotalAmount: s.total(c),
		Lines:       append([]model.OrderLine(nil), c.lines...), // snapshot
	}
	if err := s.orders.Insert(order); err != nil {
		return nil, err
	}

	// Reset the cart and advance the label sequence
	c.customerID = nil
	c.lines = nil
	s.nextSeq++

	log.Info().Str("order_id", order.ID).Str("total", order.TotalAmount.String()).Msg("order placed")

	go s.wsHub.Publish("order_placed", order)

	return &order, nil
}

func (s *cartService) Clear(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, session)
}

func (s *cartService) quantityOf(c *cart, itemID int) int {
	for _, line := range c.lines {
		if line.ItemID == itemID {
			return line.Quantity
		}
	}
	return 0
}

func (s *cartService) drop(c *cart, itemID int) {
	lines := c.lines[:0]
	for _, line := range c.lines {
		if line.ItemID != itemID {
			lines = append(lines, line)
		}
	}
	c.lines = lines
}

func (s *cartService) total(c *cart) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range c.lines {
		item, err := s.items.Get(line.ItemID)
		if err != nil {
			continue // deleted mid-cart, contributes nothing
		}
		sum = sum.Add(item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return sum
}
