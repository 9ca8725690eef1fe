package store

import "go-retail-admin/internal/model"

// Stores bundles the application's entity tables so they can be handed to
// each service from one place instead of living as ambient globals.
type Stores struct {
	Customers  *SeqTable[model.Customer]
	Items      *SeqTable[model.Item]
	Staff      *SeqTable[model.Staff]
	Accounts   *Table[string, model.Account]
	Attendance *SeqTable[model.Attendance]
	Orders     *Table[string, model.Order]
}

func NewStores() *Stores {
	return &Stores{
		Customers: NewSeqTable(
			func(c model.Customer) int { return c.ID },
			func(c model.Customer, id int) model.Customer { c.ID = id; return c },
		),
		Items: NewSeqTable(
			func(i model.Item) int { return i.ID },
			func(i model.Item, id int) model.Item { i.ID = id; return i },
		),
		Staff: NewSeqTable(
			func(s model.Staff) int { return s.ID },
			func(s model.Staff, id int) model.Staff { s.ID = id; return s },
		),
		Accounts: NewTable(func(a model.Account) string { return a.Email }),
		Attendance: NewSeqTable(
			func(a model.Attendance) int { return a.ID },
			func(a model.Attendance, id int) model.Attendance { a.ID = id; return a },
		),
		Orders: NewTable(func(o model.Order) string { return o.ID }),
	}
}
