package seed

import (
	"time"

	"go-retail-admin/internal/model"
	"go-retail-admin/internal/store"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func price(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Load fills empty stores with the demo dataset. State is process-lifetime
// only, so this runs on every startup.
func Load(s *store.Stores) error {
	for _, c := range Customers() {
		if err := s.Customers.Insert(c); err != nil {
			return err
		}
	}
	for _, i := range Items() {
		if err := s.Items.Insert(i); err != nil {
			return err
		}
	}
	for _, st := range Staff() {
		if err := s.Staff.Insert(st); err != nil {
			return err
		}
	}
	for _, o := range Orders() {
		if err := s.Orders.Insert(o); err != nil {
			return err
		}
	}
	for _, a := range Accounts() {
		acct := model.Account{Email: a.Email, Role: a.Role}
		if err := acct.SetPassword(a.Password); err != nil {
			return err
		}
		if err := s.Accounts.Insert(acct); err != nil {
			return err
		}
	}
	return nil
}

func Items() []model.Item {
	return []model.Item{
		{ID: 1, Name: "Air Max", Price: price(120), Size: "9", Qty: 5, Status: model.ItemActive},
		{ID: 2, Name: "Classic Loafer", Price: price(85), Size: "10", Qty: 8, Status: model.ItemInactive},
		{ID: 3, Name: "Trail Runner", Price: price(95), Size: "8", Qty: 10, Status: model.ItemOutOfStock},
		{ID: 4, Name: "Slip-On", Price: price(60), Size: "11", Qty: 4, Status: model.ItemActive},
		{ID: 5, Name: "Chelsea Boot", Price: price(150), Size: "9", Qty: 20, Status: model.ItemInactive},
		{ID: 6, Name: "High Top", Price: price(110), Size: "10", Qty: 13, Status: model.ItemActive},
		{ID: 7, Name: "Flip Flops", Price: price(25), Size: "8", Qty: 18, Status: model.ItemOutOfStock},
		{ID: 8, Name: "Running Shoes", Price: price(130), Size: "11", Qty: 9, Status: model.ItemActive},
	}
}

func Customers() []model.Customer {
	return []model.Customer{
		{ID: 1, Name: "John Doe", Email: "john.doe@example.com", Mobile: "+1 234-567-8901", Address: "123 Main St, City, USA"},
		{ID: 2, Name: "Jane Smith", Email: "jane.smith@example.com", Mobile: "+1 234-567-8902", Address: "456 Oak Ave, Town, USA"},
		{ID: 3, Name: "Mike Johnson", Email: "mike.johnson@example.com", Mobile: "+1 234-567-8903", Address: "789 Pine Rd, Village, USA"},
		{ID: 4, Name: "Alice Brown", Email: "alice.brown@example.com", Mobile: "+1 234-567-8904", Address: "321 Elm St, Hamlet, USA"},
		{ID: 5, Name: "Bob White", Email: "bob.white@example.com", Mobile: "+1 234-567-8905", Address: "654 Maple Blvd, Borough, USA"},
		{ID: 6, Name: "Carol Green", Email: "carol.green@example.com", Mobile: "+1 234-567-8906", Address: "987 Cedar Ct, Township, USA"},
		{ID: 7, Name: "Eve Black", Email: "eve.black@example.com", Mobile: "+1 234-567-8907", Address: "111 Birch Ln, District, USA"},
		{ID: 8, Name: "Frank Blue", Email: "frank.blue@example.com", Mobile: "+1 234-567-8908", Address: "222 Walnut Ave, Region, USA"},
		{ID: 9, Name: "Grace Yellow", Email: "grace.yellow@example.com", Mobile: "+1 234-567-8909", Address: "333 Chestnut Dr, Zone, USA"},
		{ID: 10, Name: "Henry Purple", Email: "henry.purple@example.com", Mobile: "+1 234-567-8910", Address: "444 Spruce Way, Area, USA"},
		{ID: 11, Name: "Ivy Orange", Email: "ivy.orange@example.com", Mobile: "+1 234-567-8911", Address: "555 Fir St, Sector, USA"},
	}
}

func Staff() []model.Staff {
	return []model.Staff{
		{ID: 1, Name: "John Doe", Email: "johndoe@example.com", Mobile: "123-456-7890", Address: "123 Elm Street, Springfield, IL", Role: model.RoleAdmin, HireDate: date(2022, 1, 15)},
		{ID: 2, Name: "Jane Smith", Email: "janesmith@example.com", Mobile: "987-654-3210", Address: "456 Maple Avenue, Austin, TX", Role: model.RoleManager, HireDate: date(2023, 3, 10)},
		{ID: 3, Name: "Alice Johnson", Email: "alicej@example.com", Mobile: "555-666-7777", Address: "789 Oak Lane, Denver, CO", Role: model.RoleSales, HireDate: date(2021, 9, 25)},
		{ID: 4, Name: "Bob Brown", Email: "bobbrown@example.com", Mobile: "444-555-8888", Address: "321 Pine Road, Miami, FL", Role: model.RoleInventory, HireDate: date(2020, 6, 15)},
		{ID: 5, Name: "Emily Davis", Email: "emilyd@example.com", Mobile: "222-333-4444", Address: "654 Birch Drive, Seattle, WA", Role: model.RoleSales, HireDate: date(2023, 8, 1)},
		{ID: 6, Name: "Michael Wilson", Email: "michaelw@example.com", Mobile: "111-222-3333", Address: "987 Cedar Street, Boston, MA", Role: model.RoleManager, HireDate: date(2019, 11, 12)},
		{ID: 7, Name: "Sophia Martinez", Email: "sophiam@example.com", Mobile: "333-444-5555", Address: "159 Walnut Way, Los Angeles, CA", Role: model.RoleInventory, HireDate: date(2021, 2, 19)},
		{ID: 8, Name: "William Lee", Email: "williaml@example.com", Mobile: "888-999-0000", Address: "753 Willow Street, San Francisco, CA", Role: model.RoleAdmin, HireDate: date(2022, 7, 10)},
	}
}

func Orders() []model.Order {
	return []model.Order{
		{ID: "1", OrderDate: date(2025, 1, 1), CustomerID: 1, TotalAmount: price(240), Lines: []model.OrderLine{{ItemID: 1, Quantity: 2}, {ItemID: 2, Quantity: 1}}},
		{ID: "2", OrderDate: date(2025, 1, 2), CustomerID: 2, TotalAmount: price(340), Lines: []model.OrderLine{{ItemID: 3, Quantity: 2}, {ItemID: 6, Quantity: 1}}},
		{ID: "3", OrderDate: date(2025, 1, 3), CustomerID: 3, TotalAmount: price(300), Lines: []model.OrderLine{{ItemID: 4, Quantity: 5}}},
		{ID: "4", OrderDate: date(2025, 1, 4), CustomerID: 4, TotalAmount: price(260), Lines: []model.OrderLine{{ItemID: 5, Quantity: 2}, {ItemID: 8, Quantity: 1}}},
		{ID: "5", OrderDate: date(2025, 1, 5), CustomerID: 5, TotalAmount: price(150), Lines: []model.OrderLine{{ItemID: 1, Quantity: 1}, {ItemID: 7, Quantity: 1}}},
		{ID: "6", OrderDate: date(2025, 1, 6), CustomerID: 6, TotalAmount: price(110), Lines: []model.OrderLine{{ItemID: 6, Quantity: 1}}},
		{ID: "7", OrderDate: date(2025, 1, 7), CustomerID: 7, TotalAmount: price(325), Lines: []model.OrderLine{{ItemID: 2, Quantity: 2}, {ItemID: 4, Quantity: 1}}},
		{ID: "8", OrderDate: date(2025, 1, 8), CustomerID: 8, TotalAmount: price(390), Lines: []model.OrderLine{{ItemID: 8, Quantity: 3}}},
	}
}

// Credential holds one demo login before hashing.
type Credential struct {
	Email    string
	Password string
	Role     string
}

func Accounts() []Credential {
	return []Credential{
		{Email: "admin1@example.com", Password: "password123", Role: model.RoleAdmin},
		{Email: "manager1@example.com", Password: "securepass456", Role: model.RoleManager},
		{Email: "sales1@example.com", Password: "salesrule789", Role: model.RoleSales},
		{Email: "inventory1@example.com", Password: "inventoryking101", Role: model.RoleInventory},
		{Email: "admin2@example.com", Password: "admindev098", Role: model.RoleAdmin},
		{Email: "manager2@example.com", Password: "managerplus321", Role: model.RoleManager},
		{Email: "sales2@example.com", Password: "sellingpro654", Role: model.RoleSales},
		{Email: "inventory2@example.com", Password: "stockboss555", Role: model.RoleInventory},
	}
}
