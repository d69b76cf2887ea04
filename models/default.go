package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeedData is the demo dataset the console ships with. Expiry dates are
// computed relative to now so the startup sweep always has one lapsed
// subscriber to deactivate.
type SeedData struct {
	Users      []*User
	Customers  []*Customer
	Inventory  []*InventoryItem
	Complaints []*Complaint
}

func DefaultSeed(now time.Time) *SeedData {
	return &SeedData{
		Users: []*User{
			{
				ID: "U1", Name: "Super Admin", Username: "admin", Password: "123", Role: UserRoleAdmin,
				Permissions: []View{ViewDashboard, ViewCustomers, ViewPayments, ViewHistory, ViewInventory, ViewAdmin, ViewComplaints},
			},
			{
				ID: "U2", Name: "Alex (Tech)", Username: "alex", Password: "123", Role: UserRoleTechnician,
				Permissions: []View{ViewComplaints},
			},
			{
				ID: "U3", Name: "Sarah (Agent)", Username: "sarah", Password: "123", Role: UserRoleCollectionAgent,
				Permissions: []View{ViewCustomers, ViewDashboard},
			},
		},
		Customers: []*Customer{
			{
				ID:               "C001",
				Name:             "Alice Cyber",
				Email:            "alice@net.com",
				Phone:            "+1-555-0101",
				Status:           CustomerStatusActive,
				Balance:          NewMoney(decimal.RequireFromString("150.00")),
				SubscriptionType: SubscriptionTypeInternet,
				PlanDays:         30,
				ExpiryDate:       now.AddDate(0, 0, 5),
				Devices: []Device{
					{ID: "D1", Name: "Router X1", Type: "ROUTER", MacAddress: "00:1A:2B:3C:4D", AssignedDate: "2023-01-01"},
				},
				History: []*Transaction{
					{
						ID: "TX1", CustomerId: "C001", CustomerName: "Alice Cyber",
						Date:   NewDate(now.AddDate(0, 0, -25)),
						Amount: MoneyFromInt(50), Type: TransactionTypePayment, Method: PaymentMethodUpi,
						Description: "Monthly Sub",
					},
				},
			},
			{
				ID:               "C002",
				Name:             "Bob Matrix",
				Email:            "bob@grid.com",
				Phone:            "+1-555-0102",
				Status:           CustomerStatusInactive,
				Balance:          NewMoney(decimal.RequireFromString("-20.00")),
				SubscriptionType: SubscriptionTypeCable,
				PlanDays:         30,
				ExpiryDate:       now.AddDate(0, 0, -2),
				Devices:          []Device{},
				History:          []*Transaction{},
			},
			{
				ID:               "C003",
				Name:             "Eve Nexus",
				Email:            "eve@node.com",
				Phone:            "+1-555-0103",
				Status:           CustomerStatusActive,
				Balance:          NewMoney(decimal.RequireFromString("45.50")),
				SubscriptionType: SubscriptionTypeInternet,
				PlanDays:         30,
				ExpiryDate:       now.AddDate(0, 0, 15),
				Devices: []Device{
					{ID: "D2", Name: "STB Pro", Type: "SET_TOP_BOX", MacAddress: "AA:BB:CC:DD:EE", AssignedDate: "2023-05-12"},
				},
				History: []*Transaction{
					{
						ID: "TX3", CustomerId: "C003", CustomerName: "Eve Nexus",
						Date:   NewDate(now.AddDate(0, 0, -20)),
						Amount: MoneyFromInt(100), Type: TransactionTypeRecharge, Method: PaymentMethodCash,
						Description: "Top Up",
					},
				},
			},
		},
		Inventory: []*InventoryItem{
			{
				ID: "INV1", Name: "Fiber Router GX", Category: "Hardware",
				Price: MoneyFromInt(120), Status: InventoryStatusInStock,
				SerialNumbers: []string{"GX-1001", "GX-1002", "GX-1003", "GX-1004", "GX-1005"},
				Remarks:       "New Batch",
			},
			{
				ID: "INV2", Name: "CAT6 Cable (100m)", Category: "Cables",
				Price: MoneyFromInt(30), Status: InventoryStatusLowStock,
				SerialNumbers: []string{"CABLE-A1", "CABLE-A2"},
				Remarks:       "Order soon",
			},
			{
				ID: "INV3", Name: "Android STB 4K", Category: "Hardware",
				Price: MoneyFromInt(85), Status: InventoryStatusOutOfStock,
				SerialNumbers: []string{},
			},
		},
		Complaints: []*Complaint{
			{
				ID: "CP1", CustomerId: "C001", CustomerName: "Alice Cyber",
				AssignedToUserIds: []string{"U2"},
				Description:       "Router blinking red light",
				Status:            ComplaintStatusPending,
				Date:              NewDate(now.AddDate(0, 0, -1)),
			},
		},
	}
}
