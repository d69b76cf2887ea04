package models

import (
	"encoding/json"
	"fmt"
)

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "ACTIVE"
	CustomerStatusInactive CustomerStatus = "INACTIVE"
)

func (s CustomerStatus) Valid() bool {
	return s == CustomerStatusActive || s == CustomerStatusInactive
}

func (s *CustomerStatus) UnmarshalJSON(data []byte) error {
	str, err := decodeEnumString(data, "customer status")
	if err != nil {
		return err
	}
	v := CustomerStatus(str)
	if !v.Valid() {
		return fmt.Errorf("invalid customer status: %s", str)
	}
	*s = v
	return nil
}

type SubscriptionType string

const (
	SubscriptionTypeCable    SubscriptionType = "CABLE"
	SubscriptionTypeInternet SubscriptionType = "INTERNET"
)

func (s SubscriptionType) Valid() bool {
	return s == SubscriptionTypeCable || s == SubscriptionTypeInternet
}

func (s *SubscriptionType) UnmarshalJSON(data []byte) error {
	str, err := decodeEnumString(data, "subscription type")
	if err != nil {
		return err
	}
	v := SubscriptionType(str)
	if !v.Valid() {
		return fmt.Errorf("invalid subscription type: %s", str)
	}
	*s = v
	return nil
}

type TransactionType string

const (
	TransactionTypePayment  TransactionType = "PAYMENT"
	TransactionTypeRecharge TransactionType = "RECHARGE"
	TransactionTypeRefund   TransactionType = "REFUND"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypePayment, TransactionTypeRecharge, TransactionTypeRefund:
		return true
	}
	return false
}

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	str, err := decodeEnumString(data, "transaction type")
	if err != nil {
		return err
	}
	v := TransactionType(str)
	if !v.Valid() {
		return fmt.Errorf("invalid transaction type: %s", str)
	}
	*t = v
	return nil
}

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "CASH"
	PaymentMethodUpi  PaymentMethod = "UPI"
	PaymentMethodCard PaymentMethod = "CARD"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodUpi, PaymentMethodCard:
		return true
	}
	return false
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	str, err := decodeEnumString(data, "payment method")
	if err != nil {
		return err
	}
	v := PaymentMethod(str)
	if !v.Valid() {
		return fmt.Errorf("invalid payment method: %s", str)
	}
	*m = v
	return nil
}

type InventoryStatus string

const (
	InventoryStatusInStock    InventoryStatus = "IN_STOCK"
	InventoryStatusLowStock   InventoryStatus = "LOW_STOCK"
	InventoryStatusOutOfStock InventoryStatus = "OUT_OF_STOCK"
)

func (s InventoryStatus) Valid() bool {
	switch s {
	case InventoryStatusInStock, InventoryStatusLowStock, InventoryStatusOutOfStock:
		return true
	}
	return false
}

func (s *InventoryStatus) UnmarshalJSON(data []byte) error {
	str, err := decodeEnumString(data, "inventory status")
	if err != nil {
		return err
	}
	v := InventoryStatus(str)
	if !v.Valid() {
		return fmt.Errorf("invalid inventory status: %s", str)
	}
	*s = v
	return nil
}

type UserRole string

const (
	UserRoleAdmin           UserRole = "ADMIN"
	UserRoleStaff           UserRole = "STAFF"
	UserRoleTechnician      UserRole = "TECHNICIAN"
	UserRoleCollectionAgent UserRole = "COLLECTION_AGENT"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleStaff, UserRoleTechnician, UserRoleCollectionAgent:
		return true
	}
	return false
}

func (r *UserRole) UnmarshalJSON(data []byte) error {
	str, err := decodeEnumString(data, "user role")
	if err != nil {
		return err
	}
	v := UserRole(str)
	if !v.Valid() {
		return fmt.Errorf("invalid user role: %s", str)
	}
	*r = v
	return nil
}

type ComplaintStatus string

const (
	ComplaintStatusPending  ComplaintStatus = "PENDING"
	ComplaintStatusResolved ComplaintStatus = "RESOLVED"
)

func (s ComplaintStatus) Valid() bool {
	return s == ComplaintStatusPending || s == ComplaintStatusResolved
}

func (s *ComplaintStatus) UnmarshalJSON(data []byte) error {
	str, err := decodeEnumString(data, "complaint status")
	if err != nil {
		return err
	}
	v := ComplaintStatus(str)
	if !v.Valid() {
		return fmt.Errorf("invalid complaint status: %s", str)
	}
	*s = v
	return nil
}

// View identifies a console page. Users carry the list of views they may open;
// the first one is where the host routes them after login.
type View string

const (
	ViewDashboard  View = "DASHBOARD"
	ViewCustomers  View = "CUSTOMERS"
	ViewPayments   View = "PAYMENTS"
	ViewHistory    View = "HISTORY"
	ViewInventory  View = "INVENTORY"
	ViewAdmin      View = "ADMIN"
	ViewComplaints View = "COMPLAINTS"
)

func (v View) Valid() bool {
	switch v {
	case ViewDashboard, ViewCustomers, ViewPayments, ViewHistory, ViewInventory, ViewAdmin, ViewComplaints:
		return true
	}
	return false
}

func (v *View) UnmarshalJSON(data []byte) error {
	str, err := decodeEnumString(data, "view")
	if err != nil {
		return err
	}
	val := View(str)
	if !val.Valid() {
		return fmt.Errorf("invalid view: %s", str)
	}
	*v = val
	return nil
}

func decodeEnumString(data []byte, what string) (string, error) {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return "", fmt.Errorf("%s must be a string", what)
	}
	return str, nil
}
