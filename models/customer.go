package models

import "time"

// Customer is a subscriber record. Exclusively owned by the ledger: every
// balance/status/expiry write goes through ledger.ApplyEvent or ledger.Sweep,
// callers only ever see copies.
type Customer struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	Status           CustomerStatus   `json:"status"`
	Balance          Money            `json:"balance"`
	Devices          []Device         `json:"devices"`
	History          []*Transaction   `json:"history"`
	AvatarUrl        string           `json:"avatarUrl"`
	SubscriptionType SubscriptionType `json:"subscriptionType"`
	PlanDays         int              `json:"planDays"`
	ExpiryDate       time.Time        `json:"expiryDate"`
	Area             string           `json:"area,omitempty"`
	Address          string           `json:"address,omitempty"`
}

func (c *Customer) Clone() *Customer {
	if c == nil {
		return nil
	}
	out := *c
	out.Devices = make([]Device, len(c.Devices))
	copy(out.Devices, c.Devices)
	out.History = make([]*Transaction, len(c.History))
	for i, tx := range c.History {
		cp := *tx
		out.History[i] = &cp
	}
	return &out
}

type Device struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	MacAddress   string `json:"macAddress"`
	AssignedDate string `json:"assignedDate"`
}
