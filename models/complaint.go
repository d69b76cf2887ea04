package models

import "time"

// ComplaintEvent is one entry in a complaint's audit trail (assigned,
// reassigned, resolved). By holds the acting user's display name.
type ComplaintEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	By        string    `json:"by"`
	Details   string    `json:"details,omitempty"`
}

// Complaint is a technician task. Customer linkage is optional (internal
// tasks have none) and, like transactions, snapshots the customer name at
// filing time.
type Complaint struct {
	ID                string           `json:"id"`
	CustomerId        string           `json:"customerId,omitempty"`
	CustomerName      string           `json:"customerName,omitempty"`
	AssignedToUserIds []string         `json:"assignedToUserIds"`
	Description       string           `json:"description"`
	Status            ComplaintStatus  `json:"status"`
	Date              Date             `json:"date"`
	ResolvedBy        string           `json:"resolvedBy,omitempty"`
	ResolutionRemark  string           `json:"resolutionRemark,omitempty"`
	History           []ComplaintEvent `json:"history,omitempty"`
}

type NewComplaint struct {
	CustomerId        string   `json:"customer_id"`
	AssignedToUserIds []string `json:"assigned_to_user_ids" validate:"min=1"`
	Description       string   `json:"description" validate:"required"`
}

func (c *Complaint) Clone() *Complaint {
	if c == nil {
		return nil
	}
	out := *c
	out.AssignedToUserIds = make([]string, len(c.AssignedToUserIds))
	copy(out.AssignedToUserIds, c.AssignedToUserIds)
	out.History = make([]ComplaintEvent, len(c.History))
	copy(out.History, c.History)
	return &out
}
