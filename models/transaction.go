package models

import "github.com/shopspring/decimal"

// Transaction is a single monetary event. Immutable once created: corrections
// are modeled as new offsetting transactions, never edits. CustomerName is a
// snapshot taken when the event was applied and is not re-resolved if the
// customer is later renamed.
type Transaction struct {
	ID           string          `json:"id"`
	CustomerId   string          `json:"customerId,omitempty"`
	CustomerName string          `json:"customerName,omitempty"`
	Date         Date            `json:"date"`
	Amount       Money           `json:"amount"`
	Type         TransactionType `json:"type"`
	Method       PaymentMethod   `json:"method"`
	Description  string          `json:"description"`
	ReceiptImage string          `json:"receiptImage,omitempty"`
}

// NewTransactionInput is what the payment portal submits. REFUND is a valid
// stored type but not producible here; it is reserved for manual adjustment.
type NewTransactionInput struct {
	CustomerId   string          `json:"customer_id" validate:"required"`
	Amount       decimal.Decimal `json:"amount" validate:"required"`
	Type         TransactionType `json:"type" validate:"required,oneof=RECHARGE PAYMENT"`
	Method       PaymentMethod   `json:"method" validate:"required,oneof=CASH UPI CARD"`
	Description  string          `json:"description"`
	ReceiptImage string          `json:"receipt_image"`
}
