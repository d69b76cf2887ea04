package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bahaaman/hitech-app/config"
	"github.com/bahaaman/hitech-app/models"
	"github.com/bahaaman/hitech-app/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("hitech-console")

// Ledger is the authoritative in-memory store of subscriber billing state:
// every customer plus the global newest-first transaction log. All writes go
// through ApplyEvent, Sweep and Restore; reads hand out copies so callers
// cannot mutate ledger state behind its back. One mutex serializes every
// operation, which is the whole concurrency story for this backend.
type Ledger struct {
	mu sync.Mutex

	logger *logrus.Logger
	now    func() time.Time
	newId  func() string

	customers    map[string]*models.Customer
	order        []string
	transactions []*models.Transaction
	inventory    []*models.InventoryItem
}

type Option func(*Ledger)

// WithClock overrides the time source. Tests pin it.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithIdGenerator overrides transaction id generation.
func WithIdGenerator(newId func() string) Option {
	return func(l *Ledger) { l.newId = newId }
}

func WithLogger(logger *logrus.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

func New(opts ...Option) *Ledger {
	l := &Ledger{
		logger:    config.GetLogger(),
		now:       time.Now,
		newId:     uuid.NewString,
		customers: map[string]*models.Customer{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Seed installs an initial customer/inventory set and rebuilds the global
// transaction log by flattening customer histories, newest first. This is the
// same bootstrapping the console does on first load.
func (l *Ledger) Seed(customers []*models.Customer, inventory []*models.InventoryItem) {
	var transactions []*models.Transaction
	for _, c := range customers {
		for _, tx := range c.History {
			cp := *tx
			cp.CustomerId = c.ID
			cp.CustomerName = c.Name
			transactions = append(transactions, &cp)
		}
	}
	if transactions == nil {
		transactions = []*models.Transaction{}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.install(customers, inventory, transactions)
}

// install replaces state wholesale. Caller holds the mutex. A nil section
// keeps the current data; restores pass only the sections their document
// carries.
func (l *Ledger) install(customers []*models.Customer, inventory []*models.InventoryItem, transactions []*models.Transaction) {
	if customers != nil {
		l.customers = make(map[string]*models.Customer, len(customers))
		l.order = make([]string, 0, len(customers))
		for _, c := range customers {
			cc := c.Clone()
			l.customers[cc.ID] = cc
			l.order = append(l.order, cc.ID)
		}
	}
	if transactions != nil {
		l.transactions = make([]*models.Transaction, 0, len(transactions))
		for _, tx := range transactions {
			cp := *tx
			l.transactions = append(l.transactions, &cp)
		}
	}
	if inventory != nil {
		l.inventory = make([]*models.InventoryItem, 0, len(inventory))
		for _, item := range inventory {
			l.inventory = append(l.inventory, item.Clone())
		}
	}
}

// ApplyEvent validates and applies one payment event. RECHARGE credits the
// balance, reactivates the customer and extends the expiry; PAYMENT only
// debits the balance. Exactly one transaction is recorded, prepended to both
// the global log and the customer's history, all under one lock so readers
// never observe a half-applied event. On any validation failure nothing
// changes.
func (l *Ledger) ApplyEvent(ctx context.Context, input models.NewTransactionInput) (*models.Customer, error) {
	_, span := tracer.Start(ctx, "ledger.ApplyEvent", trace.WithAttributes(
		attribute.String("customer.id", input.CustomerId),
		attribute.String("transaction.type", string(input.Type)),
	))
	defer span.End()

	if err := utils.ValidateStruct(input); err != nil {
		config.LogError(l.logger, "ledger.go", "ApplyEvent", "ValidateStruct", input.CustomerId, err)
		return nil, err
	}
	if input.Amount.Sign() <= 0 {
		err := fmt.Errorf("%w: amount must be greater than zero", utils.ErrorValidation)
		config.LogError(l.logger, "ledger.go", "ApplyEvent", "Amount", input.Amount, err)
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	customer, ok := l.customers[input.CustomerId]
	if !ok {
		err := fmt.Errorf("%w: customer %s", utils.ErrorRecordNotFound, input.CustomerId)
		config.LogError(l.logger, "ledger.go", "ApplyEvent", "Lookup", input.CustomerId, err)
		return nil, err
	}

	now := l.now()

	description := input.Description
	if description == "" {
		if input.Type == models.TransactionTypeRecharge {
			description = "Wallet Recharge"
		} else {
			description = "Service Payment"
		}
	}

	tx := &models.Transaction{
		ID:           l.newId(),
		CustomerId:   customer.ID,
		CustomerName: customer.Name,
		Date:         models.NewDate(now),
		Amount:       models.NewMoney(input.Amount),
		Type:         input.Type,
		Method:       input.Method,
		Description:  description,
		ReceiptImage: input.ReceiptImage,
	}

	if input.Type == models.TransactionTypeRecharge {
		customer.Balance = models.NewMoney(customer.Balance.Add(input.Amount))

		// A recharge always reactivates, whatever the prior status.
		customer.Status = models.CustomerStatusActive

		// Lapsed plans restart from now; running plans stack on the
		// current expiry so no paid days are wasted.
		baseDate := now
		if customer.ExpiryDate.After(now) {
			baseDate = customer.ExpiryDate
		}
		planDays := customer.PlanDays
		if planDays <= 0 {
			// Imported records may carry no plan length; fall back to
			// the configured default rather than a zero-day renewal.
			planDays = config.GetSettings().DefaultPlanDays
		}
		customer.ExpiryDate = baseDate.AddDate(0, 0, planDays)
	} else {
		customer.Balance = models.NewMoney(customer.Balance.Sub(input.Amount))
	}

	customer.History = append([]*models.Transaction{tx}, customer.History...)
	l.transactions = append([]*models.Transaction{tx}, l.transactions...)

	l.logger.WithFields(logrus.Fields{
		"module":      "ledger",
		"customerId":  customer.ID,
		"transaction": tx.ID,
		"type":        tx.Type,
		"method":      tx.Method,
		"amount":      input.Amount.String(),
		"balance":     customer.Balance.String(),
	}).Info("payment event applied")

	return customer.Clone(), nil
}

// Customers returns copies of every customer in insertion order.
func (l *Ledger) Customers() []*models.Customer {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*models.Customer, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.customers[id].Clone())
	}
	return out
}

func (l *Ledger) Customer(id string) (*models.Customer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	customer, ok := l.customers[id]
	if !ok {
		return nil, fmt.Errorf("%w: customer %s", utils.ErrorRecordNotFound, id)
	}
	return customer.Clone(), nil
}

// Transactions returns copies of the global log, newest first.
func (l *Ledger) Transactions() []*models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*models.Transaction, 0, len(l.transactions))
	for _, tx := range l.transactions {
		cp := *tx
		out = append(out, &cp)
	}
	return out
}

func (l *Ledger) Inventory() []*models.InventoryItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*models.InventoryItem, 0, len(l.inventory))
	for _, item := range l.inventory {
		out = append(out, item.Clone())
	}
	return out
}
