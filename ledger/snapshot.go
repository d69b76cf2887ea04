package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bahaaman/hitech-app/config"
	"github.com/bahaaman/hitech-app/models"
	"github.com/bahaaman/hitech-app/utils"
)

// Snapshot is the backup document the admin panel exports and restores. The
// shape is owned by the console's original export format, hence the camelCase
// field names on the model types.
type Snapshot struct {
	Customers    []*models.Customer      `json:"customers,omitempty"`
	Inventory    []*models.InventoryItem `json:"inventory,omitempty"`
	Transactions []*models.Transaction   `json:"transactions,omitempty"`
}

// Restore bulk-replaces state from an externally supplied document. Each
// section present in the document replaces that slice wholesale; absent (or
// null) sections leave the current data in place. The whole document is
// decoded before anything is touched, so a malformed backup is rejected with
// ErrorImport and prior state is retained unchanged.
//
// Restored records are installed as-is: historical invariants are not
// re-validated, so an imported ACTIVE customer with a lapsed expiry stays
// ACTIVE until the next sweep. Only new ApplyEvent calls are validated.
func (l *Ledger) Restore(ctx context.Context, data []byte) error {
	_, span := tracer.Start(ctx, "ledger.Restore")
	defer span.End()

	var doc struct {
		Customers    json.RawMessage `json:"customers"`
		Inventory    json.RawMessage `json:"inventory"`
		Transactions json.RawMessage `json:"transactions"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		config.LogError(l.logger, "snapshot.go", "Restore", "Unmarshal document", nil, err)
		return fmt.Errorf("%w: %v", utils.ErrorImport, err)
	}

	var customers []*models.Customer
	if present(doc.Customers) {
		if err := json.Unmarshal(doc.Customers, &customers); err != nil {
			config.LogError(l.logger, "snapshot.go", "Restore", "Unmarshal customers", nil, err)
			return fmt.Errorf("%w: customers: %v", utils.ErrorImport, err)
		}
	}
	var inventory []*models.InventoryItem
	if present(doc.Inventory) {
		if err := json.Unmarshal(doc.Inventory, &inventory); err != nil {
			config.LogError(l.logger, "snapshot.go", "Restore", "Unmarshal inventory", nil, err)
			return fmt.Errorf("%w: inventory: %v", utils.ErrorImport, err)
		}
	}
	var transactions []*models.Transaction
	if present(doc.Transactions) {
		if err := json.Unmarshal(doc.Transactions, &transactions); err != nil {
			config.LogError(l.logger, "snapshot.go", "Restore", "Unmarshal transactions", nil, err)
			return fmt.Errorf("%w: transactions: %v", utils.ErrorImport, err)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.install(customers, inventory, transactions)

	l.logger.WithField("module", "ledger").Info("system data restored from backup")
	return nil
}

// Export produces the backup document for the current state.
func (l *Ledger) Export(ctx context.Context) ([]byte, error) {
	_, span := tracer.Start(ctx, "ledger.Export")
	defer span.End()

	l.mu.Lock()
	snapshot := Snapshot{
		Customers:    make([]*models.Customer, 0, len(l.order)),
		Inventory:    make([]*models.InventoryItem, 0, len(l.inventory)),
		Transactions: make([]*models.Transaction, 0, len(l.transactions)),
	}
	for _, id := range l.order {
		snapshot.Customers = append(snapshot.Customers, l.customers[id].Clone())
	}
	for _, item := range l.inventory {
		snapshot.Inventory = append(snapshot.Inventory, item.Clone())
	}
	for _, tx := range l.transactions {
		cp := *tx
		snapshot.Transactions = append(snapshot.Transactions, &cp)
	}
	l.mu.Unlock()

	return json.Marshal(snapshot)
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
