package ledger

import (
	"context"
	"time"

	"github.com/bahaaman/hitech-app/models"
	"github.com/sirupsen/logrus"
)

// Sweep deactivates every ACTIVE customer whose expiry is behind now and
// returns copies of the ones it flipped. Already-inactive customers are left
// alone, so re-running is a no-op, and the result does not depend on
// iteration order. The host runs this once at startup and may re-run it on a
// timer.
func (l *Ledger) Sweep(ctx context.Context, now time.Time) []*models.Customer {
	_, span := tracer.Start(ctx, "ledger.Sweep")
	defer span.End()

	l.mu.Lock()
	defer l.mu.Unlock()

	var changed []*models.Customer
	for _, id := range l.order {
		customer := l.customers[id]
		if customer.Status == models.CustomerStatusActive && customer.ExpiryDate.Before(now) {
			customer.Status = models.CustomerStatusInactive
			changed = append(changed, customer.Clone())
		}
	}

	if len(changed) > 0 {
		ids := make([]string, len(changed))
		for i, c := range changed {
			ids[i] = c.ID
		}
		l.logger.WithFields(logrus.Fields{
			"module":      "ledger",
			"deactivated": ids,
		}).Info("expiry sweep deactivated lapsed subscribers")
	}

	return changed
}
