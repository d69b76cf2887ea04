// seed-dev boots a demo console state: seeds the mock dataset, runs the
// startup expiry sweep, applies a sample recharge and payment, and logs the
// resulting balances. With HITECH_SWEEP_INTERVAL_HOURS > 0 it keeps running
// and re-sweeps on a timer until interrupted.
//
// Usage:
//   HITECH_LOG_LEVEL=debug go run ./cmd/seed-dev
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bahaaman/hitech-app/config"
	"github.com/bahaaman/hitech-app/ledger"
	"github.com/bahaaman/hitech-app/models"
	"github.com/bahaaman/hitech-app/utils"
	"github.com/bahaaman/hitech-app/workflow"
	"github.com/shopspring/decimal"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}
	logger := config.GetLogger()

	ctx := context.Background()
	ctx = utils.SetUserIdInContext(ctx, "U1")
	ctx = utils.SetUserNameInContext(ctx, "Super Admin")

	book := ledger.New()
	users := workflow.NewUserRegistry(nil)
	tasks := workflow.NewComplaintLog(nil)

	if settings.SeedDemoData {
		seed := models.DefaultSeed(time.Now())
		book.Seed(seed.Customers, seed.Inventory)
		users = workflow.NewUserRegistry(seed.Users)
		tasks = workflow.NewComplaintLog(seed.Complaints)
		logger.WithField("customers", len(seed.Customers)).Info("demo data seeded")
	}

	// Startup sweep: lapsed subscribers get deactivated before anything else
	// reads the ledger.
	for _, c := range book.Sweep(ctx, time.Now()) {
		logger.WithField("customerId", c.ID).Warn("subscription lapsed, customer deactivated")
	}

	if settings.SeedDemoData {
		if _, err := book.ApplyEvent(ctx, models.NewTransactionInput{
			CustomerId: "C002",
			Amount:     decimal.NewFromInt(60),
			Type:       models.TransactionTypeRecharge,
			Method:     models.PaymentMethodUpi,
		}); err != nil {
			config.LogError(logger, "main.go", "main", "demo recharge", "C002", err)
		}
		if _, err := book.ApplyEvent(ctx, models.NewTransactionInput{
			CustomerId: "C001",
			Amount:     decimal.NewFromInt(25),
			Type:       models.TransactionTypePayment,
			Method:     models.PaymentMethodCash,
		}); err != nil {
			config.LogError(logger, "main.go", "main", "demo payment", "C001", err)
		}

		for _, c := range book.Customers() {
			logger.WithFields(map[string]interface{}{
				"customerId": c.ID,
				"status":     c.Status,
				"balance":    c.Balance.String(),
				"expiry":     c.ExpiryDate.Format("2006-01-02"),
			}).Info("customer state")
		}
		logger.WithFields(map[string]interface{}{
			"transactions": len(book.Transactions()),
			"users":        len(users.All()),
			"pendingTasks": len(tasks.All()),
			"merchantUpi":  config.GetMerchantUpiId(),
		}).Info("console state ready")
	}

	if settings.SweepIntervalHours <= 0 {
		return
	}

	ticker := time.NewTicker(time.Duration(settings.SweepIntervalHours) * time.Hour)
	defer ticker.Stop()
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	logger.WithField("intervalHours", settings.SweepIntervalHours).Info("periodic expiry sweep enabled")
	for {
		select {
		case <-ticker.C:
			for _, c := range book.Sweep(ctx, time.Now()) {
				logger.WithField("customerId", c.ID).Warn("subscription lapsed, customer deactivated")
			}
		case <-stop:
			logger.Info("shutting down")
			return
		}
	}
}
