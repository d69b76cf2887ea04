package config

import "testing"

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}
	if s.DefaultPlanDays != 30 {
		t.Fatalf("default plan days expected 30, got %d", s.DefaultPlanDays)
	}
	if s.MerchantUpiId != "hitech-merchant@okaxis" {
		t.Fatalf("unexpected default merchant UPI id: %s", s.MerchantUpiId)
	}
	if s.SweepIntervalHours != 0 {
		t.Fatalf("sweep interval expected 0 (startup only), got %d", s.SweepIntervalHours)
	}
}

func TestLoadSettings_EnvOverrides(t *testing.T) {
	t.Setenv("HITECH_DEFAULT_PLAN_DAYS", "45")
	t.Setenv("HITECH_LOG_LEVEL", "debug")
	t.Setenv("HITECH_SEED_DEMO_DATA", "false")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}
	if s.DefaultPlanDays != 45 {
		t.Fatalf("plan days expected 45, got %d", s.DefaultPlanDays)
	}
	if s.SeedDemoData {
		t.Fatalf("seed flag expected false")
	}

	// reset for other tests
	t.Cleanup(func() { _, _ = LoadSettings() })
}

func TestSetMerchantUpiId(t *testing.T) {
	if _, err := LoadSettings(); err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}
	SetMerchantUpiId("hitech-south@okhdfcbank")
	if got := GetMerchantUpiId(); got != "hitech-south@okhdfcbank" {
		t.Fatalf("merchant UPI id not updated, got %s", got)
	}
	t.Cleanup(func() { _, _ = LoadSettings() })
}
