package config

import (
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Settings are env-driven runtime knobs for the console backend.
//
// All keys are read with the HITECH_ prefix, e.g.:
// - HITECH_LOG_LEVEL=debug
// - HITECH_DEFAULT_PLAN_DAYS=30
// - HITECH_MERCHANT_UPI_ID=hitech-merchant@okaxis
// - HITECH_SEED_DEMO_DATA=true
// - HITECH_SWEEP_INTERVAL_HOURS=6 (0 = startup sweep only)
type Settings struct {
	LogLevel           string
	DefaultPlanDays    int
	MerchantUpiId      string
	SeedDemoData       bool
	SweepIntervalHours int
}

var (
	settingsMu sync.RWMutex
	settings   *Settings
)

func LoadSettings() (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("HITECH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEFAULT_PLAN_DAYS", 30)
	v.SetDefault("MERCHANT_UPI_ID", "hitech-merchant@okaxis")
	v.SetDefault("SEED_DEMO_DATA", true)
	v.SetDefault("SWEEP_INTERVAL_HOURS", 0)

	// AutomaticEnv only resolves keys viper already knows about; bind each
	// one explicitly. The typed getters below coerce env strings.
	for _, key := range []string{"LOG_LEVEL", "DEFAULT_PLAN_DAYS", "MERCHANT_UPI_ID", "SEED_DEMO_DATA", "SWEEP_INTERVAL_HOURS"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	s := Settings{
		LogLevel:           v.GetString("LOG_LEVEL"),
		DefaultPlanDays:    v.GetInt("DEFAULT_PLAN_DAYS"),
		MerchantUpiId:      v.GetString("MERCHANT_UPI_ID"),
		SeedDemoData:       v.GetBool("SEED_DEMO_DATA"),
		SweepIntervalHours: v.GetInt("SWEEP_INTERVAL_HOURS"),
	}

	settingsMu.Lock()
	settings = &s
	settingsMu.Unlock()

	ApplyLogLevel(s.LogLevel)
	return &s, nil
}

func GetSettings() *Settings {
	settingsMu.RLock()
	s := settings
	settingsMu.RUnlock()
	if s != nil {
		return s
	}
	loaded, err := LoadSettings()
	if err != nil {
		return &Settings{LogLevel: "info", DefaultPlanDays: 30, MerchantUpiId: "hitech-merchant@okaxis"}
	}
	return loaded
}

// SetMerchantUpiId mirrors the admin panel updater: the merchant VPA shown on
// payment QR codes can be changed at runtime without restarting.
func SetMerchantUpiId(upiId string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	if settings == nil {
		settings = &Settings{LogLevel: "info", DefaultPlanDays: 30}
	}
	settings.MerchantUpiId = upiId
}

func GetMerchantUpiId() string {
	return GetSettings().MerchantUpiId
}
