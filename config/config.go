package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Log      LogConfig
	Pricing  PricingConfig
	Delivery DeliveryConfig
	Session  SessionConfig
}

type LogConfig struct {
	Level string
}

type PricingConfig struct {
	StudentDiscountRate      decimal.Decimal // 0.10 = 10% off the subtotal
	StudentDiscountThreshold decimal.Decimal // subtotal must be strictly above this
	PrioritySurcharge        decimal.Decimal
}

type DeliveryConfig struct {
	PeakWindows              []HourWindow
	PeakDelayMinutes         int
	PriorityReductionMinutes int
	MinMinutes               int
}

// HourWindow is an inclusive range of hours, 0-23.
type HourWindow struct {
	Start int
	End   int
}

type SessionConfig struct {
	OpeningCategory string
}

// Default returns the built-in rules used when no environment overrides are set.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "warn"},
		Pricing: PricingConfig{
			StudentDiscountRate:      decimal.RequireFromString("0.10"),
			StudentDiscountThreshold: decimal.RequireFromString("10.00"),
			PrioritySurcharge:        decimal.RequireFromString("2.00"),
		},
		Delivery: DeliveryConfig{
			PeakWindows:              []HourWindow{{Start: 9, End: 10}, {Start: 11, End: 13}},
			PeakDelayMinutes:         5,
			PriorityReductionMinutes: 3,
			MinMinutes:               1,
		},
		Session: SessionConfig{
			OpeningCategory: "Coffee Drinks",
		},
	}
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Session.OpeningCategory = getEnv("OPENING_CATEGORY", cfg.Session.OpeningCategory)

	var err error
	if cfg.Pricing.StudentDiscountRate, err = getDecimal("STUDENT_DISCOUNT_RATE", cfg.Pricing.StudentDiscountRate); err != nil {
		return nil, err
	}
	if cfg.Pricing.StudentDiscountThreshold, err = getDecimal("STUDENT_DISCOUNT_THRESHOLD", cfg.Pricing.StudentDiscountThreshold); err != nil {
		return nil, err
	}
	if cfg.Pricing.PrioritySurcharge, err = getDecimal("PRIORITY_SURCHARGE", cfg.Pricing.PrioritySurcharge); err != nil {
		return nil, err
	}
	if cfg.Delivery.PeakDelayMinutes, err = getInt("PEAK_DELAY_MINUTES", cfg.Delivery.PeakDelayMinutes); err != nil {
		return nil, err
	}
	if cfg.Delivery.PriorityReductionMinutes, err = getInt("PRIORITY_REDUCTION_MINUTES", cfg.Delivery.PriorityReductionMinutes); err != nil {
		return nil, err
	}
	if cfg.Delivery.MinMinutes, err = getInt("MIN_DELIVERY_MINUTES", cfg.Delivery.MinMinutes); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Pricing.StudentDiscountRate.IsNegative() || c.Pricing.StudentDiscountRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("STUDENT_DISCOUNT_RATE must be between 0 and 1, got %s", c.Pricing.StudentDiscountRate)
	}
	if c.Pricing.StudentDiscountThreshold.IsNegative() {
		return fmt.Errorf("STUDENT_DISCOUNT_THRESHOLD must be >= 0")
	}
	if c.Pricing.PrioritySurcharge.IsNegative() {
		return fmt.Errorf("PRIORITY_SURCHARGE must be >= 0")
	}
	if c.Delivery.PeakDelayMinutes < 0 || c.Delivery.PriorityReductionMinutes < 0 {
		return fmt.Errorf("delivery adjustments must be >= 0")
	}
	if c.Delivery.MinMinutes < 1 {
		return fmt.Errorf("MIN_DELIVERY_MINUTES must be >= 1")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getDecimal(key string, def decimal.Decimal) (decimal.Decimal, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
