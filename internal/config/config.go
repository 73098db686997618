// Package config loads application settings from environment variables
// and an optional config file, via Viper. Env vars take priority.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/daniss/frenchInvoice/internal/compliance"
	"github.com/daniss/frenchInvoice/internal/model"
	"github.com/daniss/frenchInvoice/internal/money"
)

// Config groups the application configuration.
type Config struct {
	App        AppConfig
	HTTP       HTTPConfig
	Log        LogConfig
	Invoicing  InvoicingConfig
	Compliance ComplianceConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig holds the HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// InvoicingConfig holds invoice issuance settings.
type InvoicingConfig struct {
	DefaultVatRate  string // fraction, e.g. "0.20"
	DefaultCurrency string
	NumberPrefix    string
}

// VatRate parses the configured default VAT rate. An empty value falls
// back to the standard French rate.
func (c InvoicingConfig) VatRate() (decimal.Decimal, error) {
	if c.DefaultVatRate == "" {
		return money.DefaultVatRate, nil
	}
	rate, err := money.FromString(c.DefaultVatRate)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("config INVOICE_DEFAULT_VAT_RATE: invalid rate %q: %w", c.DefaultVatRate, err)
	}
	return rate, nil
}

// Issuer builds an invoice issuer from the configured prefix, currency
// and default VAT rate.
func (c InvoicingConfig) Issuer() (*model.Issuer, error) {
	rate, err := c.VatRate()
	if err != nil {
		return nil, err
	}
	return model.NewIssuer(c.NumberPrefix, c.DefaultCurrency, rate), nil
}

// ComplianceConfig holds the e-invoicing mandate schedule. Dates are
// ISO 8601 (YYYY-MM-DD).
type ComplianceConfig struct {
	PublicSectorDeadline   time.Time
	LargeDeadline          time.Time
	SMEDeadline            time.Time
	LargeEmployeeThreshold int
	LargeRevenueCents      int64
}

// Rules converts the config into a compliance rule set.
func (c ComplianceConfig) Rules() compliance.Rules {
	return compliance.Rules{
		LargeEmployeeThreshold: c.LargeEmployeeThreshold,
		LargeRevenueCents:      c.LargeRevenueCents,
		PublicSectorDeadline:   c.PublicSectorDeadline,
		LargeDeadline:          c.LargeDeadline,
		SMEDeadline:            c.SMEDeadline,
	}
}

// Load reads the configuration from environment variables and an
// optional config file (.env or config.env in the working directory).
// Expected names: APP_ENV, HTTP_PORT, LOG_LEVEL, COMPLIANCE_SME_DEADLINE, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	defaults := compliance.DefaultRules()

	publicDeadline, err := getDate(v, "COMPLIANCE_PUBLIC_SECTOR_DEADLINE", defaults.PublicSectorDeadline)
	if err != nil {
		return nil, err
	}
	largeDeadline, err := getDate(v, "COMPLIANCE_LARGE_DEADLINE", defaults.LargeDeadline)
	if err != nil {
		return nil, err
	}
	smeDeadline, err := getDate(v, "COMPLIANCE_SME_DEADLINE", defaults.SMEDeadline)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "french-invoice"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Invoicing: InvoicingConfig{
			DefaultVatRate:  getString(v, "INVOICE_DEFAULT_VAT_RATE", "0.20"),
			DefaultCurrency: getString(v, "INVOICE_DEFAULT_CURRENCY", "EUR"),
			NumberPrefix:    getString(v, "INVOICE_NUMBER_PREFIX", "FA"),
		},
		Compliance: ComplianceConfig{
			PublicSectorDeadline:   publicDeadline,
			LargeDeadline:          largeDeadline,
			SMEDeadline:            smeDeadline,
			LargeEmployeeThreshold: getInt(v, "COMPLIANCE_LARGE_EMPLOYEES", defaults.LargeEmployeeThreshold),
			LargeRevenueCents:      int64(getInt(v, "COMPLIANCE_LARGE_REVENUE_CENTS", int(defaults.LargeRevenueCents))),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getDate(v *viper.Viper, key string, def time.Time) (time.Time, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	raw := v.GetString(key)
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("config %s: invalid date %q: %w", key, raw, err)
	}
	return t, nil
}
