package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strconv"

	"github.com/joho/godotenv"
)

// AppConfig holds the global application configuration
var AppConfig *Config

// Config holds the application configuration
type Config struct {
	DatabaseURL        string
	PayPalClientID     string
	PayPalClientSecret string
	// sandbox or live
	PayPalMode string
	// Optional: overrides the API host derived from PayPalMode (e.g. a local stub)
	PayPalBaseURL  string
	PayPalCurrency string
	// Raw value of PAYPAL_PAYMENT_FAILURE_THRESHOLD, parsed into PaymentFailureThreshold
	PaymentFailureThresholdRaw string
	PaymentFailureThreshold    int
	// Optional: base URL for running remote HTTP integration tests (e.g., https://api.example.com)
	IntegrationBaseURL string
	// Server ports
	HTTPPort string
	GRPCPort string
}

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{}

	// Try to load .env file from current directory and parent directories
	currentDir, _ := os.Getwd()
	for currentDir != "/" && currentDir != "." {
		envPath := filepath.Join(currentDir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			err = godotenv.Load(envPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load .env file: %v", err)
			}
			break
		}
		currentDir = filepath.Dir(currentDir)
	}

	requiredVars := []struct {
		name     string
		envVar   string
		display  string
		required bool
	}{
		{"DatabaseURL", "DATABASE_URL", "Database URL", true},
		{"PayPalClientID", "PAYPAL_CLIENT_ID", "PayPal Client ID", true},
		{"PayPalClientSecret", "PAYPAL_CLIENT_SECRET", "PayPal Client Secret", true},
		{"PayPalMode", "PAYPAL_MODE", "PayPal Mode", false},
		{"PayPalBaseURL", "PAYPAL_BASE_URL", "PayPal Base URL", false},
		{"PayPalCurrency", "PAYPAL_CURRENCY", "PayPal Currency", false},
		{"PaymentFailureThresholdRaw", "PAYPAL_PAYMENT_FAILURE_THRESHOLD", "Payment Failure Threshold", false},
		// Optional integration base URL for remote tests
		{"IntegrationBaseURL", "INTEGRATION_BASE_URL", "Integration Base URL", false},
		{"HTTPPort", "PORT", "HTTP Port", false},
		{"GRPCPort", "GRPC_PORT", "gRPC Port", false},
	}

	for _, v := range requiredVars {
		value := os.Getenv(v.envVar)
		if v.required && value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", v.display)
		}
		configField := reflect.ValueOf(config).Elem().FieldByName(v.name)
		configField.SetString(value)
	}

	// Defaults
	if config.PayPalMode == "" {
		config.PayPalMode = ModeSandbox
	}
	if config.PayPalCurrency == "" {
		config.PayPalCurrency = DefaultCurrency
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	if config.GRPCPort == "" {
		config.GRPCPort = "50051"
	}
	config.PaymentFailureThreshold = DefaultPaymentFailureThreshold
	if config.PaymentFailureThresholdRaw != "" {
		n, err := strconv.Atoi(config.PaymentFailureThresholdRaw)
		if err != nil || n < 0 || n > MaxPaymentFailureThreshold {
			return nil, fmt.Errorf("invalid PAYPAL_PAYMENT_FAILURE_THRESHOLD %q: expected 0-%d", config.PaymentFailureThresholdRaw, MaxPaymentFailureThreshold)
		}
		config.PaymentFailureThreshold = n
	}

	if config.PayPalMode != ModeSandbox && config.PayPalMode != ModeLive {
		return nil, fmt.Errorf("invalid PAYPAL_MODE %q: expected %s or %s", config.PayPalMode, ModeSandbox, ModeLive)
	}
	if !currencyCodePattern.MatchString(config.PayPalCurrency) {
		return nil, fmt.Errorf("invalid PAYPAL_CURRENCY %q: expected a 3-letter ISO 4217 code", config.PayPalCurrency)
	}

	return config, nil
}

// PayPalAPIBaseURL returns the REST host for the configured mode, unless overridden.
func (c *Config) PayPalAPIBaseURL() string {
	if c.PayPalBaseURL != "" {
		return c.PayPalBaseURL
	}
	if c.PayPalMode == ModeLive {
		return LiveBaseURL
	}
	return SandboxBaseURL
}
