package config

import (
	"log"
	"strings"
)

const (
	// ProdDbId is the identifier for the production database
	ProdDbId = "old-cloud"

	// DefaultCurrency is used for every price when PAYPAL_CURRENCY is unset
	DefaultCurrency = "USD"

	// DefaultPaymentFailureThreshold is how many failed payments PayPal tolerates before suspending
	DefaultPaymentFailureThreshold = 3
	// MaxPaymentFailureThreshold is the largest value PayPal accepts.
	MaxPaymentFailureThreshold = 999
)

// PayPal environments
const (
	ModeSandbox = "sandbox"
	ModeLive    = "live"

	SandboxBaseURL = "https://api-m.sandbox.paypal.com"
	LiveBaseURL    = "https://api-m.paypal.com"
)

// CheckNotProdDB aborts immediately if the configured database URL contains ProdDbId.
// This should be called at the start of any test that interacts with the database.
func CheckNotProdDB() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DatabaseURL is not configured")
	}
	if strings.Contains(cfg.DatabaseURL, ProdDbId) {
		log.Fatalf("Tests aborted: DatabaseURL contains production identifier %s", ProdDbId)
	}
}
