package bootstrap

import (
	"context"
	"fmt"
	"sync"

	"github.com/tbeaudouin05/paypal-trellai/api/config"
	"github.com/tbeaudouin05/paypal-trellai/api/database"
	paypalapp "github.com/tbeaudouin05/paypal-trellai/api/services/paypal/app"
	paypaldb "github.com/tbeaudouin05/paypal-trellai/api/services/paypal/db"
	paypalgw "github.com/tbeaudouin05/paypal-trellai/api/services/paypal/gateway/paypal"
)

var paypalService paypalapp.Service
var initOnce sync.Once
var initErr error

// Init initializes config, database, and the PayPal client, and wires services.
func Init() error {
	// If a service has already been injected (e.g., tests), do not override or init heavy deps.
	if paypalService != nil {
		return nil
	}
	var err error
	if config.AppConfig == nil {
		config.AppConfig, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	cfg := config.AppConfig

	if err := database.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	store := paypaldb.New(database.GetDB())
	if err := store.Migrate(context.Background()); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	gateway := paypalgw.New(context.Background(), paypalgw.Options{
		BaseURL:      cfg.PayPalAPIBaseURL(),
		ClientID:     cfg.PayPalClientID,
		ClientSecret: cfg.PayPalClientSecret,
	})

	paypalService = paypalapp.NewService(gateway, store, paypalapp.Settings{
		Currency:                cfg.PayPalCurrency,
		PaymentFailureThreshold: cfg.PaymentFailureThreshold,
	})
	return nil
}

func GetPayPalService() paypalapp.Service { return paypalService }

// SetPayPalService allows tests to inject a stub implementation.
func SetPayPalService(s paypalapp.Service) { paypalService = s }

// Ensure runs Init() once per process and returns any initialization error.
func Ensure() error {
	initOnce.Do(func() {
		initErr = Init()
	})
	return initErr
}
