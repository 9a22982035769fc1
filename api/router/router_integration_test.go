package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	bootstrap "github.com/tbeaudouin05/paypal-trellai/api/bootstrap"
	config "github.com/tbeaudouin05/paypal-trellai/api/config"
)

func ensureConfig(t *testing.T) {
	t.Helper()
	if config.AppConfig == nil {
		cfg, err := config.LoadConfig()
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}
		config.AppConfig = cfg
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	// Use real bootstrap and services; router itself calls bootstrap.Ensure.
	ensureConfig(t)
	if err := bootstrap.Ensure(); err != nil {
		t.Fatalf("bootstrap ensure failed: %v", err)
	}
	return httptest.NewServer(NewRouter())
}

func TestCancelSubscriptionHTTP_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in -short mode")
	}
	ts := newTestServer(t)
	defer ts.Close()

	// Empty subscriptionId is rejected before PayPal is called
	b, _ := json.Marshal(map[string]any{"subscriptionId": ""})
	resp, err := http.Post(ts.URL+"/api/cancel-subscription", "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty subscriptionId, got %d", resp.StatusCode)
	}
}

func TestCreateMonthlySubscriptionHTTP_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in -short mode")
	}
	ts := newTestServer(t)
	defer ts.Close()

	// Negative price fails validation locally
	b, _ := json.Marshal(map[string]any{"name": "Integration", "type": "SERVICE", "price": "-1"})
	resp, err := http.Post(ts.URL+"/api/create-monthly-subscription", "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative price, got %d", resp.StatusCode)
	}
}
