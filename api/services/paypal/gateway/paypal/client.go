package paypalgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	gw "github.com/tbeaudouin05/paypal-trellai/api/services/paypal/gateway"
)

const defaultTimeout = 30 * time.Second

// Options configure the REST-backed gateway.
type Options struct {
	// BaseURL is the API host, e.g. https://api-m.sandbox.paypal.com.
	BaseURL      string
	ClientID     string
	ClientSecret string
	// HTTPClient is the underlying client for both token and API calls.
	// Defaults to an http.Client with a 30s timeout.
	HTTPClient *http.Client
}

// client is the net/http implementation of the gateway. Requests are
// authorized by an OAuth2 client-credentials token source, which caches and
// refreshes the access token.
type client struct {
	baseURL string
	http    *http.Client
}

// New returns a PayPalGateway talking to the PayPal REST API.
// ctx scopes token refreshes and should outlive the gateway.
func New(ctx context.Context, opts Options) gw.PayPalGateway {
	base := strings.TrimRight(opts.BaseURL, "/")
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	cc := clientcredentials.Config{
		ClientID:     opts.ClientID,
		ClientSecret: opts.ClientSecret,
		TokenURL:     base + "/v1/oauth2/token",
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	authed := cc.Client(context.WithValue(ctx, oauth2.HTTPClient, hc))
	authed.Timeout = hc.Timeout
	return client{baseURL: base, http: authed}
}

func (c client) CreateProduct(ctx context.Context, product gw.Product, requestID string) (gw.Product, error) {
	var out gw.Product
	err := c.do(ctx, "create_product", http.MethodPost, "/v1/catalogs/products", requestID, product, &out)
	return out, err
}

func (c client) CreatePlan(ctx context.Context, plan gw.Plan) (gw.Plan, error) {
	var out gw.Plan
	err := c.do(ctx, "create_plan", http.MethodPost, "/v1/billing/plans", "", plan, &out)
	return out, err
}

func (c client) DeactivatePlan(ctx context.Context, planID string) error {
	path := "/v1/billing/plans/" + url.PathEscape(planID) + "/deactivate"
	return c.do(ctx, "deactivate_plan", http.MethodPost, path, "", nil, nil)
}

func (c client) CreateSubscription(ctx context.Context, sub gw.Subscription) (gw.Subscription, error) {
	var out gw.Subscription
	err := c.do(ctx, "create_subscription", http.MethodPost, "/v1/billing/subscriptions", "", sub, &out)
	return out, err
}

func (c client) GetSubscription(ctx context.Context, id string) (gw.Subscription, error) {
	var out gw.Subscription
	err := c.do(ctx, "get_subscription", http.MethodGet, "/v1/billing/subscriptions/"+url.PathEscape(id), "", nil, &out)
	return out, err
}

func (c client) CancelSubscription(ctx context.Context, id, reason string) error {
	body := struct {
		Reason string `json:"reason"`
	}{Reason: reason}
	path := "/v1/billing/subscriptions/" + url.PathEscape(id) + "/cancel"
	return c.do(ctx, "cancel_subscription", http.MethodPost, path, "", body, nil)
}

// do sends one JSON request. Non-2xx answers come back as *gw.APIError.
func (c client) do(ctx context.Context, op, method, path, requestID string, in, out any) error {
	start := time.Now()

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("paypal: encode %s request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("paypal: build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Prefer", "return=representation")
	if requestID != "" {
		req.Header.Set("PayPal-Request-Id", requestID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		observe(op, "error", start)
		return fmt.Errorf("paypal: %s: %w", op, err)
	}
	defer resp.Body.Close()
	observe(op, strconv.Itoa(resp.StatusCode), start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &gw.APIError{StatusCode: resp.StatusCode}
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if len(data) > 0 {
			_ = json.Unmarshal(data, apiErr)
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("paypal: decode %s response: %w", op, err)
	}
	return nil
}
