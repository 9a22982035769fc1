package gateway

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// Wire types for the PayPal Catalog Products and Billing APIs. JSON field
// names follow the vendor documentation exactly.

// Product types accepted by /v1/catalogs/products.
const (
	ProductTypePhysical = "PHYSICAL"
	ProductTypeDigital  = "DIGITAL"
	ProductTypeService  = "SERVICE"
)

// Interval units for a billing cycle frequency.
const (
	IntervalDay   = "DAY"
	IntervalWeek  = "WEEK"
	IntervalMonth = "MONTH"
	IntervalYear  = "YEAR"
)

// Tenure types.
const (
	TenureTrial   = "TRIAL"
	TenureRegular = "REGULAR"
)

const (
	PlanStatusActive = "ACTIVE"

	SetupFeeFailureContinue = "CONTINUE"
)

type Product struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type,omitempty"`
	Category    string `json:"category,omitempty"`
	CreateTime  string `json:"create_time,omitempty"`
}

type Frequency struct {
	IntervalUnit  string `json:"interval_unit"`
	IntervalCount int    `json:"interval_count"`
}

// Money serializes Value as a quoted decimal string, e.g. "9.99".
type Money struct {
	Value        decimal.Decimal `json:"value"`
	CurrencyCode string          `json:"currency_code"`
}

type PricingScheme struct {
	FixedPrice Money `json:"fixed_price"`
}

// BillingCycle is one pricing phase of a plan. TotalCycles 0 means unlimited
// and is always sent.
type BillingCycle struct {
	Frequency     Frequency     `json:"frequency"`
	TenureType    string        `json:"tenure_type"`
	Sequence      int           `json:"sequence"`
	TotalCycles   int           `json:"total_cycles"`
	PricingScheme PricingScheme `json:"pricing_scheme"`
}

type PaymentPreferences struct {
	AutoBillOutstanding     bool   `json:"auto_bill_outstanding"`
	SetupFeeFailureAction   string `json:"setup_fee_failure_action"`
	PaymentFailureThreshold int    `json:"payment_failure_threshold"`
}

type Plan struct {
	ID                 string             `json:"id,omitempty"`
	ProductID          string             `json:"product_id"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	Status             string             `json:"status"`
	BillingCycles      []BillingCycle     `json:"billing_cycles"`
	PaymentPreferences PaymentPreferences `json:"payment_preferences"`
}

type SubscriberName struct {
	GivenName string `json:"given_name,omitempty"`
	Surname   string `json:"surname,omitempty"`
}

// Subscriber marshals to {} when empty.
type Subscriber struct {
	Name         *SubscriberName `json:"name,omitempty"`
	EmailAddress string          `json:"email_address,omitempty"`
	PayerID      string          `json:"payer_id,omitempty"`
}

type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method,omitempty"`
}

// Subscription is both the create payload and the vendor's representation.
// PayPal documents quantity as a string, hence the ",string" option.
type Subscription struct {
	ID         string     `json:"id,omitempty"`
	PlanID     string     `json:"plan_id"`
	StartTime  string     `json:"start_time,omitempty"`
	Quantity   int        `json:"quantity,string"`
	Subscriber Subscriber `json:"subscriber"`
	Status     string     `json:"status,omitempty"`
	CreateTime string     `json:"create_time,omitempty"`
	Links      []Link     `json:"links,omitempty"`
}

// ApproveURL returns the payer approval link, if PayPal sent one.
func (s Subscription) ApproveURL() string {
	for _, l := range s.Links {
		if l.Rel == "approve" {
			return l.Href
		}
	}
	return ""
}

type ErrorDetail struct {
	Field       string `json:"field,omitempty"`
	Value       string `json:"value,omitempty"`
	Location    string `json:"location,omitempty"`
	Issue       string `json:"issue"`
	Description string `json:"description,omitempty"`
}

// APIError is a non-2xx response from PayPal.
type APIError struct {
	StatusCode int           `json:"-"`
	Name       string        `json:"name"`
	Message    string        `json:"message"`
	DebugID    string        `json:"debug_id"`
	Details    []ErrorDetail `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if len(e.Details) > 0 {
		msg = fmt.Sprintf("%s (%s)", msg, e.Details[0].Issue)
	}
	if e.DebugID != "" {
		return fmt.Sprintf("paypal %d %s: %s [debug_id=%s]", e.StatusCode, e.Name, msg, e.DebugID)
	}
	return fmt.Sprintf("paypal %d %s: %s", e.StatusCode, e.Name, msg)
}

// IsNotFound reports whether PayPal answered 404.
func (e *APIError) IsNotFound() bool { return e.StatusCode == http.StatusNotFound }
