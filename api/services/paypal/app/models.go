package app

import (
	"github.com/shopspring/decimal"
)

// SubscriptionRequest carries everything needed to set up a monthly
// subscription: the product, its monthly price and the customer.
// Price is required. StartDate is optional; empty means now.
type SubscriptionRequest struct {
	Name          string           `json:"name" validate:"required,notblank"`
	Description   string           `json:"description"`
	Type          string           `json:"type" validate:"required,oneof=PHYSICAL DIGITAL SERVICE"`
	Category      string           `json:"category"`
	Price         *decimal.Decimal `json:"price" validate:"required,nonnegative"`
	CustomerName  string           `json:"customerName"`
	CustomerEmail string           `json:"customerEmail" validate:"omitempty,email"`
	StartDate     string           `json:"startDate"`
	Trial         *TrialPricing    `json:"trial,omitempty" validate:"omitempty"`
}

// TrialPricing describes an introductory billing cycle placed before the
// regular monthly cycle.
type TrialPricing struct {
	IntervalUnit  string          `json:"intervalUnit" validate:"required,oneof=DAY WEEK MONTH YEAR"`
	IntervalCount int             `json:"intervalCount" validate:"min=1"`
	Price         decimal.Decimal `json:"price" validate:"nonnegative"`
}

// WithTrialPricing returns a copy of r with a trial cycle. The receiver is
// not modified, so requests can be derived from a shared template.
func (r SubscriptionRequest) WithTrialPricing(intervalUnit string, intervalCount int, price decimal.Decimal) SubscriptionRequest {
	r.Trial = &TrialPricing{
		IntervalUnit:  intervalUnit,
		IntervalCount: intervalCount,
		Price:         price,
	}
	return r
}

// SubscriptionResult lists the remote resources created by
// CreateMonthlySubscription. On failure it holds whatever was created before
// the failing step.
type SubscriptionResult struct {
	RequestID      string `json:"requestId"`
	ProductID      string `json:"productId,omitempty"`
	PlanID         string `json:"planId,omitempty"`
	SubscriptionID string `json:"subscriptionId,omitempty"`
	Status         string `json:"status,omitempty"`
	StartTime      string `json:"startTime"`
	ApproveURL     string `json:"approveUrl,omitempty"`
}
