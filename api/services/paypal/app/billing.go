package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	gw "github.com/tbeaudouin05/paypal-trellai/api/services/paypal/gateway"
)

// ISO-8601 with a numeric offset, e.g. 2024-01-15T00:00:00+00:00.
const startTimeLayout = "2006-01-02T15:04:05-07:00"

// Accepted StartDate layouts. Layouts without a zone are read as UTC.
var startDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// BuildBillingCycle maps a frequency and price to a billing cycle. Trial
// cycles run once at sequence 1; regular cycles follow at sequence 2 and
// repeat until cancelled (total_cycles 0).
func BuildBillingCycle(intervalUnit string, intervalCount int, price decimal.Decimal, currency string, isTrial bool) gw.BillingCycle {
	cycle := gw.BillingCycle{
		Frequency: gw.Frequency{
			IntervalUnit:  intervalUnit,
			IntervalCount: intervalCount,
		},
		TenureType:  gw.TenureRegular,
		Sequence:    2,
		TotalCycles: 0,
		PricingScheme: gw.PricingScheme{
			FixedPrice: gw.Money{Value: price, CurrencyCode: currency},
		},
	}
	if isTrial {
		cycle.TenureType = gw.TenureTrial
		cycle.Sequence = 1
		cycle.TotalCycles = 1
	}
	return cycle
}

// BuildMonthlyPlan assembles an active plan billed every month at price,
// preceded by the trial cycle when trial is non-nil.
func BuildMonthlyPlan(productID, name, description string, price decimal.Decimal, currency string, trial *TrialPricing, failureThreshold int) gw.Plan {
	cycles := make([]gw.BillingCycle, 0, 2)
	if trial != nil {
		cycles = append(cycles, BuildBillingCycle(trial.IntervalUnit, trial.IntervalCount, trial.Price, currency, true))
	}
	cycles = append(cycles, BuildBillingCycle(gw.IntervalMonth, 1, price, currency, false))

	return gw.Plan{
		ProductID:     productID,
		Name:          name,
		Description:   description,
		Status:        gw.PlanStatusActive,
		BillingCycles: cycles,
		PaymentPreferences: gw.PaymentPreferences{
			AutoBillOutstanding:     true,
			SetupFeeFailureAction:   gw.SetupFeeFailureContinue,
			PaymentFailureThreshold: failureThreshold,
		},
	}
}

func BuildProduct(req SubscriptionRequest) gw.Product {
	return gw.Product{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Category:    req.Category,
	}
}

// BuildSubscription returns a single-seat subscription with an empty
// subscriber; PayPal collects payer details during approval.
func BuildSubscription(planID, startTime string) gw.Subscription {
	return gw.Subscription{
		PlanID:     planID,
		StartTime:  startTime,
		Quantity:   1,
		Subscriber: gw.Subscriber{},
	}
}

// ResolveStartTime parses startDate, or returns now when it is empty.
func ResolveStartTime(startDate string, now time.Time) (time.Time, error) {
	startDate = strings.TrimSpace(startDate)
	if startDate == "" {
		return now, nil
	}
	for _, layout := range startDateLayouts {
		if t, err := time.Parse(layout, startDate); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable start date %q", ErrInvalidRequest, startDate)
}

// FormatStartTime renders t as ISO-8601 with a numeric zone offset.
func FormatStartTime(t time.Time) string {
	return t.Format(startTimeLayout)
}
