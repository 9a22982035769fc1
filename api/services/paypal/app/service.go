package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	paypaldb "github.com/tbeaudouin05/paypal-trellai/api/services/paypal/db"
	gw "github.com/tbeaudouin05/paypal-trellai/api/services/paypal/gateway"
)

// Service defines the business operations for the PayPal domain.
type Service interface {
	CreateMonthlySubscription(ctx context.Context, req SubscriptionRequest) (SubscriptionResult, error)
	GetSubscription(ctx context.Context, subscriptionID string) (gw.Subscription, error)
	CancelSubscription(ctx context.Context, subscriptionID, reason string) error
}

// SubscriptionStore keeps a local trace of created subscriptions.
type SubscriptionStore interface {
	RecordSubscription(ctx context.Context, r paypaldb.SubscriptionRecord) error
	GetSubscriptionRecord(ctx context.Context, subscriptionID string) (paypaldb.SubscriptionRecord, error)
	MarkCancelled(ctx context.Context, subscriptionID string) error
}

// Settings are the process-wide inputs to payload construction.
type Settings struct {
	Currency                string
	PaymentFailureThreshold int
	// Now and NewRequestID default to UTC wall clock and random UUIDs.
	Now          func() time.Time
	NewRequestID func() string
}

// serviceImpl holds no per-request state and is safe for concurrent use.
type serviceImpl struct {
	gw       gw.PayPalGateway
	store    SubscriptionStore
	settings Settings
}

// NewService wires the gateway and store. store may be nil, in which case
// nothing is persisted locally.
func NewService(g gw.PayPalGateway, store SubscriptionStore, s Settings) Service {
	if s.Now == nil {
		s.Now = func() time.Time { return time.Now().UTC() }
	}
	if s.NewRequestID == nil {
		s.NewRequestID = uuid.NewString
	}
	return serviceImpl{gw: g, store: store, settings: s}
}

// CreateMonthlySubscription creates a product, a monthly plan for it and a
// subscription to that plan, in that order. Remote resources created before
// a failing step are reported in the returned result.
func (s serviceImpl) CreateMonthlySubscription(ctx context.Context, req SubscriptionRequest) (SubscriptionResult, error) {
	if err := req.validate(); err != nil {
		return SubscriptionResult{}, err
	}
	start, err := ResolveStartTime(req.StartDate, s.settings.Now())
	if err != nil {
		return SubscriptionResult{}, err
	}

	res := SubscriptionResult{
		RequestID: s.settings.NewRequestID(),
		StartTime: FormatStartTime(start),
	}

	product, err := s.gw.CreateProduct(ctx, BuildProduct(req), res.RequestID)
	if err != nil {
		return res, fmt.Errorf("%w: error creating product: %w", ErrGateway, err)
	}
	if product.ID == "" {
		return res, fmt.Errorf("%w: product created without id", ErrGateway)
	}
	res.ProductID = product.ID

	planReq := BuildMonthlyPlan(product.ID, req.Name, req.Description, *req.Price,
		s.settings.Currency, req.Trial, s.settings.PaymentFailureThreshold)
	plan, err := s.gw.CreatePlan(ctx, planReq)
	if err != nil {
		// Catalog products cannot be deleted through the API.
		slog.Warn("plan creation failed, product left without plan", "product_id", product.ID, "request_id", res.RequestID)
		return res, fmt.Errorf("%w: error creating plan: %w", ErrGateway, err)
	}
	if plan.ID == "" {
		return res, fmt.Errorf("%w: plan created without id", ErrGateway)
	}
	res.PlanID = plan.ID

	sub, err := s.gw.CreateSubscription(ctx, BuildSubscription(plan.ID, res.StartTime))
	if err == nil && sub.ID == "" {
		err = errors.New("subscription created without id")
	}
	if err != nil {
		s.deactivatePlan(ctx, plan.ID)
		return res, fmt.Errorf("%w: error creating subscription: %w", ErrGateway, err)
	}
	res.SubscriptionID = sub.ID
	res.Status = sub.Status
	res.ApproveURL = sub.ApproveURL()

	if s.store != nil {
		rec := paypaldb.SubscriptionRecord{
			SubscriptionID: sub.ID,
			PlanID:         plan.ID,
			ProductID:      product.ID,
			RequestID:      res.RequestID,
			CustomerName:   req.CustomerName,
			CustomerEmail:  req.CustomerEmail,
			Status:         sub.Status,
			StartTime:      start,
		}
		// PayPal already holds the subscription; a local write failure does not undo it.
		if err := s.store.RecordSubscription(ctx, rec); err != nil {
			slog.Error("failed to record subscription", "subscription_id", sub.ID, "err", err)
		}
	}

	slog.Info("monthly subscription created",
		"subscription_id", sub.ID, "plan_id", plan.ID, "product_id", product.ID, "status", sub.Status)
	return res, nil
}

// deactivatePlan retires a plan whose subscription could not be created.
// It runs even if ctx was cancelled.
func (s serviceImpl) deactivatePlan(ctx context.Context, planID string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 15*time.Second)
	defer cancel()
	if err := s.gw.DeactivatePlan(ctx, planID); err != nil {
		slog.Error("failed to deactivate orphaned plan", "plan_id", planID, "err", err)
		return
	}
	slog.Info("deactivated orphaned plan", "plan_id", planID)
}
