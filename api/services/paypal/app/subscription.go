package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	paypaldb "github.com/tbeaudouin05/paypal-trellai/api/services/paypal/db"
	gw "github.com/tbeaudouin05/paypal-trellai/api/services/paypal/gateway"
)

// DefaultCancelReason is sent when the caller gives none; PayPal requires one.
const DefaultCancelReason = "Cancelled by merchant"

const maxCancelReasonLen = 128

// GetSubscription fetches the current state of a subscription from PayPal.
func (s serviceImpl) GetSubscription(ctx context.Context, subscriptionID string) (gw.Subscription, error) {
	if strings.TrimSpace(subscriptionID) == "" {
		return gw.Subscription{}, fmt.Errorf("%w: subscription id is required", ErrInvalidRequest)
	}
	sub, err := s.gw.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return gw.Subscription{}, fmt.Errorf("%w: error getting subscription: %w", ErrGateway, err)
	}
	return sub, nil
}

// CancelSubscription cancels a PayPal subscription and marks the local record.
func (s serviceImpl) CancelSubscription(ctx context.Context, subscriptionID, reason string) error {
	if strings.TrimSpace(subscriptionID) == "" {
		return fmt.Errorf("%w: subscription id is required", ErrInvalidRequest)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultCancelReason
	}
	if len(reason) > maxCancelReasonLen {
		return fmt.Errorf("%w: cancel reason exceeds %d characters", ErrInvalidRequest, maxCancelReasonLen)
	}

	if s.alreadyCancelled(ctx, subscriptionID) {
		slog.Info("subscription already cancelled", "subscription_id", subscriptionID)
		return nil
	}

	if err := s.gw.CancelSubscription(ctx, subscriptionID, reason); err != nil {
		return fmt.Errorf("%w: error cancelling subscription: %w", ErrGateway, err)
	}

	if s.store != nil {
		err := s.store.MarkCancelled(ctx, subscriptionID)
		switch {
		case errors.Is(err, paypaldb.ErrNotFound):
			slog.Info("cancelled subscription has no local record", "subscription_id", subscriptionID)
		case err != nil:
			slog.Error("failed to mark subscription cancelled", "subscription_id", subscriptionID, "err", err)
		}
	}
	slog.Info("subscription cancelled", "subscription_id", subscriptionID)
	return nil
}

// alreadyCancelled reports whether the local record shows a completed
// cancellation. Cancellation is terminal at PayPal, so no remote call is needed.
func (s serviceImpl) alreadyCancelled(ctx context.Context, subscriptionID string) bool {
	if s.store == nil {
		return false
	}
	rec, err := s.store.GetSubscriptionRecord(ctx, subscriptionID)
	switch {
	case errors.Is(err, paypaldb.ErrNotFound):
		return false
	case err != nil:
		slog.Warn("failed to read subscription record", "subscription_id", subscriptionID, "err", err)
		return false
	}
	return rec.Status == paypaldb.StatusCancelled
}
