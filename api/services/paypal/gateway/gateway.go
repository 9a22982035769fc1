//go:generate mockgen -source=gateway.go -destination=mock/mock_gateway.go -package=mock_gateway

package gateway

import "context"

// PayPalGateway abstracts the PayPal REST operations needed by the app layer.
// Methods take and return values (not pointers) to keep the interface free of
// shared mutable payloads.
type PayPalGateway interface {
	CreateProduct(ctx context.Context, product Product, requestID string) (Product, error)
	CreatePlan(ctx context.Context, plan Plan) (Plan, error)
	DeactivatePlan(ctx context.Context, planID string) error
	CreateSubscription(ctx context.Context, sub Subscription) (Subscription, error)
	GetSubscription(ctx context.Context, id string) (Subscription, error)
	CancelSubscription(ctx context.Context, id, reason string) error
}
