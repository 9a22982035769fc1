package paypaldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when no row exists for a subscription id.
var ErrNotFound = errors.New("subscription record not found")

// StatusCancelled mirrors PayPal's subscription status after cancellation.
const StatusCancelled = "CANCELLED"

// SubscriptionRecord is the local trace of one subscription flow: the remote
// ids PayPal assigned and who the subscription was created for.
type SubscriptionRecord struct {
	SubscriptionID string
	PlanID         string
	ProductID      string
	RequestID      string
	CustomerName   string
	CustomerEmail  string
	Status         string
	StartTime      time.Time
	CancelledAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS paypal_subscription (
	subscription_id TEXT PRIMARY KEY,
	plan_id         TEXT NOT NULL,
	product_id      TEXT NOT NULL,
	request_id      TEXT NOT NULL,
	customer_name   TEXT NOT NULL DEFAULT '',
	customer_email  TEXT NOT NULL DEFAULT '',
	status          TEXT NOT NULL DEFAULT '',
	start_time      TIMESTAMPTZ NOT NULL,
	cancelled_at    TIMESTAMPTZ,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Store persists subscription records in Postgres.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store { return &Store{db: db} }

// Migrate creates the paypal_subscription table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create paypal_subscription table: %w", err)
	}
	return nil
}

// RecordSubscription inserts a record, or refreshes status and ids when the
// subscription id is already known.
func (s *Store) RecordSubscription(ctx context.Context, r SubscriptionRecord) error {
	query := `
		INSERT INTO paypal_subscription
			(subscription_id, plan_id, product_id, request_id, customer_name, customer_email, status, start_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (subscription_id) DO UPDATE
		SET plan_id = EXCLUDED.plan_id,
		    product_id = EXCLUDED.product_id,
		    status = EXCLUDED.status,
		    updated_at = now()`
	_, err := s.db.ExecContext(ctx, query,
		r.SubscriptionID, r.PlanID, r.ProductID, r.RequestID,
		r.CustomerName, r.CustomerEmail, r.Status, r.StartTime.UTC())
	if err != nil {
		return fmt.Errorf("failed to record subscription %s: %w", r.SubscriptionID, err)
	}
	return nil
}

// GetSubscriptionRecord loads the record for subscriptionID.
func (s *Store) GetSubscriptionRecord(ctx context.Context, subscriptionID string) (SubscriptionRecord, error) {
	query := `
		SELECT subscription_id, plan_id, product_id, request_id, customer_name, customer_email,
		       status, start_time, cancelled_at, created_at, updated_at
		FROM paypal_subscription
		WHERE subscription_id = $1`
	var r SubscriptionRecord
	var cancelledAt sql.NullTime
	err := s.db.QueryRowContext(ctx, query, subscriptionID).Scan(
		&r.SubscriptionID, &r.PlanID, &r.ProductID, &r.RequestID, &r.CustomerName, &r.CustomerEmail,
		&r.Status, &r.StartTime, &cancelledAt, &r.CreatedAt, &r.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return SubscriptionRecord{}, ErrNotFound
	}
	if err != nil {
		return SubscriptionRecord{}, fmt.Errorf("failed to get subscription %s: %w", subscriptionID, err)
	}
	if cancelledAt.Valid {
		t := cancelledAt.Time
		r.CancelledAt = &t
	}
	return r, nil
}

// MarkCancelled flags a subscription as cancelled. Returns ErrNotFound if the
// subscription was never recorded.
func (s *Store) MarkCancelled(ctx context.Context, subscriptionID string) error {
	query := `
		UPDATE paypal_subscription
		SET status = $2, cancelled_at = now(), updated_at = now()
		WHERE subscription_id = $1`
	res, err := s.db.ExecContext(ctx, query, subscriptionID, StatusCancelled)
	if err != nil {
		return fmt.Errorf("failed to cancel subscription %s: %w", subscriptionID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
