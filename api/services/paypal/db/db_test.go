package paypaldb_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/tbeaudouin05/paypal-trellai/api/config"
	database "github.com/tbeaudouin05/paypal-trellai/api/database"
	paypaldb "github.com/tbeaudouin05/paypal-trellai/api/services/paypal/db"
)

var recordColumns = []string{
	"subscription_id", "plan_id", "product_id", "request_id", "customer_name", "customer_email",
	"status", "start_time", "cancelled_at", "created_at", "updated_at",
}

func newMockStore(t *testing.T) (*paypaldb.Store, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})
	return paypaldb.New(conn), mock
}

func TestMigrate(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS paypal_subscription").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Migrate(context.Background()))
}

func TestRecordSubscription(t *testing.T) {
	store, mock := newMockStore(t)
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO paypal_subscription")).
		WithArgs("I-1", "P-1", "PROD-1", "req-1", "Jane Doe", "jane@example.com", "APPROVAL_PENDING", start).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.RecordSubscription(context.Background(), paypaldb.SubscriptionRecord{
		SubscriptionID: "I-1",
		PlanID:         "P-1",
		ProductID:      "PROD-1",
		RequestID:      "req-1",
		CustomerName:   "Jane Doe",
		CustomerEmail:  "jane@example.com",
		Status:         "APPROVAL_PENDING",
		StartTime:      start,
	})
	require.NoError(t, err)
}

func TestRecordSubscription_WrapsDriverError(t *testing.T) {
	store, mock := newMockStore(t)
	boom := errors.New("connection reset")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO paypal_subscription")).WillReturnError(boom)

	err := store.RecordSubscription(context.Background(), paypaldb.SubscriptionRecord{SubscriptionID: "I-1"})
	assert.ErrorIs(t, err, boom)
}

func TestGetSubscriptionRecord(t *testing.T) {
	store, mock := newMockStore(t)
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	created := start.Add(time.Minute)
	rows := sqlmock.NewRows(recordColumns).
		AddRow("I-1", "P-1", "PROD-1", "req-1", "Jane Doe", "jane@example.com", "ACTIVE", start, nil, created, created)
	mock.ExpectQuery(regexp.QuoteMeta("FROM paypal_subscription")).WithArgs("I-1").WillReturnRows(rows)

	rec, err := store.GetSubscriptionRecord(context.Background(), "I-1")
	require.NoError(t, err)
	assert.Equal(t, "P-1", rec.PlanID)
	assert.Equal(t, "PROD-1", rec.ProductID)
	assert.Equal(t, "ACTIVE", rec.Status)
	assert.True(t, rec.StartTime.Equal(start))
	assert.Nil(t, rec.CancelledAt)
}

func TestGetSubscriptionRecord_Cancelled(t *testing.T) {
	store, mock := newMockStore(t)
	now := time.Now().UTC()
	rows := sqlmock.NewRows(recordColumns).
		AddRow("I-1", "P-1", "PROD-1", "req-1", "", "", paypaldb.StatusCancelled, now, now, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM paypal_subscription")).WithArgs("I-1").WillReturnRows(rows)

	rec, err := store.GetSubscriptionRecord(context.Background(), "I-1")
	require.NoError(t, err)
	require.NotNil(t, rec.CancelledAt)
	assert.True(t, rec.CancelledAt.Equal(now))
}

func TestGetSubscriptionRecord_NotFound(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM paypal_subscription")).WithArgs("I-missing").WillReturnError(sql.ErrNoRows)

	_, err := store.GetSubscriptionRecord(context.Background(), "I-missing")
	assert.ErrorIs(t, err, paypaldb.ErrNotFound)
}

func TestMarkCancelled(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE paypal_subscription")).
		WithArgs("I-1", paypaldb.StatusCancelled).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.MarkCancelled(context.Background(), "I-1"))
}

func TestMarkCancelled_UnknownSubscription(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE paypal_subscription")).
		WithArgs("I-unknown", paypaldb.StatusCancelled).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, store.MarkCancelled(context.Background(), "I-unknown"), paypaldb.ErrNotFound)
}

// TestStoreLifecycle_Integration runs against the configured Postgres database.
func TestStoreLifecycle_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in -short mode")
	}
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set")
	}
	// Prevent tests from running against production database
	config.CheckNotProdDB()
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	config.AppConfig = cfg
	require.NoError(t, database.Initialize())

	ctx := context.Background()
	store := paypaldb.New(database.GetDB())
	require.NoError(t, store.Migrate(ctx))

	id := "I-integration-test"
	_, _ = database.GetDB().Exec("DELETE FROM paypal_subscription WHERE subscription_id = $1", id)
	defer database.GetDB().Exec("DELETE FROM paypal_subscription WHERE subscription_id = $1", id)

	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.RecordSubscription(ctx, paypaldb.SubscriptionRecord{
		SubscriptionID: id, PlanID: "P-1", ProductID: "PROD-1", RequestID: "req-1", Status: "APPROVAL_PENDING", StartTime: start,
	}))
	require.NoError(t, store.RecordSubscription(ctx, paypaldb.SubscriptionRecord{
		SubscriptionID: id, PlanID: "P-1", ProductID: "PROD-1", RequestID: "req-1", Status: "ACTIVE", StartTime: start,
	}))

	rec, err := store.GetSubscriptionRecord(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", rec.Status)
	assert.True(t, rec.StartTime.Equal(start))

	require.NoError(t, store.MarkCancelled(ctx, id))
	rec, err = store.GetSubscriptionRecord(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, paypaldb.StatusCancelled, rec.Status)
	assert.NotNil(t, rec.CancelledAt)
}
