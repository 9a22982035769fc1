package router

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	bootstrap "github.com/tbeaudouin05/paypal-trellai/api/bootstrap"
	paypalapp "github.com/tbeaudouin05/paypal-trellai/api/services/paypal/app"
	gw "github.com/tbeaudouin05/paypal-trellai/api/services/paypal/gateway"
)

// NewRouter returns the central HTTP router for the API, backed by the
// bootstrapped PayPal service.
func NewRouter() http.Handler {
	// Initialize app dependencies (non-fatal if it fails here; handlers answer 503).
	if err := bootstrap.Ensure(); err != nil {
		slog.Error("bootstrap ensure failed", "err", err)
	}
	return NewHandler(bootstrap.GetPayPalService())
}

// NewHandler registers the API routes for svc on a grpc-gateway ServeMux.
func NewHandler(svc paypalapp.Service) http.Handler {
	mux := runtime.NewServeMux()
	h := handlers{svc: svc}
	metrics := promhttp.Handler()

	routes := []struct {
		method, pattern string
		handler         runtime.HandlerFunc
	}{
		{http.MethodPost, "/api/create-monthly-subscription", h.createMonthlySubscription},
		{http.MethodGet, "/api/subscriptions/{id}", h.getSubscription},
		{http.MethodPost, "/api/cancel-subscription", h.cancelSubscription},
		{http.MethodGet, "/metrics", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
			metrics.ServeHTTP(w, r)
		}},
	}
	for _, rt := range routes {
		if err := mux.HandlePath(rt.method, rt.pattern, rt.handler); err != nil {
			slog.Error("failed to register route", "method", rt.method, "pattern", rt.pattern, "err", err)
		}
	}
	return mux
}

// Request bodies beyond this size are rejected.
const maxRequestBodyBytes = 64 << 10

type handlers struct{ svc paypalapp.Service }

type cancelSubscriptionRequest struct {
	SubscriptionID string `json:"subscriptionId"`
	Reason         string `json:"reason"`
}

type errorResponse struct {
	Code    int                           `json:"code"`
	Message string                        `json:"message"`
	Partial *paypalapp.SubscriptionResult `json:"partial,omitempty"`
}

func (h handlers) createMonthlySubscription(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	if !h.ready(w) {
		return
	}
	var req paypalapp.SubscriptionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res, err := h.svc.CreateMonthlySubscription(r.Context(), req)
	if err != nil {
		var partial *paypalapp.SubscriptionResult
		if res.ProductID != "" {
			partial = &res
		}
		writeStatus(w, toStatus(err), partial)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h handlers) getSubscription(w http.ResponseWriter, r *http.Request, params map[string]string) {
	if !h.ready(w) {
		return
	}
	sub, err := h.svc.GetSubscription(r.Context(), params["id"])
	if err != nil {
		writeStatus(w, toStatus(err), nil)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (h handlers) cancelSubscription(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	if !h.ready(w) {
		return
	}
	var req cancelSubscriptionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.svc.CancelSubscription(r.Context(), req.SubscriptionID, req.Reason); err != nil {
		writeStatus(w, toStatus(err), nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

func (h handlers) ready(w http.ResponseWriter) bool {
	if h.svc == nil {
		writeStatus(w, status.New(codes.Unavailable, "service not initialized"), nil)
		return false
	}
	return true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeStatus(w, status.New(codes.InvalidArgument, "request body too large"), nil)
			return false
		}
		writeStatus(w, status.New(codes.InvalidArgument, "invalid request body"), nil)
		return false
	}
	return true
}

// toStatus maps app and gateway errors onto gRPC codes.
func toStatus(err error) *status.Status {
	var apiErr *gw.APIError
	switch {
	case errors.Is(err, paypalapp.ErrInvalidRequest):
		return status.New(codes.InvalidArgument, err.Error())
	case errors.As(err, &apiErr) && apiErr.IsNotFound():
		return status.New(codes.NotFound, err.Error())
	case errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusBadRequest || apiErr.StatusCode == http.StatusUnprocessableEntity):
		return status.New(codes.FailedPrecondition, err.Error())
	case errors.Is(err, paypalapp.ErrGateway):
		return status.New(codes.Unavailable, err.Error())
	default:
		slog.Error("unhandled error", "err", err)
		return status.New(codes.Internal, "internal error")
	}
}

func writeStatus(w http.ResponseWriter, st *status.Status, partial *paypalapp.SubscriptionResult) {
	writeJSON(w, runtime.HTTPStatusFromCode(st.Code()), errorResponse{
		Code:    int(st.Code()),
		Message: st.Message(),
		Partial: partial,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
