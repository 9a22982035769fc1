package app

import "errors"

// Typed errors for the PayPal app layer. These enable HTTP/gRPC mapping
// without exposing gateway error types at the transport layer.
var (
	// ErrInvalidRequest indicates the caller's parameters failed validation; no remote call was made.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrGateway indicates a failure from the PayPal gateway / API calls.
	ErrGateway = errors.New("gateway error")
)
