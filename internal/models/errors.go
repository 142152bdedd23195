package models

import "errors"

// Error taxonomy shared across services and handlers. Handlers translate
// these to HTTP status codes with structured JSON bodies.
var (
	// ErrUnauthenticated means no verified session user for an operation requiring one
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden means the user is authenticated but lacks the required role
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput means an empty or malformed request body
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound means a referenced comment id is absent
	ErrNotFound = errors.New("not found")
	// ErrUpstream means an external provider failed or timed out
	ErrUpstream = errors.New("upstream error")
	// ErrAuthenticationFailed means the OIDC exchange was aborted: nonce
	// mismatch, malformed token, or provider error. Never produces a session user.
	ErrAuthenticationFailed = errors.New("authentication failed")
)
