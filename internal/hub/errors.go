package hub

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// ConfigError indicates the client cannot be constructed or used because
// the hub URL is missing or invalid.
type ConfigError struct {
	// Reason describes what is wrong with the configuration.
	Reason string
}

// Error returns a user-friendly error message with actionable guidance.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s\n\nTo configure the hub, run:\n  beszelctl login", e.Reason)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *ConfigError) Is(target error) bool {
	_, ok := target.(*ConfigError)
	return ok
}

// AuthError indicates a missing, rejected, or expired credential.
type AuthError struct {
	// Reason is the underlying cause, if any.
	Reason error
	// Message describes the failure when no underlying error exists.
	Message string
}

// Error returns a user-friendly error message with actionable guidance.
func (e *AuthError) Error() string {
	msg := e.Message
	if msg == "" && e.Reason != nil {
		msg = e.Reason.Error()
	}
	return fmt.Sprintf("authentication failed: %s\n\nTo re-authenticate, run:\n  beszelctl login", msg)
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *AuthError) Is(target error) bool {
	_, ok := target.(*AuthError)
	return ok
}

// ValidationError indicates locally detectable bad input. It is returned
// before any request is issued.
type ValidationError struct {
	// Field names the offending input.
	Field string
	// Reason describes why the input is invalid.
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// NotFoundError indicates the backend reports no such resource.
type NotFoundError struct {
	// Collection is the collection that was queried.
	Collection string
	// ID is the record identifier that does not exist. Empty for
	// collection-level misses.
	ID string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("not found: collection %q", e.Collection)
	}
	return fmt.Sprintf("not found: %s/%s", e.Collection, e.ID)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// NetworkErrorType categorizes the type of transport failure.
type NetworkErrorType int

const (
	// NetworkErrorUnknown indicates an unclassified transport error.
	NetworkErrorUnknown NetworkErrorType = iota
	// NetworkErrorRefused indicates a connectivity error (refused, unreachable).
	NetworkErrorRefused
	// NetworkErrorTimeout indicates a connect or read timeout.
	NetworkErrorTimeout
	// NetworkErrorDNS indicates a DNS resolution failure.
	NetworkErrorDNS
)

// String returns a human-readable name for the network error type.
func (t NetworkErrorType) String() string {
	switch t {
	case NetworkErrorRefused:
		return "Connection error"
	case NetworkErrorTimeout:
		return "Connection timeout"
	case NetworkErrorDNS:
		return "DNS resolution error"
	default:
		return "Network error"
	}
}

// NetworkError indicates the hub could not be reached at the transport
// level. It wraps the underlying error and categorizes it for better
// user feedback.
type NetworkError struct {
	// Endpoint is the URL that could not be reached.
	Endpoint string
	// Type categorizes the transport failure.
	Type NetworkErrorType
	// Reason is the underlying error.
	Reason error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s reaching %s: %v", e.Type, e.Endpoint, e.Reason)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *NetworkError) Is(target error) bool {
	_, ok := target.(*NetworkError)
	return ok
}

// BackendError indicates a non-success response that is neither an auth
// failure nor a missing resource. It carries the backend-reported message
// verbatim.
type BackendError struct {
	// StatusCode is the HTTP status returned by the hub.
	StatusCode int
	// Message is the backend's error message, unmodified.
	Message string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("hub returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("hub returned status %d: %s", e.StatusCode, e.Message)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *BackendError) Is(target error) bool {
	_, ok := target.(*BackendError)
	return ok
}

// PersistenceError indicates the credential file could not be read or
// written.
type PersistenceError struct {
	// Path is the credential file location.
	Path string
	// Reason is the underlying error.
	Reason error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("credential store error at %s: %v", e.Path, e.Reason)
}

// Unwrap returns the underlying error.
func (e *PersistenceError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *PersistenceError) Is(target error) bool {
	_, ok := target.(*PersistenceError)
	return ok
}

// classifyNetworkError analyzes a transport-level error and returns a
// NetworkError with the appropriate type. Returns nil for a nil error.
func classifyNetworkError(err error, endpoint string) *NetworkError {
	if err == nil {
		return nil
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &NetworkError{Endpoint: endpoint, Type: NetworkErrorDNS, Reason: err}
	}

	if isTimeoutError(err) {
		return &NetworkError{Endpoint: endpoint, Type: NetworkErrorTimeout, Reason: err}
	}

	if isConnectivityError(err.Error()) {
		return &NetworkError{Endpoint: endpoint, Type: NetworkErrorRefused, Reason: err}
	}

	return &NetworkError{Endpoint: endpoint, Type: NetworkErrorUnknown, Reason: err}
}

// isTimeoutError checks if the error is a timeout.
func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}

	// net.Error is an interface, so unwrap manually.
	for e := err; e != nil; {
		if ne, ok := e.(net.Error); ok && ne.Timeout() {
			return true
		}
		if u, ok := e.(interface{ Unwrap() error }); ok {
			e = u.Unwrap()
		} else {
			break
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded")
}

// isConnectivityError checks if the error string indicates a connectivity issue.
func isConnectivityError(errStr string) bool {
	keywords := []string{
		"connection refused",
		"connection reset",
		"network is unreachable",
		"no route to host",
		"dial tcp",
		"connect:",
	}

	for _, keyword := range keywords {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}
	return false
}
