package client

import (
	"errors"
	"fmt"
	"strings"
)

// FailureKind classifies a failed generation call. The orchestrating
// services use it to decide between surfacing the error and substituting
// placeholder content.
type FailureKind int

const (
	// FailureTransient covers network and provider errors that are
	// retryable in principle. This layer never retries them.
	FailureTransient FailureKind = iota
	// FailureQuota marks provider rate/usage limits (HTTP 429 semantics).
	FailureQuota
	// FailureFatal marks structurally invalid responses, such as a
	// nominally successful call that returned no media.
	FailureFatal
)

func (k FailureKind) String() string {
	switch k {
	case FailureQuota:
		return "quota"
	case FailureFatal:
		return "fatal"
	default:
		return "transient"
	}
}

// GenerationError is a classified failure from a generation call.
type GenerationError struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s generation failure: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s generation failure: %s", e.Kind, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Classify returns the failure kind of err. Errors that are not
// GenerationErrors count as transient.
func Classify(err error) FailureKind {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return FailureTransient
}

// IsQuota reports whether err is a provider quota/rate-limit failure.
func IsQuota(err error) bool {
	return Classify(err) == FailureQuota
}

// IsFatal reports whether err is a structurally invalid response.
func IsFatal(err error) bool {
	return Classify(err) == FailureFatal
}

// classifyProviderError maps a provider error response to a failure kind
// by inspecting the HTTP status and the error text for quota markers.
func classifyProviderError(statusCode int, body string) FailureKind {
	if statusCode == 429 {
		return FailureQuota
	}
	lower := strings.ToLower(body)
	if strings.Contains(lower, "quota") ||
		strings.Contains(lower, "429") ||
		strings.Contains(lower, "resource_exhausted") {
		return FailureQuota
	}
	return FailureTransient
}
