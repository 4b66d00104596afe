// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLocked is returned when a single-flight operation is already running
// for the same key (shop or order).
var ErrLocked = errors.New("operation already in progress")

// ValidationError reports missing or invalid caller input. It is rejected
// immediately and never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s is required", e.Field)
}

// ConflictKind tags the recognized "already exists" signatures reported by
// the commerce platform. Only recognized kinds trigger the lookup-and-adopt
// fallback; everything else is fatal.
type ConflictKind int

const (
	ConflictNone ConflictKind = iota
	// ConflictCarrierAlreadyConfigured: the carrier service create reported
	// the callback as already configured for the shop.
	ConflictCarrierAlreadyConfigured
	// ConflictServiceNameTaken: the fulfillment service create reported the
	// service name as already taken.
	ConflictServiceNameTaken
)

func (k ConflictKind) String() string {
	switch k {
	case ConflictCarrierAlreadyConfigured:
		return "carrier_already_configured"
	case ConflictServiceNameTaken:
		return "service_name_taken"
	default:
		return "none"
	}
}

// ConflictError is returned when an external create call reports that the
// resource already exists. Kind decides whether the caller may recover by
// adopting the existing resource.
type ConflictError struct {
	Kind     ConflictKind
	Resource string
	Messages []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s create conflict (%s): %s", e.Resource, e.Kind, strings.Join(e.Messages, "; "))
}

// Adoptable reports whether the conflict can be resolved by looking up and
// reusing the existing resource's id.
func (e *ConflictError) Adoptable() bool {
	return e.Kind != ConflictNone
}

// ExternalError wraps a failed remote call that is not a recognized
// adoptable conflict. It aborts the current run; already-completed
// sub-steps stay persisted.
type ExternalError struct {
	System    string // "shopify" or "network"
	Operation string
	Err       error
}

func (e *ExternalError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.System, e.Operation, e.Err)
}

func (e *ExternalError) Unwrap() error { return e.Err }

// NotFoundError reports an expected downstream resource as absent. It is a
// business failure, not a crash.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// IsAdoptableConflict reports whether err is a ConflictError of the given
// kind.
func IsAdoptableConflict(err error, kind ConflictKind) bool {
	var conflict *ConflictError
	return errors.As(err, &conflict) && conflict.Kind == kind
}
