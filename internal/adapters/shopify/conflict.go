// internal/adapters/shopify/conflict.go
package shopify

import (
	"strings"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
)

// conflictSignature maps a create-mutation user-error signature to a tagged
// conflict kind. Classification happens once here so the orchestration layer
// only ever sees domain.ConflictKind; unrecognized signatures never trigger
// adoption.
type conflictSignature struct {
	resource string
	fragment string
	kind     domain.ConflictKind
}

var conflictSignatures = []conflictSignature{
	{resource: "carrier service", fragment: "already configured", kind: domain.ConflictCarrierAlreadyConfigured},
	{resource: "fulfillment service", fragment: "already been taken", kind: domain.ConflictServiceNameTaken},
}

// classifyUserErrors inspects a mutation's userErrors and returns a typed
// conflict when one matches a recognized signature for the resource, or an
// untagged conflict (fatal to callers) otherwise. Returns nil when there
// are no user errors.
func classifyUserErrors(resource string, errs []UserError) error {
	if len(errs) == 0 {
		return nil
	}

	messages := JoinMessages(errs)
	kind := domain.ConflictNone
	for _, sig := range conflictSignatures {
		if sig.resource != resource {
			continue
		}
		for _, msg := range messages {
			if strings.Contains(strings.ToLower(msg), sig.fragment) {
				kind = sig.kind
				break
			}
		}
	}

	return &domain.ConflictError{Kind: kind, Resource: resource, Messages: messages}
}
