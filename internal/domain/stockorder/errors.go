package stockorder

import (
	"fmt"
	"strings"

	"github.com/erp/stockflow/internal/domain/shared"
)

// ErrOrderNumberTaken is returned by Save when another order already holds
// the generated number
var ErrOrderNumberTaken = shared.NewDomainError(shared.CodeConcurrencyConflict, "Order number already taken")

// InvalidTransitionError is returned when a requested status is not directly
// reachable. Allowed is empty at terminal statuses.
type InvalidTransitionError struct {
	*shared.DomainError
	Type    OrderType
	From    Status
	To      Status
	Allowed []Status
}

// NewInvalidTransitionError builds the error and its user-facing message
func NewInvalidTransitionError(t OrderType, from, to Status, allowed []Status) *InvalidTransitionError {
	return &InvalidTransitionError{
		DomainError: shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("cannot transition %s order from %q to %q; allowed: %s", t, from, to, describeAllowed(allowed))),
		Type:    t,
		From:    from,
		To:      to,
		Allowed: allowed,
	}
}

// Unwrap exposes the underlying DomainError
func (e *InvalidTransitionError) Unwrap() error {
	return e.DomainError
}

// AllowedStrings returns the allowed statuses as plain strings
func (e *InvalidTransitionError) AllowedStrings() []string {
	out := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		out[i] = string(s)
	}
	return out
}

func describeAllowed(allowed []Status) string {
	if len(allowed) == 0 {
		return "none (terminal status)"
	}
	parts := make([]string, len(allowed))
	for i, s := range allowed {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
