package stockorder

import (
	"fmt"

	"github.com/erp/stockflow/internal/domain/shared"
)

var workflows = map[OrderType]Workflow{
	OrderTypeShipment:   shipmentWorkflow{},
	OrderTypeReturn:     returnWorkflow{},
	OrderTypeAdjustment: adjustmentWorkflow{},
}

// OrderTypes lists every order type in a stable order
func OrderTypes() []OrderType {
	return []OrderType{OrderTypeShipment, OrderTypeReturn, OrderTypeAdjustment}
}

// WorkflowFor returns the workflow variant for an order type
func WorkflowFor(t OrderType) (Workflow, error) {
	w, ok := workflows[t]
	if !ok {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("unknown order type %q", t))
	}
	return w, nil
}

// AllowedNext returns the statuses reachable from current for the given type
func AllowedNext(t OrderType, current Status) ([]Status, error) {
	w, err := WorkflowFor(t)
	if err != nil {
		return nil, err
	}
	if !w.IsValidStatus(current) {
		return nil, shared.NewDomainError(shared.CodeInvalidInput,
			fmt.Sprintf("unknown %s status %q", t, current))
	}
	return w.AllowedNext(current), nil
}

// ValidateTransition returns nil when requested is directly reachable from
// current, or an *InvalidTransitionError listing what is reachable.
func ValidateTransition(t OrderType, current, requested Status) error {
	allowed, err := AllowedNext(t, current)
	if err != nil {
		return err
	}
	for _, s := range allowed {
		if s == requested {
			return nil
		}
	}
	return NewInvalidTransitionError(t, current, requested, allowed)
}

// NonTerminalStatuses returns, per type, the statuses that still have
// outgoing transitions.
func NonTerminalStatuses() map[OrderType][]Status {
	out := make(map[OrderType][]Status, len(workflows))
	for _, t := range OrderTypes() {
		w := workflows[t]
		for _, s := range w.Statuses() {
			if !w.IsTerminal(s) {
				out[t] = append(out[t], s)
			}
		}
	}
	return out
}

// IsKnownStatus reports whether s belongs to any workflow
func IsKnownStatus(s Status) bool {
	for _, w := range workflows {
		if w.IsValidStatus(s) {
			return true
		}
	}
	return false
}
