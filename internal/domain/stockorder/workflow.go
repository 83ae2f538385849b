package stockorder

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Workflow is the capability shared by every order type. Each order type
// is a closed variant carrying its own status enum and transition table.
type Workflow interface {
	Type() OrderType
	InitialStatus() Status
	Statuses() []Status
	IsValidStatus(s Status) bool
	// AllowedNext returns the statuses reachable from current in one step.
	// It is empty at terminal statuses.
	AllowedNext(current Status) []Status
	IsTerminal(s Status) bool
	// IsStockApplying reports whether from -> to is the single edge that
	// mutates on-hand quantity for this type.
	IsStockApplying(from, to Status) bool
	// Delta returns the signed quantity an item contributes to stock
	Delta(item OrderItem) decimal.Decimal
	MovementReason() MovementReason
}

func toStatuses[T ~string](in []T) []Status {
	out := make([]Status, len(in))
	for i, s := range in {
		out[i] = Status(s)
	}
	return out
}

// ShipmentStatus represents the status of an incoming shipment
type ShipmentStatus string

const (
	ShipmentDraft     ShipmentStatus = "draft"
	ShipmentConfirmed ShipmentStatus = "confirmed"
	ShipmentReceived  ShipmentStatus = "received"
)

// IsValid checks if the status is a valid ShipmentStatus
func (s ShipmentStatus) IsValid() bool {
	switch s {
	case ShipmentDraft, ShipmentConfirmed, ShipmentReceived:
		return true
	}
	return false
}

// NextStatuses returns the statuses reachable from s
func (s ShipmentStatus) NextStatuses() []ShipmentStatus {
	switch s {
	case ShipmentDraft:
		return []ShipmentStatus{ShipmentConfirmed}
	case ShipmentConfirmed:
		return []ShipmentStatus{ShipmentReceived}
	}
	return nil
}

// CanTransitionTo checks if the status can transition to the target status
func (s ShipmentStatus) CanTransitionTo(target ShipmentStatus) bool {
	return slices.Contains(s.NextStatuses(), target)
}

// ReturnStatus represents the status of a customer return
type ReturnStatus string

const (
	ReturnRegistered ReturnStatus = "registered"
	ReturnInspected  ReturnStatus = "inspected"
	ReturnApproved   ReturnStatus = "approved"
	ReturnRejected   ReturnStatus = "rejected"
)

// IsValid checks if the status is a valid ReturnStatus
func (s ReturnStatus) IsValid() bool {
	switch s {
	case ReturnRegistered, ReturnInspected, ReturnApproved, ReturnRejected:
		return true
	}
	return false
}

// NextStatuses returns the statuses reachable from s
func (s ReturnStatus) NextStatuses() []ReturnStatus {
	switch s {
	case ReturnRegistered:
		return []ReturnStatus{ReturnInspected}
	case ReturnInspected:
		return []ReturnStatus{ReturnApproved, ReturnRejected}
	}
	return nil
}

// CanTransitionTo checks if the status can transition to the target status
func (s ReturnStatus) CanTransitionTo(target ReturnStatus) bool {
	return slices.Contains(s.NextStatuses(), target)
}

// AdjustmentStatus represents the status of a manual stock adjustment
type AdjustmentStatus string

const (
	AdjustmentRequested AdjustmentStatus = "requested"
	AdjustmentApplied   AdjustmentStatus = "applied"
)

// IsValid checks if the status is a valid AdjustmentStatus
func (s AdjustmentStatus) IsValid() bool {
	switch s {
	case AdjustmentRequested, AdjustmentApplied:
		return true
	}
	return false
}

// NextStatuses returns the statuses reachable from s
func (s AdjustmentStatus) NextStatuses() []AdjustmentStatus {
	if s == AdjustmentRequested {
		return []AdjustmentStatus{AdjustmentApplied}
	}
	return nil
}

// CanTransitionTo checks if the status can transition to the target status
func (s AdjustmentStatus) CanTransitionTo(target AdjustmentStatus) bool {
	return slices.Contains(s.NextStatuses(), target)
}

type shipmentWorkflow struct{}

func (shipmentWorkflow) Type() OrderType { return OrderTypeShipment }
func (shipmentWorkflow) InitialStatus() Status { return Status(ShipmentDraft) }
func (shipmentWorkflow) Statuses() []Status {
	return toStatuses([]ShipmentStatus{ShipmentDraft, ShipmentConfirmed, ShipmentReceived})
}
func (shipmentWorkflow) IsValidStatus(s Status) bool { return ShipmentStatus(s).IsValid() }
func (shipmentWorkflow) AllowedNext(current Status) []Status {
	return toStatuses(ShipmentStatus(current).NextStatuses())
}
func (w shipmentWorkflow) IsTerminal(s Status) bool {
	return w.IsValidStatus(s) && len(w.AllowedNext(s)) == 0
}
func (shipmentWorkflow) IsStockApplying(from, to Status) bool {
	return ShipmentStatus(from) == ShipmentConfirmed && ShipmentStatus(to) == ShipmentReceived
}

// Delta is the quantity physically received, falling back to the expected quantity.
func (shipmentWorkflow) Delta(item OrderItem) decimal.Decimal {
	if item.ReceivedQty != nil {
		return *item.ReceivedQty
	}
	return item.ExpectedQty
}
func (shipmentWorkflow) MovementReason() MovementReason { return ReasonShipmentReceipt }

type returnWorkflow struct{}

func (returnWorkflow) Type() OrderType { return OrderTypeReturn }
func (returnWorkflow) InitialStatus() Status { return Status(ReturnRegistered) }
func (returnWorkflow) Statuses() []Status {
	return toStatuses([]ReturnStatus{ReturnRegistered, ReturnInspected, ReturnApproved, ReturnRejected})
}
func (returnWorkflow) IsValidStatus(s Status) bool { return ReturnStatus(s).IsValid() }
func (returnWorkflow) AllowedNext(current Status) []Status {
	return toStatuses(ReturnStatus(current).NextStatuses())
}
func (w returnWorkflow) IsTerminal(s Status) bool {
	return w.IsValidStatus(s) && len(w.AllowedNext(s)) == 0
}
func (returnWorkflow) IsStockApplying(from, to Status) bool {
	return ReturnStatus(from) == ReturnInspected && ReturnStatus(to) == ReturnApproved
}

// Delta only restocks resalable items; anything not in good condition contributes zero.
func (returnWorkflow) Delta(item OrderItem) decimal.Decimal {
	if item.Condition == nil || *item.Condition != ConditionGood {
		return decimal.Zero
	}
	if item.ReceivedQty != nil {
		return *item.ReceivedQty
	}
	return item.ExpectedQty
}
func (returnWorkflow) MovementReason() MovementReason { return ReasonCustomerReturn }

type adjustmentWorkflow struct{}

func (adjustmentWorkflow) Type() OrderType { return OrderTypeAdjustment }
func (adjustmentWorkflow) InitialStatus() Status { return Status(AdjustmentRequested) }
func (adjustmentWorkflow) Statuses() []Status {
	return toStatuses([]AdjustmentStatus{AdjustmentRequested, AdjustmentApplied})
}
func (adjustmentWorkflow) IsValidStatus(s Status) bool { return AdjustmentStatus(s).IsValid() }
func (adjustmentWorkflow) AllowedNext(current Status) []Status {
	return toStatuses(AdjustmentStatus(current).NextStatuses())
}
func (w adjustmentWorkflow) IsTerminal(s Status) bool {
	return w.IsValidStatus(s) && len(w.AllowedNext(s)) == 0
}
func (adjustmentWorkflow) IsStockApplying(from, to Status) bool {
	return AdjustmentStatus(from) == AdjustmentRequested && AdjustmentStatus(to) == AdjustmentApplied
}

// Delta is the signed expected quantity; the caller encodes write-offs as negatives.
func (adjustmentWorkflow) Delta(item OrderItem) decimal.Decimal {
	return item.ExpectedQty
}
func (adjustmentWorkflow) MovementReason() MovementReason { return ReasonManualAdjustment }

var (
	_ Workflow = shipmentWorkflow{}
	_ Workflow = returnWorkflow{}
	_ Workflow = adjustmentWorkflow{}
)
