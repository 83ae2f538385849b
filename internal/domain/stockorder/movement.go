package stockorder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Direction classifies a movement
type Direction string

const (
	DirectionAddition Direction = "addition"
	DirectionRemoval  Direction = "removal"
)

// DirectionOf classifies a delta. Zero is recorded as a removal.
func DirectionOf(delta decimal.Decimal) Direction {
	if delta.IsPositive() {
		return DirectionAddition
	}
	return DirectionRemoval
}

// MovementReason is derived from the order type that caused the movement
type MovementReason string

const (
	ReasonShipmentReceipt  MovementReason = "shipment_receipt"
	ReasonCustomerReturn   MovementReason = "customer_return"
	ReasonManualAdjustment MovementReason = "manual_adjustment"
)

// InventoryMovement is one immutable ledger entry. Entries are written once,
// at the moment stock is applied, and never updated or deleted.
type InventoryMovement struct {
	ID               uuid.UUID
	ProductID        uuid.UUID
	ProductName      string
	Direction        Direction
	QuantityChange   decimal.Decimal
	OldQuantity      decimal.Decimal
	NewQuantity      decimal.Decimal
	Reason           MovementReason
	StockOrderID     uuid.UUID
	StockOrderNumber string
	ActorID          string
	ActorName        string
	CreatedAt        time.Time
}

// MovementParams carries the values of a stock application for one item
type MovementParams struct {
	ProductID   uuid.UUID
	ProductName string
	Delta       decimal.Decimal
	OldQuantity decimal.Decimal
	NewQuantity decimal.Decimal
	Reason      MovementReason
	Actor       Actor
}

// NewInventoryMovement records the effect of applying one item of order
func NewInventoryMovement(order *StockOrder, p MovementParams) *InventoryMovement {
	return &InventoryMovement{
		ID:               uuid.New(),
		ProductID:        p.ProductID,
		ProductName:      p.ProductName,
		Direction:        DirectionOf(p.Delta),
		QuantityChange:   p.Delta,
		OldQuantity:      p.OldQuantity,
		NewQuantity:      p.NewQuantity,
		Reason:           p.Reason,
		StockOrderID:     order.ID,
		StockOrderNumber: order.OrderNumber,
		ActorID:          p.Actor.ID,
		ActorName:        p.Actor.Name,
		CreatedAt:        time.Now().UTC(),
	}
}
