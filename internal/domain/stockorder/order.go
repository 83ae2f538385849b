package stockorder

import (
	"fmt"
	"strings"
	"time"

	"github.com/erp/stockflow/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AggregateTypeStockOrder is the aggregate type name used in domain events
const AggregateTypeStockOrder = "StockOrder"

// OrderItem is a line of a stock order
type OrderItem struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	ExpectedQty decimal.Decimal
	ReceivedQty *decimal.Decimal
	Condition   *ItemCondition
}

// StatusEntry is one entry of the append-only status history
type StatusEntry struct {
	ID        uuid.UUID
	Status    Status
	Timestamp time.Time
	ActorID   string
	ActorName string
	Notes     string
}

// StockOrder is the aggregate root for shipments, returns and adjustments
type StockOrder struct {
	shared.BaseAggregateRoot
	OrderNumber string
	Type        OrderType
	Status      Status
	Items       []OrderItem
	History     []StatusEntry

	// Shipment
	Supplier     string
	ExpectedDate *time.Time

	// Return
	LinkedOrderID     *uuid.UUID
	LinkedOrderNumber string
	CustomerName      string
	ReturnReason      string

	// Adjustment
	AdjustmentReason string

	Notes     string
	CreatedBy Actor
}

// ItemInput is a requested order line
type ItemInput struct {
	ProductID   uuid.UUID
	ProductName string
	ExpectedQty decimal.Decimal
	ReceivedQty *decimal.Decimal
	Condition   *ItemCondition
}

// ShipmentParams holds the values for a new shipment
type ShipmentParams struct {
	OrderNumber  string
	Supplier     string
	ExpectedDate *time.Time
	Items        []ItemInput
	Notes        string
	Actor        Actor
}

// ReturnParams holds the values for a new return
type ReturnParams struct {
	OrderNumber       string
	LinkedOrderID     uuid.UUID
	LinkedOrderNumber string
	CustomerName      string
	ReturnReason      string
	Items             []ItemInput
	Notes             string
	Actor             Actor
}

// AdjustmentParams holds the values for a new adjustment
type AdjustmentParams struct {
	OrderNumber string
	Reason      string
	Items       []ItemInput
	Notes       string
	Actor       Actor
}

// NewShipment creates a shipment in draft status
func NewShipment(p ShipmentParams) (*StockOrder, error) {
	v := shared.NewValidationError()
	if strings.TrimSpace(p.Supplier) == "" {
		v.Add("supplier", "is required")
	}
	if len(p.Supplier) > 200 {
		v.Add("supplier", "must be at most 200 characters")
	}
	o, err := newOrder(OrderTypeShipment, p.OrderNumber, p.Items, p.Notes, p.Actor, v)
	if err != nil {
		return nil, err
	}
	o.Supplier = strings.TrimSpace(p.Supplier)
	if p.ExpectedDate != nil {
		d := p.ExpectedDate.UTC()
		o.ExpectedDate = &d
	}
	o.recordCreated()
	return o, nil
}

// NewReturn creates a customer return in registered status. The linked
// order must already have been resolved by the caller.
func NewReturn(p ReturnParams) (*StockOrder, error) {
	v := shared.NewValidationError()
	if p.LinkedOrderID == uuid.Nil {
		v.Add("linked_order_id", "is required")
	}
	o, err := newOrder(OrderTypeReturn, p.OrderNumber, p.Items, p.Notes, p.Actor, v)
	if err != nil {
		return nil, err
	}
	linked := p.LinkedOrderID
	o.LinkedOrderID = &linked
	o.LinkedOrderNumber = p.LinkedOrderNumber
	o.CustomerName = strings.TrimSpace(p.CustomerName)
	o.ReturnReason = strings.TrimSpace(p.ReturnReason)
	o.recordCreated()
	return o, nil
}

// NewAdjustment creates a manual adjustment in requested status
func NewAdjustment(p AdjustmentParams) (*StockOrder, error) {
	v := shared.NewValidationError()
	if strings.TrimSpace(p.Reason) == "" {
		v.Add("adjustment_reason", "is required")
	}
	o, err := newOrder(OrderTypeAdjustment, p.OrderNumber, p.Items, p.Notes, p.Actor, v)
	if err != nil {
		return nil, err
	}
	o.AdjustmentReason = strings.TrimSpace(p.Reason)
	o.recordCreated()
	return o, nil
}

func newOrder(t OrderType, number string, inputs []ItemInput, notes string, actor Actor, v *shared.ValidationError) (*StockOrder, error) {
	w, err := WorkflowFor(t)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(number) == "" {
		v.Add("order_number", "is required")
	}
	if actor.IsZero() {
		v.Add("actor", "is required")
	}
	validateItems(t, inputs, v)
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	o := &StockOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       number,
		Type:              t,
		Status:            w.InitialStatus(),
		Items:             make([]OrderItem, 0, len(inputs)),
		CreatedBy:         actor,
	}
	for _, in := range inputs {
		o.Items = append(o.Items, OrderItem{
			ID:          uuid.New(),
			ProductID:   in.ProductID,
			ProductName: strings.TrimSpace(in.ProductName),
			ExpectedQty: in.ExpectedQty,
			ReceivedQty: in.ReceivedQty,
			Condition:   in.Condition,
		})
	}
	o.History = []StatusEntry{o.newEntry(o.Status, actor, "", o.CreatedAt)}
	if n := strings.TrimSpace(notes); n != "" {
		o.appendNoteLine(o.Status, n)
	}
	return o, nil
}

func validateItems(t OrderType, inputs []ItemInput, v *shared.ValidationError) {
	if len(inputs) == 0 {
		v.Add("items", "at least one item is required")
		return
	}
	seen := make(map[uuid.UUID]int, len(inputs))
	for i, in := range inputs {
		field := fmt.Sprintf("items[%d]", i)
		if in.ProductID == uuid.Nil {
			v.Add(field+".product_id", "is required")
		} else if first, dup := seen[in.ProductID]; dup {
			v.Add(field+".product_id", "duplicates items[%d]", first)
		} else {
			seen[in.ProductID] = i
		}
		switch t {
		case OrderTypeAdjustment:
			if in.ExpectedQty.IsZero() {
				v.Add(field+".expected_qty", "must not be zero")
			}
		default:
			if !in.ExpectedQty.IsPositive() {
				v.Add(field+".expected_qty", "must be greater than zero")
			}
		}
		validateItemState(field, in.ReceivedQty, in.Condition, v)
	}
}

func validateItemState(field string, received *decimal.Decimal, condition *ItemCondition, v *shared.ValidationError) {
	if received != nil && received.IsNegative() {
		v.Add(field+".received_qty", "must not be negative")
	}
	if condition != nil && !condition.IsValid() {
		v.Add(field+".condition", "must be one of good, damaged, defective")
	}
}

// Workflow returns the workflow variant of the order
func (o *StockOrder) Workflow() Workflow {
	return workflows[o.Type]
}

// AllowedNext returns the statuses reachable from the current one
func (o *StockOrder) AllowedNext() []Status {
	if w := o.Workflow(); w != nil {
		return w.AllowedNext(o.Status)
	}
	return nil
}

// IsTerminal reports whether the order has reached a terminal status
func (o *StockOrder) IsTerminal() bool {
	w := o.Workflow()
	return w != nil && w.IsTerminal(o.Status)
}

// ItemUpdate carries values recorded for a line during a transition
type ItemUpdate struct {
	ProductID   uuid.UUID
	ReceivedQty *decimal.Decimal
	Condition   *ItemCondition
}

// TransitionCommand requests a move to a new status
type TransitionCommand struct {
	To      Status
	Updates []ItemUpdate
	Notes   string
	Actor   Actor
}

// ItemDelta is the stock contribution of one line
type ItemDelta struct {
	ProductID   uuid.UUID
	ProductName string
	Delta       decimal.Decimal
}

// TransitionEffects describes what a successful transition requires the
// caller to apply. Deltas is only set on the stock-applying edge.
type TransitionEffects struct {
	From          Status
	To            Status
	StockApplying bool
	Reason        MovementReason
	Deltas        []ItemDelta
}

// Transition validates and applies a status change. On error the order is
// left untouched.
func (o *StockOrder) Transition(cmd TransitionCommand) (*TransitionEffects, error) {
	if err := ValidateTransition(o.Type, o.Status, cmd.To); err != nil {
		return nil, err
	}
	v := shared.NewValidationError()
	if cmd.Actor.IsZero() {
		v.Add("actor", "is required")
	}
	for i, u := range cmd.Updates {
		validateItemState(fmt.Sprintf("items_update[%d]", i), u.ReceivedQty, u.Condition, v)
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	w := o.Workflow()
	o.mergeUpdates(cmd.Updates)

	from := o.Status
	now := time.Now().UTC()
	notes := strings.TrimSpace(cmd.Notes)
	o.Status = cmd.To
	o.UpdatedAt = now
	o.History = append(o.History, o.newEntry(cmd.To, cmd.Actor, notes, now))
	if notes != "" {
		o.appendNoteLine(cmd.To, notes)
	}

	effects := &TransitionEffects{
		From:          from,
		To:            cmd.To,
		StockApplying: w.IsStockApplying(from, cmd.To),
		Reason:        w.MovementReason(),
	}
	if effects.StockApplying {
		effects.Deltas = make([]ItemDelta, 0, len(o.Items))
		for _, item := range o.Items {
			effects.Deltas = append(effects.Deltas, ItemDelta{
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Delta:       w.Delta(item),
			})
		}
	}

	o.AddDomainEvent(NewStockOrderTransitionedEvent(o, from, cmd.Actor, effects.StockApplying))
	return effects, nil
}

// mergeUpdates applies updates by product id. Unmatched entries are ignored.
func (o *StockOrder) mergeUpdates(updates []ItemUpdate) {
	for _, u := range updates {
		for i := range o.Items {
			if o.Items[i].ProductID != u.ProductID {
				continue
			}
			if u.ReceivedQty != nil {
				q := *u.ReceivedQty
				o.Items[i].ReceivedQty = &q
			}
			if u.Condition != nil {
				c := *u.Condition
				o.Items[i].Condition = &c
			}
		}
	}
}

// AppendNote adds a line to the free-text log. Allowed in any status.
func (o *StockOrder) AppendNote(note string, actor Actor) error {
	note = strings.TrimSpace(note)
	v := shared.NewValidationError()
	if note == "" {
		v.Add("notes", "is required")
	}
	if actor.IsZero() {
		v.Add("actor", "is required")
	}
	if err := v.OrNil(); err != nil {
		return err
	}
	o.appendNoteLine(o.Status, note)
	o.UpdatedAt = time.Now().UTC()
	return nil
}

func (o *StockOrder) appendNoteLine(status Status, note string) {
	line := fmt.Sprintf("[%s] %s", status, note)
	if o.Notes == "" {
		o.Notes = line
		return
	}
	o.Notes += "\n" + line
}

func (o *StockOrder) newEntry(status Status, actor Actor, notes string, at time.Time) StatusEntry {
	return StatusEntry{
		ID:        uuid.New(),
		Status:    status,
		Timestamp: at,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Notes:     notes,
	}
}

func (o *StockOrder) recordCreated() {
	o.AddDomainEvent(NewStockOrderCreatedEvent(o))
}
