package stockorder

import (
	"time"

	"github.com/erp/stockflow/internal/domain/stockorder"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemRequest is one requested order line
type ItemRequest struct {
	ProductID   uuid.UUID        `json:"product_id"`
	ProductName string           `json:"product_name,omitempty"`
	ExpectedQty decimal.Decimal  `json:"expected_qty"`
	ReceivedQty *decimal.Decimal `json:"received_qty,omitempty"`
	Condition   *string          `json:"condition,omitempty"`
}

// CreateShipmentRequest is the input for creating a shipment
type CreateShipmentRequest struct {
	Supplier     string        `json:"supplier"`
	ExpectedDate *time.Time    `json:"expected_date,omitempty"`
	Items        []ItemRequest `json:"items"`
	Notes        string        `json:"notes,omitempty"`
}

// CreateReturnRequest is the input for creating a customer return
type CreateReturnRequest struct {
	LinkedOrderID uuid.UUID     `json:"linked_order_id"`
	CustomerName  string        `json:"customer_name,omitempty"`
	ReturnReason  string        `json:"return_reason,omitempty"`
	Items         []ItemRequest `json:"items"`
	Notes         string        `json:"notes,omitempty"`
}

// CreateAdjustmentRequest is the input for creating a manual adjustment
type CreateAdjustmentRequest struct {
	AdjustmentReason string        `json:"adjustment_reason"`
	Items            []ItemRequest `json:"items"`
	Notes            string        `json:"notes,omitempty"`
}

// ItemUpdateRequest records values for a line during a transition
type ItemUpdateRequest struct {
	ProductID   uuid.UUID        `json:"product_id"`
	ReceivedQty *decimal.Decimal `json:"received_qty,omitempty"`
	Condition   *string          `json:"condition,omitempty"`
}

// TransitionRequest is the body of a transition call
type TransitionRequest struct {
	ItemsUpdate []ItemUpdateRequest `json:"items_update,omitempty"`
	Notes       string              `json:"notes,omitempty"`
	// ExpectedVersion rejects the call when the order changed since it was read
	ExpectedVersion *int `json:"expected_version,omitempty"`
}

// OrderItemResponse is an order line in API responses
type OrderItemResponse struct {
	ID          uuid.UUID        `json:"id"`
	ProductID   uuid.UUID        `json:"product_id"`
	ProductName string           `json:"product_name"`
	ExpectedQty decimal.Decimal  `json:"expected_qty"`
	ReceivedQty *decimal.Decimal `json:"received_qty,omitempty"`
	Condition   *string          `json:"condition,omitempty"`
}

// StatusEntryResponse is a status history entry in API responses
type StatusEntryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	ActorID   string    `json:"actor_id"`
	ActorName string    `json:"actor_name"`
	Notes     string    `json:"notes,omitempty"`
}

// StockOrderResponse is the full order representation
type StockOrderResponse struct {
	ID                uuid.UUID             `json:"id"`
	OrderNumber       string                `json:"order_number"`
	Type              string                `json:"type"`
	Status            string                `json:"status"`
	Items             []OrderItemResponse   `json:"items"`
	StatusHistory     []StatusEntryResponse `json:"status_history"`
	AllowedNext       []string              `json:"allowed_next"`
	Supplier          string                `json:"supplier,omitempty"`
	ExpectedDate      *time.Time            `json:"expected_date,omitempty"`
	LinkedOrderID     *uuid.UUID            `json:"linked_order_id,omitempty"`
	LinkedOrderNumber string                `json:"linked_order_number,omitempty"`
	CustomerName      string                `json:"customer_name,omitempty"`
	ReturnReason      string                `json:"return_reason,omitempty"`
	AdjustmentReason  string                `json:"adjustment_reason,omitempty"`
	Notes             string                `json:"notes"`
	CreatedByID       string                `json:"created_by_id"`
	CreatedByName     string                `json:"created_by_name"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
	Version           int                   `json:"version"`
}

// StockOrderListItem is the compact order representation used in lists
type StockOrderListItem struct {
	ID            uuid.UUID `json:"id"`
	OrderNumber   string    `json:"order_number"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	ItemCount     int       `json:"item_count"`
	Supplier      string    `json:"supplier,omitempty"`
	CustomerName  string    `json:"customer_name,omitempty"`
	CreatedByName string    `json:"created_by_name"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StockChange is the effect of a stock-applying transition on one product
type StockChange struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	OldQuantity decimal.Decimal `json:"old_quantity"`
	NewQuantity decimal.Decimal `json:"new_quantity"`
	Delta       decimal.Decimal `json:"delta"`
	MovementID  uuid.UUID       `json:"movement_id"`
}

// WarningProductNotFound flags an item whose product no longer exists
const WarningProductNotFound = "PRODUCT_NOT_FOUND"

// StockWarning reports an item that could not be applied
type StockWarning struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Delta       decimal.Decimal `json:"delta"`
	Code        string          `json:"code"`
	Message     string          `json:"message"`
}

// TransitionResponse is the result of a successful transition
type TransitionResponse struct {
	OrderID        uuid.UUID      `json:"order_id"`
	OrderNumber    string         `json:"order_number"`
	PreviousStatus string         `json:"previous_status"`
	NewStatus      string         `json:"new_status"`
	Version        int            `json:"version"`
	StockChanges   []StockChange  `json:"stock_changes,omitempty"`
	Warnings       []StockWarning `json:"warnings,omitempty"`
}

// ListFilter holds list query parameters
type ListFilter struct {
	Type   string
	Status string
	Search string
	Skip   int
	Limit  int
}

// ListResponse is a page of orders plus per-status counts
type ListResponse struct {
	Items        []StockOrderListItem `json:"items"`
	Total        int64                `json:"total"`
	Skip         int                  `json:"skip"`
	Limit        int                  `json:"limit"`
	StatusCounts map[string]int64     `json:"status_counts"`
}

// PendingSummaryEntry counts non-terminal orders of one type and status
type PendingSummaryEntry struct {
	Type   string `json:"type"`
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// PendingSummaryResponse is the pending-summary aggregation
type PendingSummaryResponse struct {
	Entries []PendingSummaryEntry `json:"entries"`
	Total   int64                 `json:"total"`
}

// LinkedOrderResponse is an existing customer order a return can reference
type LinkedOrderResponse struct {
	ID           uuid.UUID `json:"id"`
	OrderNumber  string    `json:"order_number"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// MovementResponse is a movement ledger entry
type MovementResponse struct {
	ID               uuid.UUID       `json:"id"`
	ProductID        uuid.UUID       `json:"product_id"`
	ProductName      string          `json:"product_name"`
	Direction        string          `json:"direction"`
	QuantityChange   decimal.Decimal `json:"quantity_change"`
	OldQuantity      decimal.Decimal `json:"old_quantity"`
	NewQuantity      decimal.Decimal `json:"new_quantity"`
	Reason           string          `json:"reason"`
	StockOrderID     uuid.UUID       `json:"stock_order_id"`
	StockOrderNumber string          `json:"stock_order_number"`
	ActorID          string          `json:"actor_id"`
	ActorName        string          `json:"actor_name"`
	CreatedAt        time.Time       `json:"created_at"`
}

// AllowedTransitionsResponse lists what an order can move to next
type AllowedTransitionsResponse struct {
	OrderID  uuid.UUID `json:"order_id"`
	Type     string    `json:"type"`
	Status   string    `json:"status"`
	Allowed  []string  `json:"allowed"`
	Terminal bool      `json:"terminal"`
}

// ToStockOrderResponse converts the domain order to its API representation
func ToStockOrderResponse(o *stockorder.StockOrder) StockOrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			ExpectedQty: it.ExpectedQty,
			ReceivedQty: it.ReceivedQty,
		}
		if it.Condition != nil {
			c := string(*it.Condition)
			items[i].Condition = &c
		}
	}
	history := make([]StatusEntryResponse, len(o.History))
	for i, h := range o.History {
		history[i] = StatusEntryResponse{
			Status:    string(h.Status),
			Timestamp: h.Timestamp,
			ActorID:   h.ActorID,
			ActorName: h.ActorName,
			Notes:     h.Notes,
		}
	}
	return StockOrderResponse{
		ID:                o.ID,
		OrderNumber:       o.OrderNumber,
		Type:              string(o.Type),
		Status:            string(o.Status),
		Items:             items,
		StatusHistory:     history,
		AllowedNext:       statusStrings(o.AllowedNext()),
		Supplier:          o.Supplier,
		ExpectedDate:      o.ExpectedDate,
		LinkedOrderID:     o.LinkedOrderID,
		LinkedOrderNumber: o.LinkedOrderNumber,
		CustomerName:      o.CustomerName,
		ReturnReason:      o.ReturnReason,
		AdjustmentReason:  o.AdjustmentReason,
		Notes:             o.Notes,
		CreatedByID:       o.CreatedBy.ID,
		CreatedByName:     o.CreatedBy.Name,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		Version:           o.Version,
	}
}

// ToStockOrderListItem converts the domain order to its list representation
func ToStockOrderListItem(o *stockorder.StockOrder) StockOrderListItem {
	return StockOrderListItem{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		Type:          string(o.Type),
		Status:        string(o.Status),
		ItemCount:     len(o.Items),
		Supplier:      o.Supplier,
		CustomerName:  o.CustomerName,
		CreatedByName: o.CreatedBy.Name,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// ToMovementResponse converts a ledger entry to its API representation
func ToMovementResponse(m *stockorder.InventoryMovement) MovementResponse {
	return MovementResponse{
		ID:               m.ID,
		ProductID:        m.ProductID,
		ProductName:      m.ProductName,
		Direction:        string(m.Direction),
		QuantityChange:   m.QuantityChange,
		OldQuantity:      m.OldQuantity,
		NewQuantity:      m.NewQuantity,
		Reason:           string(m.Reason),
		StockOrderID:     m.StockOrderID,
		StockOrderNumber: m.StockOrderNumber,
		ActorID:          m.ActorID,
		ActorName:        m.ActorName,
		CreatedAt:        m.CreatedAt,
	}
}

func statusStrings(in []stockorder.Status) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}

func toItemInputs(items []ItemRequest) []stockorder.ItemInput {
	out := make([]stockorder.ItemInput, len(items))
	for i, it := range items {
		out[i] = stockorder.ItemInput{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			ExpectedQty: it.ExpectedQty,
			ReceivedQty: it.ReceivedQty,
			Condition:   toCondition(it.Condition),
		}
	}
	return out
}

func toItemUpdates(updates []ItemUpdateRequest) []stockorder.ItemUpdate {
	out := make([]stockorder.ItemUpdate, len(updates))
	for i, u := range updates {
		out[i] = stockorder.ItemUpdate{
			ProductID:   u.ProductID,
			ReceivedQty: u.ReceivedQty,
			Condition:   toCondition(u.Condition),
		}
	}
	return out
}

func toCondition(s *string) *stockorder.ItemCondition {
	if s == nil {
		return nil
	}
	c := stockorder.ItemCondition(*s)
	return &c
}
