package handler

import (
	"time"

	appstock "github.com/erp/stockflow/internal/application/stockorder"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemBody is one order line in a create request
type ItemBody struct {
	ProductID   uuid.UUID        `json:"product_id" binding:"required"`
	ProductName string           `json:"product_name" binding:"max=200"`
	ExpectedQty decimal.Decimal  `json:"expected_qty" swaggertype:"string" example:"10"`
	ReceivedQty *decimal.Decimal `json:"received_qty,omitempty" binding:"omitempty,gte=0" swaggertype:"string"`
	Condition   *string          `json:"condition,omitempty" binding:"omitempty,stock_condition" enums:"good,damaged,defective"`
}

// CreateShipmentBody is the request body for POST /stock-orders/shipment
type CreateShipmentBody struct {
	Supplier     string     `json:"supplier" binding:"required,max=200" example:"Acme Supplies"`
	ExpectedDate *time.Time `json:"expected_date,omitempty"`
	Items        []ItemBody `json:"items" binding:"required,min=1,dive"`
	Notes        string     `json:"notes" binding:"max=2000"`
}

// CreateReturnBody is the request body for POST /stock-orders/return
type CreateReturnBody struct {
	LinkedOrderID uuid.UUID  `json:"linked_order_id" binding:"required"`
	CustomerName  string     `json:"customer_name" binding:"max=200"`
	ReturnReason  string     `json:"return_reason" binding:"max=2000"`
	Items         []ItemBody `json:"items" binding:"required,min=1,dive"`
	Notes         string     `json:"notes" binding:"max=2000"`
}

// CreateAdjustmentBody is the request body for POST /stock-orders/adjustment.
// Item quantities are signed.
type CreateAdjustmentBody struct {
	AdjustmentReason string     `json:"adjustment_reason" binding:"required,max=2000" example:"cycle count"`
	Items            []ItemBody `json:"items" binding:"required,min=1,dive"`
	Notes            string     `json:"notes" binding:"max=2000"`
}

// ItemUpdateBody records received quantity or condition during a transition
type ItemUpdateBody struct {
	ProductID   uuid.UUID        `json:"product_id" binding:"required"`
	ReceivedQty *decimal.Decimal `json:"received_qty,omitempty" binding:"omitempty,gte=0" swaggertype:"string"`
	Condition   *string          `json:"condition,omitempty" binding:"omitempty,stock_condition" enums:"good,damaged,defective"`
}

// TransitionBody is the optional body of a transition call
type TransitionBody struct {
	ItemsUpdate     []ItemUpdateBody `json:"items_update" binding:"omitempty,dive"`
	Notes           string           `json:"notes" binding:"max=2000"`
	ExpectedVersion *int             `json:"expected_version,omitempty" binding:"omitempty,gte=1"`
}

// NoteBody is the request body for POST /stock-orders/{id}/notes
type NoteBody struct {
	Note            string `json:"note" binding:"required,max=2000"`
	ExpectedVersion *int   `json:"expected_version,omitempty" binding:"omitempty,gte=1"`
}

// ListQuery holds list query parameters
type ListQuery struct {
	Type   string `form:"type" binding:"omitempty,oneof=shipment return adjustment"`
	Status string `form:"status" binding:"max=20"`
	Search string `form:"search" binding:"max=200"`
	Skip   int    `form:"skip" binding:"gte=0"`
	Limit  int    `form:"limit" binding:"omitempty,gte=1,lte=200"`
}

// LinkableQuery holds linkable-order search parameters
type LinkableQuery struct {
	Q     string `form:"q" binding:"max=200"`
	Limit int    `form:"limit" binding:"omitempty,gte=1,lte=50"`
}

func toItemRequests(items []ItemBody) []appstock.ItemRequest {
	out := make([]appstock.ItemRequest, len(items))
	for i, it := range items {
		out[i] = appstock.ItemRequest{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			ExpectedQty: it.ExpectedQty,
			ReceivedQty: it.ReceivedQty,
			Condition:   it.Condition,
		}
	}
	return out
}

func (b TransitionBody) toRequest() appstock.TransitionRequest {
	updates := make([]appstock.ItemUpdateRequest, len(b.ItemsUpdate))
	for i, u := range b.ItemsUpdate {
		updates[i] = appstock.ItemUpdateRequest{
			ProductID:   u.ProductID,
			ReceivedQty: u.ReceivedQty,
			Condition:   u.Condition,
		}
	}
	return appstock.TransitionRequest{
		ItemsUpdate:     updates,
		Notes:           b.Notes,
		ExpectedVersion: b.ExpectedVersion,
	}
}
