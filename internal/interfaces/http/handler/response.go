package handler

import (
	appstock "github.com/erp/stockflow/internal/application/stockorder"
	"github.com/erp/stockflow/internal/interfaces/http/dto"
)

// APIResponse is the typed envelope used in API documentation
// @Description Standard API response wrapper with typed data field
type APIResponse[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// ErrorResponse represents an error API response for OpenAPI documentation
// @Description Standard error response
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// Documentation aliases for generic envelopes
type (
	StockOrderEnvelope         = APIResponse[appstock.StockOrderResponse]
	TransitionEnvelope         = APIResponse[appstock.TransitionResponse]
	ListEnvelope               = APIResponse[appstock.ListResponse]
	PendingSummaryEnvelope     = APIResponse[appstock.PendingSummaryResponse]
	LinkedOrdersEnvelope       = APIResponse[[]appstock.LinkedOrderResponse]
	MovementsEnvelope          = APIResponse[[]appstock.MovementResponse]
	AllowedTransitionsEnvelope = APIResponse[appstock.AllowedTransitionsResponse]
)
