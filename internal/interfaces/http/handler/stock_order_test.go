package handler_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	appstock "github.com/erp/stockflow/internal/application/stockorder"
	"github.com/erp/stockflow/internal/interfaces/http/dto"
	"github.com/erp/stockflow/internal/interfaces/http/handler"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basePath = "/api/v1/stock-orders"

func orderPath(id uuid.UUID, suffix string) string {
	return basePath + "/" + id.String() + suffix
}

func TestStockOrderHandler_ShipmentLifecycle(t *testing.T) {
	s := newTestServer(t)
	widget := s.seedProduct("Widget", "5")

	w := s.as(http.MethodPost, basePath+"/shipment", map[string]any{
		"supplier": "Acme",
		"items":    []map[string]any{{"product_id": widget, "expected_qty": 10}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decodeData[appstock.StockOrderResponse](t, w)
	assert.Equal(t, "draft", order.Status)
	assert.Equal(t, "Widget", order.Items[0].ProductName)
	assert.Equal(t, []string{"confirmed"}, order.AllowedNext)
	assert.Equal(t, "u-1", order.CreatedByID)

	w = s.as(http.MethodPost, orderPath(order.ID, "/transition/confirmed"), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decodeData[appstock.TransitionResponse](t, w)
	assert.Equal(t, "draft", res.PreviousStatus)
	assert.Equal(t, "confirmed", res.NewStatus)
	assert.Empty(t, res.StockChanges)

	w = s.as(http.MethodPost, orderPath(order.ID, "/transition/received"), map[string]any{
		"items_update": []map[string]any{{"product_id": widget, "received_qty": 8}},
		"notes":        "dock 3",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res = decodeData[appstock.TransitionResponse](t, w)
	require.Len(t, res.StockChanges, 1)
	assert.True(t, decimal.NewFromInt(5).Equal(res.StockChanges[0].OldQuantity))
	assert.True(t, decimal.NewFromInt(13).Equal(res.StockChanges[0].NewQuantity))
	assert.True(t, decimal.NewFromInt(13).Equal(s.productQty(widget)))

	w = s.do(http.MethodGet, orderPath(order.ID, "/movements"), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	movements := decodeData[[]appstock.MovementResponse](t, w)
	require.Len(t, movements, 1)
	assert.Equal(t, "addition", movements[0].Direction)
	assert.Equal(t, "Alice", movements[0].ActorName)

	w = s.do(http.MethodGet, orderPath(order.ID, ""), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeData[appstock.StockOrderResponse](t, w)
	assert.Equal(t, "received", got.Status)
	assert.Len(t, got.StatusHistory, 3)

	w = s.do(http.MethodGet, orderPath(order.ID, "/allowed-transitions"), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	allowed := decodeData[appstock.AllowedTransitionsResponse](t, w)
	assert.True(t, allowed.Terminal)
	assert.Empty(t, allowed.Allowed)
}

func TestStockOrderHandler_InvalidTransition(t *testing.T) {
	s := newTestServer(t)
	widget := s.seedProduct("Widget", "5")
	w := s.as(http.MethodPost, basePath+"/shipment", map[string]any{
		"supplier": "Acme",
		"items":    []map[string]any{{"product_id": widget, "expected_qty": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	order := decodeData[appstock.StockOrderResponse](t, w)

	w = s.as(http.MethodPost, orderPath(order.ID, "/transition/received"), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decode(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, dto.ErrCodeInvalidTransition, env.Error.Code)
	assert.NotEmpty(t, env.Error.RequestID)
	var details dto.TransitionDetails
	require.NoError(t, json.Unmarshal(env.Error.Details, &details))
	assert.Equal(t, "shipment", details.Type)
	assert.Equal(t, "draft", details.From)
	assert.Equal(t, "received", details.To)
	assert.Equal(t, []string{"confirmed"}, details.Allowed)
	assert.True(t, decimal.NewFromInt(5).Equal(s.productQty(widget)))
}

func TestStockOrderHandler_DamagedReturnLeavesStock(t *testing.T) {
	s := newTestServer(t)
	widget := s.seedProduct("Widget", "5")
	linked := s.seedLinkedOrder("SO-1", "Jane Doe")

	w := s.as(http.MethodPost, basePath+"/return", map[string]any{
		"linked_order_id": linked,
		"return_reason":   "broken on arrival",
		"items":           []map[string]any{{"product_id": widget, "expected_qty": 2}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decodeData[appstock.StockOrderResponse](t, w)
	assert.Equal(t, "registered", order.Status)
	assert.Equal(t, "Jane Doe", order.CustomerName)

	require.Equal(t, http.StatusOK, s.as(http.MethodPost, orderPath(order.ID, "/transition/inspected"), nil).Code)
	w = s.as(http.MethodPost, orderPath(order.ID, "/transition/approved"), map[string]any{
		"items_update": []map[string]any{{"product_id": widget, "condition": "damaged"}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.True(t, decimal.NewFromInt(5).Equal(s.productQty(widget)))
}

func TestStockOrderHandler_ReturnUnknownLinkedOrder(t *testing.T) {
	s := newTestServer(t)
	widget := s.seedProduct("Widget", "5")

	w := s.as(http.MethodPost, basePath+"/return", map[string]any{
		"linked_order_id": uuid.New(),
		"items":           []map[string]any{{"product_id": widget, "expected_qty": 1}},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, decode(t, w).Error.Code)
}

func TestStockOrderHandler_AdjustmentWarnsOnMissingProduct(t *testing.T) {
	s := newTestServer(t)
	widget := s.seedProduct("Widget", "2")
	ghost := uuid.New()

	w := s.as(http.MethodPost, basePath+"/adjustment", map[string]any{
		"adjustment_reason": "shrinkage",
		"items": []map[string]any{
			{"product_id": widget, "expected_qty": -3},
			{"product_id": ghost, "product_name": "Ghost", "expected_qty": 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decodeData[appstock.StockOrderResponse](t, w)

	w = s.as(http.MethodPost, orderPath(order.ID, "/transition/applied"), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decodeData[appstock.TransitionResponse](t, w)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, ghost, res.Warnings[0].ProductID)
	assert.Equal(t, appstock.WarningProductNotFound, res.Warnings[0].Code)
	assert.True(t, s.productQty(widget).IsZero())
}

func TestStockOrderHandler_StaleVersionConflict(t *testing.T) {
	s := newTestServer(t)
	widget := s.seedProduct("Widget", "2")
	w := s.as(http.MethodPost, basePath+"/adjustment", map[string]any{
		"adjustment_reason": "recount",
		"items":             []map[string]any{{"product_id": widget, "expected_qty": 3}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	order := decodeData[appstock.StockOrderResponse](t, w)

	w = s.as(http.MethodPost, orderPath(order.ID, "/transition/applied"), map[string]any{
		"expected_version": order.Version + 1,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, dto.ErrCodeConcurrencyConflict, decode(t, w).Error.Code)
	assert.True(t, decimal.NewFromInt(2).Equal(s.productQty(widget)))
}

func TestStockOrderHandler_AppendNote(t *testing.T) {
	s := newTestServer(t)
	widget := s.seedProduct("Widget", "2")
	w := s.as(http.MethodPost, basePath+"/adjustment", map[string]any{
		"adjustment_reason": "recount",
		"items":             []map[string]any{{"product_id": widget, "expected_qty": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	order := decodeData[appstock.StockOrderResponse](t, w)

	w = s.as(http.MethodPost, orderPath(order.ID, "/notes"), map[string]any{"note": "double-checked"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decodeData[appstock.StockOrderResponse](t, w)
	assert.Contains(t, got.Notes, "double-checked")
	assert.Equal(t, "requested", got.Status)

	w = s.as(http.MethodPost, orderPath(order.ID, "/notes"), map[string]any{"note": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStockOrderHandler_IdempotentCreate(t *testing.T) {
	s := newTestServer(t)
	widget := s.seedProduct("Widget", "2")
	body := map[string]any{
		"supplier": "Acme",
		"items":    []map[string]any{{"product_id": widget, "expected_qty": 4}},
	}
	headers := map[string]string{
		"X-User-ID":                  "u-1",
		handler.IdempotencyKeyHeader: "req-42",
	}

	first := s.do(http.MethodPost, basePath+"/shipment", body, headers)
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
	second := s.do(http.MethodPost, basePath+"/shipment", body, headers)
	require.Equal(t, http.StatusOK, second.Code, second.Body.String())

	assert.Equal(t, "true", second.Header().Get(handler.IdempotentReplayedHeader))
	assert.Empty(t, first.Header().Get(handler.IdempotentReplayedHeader))
	assert.Equal(t,
		decodeData[appstock.StockOrderResponse](t, first).ID,
		decodeData[appstock.StockOrderResponse](t, second).ID)

	list := decodeData[appstock.ListResponse](t, s.do(http.MethodGet, basePath, nil, nil))
	assert.Equal(t, int64(1), list.Total)

	headers[handler.IdempotencyKeyHeader] = strings.Repeat("k", 129)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, basePath+"/shipment", body, headers).Code)
}

func TestStockOrderHandler_MutationsRequireActor(t *testing.T) {
	s := newTestServer(t)
	widget := s.seedProduct("Widget", "2")

	w := s.do(http.MethodPost, basePath+"/shipment", map[string]any{
		"supplier": "Acme",
		"items":    []map[string]any{{"product_id": widget, "expected_qty": 1}},
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrCodeUnauthorized, decode(t, w).Error.Code)

	w = s.do(http.MethodPost, orderPath(uuid.New(), "/transition/confirmed"), nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, basePath, nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStockOrderHandler_RequestValidation(t *testing.T) {
	s := newTestServer(t)
	widget := s.seedProduct("Widget", "2")

	tests := []struct {
		name      string
		path      string
		body      any
		wantCode  string
		wantField string
	}{
		{
			name:      "no items",
			path:      "/shipment",
			body:      map[string]any{"supplier": "Acme", "items": []any{}},
			wantCode:  dto.ErrCodeValidation,
			wantField: "items",
		},
		{
			name:      "missing supplier",
			path:      "/shipment",
			body:      map[string]any{"items": []map[string]any{{"product_id": widget, "expected_qty": 1}}},
			wantCode:  dto.ErrCodeValidation,
			wantField: "supplier",
		},
		{
			name: "unknown condition",
			path: "/shipment",
			body: map[string]any{"supplier": "Acme", "items": []map[string]any{
				{"product_id": widget, "expected_qty": 1, "condition": "soggy"},
			}},
			wantCode:  dto.ErrCodeValidation,
			wantField: "items[0].condition",
		},
		{
			name: "negative received quantity",
			path: "/shipment",
			body: map[string]any{"supplier": "Acme", "items": []map[string]any{
				{"product_id": widget, "expected_qty": 1, "received_qty": -1},
			}},
			wantCode:  dto.ErrCodeValidation,
			wantField: "items[0].received_qty",
		},
		{
			name:      "missing product id",
			path:      "/adjustment",
			body:      map[string]any{"adjustment_reason": "x", "items": []map[string]any{{"expected_qty": 1}}},
			wantCode:  dto.ErrCodeValidation,
			wantField: "items[0].product_id",
		},
		{
			name:      "malformed json",
			path:      "/shipment",
			body:      `{"supplier": `,
			wantCode:  dto.ErrCodeInvalidJSON,
			wantField: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.as(http.MethodPost, basePath+tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			env := decode(t, w)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			var details []dto.ValidationDetail
			require.NoError(t, json.Unmarshal(env.Error.Details, &details))
			require.NotEmpty(t, details)
			assert.Equal(t, tt.wantField, details[0].Field)
		})
	}
}

func TestStockOrderHandler_BadPathID(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, basePath+"/not-a-uuid", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, orderPath(uuid.New(), ""), nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStockOrderHandler_ListAndSummaries(t *testing.T) {
	s := newTestServer(t)
	widget := s.seedProduct("Widget", "2")
	s.seedLinkedOrder("SO-100", "Jane Doe")
	s.seedLinkedOrder("SO-200", "John Roe")

	for _, supplier := range []string{"Acme", "Globex", "Acme Labs"} {
		w := s.as(http.MethodPost, basePath+"/shipment", map[string]any{
			"supplier": supplier,
			"items":    []map[string]any{{"product_id": widget, "expected_qty": 1}},
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := s.do(http.MethodGet, basePath, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeData[appstock.ListResponse](t, w)
	assert.Equal(t, int64(3), list.Total)
	assert.Equal(t, 50, list.Limit)
	assert.Equal(t, int64(3), list.StatusCounts["draft"])

	w = s.do(http.MethodGet, basePath+"?type=shipment&search=acme&limit=1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list = decodeData[appstock.ListResponse](t, w)
	assert.Equal(t, int64(2), list.Total)
	assert.Len(t, list.Items, 1)

	for _, q := range []string{"limit=500", "skip=-1", "type=transfer", "status=shipped"} {
		w = s.do(http.MethodGet, basePath+"?"+q, nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}

	w = s.do(http.MethodGet, basePath+"/pending-summary", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := decodeData[appstock.PendingSummaryResponse](t, w)
	assert.Equal(t, int64(3), summary.Total)

	w = s.do(http.MethodGet, basePath+"/linkable-orders?q=SO-1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	linked := decodeData[[]appstock.LinkedOrderResponse](t, w)
	require.Len(t, linked, 1)
	assert.Equal(t, "Jane Doe", linked[0].CustomerName)
}

func TestHealthHandler(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var body handler.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
}
