package handler

import (
	appstock "github.com/erp/stockflow/internal/application/stockorder"
	"github.com/erp/stockflow/internal/domain/stockorder"
	"github.com/erp/stockflow/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// Idempotency headers for creation endpoints
const (
	IdempotencyKeyHeader     = "Idempotency-Key"
	IdempotentReplayedHeader = "Idempotent-Replayed"
	maxIdempotencyKeyLength  = 128
)

// StockOrderHandler handles stock order API endpoints
type StockOrderHandler struct {
	BaseHandler
	creation   *appstock.CreationService
	transition *appstock.TransitionService
	query      *appstock.QueryService
}

// NewStockOrderHandler creates a new StockOrderHandler
func NewStockOrderHandler(
	creation *appstock.CreationService,
	transition *appstock.TransitionService,
	query *appstock.QueryService,
) *StockOrderHandler {
	return &StockOrderHandler{
		creation:   creation,
		transition: transition,
		query:      query,
	}
}

// CreateShipment godoc
// @ID           createStockOrderShipment
// @Summary      Create a shipment
// @Description  Registers an inbound supplier shipment in status draft
// @Tags         stock-orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Client key for safe retries"
// @Param        request body CreateShipmentBody true "Shipment"
// @Success      201 {object} StockOrderEnvelope
// @Success      200 {object} StockOrderEnvelope "Replayed request"
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /stock-orders/shipment [post]
func (h *StockOrderHandler) CreateShipment(c *gin.Context) {
	var body CreateShipmentBody
	if !h.BindJSON(c, &body, false) {
		return
	}
	h.create(c, func(actor stockorder.Actor, key string) (*appstock.CreateResult, error) {
		return h.creation.CreateShipment(c.Request.Context(), appstock.CreateShipmentRequest{
			Supplier:     body.Supplier,
			ExpectedDate: body.ExpectedDate,
			Items:        toItemRequests(body.Items),
			Notes:        body.Notes,
		}, actor, key)
	})
}

// CreateReturn godoc
// @ID           createStockOrderReturn
// @Summary      Create a customer return
// @Description  Registers a return against an existing customer order
// @Tags         stock-orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Client key for safe retries"
// @Param        request body CreateReturnBody true "Return"
// @Success      201 {object} StockOrderEnvelope
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /stock-orders/return [post]
func (h *StockOrderHandler) CreateReturn(c *gin.Context) {
	var body CreateReturnBody
	if !h.BindJSON(c, &body, false) {
		return
	}
	h.create(c, func(actor stockorder.Actor, key string) (*appstock.CreateResult, error) {
		return h.creation.CreateReturn(c.Request.Context(), appstock.CreateReturnRequest{
			LinkedOrderID: body.LinkedOrderID,
			CustomerName:  body.CustomerName,
			ReturnReason:  body.ReturnReason,
			Items:         toItemRequests(body.Items),
			Notes:         body.Notes,
		}, actor, key)
	})
}

// CreateAdjustment godoc
// @ID           createStockOrderAdjustment
// @Summary      Create a stock adjustment
// @Description  Requests a manual correction. Expected quantities are signed deltas.
// @Tags         stock-orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Client key for safe retries"
// @Param        request body CreateAdjustmentBody true "Adjustment"
// @Success      201 {object} StockOrderEnvelope
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /stock-orders/adjustment [post]
func (h *StockOrderHandler) CreateAdjustment(c *gin.Context) {
	var body CreateAdjustmentBody
	if !h.BindJSON(c, &body, false) {
		return
	}
	h.create(c, func(actor stockorder.Actor, key string) (*appstock.CreateResult, error) {
		return h.creation.CreateAdjustment(c.Request.Context(), appstock.CreateAdjustmentRequest{
			AdjustmentReason: body.AdjustmentReason,
			Items:            toItemRequests(body.Items),
			Notes:            body.Notes,
		}, actor, key)
	})
}

func (h *StockOrderHandler) create(c *gin.Context, run func(stockorder.Actor, string) (*appstock.CreateResult, error)) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	key := c.GetHeader(IdempotencyKeyHeader)
	if len(key) > maxIdempotencyKeyLength {
		h.ValidationError(c, []dto.ValidationDetail{{
			Field:   IdempotencyKeyHeader,
			Message: "Must be at most 128 characters",
		}})
		return
	}

	result, err := run(actor, key)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if result.Replayed {
		c.Header(IdempotentReplayedHeader, "true")
		h.Success(c, result.Order)
		return
	}
	h.Created(c, result.Order)
}

// Transition godoc
// @ID           transitionStockOrder
// @Summary      Move an order to its next status
// @Description  Validates the move against the order type's workflow. Stock-applying
// @Description  moves update inventory and write movements in the same transaction.
// @Tags         stock-orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Param        next_status path string true "Target status"
// @Param        request body TransitionBody false "Item updates, notes and expected version"
// @Success      200 {object} TransitionEnvelope
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /stock-orders/{id}/transition/{next_status} [post]
func (h *StockOrderHandler) Transition(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	var body TransitionBody
	if !h.BindJSON(c, &body, true) {
		return
	}

	result, err := h.transition.Transition(c.Request.Context(), id, c.Param("next_status"), body.toRequest(), actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// AppendNote godoc
// @ID           appendStockOrderNote
// @Summary      Append a note
// @Description  Appends a note without changing status. Allowed in terminal states.
// @Tags         stock-orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Param        request body NoteBody true "Note"
// @Success      200 {object} StockOrderEnvelope
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /stock-orders/{id}/notes [post]
func (h *StockOrderHandler) AppendNote(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	var body NoteBody
	if !h.BindJSON(c, &body, false) {
		return
	}

	order, err := h.transition.AppendNote(c.Request.Context(), id, body.Note, body.ExpectedVersion, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// List godoc
// @ID           listStockOrders
// @Summary      List stock orders
// @Description  Newest first, with per-status counts for the filtered set
// @Tags         stock-orders
// @Produce      json
// @Param        type query string false "Order type" Enums(shipment, return, adjustment)
// @Param        status query string false "Status"
// @Param        search query string false "Order number, supplier or customer"
// @Param        skip query int false "Offset" minimum(0) default(0)
// @Param        limit query int false "Page size" minimum(1) maximum(200) default(50)
// @Success      200 {object} ListEnvelope
// @Failure      400 {object} ErrorResponse
// @Router       /stock-orders [get]
func (h *StockOrderHandler) List(c *gin.Context) {
	var q ListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	result, err := h.query.List(c.Request.Context(), appstock.ListFilter{
		Type:   q.Type,
		Status: q.Status,
		Search: q.Search,
		Skip:   q.Skip,
		Limit:  q.Limit,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Get godoc
// @ID           getStockOrder
// @Summary      Get a stock order
// @Tags         stock-orders
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} StockOrderEnvelope
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /stock-orders/{id} [get]
func (h *StockOrderHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	order, err := h.query.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// PendingSummary godoc
// @ID           getStockOrderPendingSummary
// @Summary      Count orders awaiting action
// @Description  Non-terminal orders grouped by type and status
// @Tags         stock-orders
// @Produce      json
// @Success      200 {object} PendingSummaryEnvelope
// @Router       /stock-orders/pending-summary [get]
func (h *StockOrderHandler) PendingSummary(c *gin.Context) {
	summary, err := h.query.PendingSummary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// SearchLinkableOrders godoc
// @ID           searchLinkableOrders
// @Summary      Search customer orders a return can reference
// @Tags         stock-orders
// @Produce      json
// @Param        q query string false "Order number or customer name"
// @Param        limit query int false "Max results" minimum(1) maximum(50) default(20)
// @Success      200 {object} LinkedOrdersEnvelope
// @Failure      400 {object} ErrorResponse
// @Router       /stock-orders/linkable-orders [get]
func (h *StockOrderHandler) SearchLinkableOrders(c *gin.Context) {
	var q LinkableQuery
	if !h.BindQuery(c, &q) {
		return
	}
	orders, err := h.query.SearchLinkableOrders(c.Request.Context(), q.Q, q.Limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// ListMovements godoc
// @ID           listStockOrderMovements
// @Summary      List inventory movements written by an order
// @Tags         stock-orders
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} MovementsEnvelope
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /stock-orders/{id}/movements [get]
func (h *StockOrderHandler) ListMovements(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	movements, err := h.query.ListMovements(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, movements)
}

// AllowedTransitions godoc
// @ID           getStockOrderAllowedTransitions
// @Summary      List the statuses an order can move to
// @Tags         stock-orders
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} AllowedTransitionsEnvelope
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /stock-orders/{id}/allowed-transitions [get]
func (h *StockOrderHandler) AllowedTransitions(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	result, err := h.query.AllowedTransitions(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
