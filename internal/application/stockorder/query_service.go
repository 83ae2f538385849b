package stockorder

import (
	"context"
	"strings"

	"github.com/erp/stockflow/internal/domain/shared"
	"github.com/erp/stockflow/internal/domain/stockorder"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Linkable order search limits
const (
	DefaultLinkableLimit = 20
	MaxLinkableLimit     = 50
)

// QueryService serves read-only views over stock orders. Results reflect
// the latest committed state.
type QueryService struct {
	orderRepo    stockorder.OrderRepository
	movementRepo stockorder.MovementRepository
	linkedOrders stockorder.LinkedOrderSource
	logger       *zap.Logger
}

// NewQueryService creates a new QueryService
func NewQueryService(
	orderRepo stockorder.OrderRepository,
	movementRepo stockorder.MovementRepository,
	linkedOrders stockorder.LinkedOrderSource,
	logger *zap.Logger,
) *QueryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueryService{
		orderRepo:    orderRepo,
		movementRepo: movementRepo,
		linkedOrders: linkedOrders,
		logger:       logger,
	}
}

// List returns a page of orders with per-status counts for the type and
// search filter.
func (s *QueryService) List(ctx context.Context, f ListFilter) (*ListResponse, error) {
	filter, err := s.toOrderFilter(f)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	counts, err := s.orderRepo.CountByStatus(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]StockOrderListItem, len(orders))
	for i := range orders {
		items[i] = ToStockOrderListItem(&orders[i])
	}

	return &ListResponse{
		Items:        items,
		Total:        total,
		Skip:         filter.Page.Skip,
		Limit:        filter.Page.Limit,
		StatusCounts: statusBuckets(filter.Type, counts),
	}, nil
}

// GetByID returns one order with items and history
func (s *QueryService) GetByID(ctx context.Context, id uuid.UUID) (*StockOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToStockOrderResponse(order)
	return &resp, nil
}

// PendingSummary counts orders in non-terminal statuses grouped by type and
// status. Every non-terminal pair is present, with zero when empty.
func (s *QueryService) PendingSummary(ctx context.Context) (*PendingSummaryResponse, error) {
	counts, err := s.orderRepo.PendingSummary(ctx)
	if err != nil {
		return nil, err
	}

	type key struct {
		t stockorder.OrderType
		s stockorder.Status
	}
	byKey := make(map[key]int64, len(counts))
	for _, c := range counts {
		byKey[key{c.Type, c.Status}] += c.Count
	}

	resp := &PendingSummaryResponse{Entries: []PendingSummaryEntry{}}
	pending := stockorder.NonTerminalStatuses()
	for _, t := range stockorder.OrderTypes() {
		for _, st := range pending[t] {
			n := byKey[key{t, st}]
			resp.Entries = append(resp.Entries, PendingSummaryEntry{Type: string(t), Status: string(st), Count: n})
			resp.Total += n
		}
	}
	return resp, nil
}

// SearchLinkableOrders finds existing customer orders a return can reference
func (s *QueryService) SearchLinkableOrders(ctx context.Context, query string, limit int) ([]LinkedOrderResponse, error) {
	if limit <= 0 {
		limit = DefaultLinkableLimit
	}
	if limit > MaxLinkableLimit {
		limit = MaxLinkableLimit
	}
	orders, err := s.linkedOrders.Search(ctx, strings.TrimSpace(query), limit)
	if err != nil {
		return nil, err
	}
	out := make([]LinkedOrderResponse, len(orders))
	for i, o := range orders {
		out[i] = LinkedOrderResponse{
			ID:           o.ID,
			OrderNumber:  o.OrderNumber,
			CustomerName: o.CustomerName,
			Status:       o.Status,
			CreatedAt:    o.CreatedAt,
		}
	}
	return out, nil
}

// ListMovements returns the ledger entries written for an order
func (s *QueryService) ListMovements(ctx context.Context, orderID uuid.UUID) ([]MovementResponse, error) {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return nil, err
	}
	movements, err := s.movementRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	out := make([]MovementResponse, len(movements))
	for i := range movements {
		out[i] = ToMovementResponse(&movements[i])
	}
	return out, nil
}

// AllowedTransitions returns the statuses the order can move to next
func (s *QueryService) AllowedTransitions(ctx context.Context, orderID uuid.UUID) (*AllowedTransitionsResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &AllowedTransitionsResponse{
		OrderID:  order.ID,
		Type:     string(order.Type),
		Status:   string(order.Status),
		Allowed:  statusStrings(order.AllowedNext()),
		Terminal: order.IsTerminal(),
	}, nil
}

func (s *QueryService) toOrderFilter(f ListFilter) (stockorder.OrderFilter, error) {
	v := shared.NewValidationError()
	filter := stockorder.OrderFilter{
		Search: strings.TrimSpace(f.Search),
		Page:   shared.Page{Skip: f.Skip, Limit: f.Limit}.Normalize(),
	}

	if f.Type != "" {
		t, ok := stockorder.ParseOrderType(f.Type)
		if !ok {
			v.Add("type", "must be one of shipment, return, adjustment")
		}
		filter.Type = t
	}
	if f.Status != "" {
		st := stockorder.Status(strings.ToLower(strings.TrimSpace(f.Status)))
		switch {
		case filter.Type != "" && filter.Type.IsValid():
			if w, _ := stockorder.WorkflowFor(filter.Type); !w.IsValidStatus(st) {
				v.Add("status", "is not a %s status", filter.Type)
			}
		case !stockorder.IsKnownStatus(st):
			v.Add("status", "is not a known status")
		}
		filter.Status = st
	}
	return filter, v.OrNil()
}

// statusBuckets returns a count for every status of t (or of every type),
// zero-filled.
func statusBuckets(t stockorder.OrderType, counts []stockorder.StatusCount) map[string]int64 {
	buckets := make(map[string]int64)
	types := stockorder.OrderTypes()
	if t != "" {
		types = []stockorder.OrderType{t}
	}
	for _, ot := range types {
		w, err := stockorder.WorkflowFor(ot)
		if err != nil {
			continue
		}
		for _, st := range w.Statuses() {
			buckets[string(st)] = 0
		}
	}
	for _, c := range counts {
		buckets[string(c.Status)] += c.Count
	}
	return buckets
}
