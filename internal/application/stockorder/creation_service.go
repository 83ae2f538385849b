package stockorder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/erp/stockflow/internal/domain/shared"
	"github.com/erp/stockflow/internal/domain/stockorder"
	"github.com/erp/stockflow/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateResult is a created order. Replayed is set when the order was
// returned from an earlier request with the same idempotency key.
type CreateResult struct {
	Order    StockOrderResponse
	Replayed bool
}

// CreationService registers new stock orders in their initial status
type CreationService struct {
	orderRepo      stockorder.OrderRepository
	inventory      stockorder.InventoryStore
	linkedOrders   stockorder.LinkedOrderSource
	idempotency    shared.IdempotencyStore
	idempotencyTTL time.Duration
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewCreationService creates a new CreationService
func NewCreationService(
	orderRepo stockorder.OrderRepository,
	inventory stockorder.InventoryStore,
	linkedOrders stockorder.LinkedOrderSource,
	logger *zap.Logger,
) *CreationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CreationService{
		orderRepo:    orderRepo,
		inventory:    inventory,
		linkedOrders: linkedOrders,
		logger:       logger,
	}
}

// SetEventPublisher sets the event publisher for domain events
func (s *CreationService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetIdempotencyStore enables Idempotency-Key handling
func (s *CreationService) SetIdempotencyStore(store shared.IdempotencyStore, ttl time.Duration) {
	s.idempotency = store
	s.idempotencyTTL = ttl
}

// CreateShipment registers an incoming shipment in draft status
func (s *CreationService) CreateShipment(ctx context.Context, req CreateShipmentRequest, actor stockorder.Actor, idempotencyKey string) (*CreateResult, error) {
	return s.create(ctx, stockorder.OrderTypeShipment, actor, idempotencyKey, func(number string) (*stockorder.StockOrder, error) {
		return stockorder.NewShipment(stockorder.ShipmentParams{
			OrderNumber:  number,
			Supplier:     req.Supplier,
			ExpectedDate: req.ExpectedDate,
			Items:        s.withProductNames(ctx, req.Items),
			Notes:        req.Notes,
			Actor:        actor,
		})
	})
}

// CreateReturn registers a customer return in registered status. The linked
// order must exist.
func (s *CreationService) CreateReturn(ctx context.Context, req CreateReturnRequest, actor stockorder.Actor, idempotencyKey string) (*CreateResult, error) {
	if req.LinkedOrderID == uuid.Nil {
		v := shared.NewValidationError()
		v.Add("linked_order_id", "is required")
		return nil, v
	}
	linked, err := s.linkedOrders.FindByID(ctx, req.LinkedOrderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NotFoundError("linked order", req.LinkedOrderID)
		}
		return nil, fmt.Errorf("resolve linked order: %w", err)
	}

	customer := req.CustomerName
	if customer == "" {
		customer = linked.CustomerName
	}
	return s.create(ctx, stockorder.OrderTypeReturn, actor, idempotencyKey, func(number string) (*stockorder.StockOrder, error) {
		return stockorder.NewReturn(stockorder.ReturnParams{
			OrderNumber:       number,
			LinkedOrderID:     linked.ID,
			LinkedOrderNumber: linked.OrderNumber,
			CustomerName:      customer,
			ReturnReason:      req.ReturnReason,
			Items:             s.withProductNames(ctx, req.Items),
			Notes:             req.Notes,
			Actor:             actor,
		})
	})
}

// CreateAdjustment registers a manual adjustment in requested status
func (s *CreationService) CreateAdjustment(ctx context.Context, req CreateAdjustmentRequest, actor stockorder.Actor, idempotencyKey string) (*CreateResult, error) {
	return s.create(ctx, stockorder.OrderTypeAdjustment, actor, idempotencyKey, func(number string) (*stockorder.StockOrder, error) {
		return stockorder.NewAdjustment(stockorder.AdjustmentParams{
			OrderNumber: number,
			Reason:      req.AdjustmentReason,
			Items:       s.withProductNames(ctx, req.Items),
			Notes:       req.Notes,
			Actor:       actor,
		})
	})
}

func (s *CreationService) create(
	ctx context.Context,
	orderType stockorder.OrderType,
	actor stockorder.Actor,
	idempotencyKey string,
	build func(number string) (*stockorder.StockOrder, error),
) (*CreateResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "stock_order", "create",
		telemetry.WithAttribute("order_type", string(orderType)))
	defer span.End()

	key := s.scopedKey(orderType, actor, idempotencyKey)
	if key != "" {
		replay, err := s.reserve(ctx, key)
		if err != nil || replay != nil {
			return replay, err
		}
	}

	order, err := s.buildAndSave(ctx, orderType, build)
	if err != nil {
		s.release(ctx, key)
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttributes(span, "order_id", order.ID.String(), "order_number", order.OrderNumber)

	if key != "" {
		if err := s.idempotency.Complete(ctx, key, order.ID.String(), s.idempotencyTTL); err != nil {
			s.logger.Warn("Failed to complete idempotency key", zap.String("key", key), zap.Error(err))
		}
	}

	s.logger.Info("Stock order created",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.String("type", string(order.Type)),
		zap.Int("items", len(order.Items)),
		zap.String("actor_id", actor.ID))

	s.publish(ctx, order)
	return &CreateResult{Order: ToStockOrderResponse(order)}, nil
}

// buildAndSave retries once with a fresh number when a concurrent create took
// the generated one.
func (s *CreationService) buildAndSave(ctx context.Context, orderType stockorder.OrderType, build func(string) (*stockorder.StockOrder, error)) (*stockorder.StockOrder, error) {
	order, err := s.buildAndSaveOnce(ctx, orderType, build)
	if errors.Is(err, stockorder.ErrOrderNumberTaken) {
		s.logger.Warn("Order number taken, retrying", zap.String("type", string(orderType)))
		order, err = s.buildAndSaveOnce(ctx, orderType, build)
	}
	return order, err
}

func (s *CreationService) buildAndSaveOnce(ctx context.Context, orderType stockorder.OrderType, build func(string) (*stockorder.StockOrder, error)) (*stockorder.StockOrder, error) {
	number, err := s.orderRepo.GenerateOrderNumber(ctx, orderType)
	if err != nil {
		return nil, fmt.Errorf("generate order number: %w", err)
	}
	order, err := build(number)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("save stock order: %w", err)
	}
	return order, nil
}

// reserve claims the key. It returns a result when the key belongs to a
// request that already completed.
func (s *CreationService) reserve(ctx context.Context, key string) (*CreateResult, error) {
	rec, err := s.idempotency.Reserve(ctx, key, s.idempotencyTTL)
	if err != nil {
		return nil, fmt.Errorf("reserve idempotency key: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	if rec.State != shared.IdempotencyCompleted {
		return nil, shared.ErrDuplicateRequest
	}

	id, err := uuid.Parse(rec.ResourceID)
	if err != nil {
		return nil, fmt.Errorf("idempotency record for %s holds invalid id %q", key, rec.ResourceID)
	}
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Replaying idempotent create", zap.String("key", key), zap.String("order_id", id.String()))
	return &CreateResult{Order: ToStockOrderResponse(order), Replayed: true}, nil
}

func (s *CreationService) release(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.idempotency.Release(ctx, key); err != nil {
		s.logger.Warn("Failed to release idempotency key", zap.String("key", key), zap.Error(err))
	}
}

func (s *CreationService) scopedKey(orderType stockorder.OrderType, actor stockorder.Actor, key string) string {
	if s.idempotency == nil || key == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s:%s", actor.ID, orderType, key)
}

// withProductNames fills in missing product names from the inventory store.
// Unknown products keep an empty name; stock application reports them later.
func (s *CreationService) withProductNames(ctx context.Context, items []ItemRequest) []stockorder.ItemInput {
	inputs := toItemInputs(items)
	if s.inventory == nil {
		return inputs
	}
	for i := range inputs {
		if inputs[i].ProductName != "" || inputs[i].ProductID == uuid.Nil {
			continue
		}
		product, err := s.inventory.FindProduct(ctx, inputs[i].ProductID)
		if err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				s.logger.Warn("Product lookup failed", zap.String("product_id", inputs[i].ProductID.String()), zap.Error(err))
			}
			continue
		}
		inputs[i].ProductName = product.Name
	}
	return inputs
}

func (s *CreationService) publish(ctx context.Context, order *stockorder.StockOrder) {
	events := order.GetDomainEvents()
	order.ClearDomainEvents()
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Error("Failed to publish stock order events",
			zap.String("order_id", order.ID.String()), zap.Error(err))
	}
}
