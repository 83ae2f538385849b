package stockorder

import (
	"context"
	"fmt"

	"github.com/erp/stockflow/internal/domain/shared"
	"github.com/erp/stockflow/internal/domain/stockorder"
	"github.com/erp/stockflow/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TransitionService moves orders through their workflow. Loading the
// order, applying stock, writing movements and persisting the new status
// happen in one transaction guarded by the order's version.
type TransitionService struct {
	txScope        TransactionScope
	engine         *StockMutationEngine
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewTransitionService creates a new TransitionService
func NewTransitionService(txScope TransactionScope, engine *StockMutationEngine, logger *zap.Logger) *TransitionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if engine == nil {
		engine = NewStockMutationEngine(logger)
	}
	return &TransitionService{
		txScope: txScope,
		engine:  engine,
		logger:  logger,
	}
}

// SetEventPublisher sets the event publisher for domain events
func (s *TransitionService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Transition moves the order to nextStatus. A rejected transition has no
// side effects.
func (s *TransitionService) Transition(
	ctx context.Context,
	orderID uuid.UUID,
	nextStatus string,
	req TransitionRequest,
	actor stockorder.Actor,
) (*TransitionResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "stock_order", "transition",
		telemetry.WithAttribute("order_id", orderID.String()),
		telemetry.WithAttribute("next_status", nextStatus))
	defer span.End()

	var (
		order    *stockorder.StockOrder
		effects  *stockorder.TransitionEffects
		mutation *MutationResult
	)

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		order, err = s.load(ctx, repos, orderID, req.ExpectedVersion)
		if err != nil {
			return err
		}

		effects, err = order.Transition(stockorder.TransitionCommand{
			To:      stockorder.Status(nextStatus),
			Updates: toItemUpdates(req.ItemsUpdate),
			Notes:   req.Notes,
			Actor:   actor,
		})
		if err != nil {
			return err
		}

		if effects.StockApplying {
			mutation, err = s.engine.Apply(ctx, repos, order, effects, actor)
			if err != nil {
				return err
			}
			order.AddDomainEvent(stockorder.NewStockAppliedEvent(order, effects.Reason, mutation.Movements, len(mutation.Warnings)))
		}

		return repos.OrderRepo().SaveWithLock(ctx, order)
	})
	if err != nil {
		s.logger.Info("Stock order transition rejected",
			zap.String("order_id", orderID.String()),
			zap.String("next_status", nextStatus),
			zap.String("actor_id", actor.ID),
			zap.Error(err))
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttributes(span,
		"order_type", string(order.Type),
		"stock_applying", effects.StockApplying)
	telemetry.SetOK(span)

	resp := &TransitionResponse{
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		PreviousStatus: string(effects.From),
		NewStatus:      string(order.Status),
		Version:        order.Version,
	}
	if mutation != nil {
		resp.StockChanges = mutation.Changes
		resp.Warnings = mutation.Warnings
	}

	s.logger.Info("Stock order transitioned",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.String("type", string(order.Type)),
		zap.String("from", string(effects.From)),
		zap.String("to", string(order.Status)),
		zap.Bool("stock_applied", effects.StockApplying),
		zap.Int("stock_changes", len(resp.StockChanges)),
		zap.Int("warnings", len(resp.Warnings)),
		zap.String("actor_id", actor.ID))

	s.publish(ctx, order)
	return resp, nil
}

// AppendNote adds a line to the order's free-text log in any status
func (s *TransitionService) AppendNote(ctx context.Context, orderID uuid.UUID, note string, expectedVersion *int, actor stockorder.Actor) (*StockOrderResponse, error) {
	var order *stockorder.StockOrder
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		order, err = s.load(ctx, repos, orderID, expectedVersion)
		if err != nil {
			return err
		}
		if err := order.AppendNote(note, actor); err != nil {
			return err
		}
		return repos.OrderRepo().SaveWithLock(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Stock order note appended",
		zap.String("order_id", order.ID.String()),
		zap.String("actor_id", actor.ID))

	resp := ToStockOrderResponse(order)
	return &resp, nil
}

func (s *TransitionService) load(ctx context.Context, repos TransactionalRepositories, orderID uuid.UUID, expectedVersion *int) (*stockorder.StockOrder, error) {
	order, err := repos.OrderRepo().FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if expectedVersion != nil && *expectedVersion != order.Version {
		return nil, shared.NewDomainError(shared.CodeConcurrencyConflict,
			fmt.Sprintf("stock order %s is at version %d, expected %d", order.OrderNumber, order.Version, *expectedVersion))
	}
	return order, nil
}

func (s *TransitionService) publish(ctx context.Context, order *stockorder.StockOrder) {
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
