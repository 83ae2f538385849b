package stockorder

import (
	"context"
	"errors"
	"fmt"

	"github.com/erp/stockflow/internal/domain/shared"
	"github.com/erp/stockflow/internal/domain/stockorder"
	"go.uber.org/zap"
)

// MutationResult is what the engine did for one stock-applying transition
type MutationResult struct {
	Changes   []StockChange
	Warnings  []StockWarning
	Movements []*stockorder.InventoryMovement
}

// StockMutationEngine applies item deltas to the inventory store and writes
// one movement per applied item. It must run inside the transition's
// transaction so that a failed transition leaves stock untouched.
type StockMutationEngine struct {
	logger *zap.Logger
}

// NewStockMutationEngine creates a new StockMutationEngine
func NewStockMutationEngine(logger *zap.Logger) *StockMutationEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StockMutationEngine{logger: logger}
}

// Apply applies every delta in effects. Items whose product does not exist
// are reported as warnings and produce no movement.
func (e *StockMutationEngine) Apply(
	ctx context.Context,
	repos TransactionalRepositories,
	order *stockorder.StockOrder,
	effects *stockorder.TransitionEffects,
	actor stockorder.Actor,
) (*MutationResult, error) {
	result := &MutationResult{
		Changes:   make([]StockChange, 0, len(effects.Deltas)),
		Movements: make([]*stockorder.InventoryMovement, 0, len(effects.Deltas)),
	}

	for _, d := range effects.Deltas {
		qc, err := repos.InventoryStore().ApplyDelta(ctx, d.ProductID, d.Delta)
		if errors.Is(err, shared.ErrNotFound) {
			e.logger.Warn("Product not found while applying stock",
				zap.String("order_number", order.OrderNumber),
				zap.String("product_id", d.ProductID.String()),
				zap.String("delta", d.Delta.String()))
			result.Warnings = append(result.Warnings, StockWarning{
				ProductID:   d.ProductID,
				ProductName: d.ProductName,
				Delta:       d.Delta,
				Code:        WarningProductNotFound,
				Message:     fmt.Sprintf("product %s not found; stock not applied", d.ProductID),
			})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("apply delta to product %s: %w", d.ProductID, err)
		}

		name := d.ProductName
		if name == "" {
			name = qc.ProductName
		}
		movement := stockorder.NewInventoryMovement(order, stockorder.MovementParams{
			ProductID:   d.ProductID,
			ProductName: name,
			Delta:       d.Delta,
			OldQuantity: qc.OldQuantity,
			NewQuantity: qc.NewQuantity,
			Reason:      effects.Reason,
			Actor:       actor,
		})
		if err := repos.MovementRepo().Create(ctx, movement); err != nil {
			return nil, fmt.Errorf("record movement for product %s: %w", d.ProductID, err)
		}

		result.Movements = append(result.Movements, movement)
		result.Changes = append(result.Changes, StockChange{
			ProductID:   d.ProductID,
			ProductName: name,
			OldQuantity: qc.OldQuantity,
			NewQuantity: qc.NewQuantity,
			Delta:       d.Delta,
			MovementID:  movement.ID,
		})
	}
	return result, nil
}
