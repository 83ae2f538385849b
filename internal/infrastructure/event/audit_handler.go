package event

import (
	"context"

	"github.com/erp/stockflow/internal/domain/shared"
	"github.com/erp/stockflow/internal/domain/stockorder"
	"github.com/erp/stockflow/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// AuditLogHandler writes one structured log line per stock order event
type AuditLogHandler struct {
	logger *zap.Logger
}

// NewAuditLogHandler creates a new AuditLogHandler
func NewAuditLogHandler(l *zap.Logger) *AuditLogHandler {
	if l == nil {
		l = zap.NewNop()
	}
	return &AuditLogHandler{logger: l.Named("audit")}
}

// EventTypes implements shared.EventHandler
func (h *AuditLogHandler) EventTypes() []string {
	return []string{
		stockorder.EventTypeStockOrderCreated,
		stockorder.EventTypeStockOrderTransitioned,
		stockorder.EventTypeStockApplied,
	}
}

// Handle implements shared.EventHandler
func (h *AuditLogHandler) Handle(ctx context.Context, e shared.DomainEvent) error {
	fields := []zap.Field{
		zap.String("event_id", e.EventID().String()),
		zap.String("event_type", e.EventType()),
		zap.String("order_id", e.AggregateID().String()),
		zap.Time("occurred_at", e.OccurredAt()),
	}
	if traceID := logger.GetTraceID(ctx); traceID != "" {
		fields = append(fields, zap.String("trace_id", traceID))
	}

	switch ev := e.(type) {
	case *stockorder.StockOrderCreatedEvent:
		fields = append(fields,
			zap.String("order_number", ev.OrderNumber),
			zap.String("order_type", string(ev.OrderType)),
			zap.String("status", string(ev.Status)),
			zap.Int("item_count", ev.ItemCount),
			zap.String("actor_id", ev.ActorID))
	case *stockorder.StockOrderTransitionedEvent:
		fields = append(fields,
			zap.String("order_number", ev.OrderNumber),
			zap.String("order_type", string(ev.OrderType)),
			zap.String("from_status", string(ev.FromStatus)),
			zap.String("to_status", string(ev.ToStatus)),
			zap.Bool("stock_applying", ev.StockApplying),
			zap.String("actor_id", ev.ActorID))
	case *stockorder.StockAppliedEvent:
		fields = append(fields,
			zap.String("order_number", ev.OrderNumber),
			zap.String("reason", string(ev.Reason)),
			zap.Int("movements", len(ev.Movements)),
			zap.Int("warnings", ev.WarningCount))
	}

	h.logger.Info("Stock order event", fields...)
	return nil
}

var _ shared.EventHandler = (*AuditLogHandler)(nil)
