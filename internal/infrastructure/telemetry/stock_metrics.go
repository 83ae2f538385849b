package telemetry

import (
	"context"

	"github.com/erp/stockflow/internal/domain/shared"
	"github.com/erp/stockflow/internal/domain/stockorder"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// StockMetrics turns stock order domain events into counters.
// It is subscribed to the event bus like any other handler.
type StockMetrics struct {
	ordersCreated *Counter
	transitions   *Counter
	movements     *Counter
	movedQuantity *FloatCounter
	stockWarnings *Counter
}

// NewStockMetrics registers the stock order instruments on meter
func NewStockMetrics(meter metric.Meter) (*StockMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}
	var (
		m   StockMetrics
		err error
	)
	if m.ordersCreated, err = NewCounter(meter, "stockflow_orders_created_total",
		"Stock orders registered", "{order}"); err != nil {
		return nil, err
	}
	if m.transitions, err = NewCounter(meter, "stockflow_transitions_total",
		"Committed stock order status transitions", "{transition}"); err != nil {
		return nil, err
	}
	if m.movements, err = NewCounter(meter, "stockflow_movements_total",
		"Inventory movements written by stock-applying transitions", "{movement}"); err != nil {
		return nil, err
	}
	if m.movedQuantity, err = NewFloatCounter(meter, "stockflow_moved_quantity_total",
		"Absolute quantity moved by stock-applying transitions", "1"); err != nil {
		return nil, err
	}
	if m.stockWarnings, err = NewCounter(meter, "stockflow_stock_warnings_total",
		"Order lines skipped because their product does not exist", "{warning}"); err != nil {
		return nil, err
	}
	return &m, nil
}

// EventTypes implements shared.EventHandler
func (m *StockMetrics) EventTypes() []string {
	return []string{
		stockorder.EventTypeStockOrderCreated,
		stockorder.EventTypeStockOrderTransitioned,
		stockorder.EventTypeStockApplied,
	}
}

// Handle implements shared.EventHandler
func (m *StockMetrics) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *stockorder.StockOrderCreatedEvent:
		m.ordersCreated.Inc(ctx, AttrOrderType.String(string(e.OrderType)))
	case *stockorder.StockOrderTransitionedEvent:
		m.transitions.Inc(ctx,
			AttrOrderType.String(string(e.OrderType)),
			AttrFromStatus.String(string(e.FromStatus)),
			AttrToStatus.String(string(e.ToStatus)),
		)
	case *stockorder.StockAppliedEvent:
		for _, mv := range e.Movements {
			attrs := []attribute.KeyValue{
				AttrOrderType.String(string(e.OrderType)),
				AttrDirection.String(string(mv.Direction)),
				AttrReason.String(string(e.Reason)),
			}
			m.movements.Inc(ctx, attrs...)
			m.movedQuantity.Add(ctx, mv.QuantityChange.Abs().InexactFloat64(), attrs...)
		}
		if e.WarningCount > 0 {
			m.stockWarnings.Add(ctx, int64(e.WarningCount), AttrOrderType.String(string(e.OrderType)))
		}
	}
	return nil
}
