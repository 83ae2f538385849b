package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	appstock "github.com/erp/stockflow/internal/application/stockorder"
	"github.com/erp/stockflow/internal/domain/shared"
	"github.com/erp/stockflow/internal/domain/stockorder"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type services struct {
	db         *gorm.DB
	creation   *appstock.CreationService
	transition *appstock.TransitionService
	query      *appstock.QueryService
}

func newServices(t *testing.T) *services {
	t.Helper()
	return newServicesOn(newTestDB(t))
}

func newServicesOn(db *gorm.DB) *services {
	logger := zap.NewNop()
	orders := NewGormStockOrderRepository(db)
	movements := NewGormMovementRepository(db)
	linked := NewGormLinkedOrderSource(db)
	return &services{
		db:         db,
		creation:   appstock.NewCreationService(orders, NewGormInventoryStore(db), linked, logger),
		transition: appstock.NewTransitionService(NewGormTransactionScope(db), appstock.NewStockMutationEngine(logger), logger),
		query:      appstock.NewQueryService(orders, movements, linked, logger),
	}
}

func TestScenario_ShipmentReceived(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	b1 := seedProduct(t, s.db, "Widget", "5")

	created, err := s.creation.CreateShipment(ctx, appstock.CreateShipmentRequest{
		Supplier: "Acme",
		Items:    []appstock.ItemRequest{{ProductID: b1, ExpectedQty: dec("10")}},
	}, testActor, "")
	require.NoError(t, err)
	assert.Equal(t, "draft", created.Order.Status)
	assert.Equal(t, "Widget", created.Order.Items[0].ProductName)
	id := created.Order.ID

	res, err := s.transition.Transition(ctx, id, "confirmed", appstock.TransitionRequest{}, testActor)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", res.NewStatus)
	assert.Empty(t, res.StockChanges)

	_, err = s.transition.Transition(ctx, id, "confirmed", appstock.TransitionRequest{}, testActor)
	var invalid *stockorder.InvalidTransitionError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, []string{"received"}, invalid.AllowedStrings())

	res, err = s.transition.Transition(ctx, id, "received", appstock.TransitionRequest{
		ItemsUpdate: []appstock.ItemUpdateRequest{{ProductID: b1, ReceivedQty: decPtr("8")}},
		Notes:       "dock 3",
	}, testActor)
	require.NoError(t, err)
	assert.Equal(t, "received", res.NewStatus)
	require.Len(t, res.StockChanges, 1)
	assert.True(t, dec("13").Equal(res.StockChanges[0].NewQuantity))
	assert.Empty(t, res.Warnings)

	assert.True(t, dec("13").Equal(productQty(t, s.db, b1)))

	movements, err := s.query.ListMovements(ctx, id)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.True(t, dec("8").Equal(movements[0].QuantityChange))
	assert.Equal(t, "addition", movements[0].Direction)
	assert.Equal(t, "shipment_receipt", movements[0].Reason)

	order, err := s.query.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Len(t, order.StatusHistory, 3)
	assert.Empty(t, order.AllowedNext)
	assert.Contains(t, order.Notes, "[received] dock 3")
}

func TestScenario_DamagedReturnApproved(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	b1 := seedProduct(t, s.db, "Widget", "5")
	o1 := seedLinkedOrder(t, s.db, "SO-1", "Jane Doe", time.Now().UTC())

	created, err := s.creation.CreateReturn(ctx, appstock.CreateReturnRequest{
		LinkedOrderID: o1,
		Items:         []appstock.ItemRequest{{ProductID: b1, ExpectedQty: dec("2")}},
	}, testActor, "")
	require.NoError(t, err)
	assert.Equal(t, "registered", created.Order.Status)
	assert.Equal(t, "Jane Doe", created.Order.CustomerName)
	assert.Equal(t, "SO-1", created.Order.LinkedOrderNumber)
	id := created.Order.ID

	_, err = s.transition.Transition(ctx, id, "inspected", appstock.TransitionRequest{}, testActor)
	require.NoError(t, err)

	res, err := s.transition.Transition(ctx, id, "approved", appstock.TransitionRequest{
		ItemsUpdate: []appstock.ItemUpdateRequest{{ProductID: b1, Condition: strPtr("damaged")}},
	}, testActor)
	require.NoError(t, err)
	assert.Equal(t, "approved", res.NewStatus)

	assert.True(t, dec("5").Equal(productQty(t, s.db, b1)))
	movements, err := s.query.ListMovements(ctx, id)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.True(t, movements[0].QuantityChange.IsZero())
	assert.Equal(t, "removal", movements[0].Direction)
	assert.Equal(t, "customer_return", movements[0].Reason)
}

func TestScenario_AdjustmentClampsAtZero(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	b1 := seedProduct(t, s.db, "Widget", "2")

	created, err := s.creation.CreateAdjustment(ctx, appstock.CreateAdjustmentRequest{
		AdjustmentReason: "shrinkage",
		Items:            []appstock.ItemRequest{{ProductID: b1, ExpectedQty: dec("-3")}},
	}, testActor, "")
	require.NoError(t, err)
	assert.Equal(t, "requested", created.Order.Status)

	res, err := s.transition.Transition(ctx, created.Order.ID, "applied", appstock.TransitionRequest{}, testActor)
	require.NoError(t, err)
	require.Len(t, res.StockChanges, 1)

	assert.True(t, productQty(t, s.db, b1).IsZero())
	movements, err := s.query.ListMovements(ctx, created.Order.ID)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.True(t, dec("-3").Equal(movements[0].QuantityChange))
	assert.True(t, movements[0].NewQuantity.IsZero())
	assert.Equal(t, "manual_adjustment", movements[0].Reason)
}

func TestScenario_MissingProductWarnsAndCommits(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	known := seedProduct(t, s.db, "Widget", "1")
	missing := uuid.New()

	created, err := s.creation.CreateAdjustment(ctx, appstock.CreateAdjustmentRequest{
		AdjustmentReason: "recount",
		Items: []appstock.ItemRequest{
			{ProductID: known, ExpectedQty: dec("4")},
			{ProductID: missing, ProductName: "Ghost", ExpectedQty: dec("2")},
		},
	}, testActor, "")
	require.NoError(t, err)

	res, err := s.transition.Transition(ctx, created.Order.ID, "applied", appstock.TransitionRequest{}, testActor)
	require.NoError(t, err)
	require.Len(t, res.StockChanges, 1)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, missing, res.Warnings[0].ProductID)
	assert.Equal(t, appstock.WarningProductNotFound, res.Warnings[0].Code)
	assert.True(t, dec("5").Equal(productQty(t, s.db, known)))

	movements, err := s.query.ListMovements(ctx, created.Order.ID)
	require.NoError(t, err)
	assert.Len(t, movements, 1)
}

func TestScenario_StaleVersionHasNoSideEffects(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	b1 := seedProduct(t, s.db, "Widget", "2")

	created, err := s.creation.CreateAdjustment(ctx, appstock.CreateAdjustmentRequest{
		AdjustmentReason: "recount",
		Items:            []appstock.ItemRequest{{ProductID: b1, ExpectedQty: dec("3")}},
	}, testActor, "")
	require.NoError(t, err)

	stale := created.Order.Version + 1
	_, err = s.transition.Transition(ctx, created.Order.ID, "applied",
		appstock.TransitionRequest{ExpectedVersion: &stale}, testActor)
	assert.True(t, errors.Is(err, shared.ErrConcurrencyConflict))

	assert.True(t, dec("2").Equal(productQty(t, s.db, b1)))
	order, err := s.query.GetByID(ctx, created.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, "requested", order.Status)
	assert.Len(t, order.StatusHistory, 1)
}

func TestScenario_PendingSummaryAndList(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	b1 := seedProduct(t, s.db, "Widget", "2")

	for i := 0; i < 3; i++ {
		_, err := s.creation.CreateShipment(ctx, appstock.CreateShipmentRequest{
			Supplier: "Acme",
			Items:    []appstock.ItemRequest{{ProductID: b1, ExpectedQty: dec("1")}},
		}, testActor, "")
		require.NoError(t, err)
	}
	adj, err := s.creation.CreateAdjustment(ctx, appstock.CreateAdjustmentRequest{
		AdjustmentReason: "recount",
		Items:            []appstock.ItemRequest{{ProductID: b1, ExpectedQty: dec("1")}},
	}, testActor, "")
	require.NoError(t, err)
	_, err = s.transition.Transition(ctx, adj.Order.ID, "applied", appstock.TransitionRequest{}, testActor)
	require.NoError(t, err)

	summary, err := s.query.PendingSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.Total)
	counts := map[string]int64{}
	for _, e := range summary.Entries {
		counts[e.Type+"/"+e.Status] = e.Count
	}
	assert.Equal(t, int64(3), counts["shipment/draft"])
	assert.Equal(t, int64(0), counts["adjustment/requested"])

	list, err := s.query.List(ctx, appstock.ListFilter{Type: "shipment", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), list.Total)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, int64(3), list.StatusCounts["draft"])
	assert.Equal(t, int64(0), list.StatusCounts["received"])
}
