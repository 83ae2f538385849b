package stockorder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/erp/stockflow/internal/domain/shared"
	"github.com/erp/stockflow/internal/domain/stockorder"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type creationFixture struct {
	orders    *MockOrderRepository
	inventory *MockInventoryStore
	linked    *MockLinkedOrderSource
	publisher *MockEventPublisher
	service   *CreationService
}

func newCreationFixture() *creationFixture {
	f := &creationFixture{
		orders:    new(MockOrderRepository),
		inventory: new(MockInventoryStore),
		linked:    new(MockLinkedOrderSource),
		publisher: NewMockEventPublisher(),
	}
	f.service = NewCreationService(f.orders, f.inventory, f.linked, nil)
	f.service.SetEventPublisher(f.publisher)
	return f
}

func TestCreationService_CreateShipment(t *testing.T) {
	f := newCreationFixture()
	productID := uuid.New()
	f.orders.On("GenerateOrderNumber", mock.Anything, stockorder.OrderTypeShipment).Return("SHP-2026-00007", nil)
	f.inventory.On("FindProduct", mock.Anything, productID).
		Return(&stockorder.ProductStock{ProductID: productID, Name: "Blue Widget", Quantity: dec(3)}, nil)
	f.orders.On("Save", mock.Anything, mock.AnythingOfType("*stockorder.StockOrder")).Return(nil)

	res, err := f.service.CreateShipment(context.Background(), CreateShipmentRequest{
		Supplier: "Acme",
		Items:    []ItemRequest{{ProductID: productID, ExpectedQty: dec(10)}},
		Notes:    "first delivery",
	}, testActor, "")
	require.NoError(t, err)

	assert.False(t, res.Replayed)
	order := res.Order
	assert.Equal(t, "SHP-2026-00007", order.OrderNumber)
	assert.Equal(t, "draft", order.Status)
	assert.Equal(t, []string{"confirmed"}, order.AllowedNext)
	assert.Equal(t, "Blue Widget", order.Items[0].ProductName)
	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, "Alice", order.StatusHistory[0].ActorName)
	assert.Equal(t, "[draft] first delivery", order.Notes)
	assert.Len(t, f.publisher.GetEventsByType(stockorder.EventTypeStockOrderCreated), 1)
}

func TestCreationService_ValidationErrorSavesNothing(t *testing.T) {
	f := newCreationFixture()
	f.orders.On("GenerateOrderNumber", mock.Anything, stockorder.OrderTypeAdjustment).Return("ADJ-2026-00001", nil)

	_, err := f.service.CreateAdjustment(context.Background(), CreateAdjustmentRequest{
		AdjustmentReason: "recount",
		Items:            []ItemRequest{{ProductID: uuid.New(), ProductName: "x", ExpectedQty: dec(0)}},
	}, testActor, "")

	var ve *shared.ValidationError
	require.ErrorAs(t, err, &ve)
	f.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreationService_RetriesTakenOrderNumber(t *testing.T) {
	f := newCreationFixture()
	f.orders.On("GenerateOrderNumber", mock.Anything, stockorder.OrderTypeShipment).Return("SHP-2026-00007", nil).Once()
	f.orders.On("GenerateOrderNumber", mock.Anything, stockorder.OrderTypeShipment).Return("SHP-2026-00008", nil).Once()
	f.orders.On("Save", mock.Anything, mock.AnythingOfType("*stockorder.StockOrder")).Return(stockorder.ErrOrderNumberTaken).Once()
	f.orders.On("Save", mock.Anything, mock.AnythingOfType("*stockorder.StockOrder")).Return(nil).Once()

	res, err := f.service.CreateShipment(context.Background(), CreateShipmentRequest{
		Supplier: "Acme",
		Items:    []ItemRequest{{ProductID: uuid.New(), ProductName: "Widget", ExpectedQty: dec(1)}},
	}, testActor, "")
	require.NoError(t, err)

	assert.Equal(t, "SHP-2026-00008", res.Order.OrderNumber)
	f.orders.AssertNumberOfCalls(t, "Save", 2)
	assert.Len(t, f.publisher.GetEventsByType(stockorder.EventTypeStockOrderCreated), 1)
}

func TestCreationService_OrderNumberRetryIsBounded(t *testing.T) {
	f := newCreationFixture()
	f.orders.On("GenerateOrderNumber", mock.Anything, stockorder.OrderTypeAdjustment).Return("ADJ-2026-00003", nil)
	f.orders.On("Save", mock.Anything, mock.AnythingOfType("*stockorder.StockOrder")).Return(stockorder.ErrOrderNumberTaken)

	_, err := f.service.CreateAdjustment(context.Background(), CreateAdjustmentRequest{
		AdjustmentReason: "recount",
		Items:            []ItemRequest{{ProductID: uuid.New(), ProductName: "Widget", ExpectedQty: dec(-3)}},
	}, testActor, "")

	assert.True(t, errors.Is(err, shared.ErrConcurrencyConflict))
	f.orders.AssertNumberOfCalls(t, "Save", 2)
	assert.Empty(t, f.publisher.GetEventsByType(stockorder.EventTypeStockOrderCreated))
}

func TestCreationService_CreateReturn(t *testing.T) {
	t.Run("linked order missing", func(t *testing.T) {
		f := newCreationFixture()
		linkedID := uuid.New()
		f.linked.On("FindByID", mock.Anything, linkedID).Return(nil, shared.ErrNotFound)

		_, err := f.service.CreateReturn(context.Background(), CreateReturnRequest{
			LinkedOrderID: linkedID,
			Items:         []ItemRequest{{ProductID: uuid.New(), ProductName: "x", ExpectedQty: dec(2)}},
		}, testActor, "")

		assert.True(t, errors.Is(err, shared.ErrNotFound))
		assert.Contains(t, err.Error(), "linked order")
		f.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("customer defaults from linked order", func(t *testing.T) {
		f := newCreationFixture()
		linkedID := uuid.New()
		f.linked.On("FindByID", mock.Anything, linkedID).
			Return(&stockorder.LinkedOrder{ID: linkedID, OrderNumber: "SO-1001", CustomerName: "Carol"}, nil)
		f.orders.On("GenerateOrderNumber", mock.Anything, stockorder.OrderTypeReturn).Return("RTN-2026-00001", nil)
		f.orders.On("Save", mock.Anything, mock.Anything).Return(nil)

		res, err := f.service.CreateReturn(context.Background(), CreateReturnRequest{
			LinkedOrderID: linkedID,
			ReturnReason:  "wrong size",
			Items:         []ItemRequest{{ProductID: uuid.New(), ProductName: "Shirt", ExpectedQty: dec(2)}},
		}, testActor, "")
		require.NoError(t, err)

		assert.Equal(t, "registered", res.Order.Status)
		assert.Equal(t, "Carol", res.Order.CustomerName)
		assert.Equal(t, "SO-1001", res.Order.LinkedOrderNumber)
	})
}

func TestCreationService_Idempotency(t *testing.T) {
	ttl := time.Hour
	req := CreateAdjustmentRequest{
		AdjustmentReason: "recount",
		Items:            []ItemRequest{{ProductID: uuid.New(), ProductName: "Widget", ExpectedQty: dec(-1)}},
	}
	key := "u-1:adjustment:abc"

	t.Run("first request completes key", func(t *testing.T) {
		f := newCreationFixture()
		store := new(MockIdempotencyStore)
		f.service.SetIdempotencyStore(store, ttl)
		store.On("Reserve", mock.Anything, key, ttl).Return(nil, nil)
		store.On("Complete", mock.Anything, key, mock.Anything, ttl).Return(nil)
		f.orders.On("GenerateOrderNumber", mock.Anything, stockorder.OrderTypeAdjustment).Return("ADJ-2026-00001", nil)
		f.orders.On("Save", mock.Anything, mock.Anything).Return(nil)

		res, err := f.service.CreateAdjustment(context.Background(), req, testActor, "abc")
		require.NoError(t, err)
		assert.False(t, res.Replayed)
		store.AssertCalled(t, "Complete", mock.Anything, key, res.Order.ID.String(), ttl)
	})

	t.Run("completed key replays original order", func(t *testing.T) {
		f := newCreationFixture()
		store := new(MockIdempotencyStore)
		f.service.SetIdempotencyStore(store, ttl)

		existing, err := stockorder.NewAdjustment(stockorder.AdjustmentParams{
			OrderNumber: "ADJ-2026-00001", Reason: "recount",
			Items: toItemInputs(req.Items), Actor: testActor,
		})
		require.NoError(t, err)
		store.On("Reserve", mock.Anything, key, ttl).
			Return(&shared.IdempotencyRecord{State: shared.IdempotencyCompleted, ResourceID: existing.ID.String()}, nil)
		f.orders.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)

		res, err := f.service.CreateAdjustment(context.Background(), req, testActor, "abc")
		require.NoError(t, err)
		assert.True(t, res.Replayed)
		assert.Equal(t, existing.ID, res.Order.ID)
		f.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("in-flight key is rejected", func(t *testing.T) {
		f := newCreationFixture()
		store := new(MockIdempotencyStore)
		f.service.SetIdempotencyStore(store, ttl)
		store.On("Reserve", mock.Anything, key, ttl).
			Return(&shared.IdempotencyRecord{State: shared.IdempotencyInFlight}, nil)

		_, err := f.service.CreateAdjustment(context.Background(), req, testActor, "abc")
		assert.True(t, errors.Is(err, shared.ErrDuplicateRequest))
	})

	t.Run("failed create releases key", func(t *testing.T) {
		f := newCreationFixture()
		store := new(MockIdempotencyStore)
		f.service.SetIdempotencyStore(store, ttl)
		store.On("Reserve", mock.Anything, key, ttl).Return(nil, nil)
		store.On("Release", mock.Anything, key).Return(nil)
		f.orders.On("GenerateOrderNumber", mock.Anything, stockorder.OrderTypeAdjustment).Return("", errors.New("db down"))

		_, err := f.service.CreateAdjustment(context.Background(), req, testActor, "abc")
		require.Error(t, err)
		store.AssertCalled(t, "Release", mock.Anything, key)
		store.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
