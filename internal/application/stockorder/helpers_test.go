package stockorder

import (
	"testing"

	"github.com/erp/stockflow/internal/domain/stockorder"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testActor = stockorder.Actor{ID: "u-1", Name: "Alice"}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func newShipment(t *testing.T, productID uuid.UUID, expected int64) *stockorder.StockOrder {
	t.Helper()
	o, err := stockorder.NewShipment(stockorder.ShipmentParams{
		OrderNumber: "SHP-2026-00001",
		Supplier:    "Acme",
		Items:       []stockorder.ItemInput{{ProductID: productID, ProductName: "Widget", ExpectedQty: dec(expected)}},
		Actor:       testActor,
	})
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}

func newReturnAt(t *testing.T, productID uuid.UUID, status stockorder.Status) *stockorder.StockOrder {
	t.Helper()
	o, err := stockorder.NewReturn(stockorder.ReturnParams{
		OrderNumber:   "RTN-2026-00001",
		LinkedOrderID: uuid.New(),
		Items:         []stockorder.ItemInput{{ProductID: productID, ProductName: "Widget", ExpectedQty: dec(2)}},
		Actor:         testActor,
	})
	require.NoError(t, err)
	if status == "inspected" {
		_, err = o.Transition(stockorder.TransitionCommand{To: "inspected", Actor: testActor})
		require.NoError(t, err)
	}
	o.ClearDomainEvents()
	return o
}
