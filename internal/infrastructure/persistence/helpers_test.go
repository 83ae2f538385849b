package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/erp/stockflow/internal/domain/stockorder"
	"github.com/erp/stockflow/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testActor = stockorder.Actor{ID: "u-1", Name: "Alice"}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, NewDatabaseFromGorm(db).AutoMigrate())
	return db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func seedProduct(t *testing.T, db *gorm.DB, name, qty string) uuid.UUID {
	t.Helper()
	p := models.ProductStockModel{
		ID:        uuid.New(),
		Name:      name,
		Quantity:  dec(qty),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&p).Error)
	return p.ID
}

func productQty(t *testing.T, db *gorm.DB, id uuid.UUID) decimal.Decimal {
	t.Helper()
	var p models.ProductStockModel
	require.NoError(t, db.Where("id = ?", id).First(&p).Error)
	return p.Quantity
}

func seedLinkedOrder(t *testing.T, db *gorm.DB, number, customer string, createdAt time.Time) uuid.UUID {
	t.Helper()
	o := models.LinkedOrderModel{
		ID:           uuid.New(),
		OrderNumber:  number,
		CustomerName: customer,
		Status:       "completed",
		CreatedAt:    createdAt,
	}
	require.NoError(t, db.Create(&o).Error)
	return o.ID
}

func saveShipment(t *testing.T, repo *GormStockOrderRepository, supplier string, items ...stockorder.ItemInput) *stockorder.StockOrder {
	t.Helper()
	ctx := context.Background()
	number, err := repo.GenerateOrderNumber(ctx, stockorder.OrderTypeShipment)
	require.NoError(t, err)
	o, err := stockorder.NewShipment(stockorder.ShipmentParams{
		OrderNumber: number,
		Supplier:    supplier,
		Items:       items,
		Actor:       testActor,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, o))
	return o
}

func item(productID uuid.UUID, qty string) stockorder.ItemInput {
	return stockorder.ItemInput{ProductID: productID, ExpectedQty: dec(qty)}
}
