package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/erp/stockflow/internal/domain/shared"
	"github.com/erp/stockflow/internal/domain/stockorder"
	"github.com/erp/stockflow/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryStore implements stockorder.InventoryStore against the products table
type GormInventoryStore struct {
	db *gorm.DB
}

// NewGormInventoryStore creates a new GormInventoryStore
func NewGormInventoryStore(db *gorm.DB) *GormInventoryStore {
	return &GormInventoryStore{db: db}
}

// FindProduct returns the name and current quantity of a product
func (s *GormInventoryStore) FindProduct(ctx context.Context, productID uuid.UUID) (*stockorder.ProductStock, error) {
	var model models.ProductStockModel
	if err := s.db.WithContext(ctx).Where("id = ?", productID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFoundError("product", productID)
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ApplyDelta locks the product row and sets quantity = max(0, quantity + delta)
// in a single UPDATE. SQLite has no row locks; its writer lock serializes instead.
func (s *GormInventoryStore) ApplyDelta(ctx context.Context, productID uuid.UUID, delta decimal.Decimal) (*stockorder.QuantityChange, error) {
	db := s.db.WithContext(ctx)

	locked := db
	if db.Dialector.Name() == "postgres" {
		locked = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var model models.ProductStockModel
	if err := locked.Where("id = ?", productID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFoundError("product", productID)
		}
		return nil, err
	}

	result := db.Model(&models.ProductStockModel{}).
		Where("id = ?", productID).
		Updates(map[string]any{
			"quantity":   gorm.Expr("CASE WHEN quantity + ? < 0 THEN 0 ELSE quantity + ? END", delta, delta),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, shared.NotFoundError("product", productID)
	}

	return &stockorder.QuantityChange{
		ProductID:   model.ID,
		ProductName: model.Name,
		OldQuantity: model.Quantity,
		NewQuantity: stockorder.ClampQuantity(model.Quantity, delta),
	}, nil
}

var _ stockorder.InventoryStore = (*GormInventoryStore)(nil)
