package models

import (
	"time"

	"github.com/erp/stockflow/internal/domain/stockorder"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryMovementModel is an immutable ledger row
type InventoryMovementModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName      string          `gorm:"type:varchar(200)"`
	Direction        string          `gorm:"type:varchar(20);not null"`
	QuantityChange   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	OldQuantity      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	NewQuantity      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Reason           string          `gorm:"type:varchar(30);not null"`
	StockOrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	StockOrderNumber string          `gorm:"type:varchar(50);not null"`
	ActorID          string          `gorm:"type:varchar(100);not null"`
	ActorName        string          `gorm:"type:varchar(200)"`
	CreatedAt        time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (InventoryMovementModel) TableName() string {
	return "inventory_movements"
}

// ToDomain converts the persistence model to a domain InventoryMovement
func (m *InventoryMovementModel) ToDomain() stockorder.InventoryMovement {
	return stockorder.InventoryMovement{
		ID:               m.ID,
		ProductID:        m.ProductID,
		ProductName:      m.ProductName,
		Direction:        stockorder.Direction(m.Direction),
		QuantityChange:   m.QuantityChange,
		OldQuantity:      m.OldQuantity,
		NewQuantity:      m.NewQuantity,
		Reason:           stockorder.MovementReason(m.Reason),
		StockOrderID:     m.StockOrderID,
		StockOrderNumber: m.StockOrderNumber,
		ActorID:          m.ActorID,
		ActorName:        m.ActorName,
		CreatedAt:        m.CreatedAt,
	}
}

// InventoryMovementModelFromDomain creates a persistence model from a domain movement
func InventoryMovementModelFromDomain(mv *stockorder.InventoryMovement) *InventoryMovementModel {
	return &InventoryMovementModel{
		ID:               mv.ID,
		ProductID:        mv.ProductID,
		ProductName:      mv.ProductName,
		Direction:        string(mv.Direction),
		QuantityChange:   mv.QuantityChange,
		OldQuantity:      mv.OldQuantity,
		NewQuantity:      mv.NewQuantity,
		Reason:           string(mv.Reason),
		StockOrderID:     mv.StockOrderID,
		StockOrderNumber: mv.StockOrderNumber,
		ActorID:          mv.ActorID,
		ActorName:        mv.ActorName,
		CreatedAt:        mv.CreatedAt,
	}
}

// ProductStockModel is the catalog's products table, restricted to the
// columns this service reads and writes.
type ProductStockModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(200);not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProductStockModel) TableName() string {
	return "products"
}

// ToDomain converts the model to a domain ProductStock
func (m *ProductStockModel) ToDomain() *stockorder.ProductStock {
	return &stockorder.ProductStock{
		ProductID: m.ID,
		Name:      m.Name,
		Quantity:  m.Quantity,
	}
}

// LinkedOrderModel is the order submission collaborator's sales_orders table
type LinkedOrderModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber  string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerName string    `gorm:"type:varchar(200)"`
	Status       string    `gorm:"type:varchar(20)"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (LinkedOrderModel) TableName() string {
	return "sales_orders"
}

// ToDomain converts the model to a domain LinkedOrder
func (m *LinkedOrderModel) ToDomain() stockorder.LinkedOrder {
	return stockorder.LinkedOrder{
		ID:           m.ID,
		OrderNumber:  m.OrderNumber,
		CustomerName: m.CustomerName,
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
	}
}

// AllModels lists every model for AutoMigrate in tests and development
func AllModels() []any {
	return []any{
		&StockOrderModel{},
		&StockOrderItemModel{},
		&StatusHistoryModel{},
		&InventoryMovementModel{},
		&ProductStockModel{},
		&LinkedOrderModel{},
	}
}
