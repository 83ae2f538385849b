package models

import (
	"time"

	"github.com/erp/stockflow/internal/domain/stockorder"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockOrderModel is the persistence model for the StockOrder aggregate root
type StockOrderModel struct {
	AggregateModel
	OrderNumber string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Type        string `gorm:"type:varchar(20);not null;index:idx_stock_order_type_status,priority:1"`
	Status      string `gorm:"type:varchar(20);not null;index:idx_stock_order_type_status,priority:2"`

	Supplier     string `gorm:"type:varchar(200)"`
	ExpectedDate *time.Time

	LinkedOrderID     *uuid.UUID `gorm:"type:uuid;index"`
	LinkedOrderNumber string     `gorm:"type:varchar(50)"`
	CustomerName      string     `gorm:"type:varchar(200)"`
	ReturnReason      string     `gorm:"type:text"`

	AdjustmentReason string `gorm:"type:text"`

	Notes         string `gorm:"type:text"`
	CreatedByID   string `gorm:"type:varchar(100);not null"`
	CreatedByName string `gorm:"type:varchar(200)"`

	Items   []StockOrderItemModel `gorm:"foreignKey:StockOrderID;references:ID"`
	History []StatusHistoryModel  `gorm:"foreignKey:StockOrderID;references:ID"`
}

// TableName returns the table name for GORM
func (StockOrderModel) TableName() string {
	return "stock_orders"
}

// ToDomain converts the persistence model to a domain StockOrder
func (m *StockOrderModel) ToDomain() *stockorder.StockOrder {
	o := &stockorder.StockOrder{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		OrderNumber:       m.OrderNumber,
		Type:              stockorder.OrderType(m.Type),
		Status:            stockorder.Status(m.Status),
		Items:             make([]stockorder.OrderItem, len(m.Items)),
		History:           make([]stockorder.StatusEntry, len(m.History)),
		Supplier:          m.Supplier,
		ExpectedDate:      m.ExpectedDate,
		LinkedOrderID:     m.LinkedOrderID,
		LinkedOrderNumber: m.LinkedOrderNumber,
		CustomerName:      m.CustomerName,
		ReturnReason:      m.ReturnReason,
		AdjustmentReason:  m.AdjustmentReason,
		Notes:             m.Notes,
		CreatedBy:         stockorder.Actor{ID: m.CreatedByID, Name: m.CreatedByName},
	}
	for i := range m.Items {
		o.Items[i] = m.Items[i].ToDomain()
	}
	for i := range m.History {
		o.History[i] = m.History[i].ToDomain()
	}
	return o
}

// FromDomain populates the model, including items and history, from a domain StockOrder
func (m *StockOrderModel) FromDomain(o *stockorder.StockOrder) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.OrderNumber = o.OrderNumber
	m.Type = string(o.Type)
	m.Status = string(o.Status)
	m.Supplier = o.Supplier
	m.ExpectedDate = o.ExpectedDate
	m.LinkedOrderID = o.LinkedOrderID
	m.LinkedOrderNumber = o.LinkedOrderNumber
	m.CustomerName = o.CustomerName
	m.ReturnReason = o.ReturnReason
	m.AdjustmentReason = o.AdjustmentReason
	m.Notes = o.Notes
	m.CreatedByID = o.CreatedBy.ID
	m.CreatedByName = o.CreatedBy.Name

	m.Items = make([]StockOrderItemModel, len(o.Items))
	for i := range o.Items {
		m.Items[i] = StockOrderItemModelFromDomain(o.ID, i+1, &o.Items[i])
	}
	m.History = make([]StatusHistoryModel, len(o.History))
	for i := range o.History {
		m.History[i] = StatusHistoryModelFromDomain(o.ID, i+1, &o.History[i])
	}
}

// StockOrderModelFromDomain creates a persistence model from a domain StockOrder
func StockOrderModelFromDomain(o *stockorder.StockOrder) *StockOrderModel {
	m := &StockOrderModel{}
	m.FromDomain(o)
	return m
}

// StockOrderItemModel is one line of a stock order
type StockOrderItemModel struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	StockOrderID uuid.UUID        `gorm:"type:uuid;not null;index"`
	LineNo       int              `gorm:"not null"`
	ProductID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	ProductName  string           `gorm:"type:varchar(200)"`
	ExpectedQty  decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	ReceivedQty  *decimal.Decimal `gorm:"type:decimal(18,4)"`
	Condition    *string          `gorm:"type:varchar(20)"`
}

// TableName returns the table name for GORM
func (StockOrderItemModel) TableName() string {
	return "stock_order_items"
}

// ToDomain converts the persistence model to a domain OrderItem
func (m *StockOrderItemModel) ToDomain() stockorder.OrderItem {
	item := stockorder.OrderItem{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		ExpectedQty: m.ExpectedQty,
		ReceivedQty: m.ReceivedQty,
	}
	if m.Condition != nil {
		c := stockorder.ItemCondition(*m.Condition)
		item.Condition = &c
	}
	return item
}

// StockOrderItemModelFromDomain creates a line model at position lineNo
func StockOrderItemModelFromDomain(orderID uuid.UUID, lineNo int, it *stockorder.OrderItem) StockOrderItemModel {
	m := StockOrderItemModel{
		ID:           it.ID,
		StockOrderID: orderID,
		LineNo:       lineNo,
		ProductID:    it.ProductID,
		ProductName:  it.ProductName,
		ExpectedQty:  it.ExpectedQty,
		ReceivedQty:  it.ReceivedQty,
	}
	if it.Condition != nil {
		c := string(*it.Condition)
		m.Condition = &c
	}
	return m
}

// StatusHistoryModel is one append-only status history entry
type StatusHistoryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	StockOrderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_status_history_order_seq,priority:1"`
	Seq          int       `gorm:"not null;uniqueIndex:idx_status_history_order_seq,priority:2"`
	Status       string    `gorm:"type:varchar(20);not null"`
	RecordedAt   time.Time `gorm:"not null"`
	ActorID      string    `gorm:"type:varchar(100);not null"`
	ActorName    string    `gorm:"type:varchar(200)"`
	Notes        string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (StatusHistoryModel) TableName() string {
	return "stock_order_status_history"
}

// ToDomain converts the persistence model to a domain StatusEntry
func (m *StatusHistoryModel) ToDomain() stockorder.StatusEntry {
	return stockorder.StatusEntry{
		ID:        m.ID,
		Status:    stockorder.Status(m.Status),
		Timestamp: m.RecordedAt,
		ActorID:   m.ActorID,
		ActorName: m.ActorName,
		Notes:     m.Notes,
	}
}

// StatusHistoryModelFromDomain creates a history model at position seq
func StatusHistoryModelFromDomain(orderID uuid.UUID, seq int, e *stockorder.StatusEntry) StatusHistoryModel {
	return StatusHistoryModel{
		ID:           e.ID,
		StockOrderID: orderID,
		Seq:          seq,
		Status:       string(e.Status),
		RecordedAt:   e.Timestamp,
		ActorID:      e.ActorID,
		ActorName:    e.ActorName,
		Notes:        e.Notes,
	}
}
