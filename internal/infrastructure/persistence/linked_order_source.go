package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/erp/stockflow/internal/domain/shared"
	"github.com/erp/stockflow/internal/domain/stockorder"
	"github.com/erp/stockflow/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLinkedOrderSource reads customer orders from the sales_orders table
type GormLinkedOrderSource struct {
	db *gorm.DB
}

// NewGormLinkedOrderSource creates a new GormLinkedOrderSource
func NewGormLinkedOrderSource(db *gorm.DB) *GormLinkedOrderSource {
	return &GormLinkedOrderSource{db: db}
}

// FindByID returns one customer order
func (s *GormLinkedOrderSource) FindByID(ctx context.Context, id uuid.UUID) (*stockorder.LinkedOrder, error) {
	var model models.LinkedOrderModel
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFoundError("linked order", id)
		}
		return nil, err
	}
	order := model.ToDomain()
	return &order, nil
}

// Search matches by id when query is a uuid, otherwise by order number or
// customer name, case-insensitively. An empty query returns the newest orders.
func (s *GormLinkedOrderSource) Search(ctx context.Context, query string, limit int) ([]stockorder.LinkedOrder, error) {
	db := s.db.WithContext(ctx).Model(&models.LinkedOrderModel{})
	q := strings.TrimSpace(query)
	switch id, err := uuid.Parse(q); {
	case q == "":
	case err == nil:
		db = db.Where("id = ?", id)
	default:
		like := "%" + escapeLikePattern(strings.ToLower(q)) + "%"
		db = db.Where(`(LOWER(order_number) LIKE ? ESCAPE '\' OR LOWER(customer_name) LIKE ? ESCAPE '\')`, like, like)
	}

	var rows []models.LinkedOrderModel
	if err := db.Order("created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	orders := make([]stockorder.LinkedOrder, len(rows))
	for i := range rows {
		orders[i] = rows[i].ToDomain()
	}
	return orders, nil
}

var _ stockorder.LinkedOrderSource = (*GormLinkedOrderSource)(nil)
