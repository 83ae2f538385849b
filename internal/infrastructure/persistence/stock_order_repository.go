package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/erp/stockflow/internal/domain/shared"
	"github.com/erp/stockflow/internal/domain/stockorder"
	"github.com/erp/stockflow/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockOrderRepository implements stockorder.OrderRepository using GORM
type GormStockOrderRepository struct {
	db *gorm.DB
}

// NewGormStockOrderRepository creates a new GormStockOrderRepository
func NewGormStockOrderRepository(db *gorm.DB) *GormStockOrderRepository {
	return &GormStockOrderRepository{db: db}
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("line_no ASC")
}

func orderedHistory(db *gorm.DB) *gorm.DB {
	return db.Order("seq ASC")
}

// FindByID loads an order with its items and status history
func (r *GormStockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*stockorder.StockOrder, error) {
	var model models.StockOrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Preload("History", orderedHistory).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFoundError("stock order", id)
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save inserts a new order together with its items and initial history
func (r *GormStockOrderRepository) Save(ctx context.Context, order *stockorder.StockOrder) error {
	model := models.StockOrderModelFromDomain(order)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return stockorder.ErrOrderNumberTaken
		}
		return err
	}
	return nil
}

// SaveWithLock writes status, notes, item state and new history entries if the
// stored version still equals order.Version. Callers run it inside a
// transaction so that a conflict rolls back every preceding write.
func (r *GormStockOrderRepository) SaveWithLock(ctx context.Context, order *stockorder.StockOrder) error {
	db := r.db.WithContext(ctx)
	now := time.Now().UTC()

	result := db.Model(&models.StockOrderModel{}).
		Where("id = ? AND version = ?", order.ID, order.Version).
		Updates(map[string]any{
			"status":     string(order.Status),
			"notes":      order.Notes,
			"version":    order.Version + 1,
			"updated_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var n int64
		if err := db.Model(&models.StockOrderModel{}).Where("id = ?", order.ID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return shared.NotFoundError("stock order", order.ID)
		}
		return shared.ErrConcurrencyConflict
	}

	model := models.StockOrderModelFromDomain(order)
	for _, item := range model.Items {
		updates := map[string]any{
			"product_name": item.ProductName,
			"received_qty": nil,
			"condition":    nil,
		}
		if item.ReceivedQty != nil {
			updates["received_qty"] = *item.ReceivedQty
		}
		if item.Condition != nil {
			updates["condition"] = *item.Condition
		}
		if err := db.Model(&models.StockOrderItemModel{}).
			Where("id = ? AND stock_order_id = ?", item.ID, order.ID).
			Updates(updates).Error; err != nil {
			return err
		}
	}

	// history is append-only: existing (order, seq) rows are left alone
	if len(model.History) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&model.History).Error; err != nil {
			return err
		}
	}

	order.Version++
	order.UpdatedAt = now
	return nil
}

func (r *GormStockOrderRepository) applyFilter(query *gorm.DB, filter stockorder.OrderFilter, withStatus bool) *gorm.DB {
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}
	if withStatus && filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + escapeLikePattern(strings.ToLower(s)) + "%"
		query = query.Where(
			`(LOWER(order_number) LIKE ? ESCAPE '\' OR LOWER(supplier) LIKE ? ESCAPE '\' OR `+
				`LOWER(customer_name) LIKE ? ESCAPE '\' OR LOWER(linked_order_number) LIKE ? ESCAPE '\')`,
			like, like, like, like,
		)
	}
	return query
}

// List returns one page of orders, newest first, with items loaded
func (r *GormStockOrderRepository) List(ctx context.Context, filter stockorder.OrderFilter) ([]stockorder.StockOrder, error) {
	page := filter.Page.Normalize()
	var rows []models.StockOrderModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.StockOrderModel{}), filter, true)
	if err := query.
		Preload("Items", orderedItems).
		Order("created_at DESC").
		Order("order_number DESC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	orders := make([]stockorder.StockOrder, len(rows))
	for i := range rows {
		orders[i] = *rows[i].ToDomain()
	}
	return orders, nil
}

// Count returns the number of orders matching the filter
func (r *GormStockOrderRepository) Count(ctx context.Context, filter stockorder.OrderFilter) (int64, error) {
	var total int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.StockOrderModel{}), filter, true).
		Count(&total).Error
	return total, err
}

// CountByStatus groups the orders matching type and search by status
func (r *GormStockOrderRepository) CountByStatus(ctx context.Context, filter stockorder.OrderFilter) ([]stockorder.StatusCount, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := r.applyFilter(r.db.WithContext(ctx).Model(&models.StockOrderModel{}), filter, false).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make([]stockorder.StatusCount, len(rows))
	for i, row := range rows {
		counts[i] = stockorder.StatusCount{Status: stockorder.Status(row.Status), Count: row.Count}
	}
	return counts, nil
}

// PendingSummary groups non-terminal orders by type and status
func (r *GormStockOrderRepository) PendingSummary(ctx context.Context) ([]stockorder.PendingCount, error) {
	var (
		conds []string
		args  []any
	)
	pending := stockorder.NonTerminalStatuses()
	for _, t := range stockorder.OrderTypes() {
		if len(pending[t]) == 0 {
			continue
		}
		names := make([]string, len(pending[t]))
		for i, s := range pending[t] {
			names[i] = string(s)
		}
		conds = append(conds, "(type = ? AND status IN ?)")
		args = append(args, string(t), names)
	}
	if len(conds) == 0 {
		return []stockorder.PendingCount{}, nil
	}

	var rows []struct {
		Type   string
		Status string
		Count  int64
	}
	if err := r.db.WithContext(ctx).Model(&models.StockOrderModel{}).
		Where(strings.Join(conds, " OR "), args...).
		Select("type, status, COUNT(*) AS count").
		Group("type, status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make([]stockorder.PendingCount, len(rows))
	for i, row := range rows {
		counts[i] = stockorder.PendingCount{
			Type:   stockorder.OrderType(row.Type),
			Status: stockorder.Status(row.Status),
			Count:  row.Count,
		}
	}
	return counts, nil
}

// GenerateOrderNumber returns the next PREFIX-YYYY-NNNNN number for the type
func (r *GormStockOrderRepository) GenerateOrderNumber(ctx context.Context, t stockorder.OrderType) (string, error) {
	if !t.IsValid() {
		return "", shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("unknown order type %q", t))
	}
	prefix := fmt.Sprintf("%s-%d-", t.NumberPrefix(), time.Now().UTC().Year())

	var latest []string
	if err := r.db.WithContext(ctx).
		Model(&models.StockOrderModel{}).
		Where("order_number LIKE ?", prefix+"%").
		Order("LENGTH(order_number) DESC, order_number DESC").
		Limit(1).
		Pluck("order_number", &latest).Error; err != nil {
		return "", err
	}

	next := 1
	if len(latest) > 0 {
		var n int
		if _, err := fmt.Sscanf(strings.TrimPrefix(latest[0], prefix), "%d", &n); err == nil {
			next = n + 1
		}
	}
	return fmt.Sprintf("%s%05d", prefix, next), nil
}

var _ stockorder.OrderRepository = (*GormStockOrderRepository)(nil)

// escapeLikePattern escapes special characters in LIKE patterns
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
