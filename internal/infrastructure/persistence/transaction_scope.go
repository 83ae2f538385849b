package persistence

import (
	"context"

	appstock "github.com/erp/stockflow/internal/application/stockorder"
	"github.com/erp/stockflow/internal/domain/stockorder"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn within a database transaction. Any error rolls back every
// order, stock and movement write made through repos.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appstock.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) OrderRepo() stockorder.OrderRepository {
	return NewGormStockOrderRepository(r.tx)
}

func (r *gormTransactionalRepositories) InventoryStore() stockorder.InventoryStore {
	return NewGormInventoryStore(r.tx)
}

func (r *gormTransactionalRepositories) MovementRepo() stockorder.MovementRepository {
	return NewGormMovementRepository(r.tx)
}

var _ appstock.TransactionScope = (*GormTransactionScope)(nil)
var _ appstock.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
