package stockorder

import (
	"context"

	"github.com/erp/stockflow/internal/domain/stockorder"
)

// TransactionScope provides transactional access to the stock order repositories.
// All repository operations performed inside Execute share one database
// transaction and are committed or rolled back together.
type TransactionScope interface {
	// Execute runs fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories bound to the current transaction.
type TransactionalRepositories interface {
	OrderRepo() stockorder.OrderRepository
	InventoryStore() stockorder.InventoryStore
	MovementRepo() stockorder.MovementRepository
}

// NoOpTransactionScope runs fn against plain repositories without a transaction.
// Used by unit tests.
type NoOpTransactionScope struct {
	orderRepo    stockorder.OrderRepository
	inventory    stockorder.InventoryStore
	movementRepo stockorder.MovementRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	orderRepo stockorder.OrderRepository,
	inventory stockorder.InventoryStore,
	movementRepo stockorder.MovementRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		orderRepo:    orderRepo,
		inventory:    inventory,
		movementRepo: movementRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) OrderRepo() stockorder.OrderRepository { return s.orderRepo }
func (s *NoOpTransactionScope) InventoryStore() stockorder.InventoryStore { return s.inventory }
func (s *NoOpTransactionScope) MovementRepo() stockorder.MovementRepository { return s.movementRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
