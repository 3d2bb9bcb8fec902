package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"tracker/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// NewRouteRepository creates a new route repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewRouteRepository() repository.RouteRepository {
	return NewRouteRepository(f.tx)
}

// NewTelemetryRepository creates a new telemetry repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewTelemetryRepository() repository.TelemetryRepository {
	return NewTelemetryRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction on the primary.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.run(ctx, dbresolver.Write, nil, fn)
}

// ExecuteReadOnly runs the given function within a read-only transaction.
// When replicas are configured the resolver routes it to one of them.
func (tm *gormTransactionManager) ExecuteReadOnly(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.run(ctx, dbresolver.Read, &sql.TxOptions{ReadOnly: true}, fn)
}

func (tm *gormTransactionManager) run(ctx context.Context, op dbresolver.Operation, opts *sql.TxOptions, fn func(repoFactory repository.RepositoryFactory) error) error {
	db := tm.db.WithContext(ctx).Clauses(op)

	var tx *gorm.DB
	if opts != nil {
		tx = db.Begin(opts)
	} else {
		tx = db.Begin()
	}
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// A panic inside fn rolls back before propagating.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
