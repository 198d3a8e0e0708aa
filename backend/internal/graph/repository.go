package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	apperr "graphchat/backend/pkg/errors"
	"graphchat/backend/pkg/logger"
)

// Repository handles all Neo4j database operations. The driver is owned by
// the caller and injected here; Close tears down the connection.
type Repository struct {
	driver neo4j.DriverWithContext
	logger *zap.Logger
}

// NewRepository creates a new graph repository
func NewRepository(driver neo4j.DriverWithContext) *Repository {
	return &Repository{
		driver: driver,
		logger: logger.Get(),
	}
}

// Close closes the Neo4j driver connection
func (r *Repository) Close(ctx context.Context) error {
	return r.driver.Close(ctx)
}

// read runs a single read query in a managed transaction and collects all records.
func (r *Repository) read(ctx context.Context, query string, params map[string]any) ([]*neo4j.Record, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	records, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return result.Collect(ctx)
	})
	if err != nil {
		return nil, apperr.NewGraphQueryFailed(query, err)
	}
	return records.([]*neo4j.Record), nil
}

// write runs a single write query in a managed transaction and returns the
// store's update counters. Multi-step operations open their own transaction
// instead so that every logical operation stays a single atomic unit.
func (r *Repository) write(ctx context.Context, query string, params map[string]any) (*WriteSummary, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	summary, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return runAndConsume(ctx, tx, query, params)
	})
	if err != nil {
		if _, ok := err.(*apperr.ErrGraphQueryFailed); ok {
			return nil, err
		}
		return nil, apperr.NewGraphQueryFailed(query, err)
	}
	return summary.(*WriteSummary), nil
}

// writeTx runs work inside one managed write transaction.
func (r *Repository) writeTx(ctx context.Context, work func(tx neo4j.ManagedTransaction) (any, error)) (any, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	return session.ExecuteWrite(ctx, work)
}

// runAndConsume executes a statement inside tx and maps its result summary.
func runAndConsume(ctx context.Context, tx neo4j.ManagedTransaction, query string, params map[string]any) (*WriteSummary, error) {
	result, err := tx.Run(ctx, query, params)
	if err != nil {
		return nil, apperr.NewGraphQueryFailed(query, err)
	}
	summary, err := result.Consume(ctx)
	if err != nil {
		return nil, apperr.NewGraphQueryFailed(query, err)
	}
	return summaryFrom(summary), nil
}
