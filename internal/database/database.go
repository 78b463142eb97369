// Package database provides the persistence gateway for the guild API.
//
// The Database interface abstracts SurrealDB so repositories stay free of
// connection details:
//   - Query: multiple results (SELECT lists)
//   - QueryOne: a single record (SELECT by id)
//   - Execute: mutations with no result handling
//
// Transactions are BATCH-BASED, not connection-level: statements accumulate
// in memory and run wrapped in BEGIN TRANSACTION / COMMIT TRANSACTION at
// commit time. All statements succeed or fail together; Rollback simply
// discards the pending batch. Prefer AtomicBatch (transaction.go) for
// multi-statement writes such as creating an event with its default teams.
//
// Standard errors cover the common failure cases; check them with
// errors.Is:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // missing record
//	}
package database

import (
	"context"
	"errors"
)

// Standard errors for database operations.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint violation.
	ErrDuplicate = errors.New("duplicate record")

	// ErrConnection indicates a failure to connect to or communicate with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure.
	ErrQuery = errors.New("query error")
)

// Database defines the interface for database operations
type Database interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Query executes a query and returns results
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)

	// QueryOne executes a query and returns a single result
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)

	// Execute runs a query without returning results (for mutations)
	Execute(ctx context.Context, query string, vars map[string]interface{}) error

	// Transaction support
	BeginTx(ctx context.Context) (Transaction, error)
}

// Transaction represents a batch-based database transaction
type Transaction interface {
	Execute(ctx context.Context, query string, vars map[string]interface{}) error
	Commit() error
	Rollback() error
}

// Config holds database connection settings
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
