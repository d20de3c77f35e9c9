// Package repomanager builds the storage backend of the user service and owns
// its lifetime: connection, schema migrations and repository construction.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/bloghub/internal/server/repositories/users"
)

// MemoryDSN selects the in-process backend instead of PostgreSQL.
const MemoryDSN = "memory"

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Close() error
}

// New returns the manager matching dsn.
func New(ctx context.Context, dsn string) (RepositoryManager, error) {
	if dsn == MemoryDSN {
		return NewMemoryRepositoryManager(), nil
	}
	return NewPostgresRepositoryManager(ctx, dsn)
}
