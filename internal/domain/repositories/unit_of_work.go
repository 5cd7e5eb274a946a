package repositories

import "context"

// UnitOfWork runs a function inside a single transaction scope. Repositories
// invoked with the context passed to fn share that transaction.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
