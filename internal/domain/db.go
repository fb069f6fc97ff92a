package domain

import "context"

// Database defines lifecycle operations for the backing store. An
// implementation owns its own schema migrations, so the whole backend
// can be swapped without touching the service layer.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
