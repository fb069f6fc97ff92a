package domain

import (
	"context"
	"time"
)

// User represents one record in the user directory.
type User struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Address   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserPatch is a sparse update to a user. Nil fields are left unchanged;
// non-nil fields overwrite the current value. Pointer fields keep
// "absent" distinguishable from "present but zero".
type UserPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Active  *bool
}

// UserRepository defines persistence operations for users.
// List-returning methods make no ordering guarantee.
type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	ListActive(ctx context.Context) ([]User, error)
	// SearchByName returns users whose name contains the given substring,
	// case-insensitively.
	SearchByName(ctx context.Context, namePart string) ([]User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
