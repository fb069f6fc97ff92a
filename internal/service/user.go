package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"unicode/utf8"

	"github.com/msomdec/userdir/internal/domain"
)

// UserService enforces the directory's business rules on top of the
// user repository: field validation, email uniqueness, full vs. partial
// update semantics.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns all users in store order.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// ListActive returns only users whose active flag is set.
func (s *UserService) ListActive(ctx context.Context) ([]domain.User, error) {
	return s.users.ListActive(ctx)
}

// Search returns users whose name contains namePart, case-insensitively.
func (s *UserService) Search(ctx context.Context, namePart string) ([]domain.User, error) {
	return s.users.SearchByName(ctx, namePart)
}

// GetByID returns the user with the given id, or domain.ErrNotFound.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundErr(id, err)
	}
	return user, nil
}

// Create validates and persists a new user. The store assigns the id.
// Fails with domain.ErrDuplicateEmail when the email is already taken.
func (s *UserService) Create(ctx context.Context, user *domain.User) error {
	if err := validateUser(user); err != nil {
		return err
	}

	// Fast-path check; the store's unique index is the real guarantee
	// under concurrent creates.
	taken, err := s.users.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if taken {
		return duplicateEmailErr(user.Email)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return duplicateEmailErr(user.Email)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Update replaces every mutable field of the user at id with the values
// from replacement. It is a total overwrite, not a merge: zero values in
// the replacement are written as-is.
func (s *UserService) Update(ctx context.Context, id int64, replacement *domain.User) (*domain.User, error) {
	if err := validateUser(replacement); err != nil {
		return nil, err
	}

	current, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundErr(id, err)
	}

	if replacement.Email != current.Email {
		taken, err := s.users.ExistsByEmail(ctx, replacement.Email)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if taken {
			return nil, duplicateEmailErr(replacement.Email)
		}
	}

	current.Name = replacement.Name
	current.Email = replacement.Email
	current.Phone = replacement.Phone
	current.Address = replacement.Address
	current.Active = replacement.Active

	if err := s.users.Update(ctx, current); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return current, nil
}

// Patch overwrites only the fields present in the patch, leaving absent
// fields unchanged. An email equal to the current one is a no-op; a
// different email is checked for uniqueness first.
func (s *UserService) Patch(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	current, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundErr(id, err)
	}

	if patch.Name != nil {
		current.Name = *patch.Name
	}
	if patch.Email != nil && *patch.Email != current.Email {
		taken, err := s.users.ExistsByEmail(ctx, *patch.Email)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if taken {
			return nil, duplicateEmailErr(*patch.Email)
		}
		current.Email = *patch.Email
	}
	if patch.Phone != nil {
		current.Phone = *patch.Phone
	}
	if patch.Address != nil {
		current.Address = *patch.Address
	}
	if patch.Active != nil {
		current.Active = *patch.Active
	}

	if err := validateUser(current); err != nil {
		return nil, err
	}

	if err := s.users.Update(ctx, current); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return current, nil
}

// Delete removes the user at id, or fails with domain.ErrNotFound.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("user not found with id %d: %w", id, domain.ErrNotFound)
		}
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

// Count returns the total number of users. Used by the sample-data
// seeder, not exposed over HTTP.
func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}

func validateUser(user *domain.User) error {
	if user.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	// Bounds count characters, not bytes.
	if n := utf8.RuneCountInString(user.Name); n < 2 || n > 100 {
		return fmt.Errorf("%w: name must be between 2 and 100 characters", domain.ErrInvalidInput)
	}
	if user.Email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(user.Email); err != nil {
		return fmt.Errorf("%w: email must be a valid email address", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(user.Phone) > 15 {
		return fmt.Errorf("%w: phone must not exceed 15 characters", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(user.Address) > 200 {
		return fmt.Errorf("%w: address must not exceed 200 characters", domain.ErrInvalidInput)
	}
	return nil
}

func notFoundErr(id int64, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("user not found with id %d: %w", id, domain.ErrNotFound)
	}
	return fmt.Errorf("get user %d: %w", id, err)
}

func duplicateEmailErr(email string) error {
	return fmt.Errorf("user with email %s already exists: %w", email, domain.ErrDuplicateEmail)
}
