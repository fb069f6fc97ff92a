package service

import (
	"context"
	"fmt"

	"github.com/msomdec/userdir/internal/domain"
)

// SeedSampleData inserts a handful of demo users when the store is
// empty. Reruns against a non-empty store are no-ops.
func (s *UserService) SeedSampleData(ctx context.Context) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	samples := []domain.User{
		{Name: "John Doe", Email: "john.doe@example.com", Phone: "+1234567890", Address: "123 Main St, City, Country", Active: true},
		{Name: "Jane Smith", Email: "jane.smith@example.com", Phone: "+1234567891", Address: "456 Oak Ave, City, Country", Active: true},
		{Name: "Bob Johnson", Email: "bob.johnson@example.com", Phone: "+1234567892", Address: "789 Pine Rd, City, Country", Active: true},
		{Name: "Alice Brown", Email: "alice.brown@example.com", Phone: "+1234567893", Address: "321 Elm St, City, Country", Active: true},
		{Name: "Charlie Wilson", Email: "charlie.wilson@example.com", Phone: "+1234567894", Address: "654 Maple Dr, City, Country", Active: false},
	}

	for i := range samples {
		if err := s.users.Create(ctx, &samples[i]); err != nil {
			return fmt.Errorf("seed user %s: %w", samples[i].Email, err)
		}
	}
	return nil
}
