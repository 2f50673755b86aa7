package interfaces

import (
	"context"
	"time"

	"github.com/heirs-lab/prince/pkg/domain/model"
)

// CustomerRepository defines the interface for Customer data access.
// Customer records are owned by the external store; the core only reads
// them. Create exists for seeding and operator tooling.
type CustomerRepository interface {
	// Create creates a new customer record, assigning its ID
	Create(ctx context.Context, customer *model.Customer) (*model.Customer, error)

	// GetByPhone retrieves a customer by exact phone number match.
	// Returns an ErrNotFound-wrapped error when no customer matches.
	GetByPhone(ctx context.Context, phone string) (*model.Customer, error)

	// ListByBirthday retrieves all customers whose date of birth falls on
	// the given month and day, regardless of year.
	ListByBirthday(ctx context.Context, month time.Month, day int) ([]*model.Customer, error)
}
