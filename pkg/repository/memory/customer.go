package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/heirs-lab/prince/pkg/domain/model"
)

type customerRepository struct {
	mu      sync.RWMutex
	records map[model.CustomerID]*model.Customer
	byPhone map[string]model.CustomerID
	nextID  model.CustomerID
}

func newCustomerRepository() *customerRepository {
	return &customerRepository{
		records: make(map[model.CustomerID]*model.Customer),
		byPhone: make(map[string]model.CustomerID),
		nextID:  1,
	}
}

func copyCustomer(c *model.Customer) *model.Customer {
	copied := *c
	return &copied
}

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if customer.Phone == "" {
		return nil, goerr.New("customer phone is required")
	}
	if _, exists := r.byPhone[customer.Phone]; exists {
		return nil, goerr.New("customer phone already registered", goerr.V("phone", customer.Phone))
	}

	created := copyCustomer(customer)
	created.ID = r.nextID
	r.nextID++
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	r.records[created.ID] = created
	r.byPhone[created.Phone] = created.ID

	return copyCustomer(created), nil
}

func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byPhone[phone]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "customer not found", goerr.V("phone", phone))
	}

	return copyCustomer(r.records[id]), nil
}

func (r *customerRepository) ListByBirthday(ctx context.Context, month time.Month, day int) ([]*model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Customer, 0)
	for _, c := range r.records {
		if c.DateOfBirth.Month() == month && c.DateOfBirth.Day() == day {
			result = append(result, copyCustomer(c))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}
