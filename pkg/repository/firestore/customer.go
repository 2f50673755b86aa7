package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"

	"github.com/heirs-lab/prince/pkg/domain/model"
)

const customersCollection = "customers"

// customerDoc is the Firestore document representation of model.Customer.
// Birthday holds the derived "MM-DD" key so the birthday sweep can query
// month/day equality without date functions.
type customerDoc struct {
	ID                int64     `firestore:"id"`
	Name              string    `firestore:"name"`
	Phone             string    `firestore:"phone"`
	Email             string    `firestore:"email"`
	DateOfBirth       time.Time `firestore:"dob"`
	CompanyPreference string    `firestore:"company_preference"`
	Birthday          string    `firestore:"birthday"`
	CreatedAt         time.Time `firestore:"created_at"`
}

func toCustomerDoc(c *model.Customer) *customerDoc {
	return &customerDoc{
		ID:                int64(c.ID),
		Name:              c.Name,
		Phone:             c.Phone,
		Email:             c.Email,
		DateOfBirth:       c.DateOfBirth,
		CompanyPreference: c.CompanyPreference,
		Birthday:          c.BirthdayKey(),
		CreatedAt:         c.CreatedAt,
	}
}

func fromCustomerDoc(d *customerDoc) *model.Customer {
	return &model.Customer{
		ID:                model.CustomerID(d.ID),
		Name:              d.Name,
		Phone:             d.Phone,
		Email:             d.Email,
		DateOfBirth:       d.DateOfBirth,
		CompanyPreference: d.CompanyPreference,
		CreatedAt:         d.CreatedAt,
	}
}

type customerRepository struct {
	client *firestore.Client
}

func newCustomerRepository(client *firestore.Client) *customerRepository {
	return &customerRepository{client: client}
}

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	if customer.Phone == "" {
		return nil, goerr.New("customer phone is required")
	}

	id, err := nextID(ctx, r.client, customersCollection)
	if err != nil {
		return nil, err
	}

	created := *customer
	created.ID = model.CustomerID(id)
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	docRef := r.client.Collection(customersCollection).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Set(ctx, toCustomerDoc(&created)); err != nil {
		return nil, goerr.Wrap(err, "failed to create customer", goerr.V("id", id))
	}

	return &created, nil
}

func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	iter := r.client.Collection(customersCollection).
		Where("phone", "==", phone).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(ErrNotFound, "customer not found", goerr.V("phone", phone))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query customer by phone")
	}

	var d customerDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal customer")
	}

	return fromCustomerDoc(&d), nil
}

func (r *customerRepository) ListByBirthday(ctx context.Context, month time.Month, day int) ([]*model.Customer, error) {
	key := fmt.Sprintf("%02d-%02d", month, day)

	iter := r.client.Collection(customersCollection).
		Where("birthday", "==", key).
		Documents(ctx)
	defer iter.Stop()

	customers := make([]*model.Customer, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate customers", goerr.V("birthday", key))
		}

		var d customerDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal customer")
		}

		customers = append(customers, fromCustomerDoc(&d))
	}

	return customers, nil
}
