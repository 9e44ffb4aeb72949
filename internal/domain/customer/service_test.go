package customer

import (
	"context"
	"testing"

	"facturier/internal/core/apperror"
)

type mockRepo struct {
	customers map[int64]*Customer
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, apperror.NewNotFound("customer", id)
	}
	return c, nil
}

func (m *mockRepo) FindByCity(ctx context.Context, city string) ([]*Customer, error) {
	var result []*Customer
	for _, c := range m.customers {
		if c.City == city {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.customers)), nil
}

func newMockRepo() *mockRepo {
	return &mockRepo{customers: map[int64]*Customer{
		1: {ID: 1, FirstName: "Jean", LastName: "Dupont", City: "Paris"},
		2: {ID: 2, FirstName: "Marie", LastName: "Durand", City: "Lyon"},
		3: {ID: 3, FirstName: "Pierre", LastName: "Martin", City: "Lyon"},
	}}
}

func TestNameOf(t *testing.T) {
	svc := NewService(newMockRepo())

	name, err := svc.NameOf(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Dupont" {
		t.Errorf("name = %s, want Dupont", name)
	}
}

func TestNameOf_Unknown(t *testing.T) {
	svc := NewService(newMockRepo())

	_, err := svc.NameOf(context.Background(), 99)
	if !apperror.IsNotFound(err) {
		t.Fatalf("error = %v, want NOT_FOUND", err)
	}
}

func TestCount(t *testing.T) {
	svc := NewService(newMockRepo())

	count, err := svc.Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestInCity(t *testing.T) {
	svc := NewService(newMockRepo())

	customers, err := svc.InCity(context.Background(), "Lyon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(customers) != 2 {
		t.Errorf("customers in Lyon = %d, want 2", len(customers))
	}
}

func TestInCity_Empty(t *testing.T) {
	svc := NewService(newMockRepo())

	customers, err := svc.InCity(context.Background(), "Nantes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(customers) != 0 {
		t.Errorf("customers in Nantes = %d, want 0", len(customers))
	}
}

func TestCustomerValidate(t *testing.T) {
	c := &Customer{FirstName: "Jean"}
	if err := c.Validate(context.Background()); !apperror.IsValidation(err) {
		t.Errorf("error = %v, want VALIDATION_ERROR", err)
	}

	c.LastName = "Dupont"
	if err := c.Validate(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
