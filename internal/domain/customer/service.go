package customer

import (
	"context"
)

// Service provides read accessors for the Customer catalog.
type Service struct {
	repo Repository
}

// NewService creates a new Customer service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get retrieves a customer by ID.
func (s *Service) Get(ctx context.Context, id int64) (*Customer, error) {
	return s.repo.GetByID(ctx, id)
}

// NameOf returns the last name of a customer.
func (s *Service) NameOf(ctx context.Context, id int64) (string, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return c.LastName, nil
}

// Count returns the total number of customers.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// InCity lists customers located in the given city.
func (s *Service) InCity(ctx context.Context, city string) ([]*Customer, error) {
	return s.repo.FindByCity(ctx, city)
}
