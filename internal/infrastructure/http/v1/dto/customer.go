package dto

import (
	"facturier/internal/core/types"
	"facturier/internal/domain/customer"
)

// CustomerResponse is a customer record.
type CustomerResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Street    string `json:"street,omitempty"`
	City      string `json:"city,omitempty"`
}

// FromCustomer creates CustomerResponse from the domain entity.
func FromCustomer(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Street:    c.Street,
		City:      c.City,
	}
}

// CustomerListResponse is a list of customers.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Count int                `json:"count"`
}

// CustomerStatsResponse aggregates invoicing figures for one customer.
type CustomerStatsResponse struct {
	CustomerID int64       `json:"customerId"`
	LastName   string      `json:"lastName"`
	Invoices   int64       `json:"invoices"`
	Total      types.Money `json:"total"`
}

// StatsResponse holds platform-wide figures.
type StatsResponse struct {
	Customers int64 `json:"customers"`
}
