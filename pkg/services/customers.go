package services

import (
	"context"

	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/resources"
)

type CustomersService interface {
	GetCustomers(ctx context.Context, input GetCustomersInput) (*resources.ListResponse[models.Customer], error)
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (*models.Customer, error)
	GetCustomerByID(ctx context.Context, input GetCustomerByIDInput) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, input UpdateCustomerInput) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, input DeleteCustomerInput) error
}

type GetCustomersInput struct {
	resources.ListQuery
}

type CreateCustomerInput struct {
	resources.CreateCustomerBody
	AccountID string
}

type GetCustomerByIDInput struct {
	ID string `validate:"required"`
}

type UpdateCustomerInput struct {
	ID string `validate:"required"`
	resources.UpdateCustomerBody
}

type DeleteCustomerInput struct {
	ID string `validate:"required"`
}
