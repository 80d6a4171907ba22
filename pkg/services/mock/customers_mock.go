package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/resources"
	"github.com/flat-peak/go-sdk/pkg/services"
)

type MockCustomersService struct {
	mock.Mock
}

func (m *MockCustomersService) GetCustomers(ctx context.Context, input services.GetCustomersInput) (*resources.ListResponse[models.Customer], error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resources.ListResponse[models.Customer]), args.Error(1)
}

func (m *MockCustomersService) CreateCustomer(ctx context.Context, input services.CreateCustomerInput) (*models.Customer, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomersService) GetCustomerByID(ctx context.Context, input services.GetCustomerByIDInput) (*models.Customer, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomersService) UpdateCustomer(ctx context.Context, input services.UpdateCustomerInput) (*models.Customer, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomersService) DeleteCustomer(ctx context.Context, input services.DeleteCustomerInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}
