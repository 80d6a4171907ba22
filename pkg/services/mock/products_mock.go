package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/resources"
	"github.com/flat-peak/go-sdk/pkg/services"
)

type MockProductsService struct {
	mock.Mock
}

func (m *MockProductsService) GetProducts(ctx context.Context, input services.GetProductsInput) (*resources.ListResponse[models.Product], error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resources.ListResponse[models.Product]), args.Error(1)
}

func (m *MockProductsService) CreateProduct(ctx context.Context, input services.CreateProductInput) (*models.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductsService) PullProduct(ctx context.Context, input services.PullProductInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockProductsService) GetProductByID(ctx context.Context, input services.GetProductByIDInput) (*models.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductsService) UpdateProduct(ctx context.Context, input services.UpdateProductInput) (*models.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductsService) DeleteProduct(ctx context.Context, input services.DeleteProductInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockProductsService) MeterProduct(ctx context.Context, input services.MeterProductInput) (*models.DeviceMeter, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeviceMeter), args.Error(1)
}
