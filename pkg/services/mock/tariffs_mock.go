package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/resources"
	"github.com/flat-peak/go-sdk/pkg/services"
)

type MockTariffsService struct {
	mock.Mock
}

func (m *MockTariffsService) GetTariffs(ctx context.Context, input services.GetTariffsInput) (*resources.ListResponse[models.Tariff], error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resources.ListResponse[models.Tariff]), args.Error(1)
}

func (m *MockTariffsService) CreateTariff(ctx context.Context, input services.CreateTariffInput) (*models.Tariff, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tariff), args.Error(1)
}

func (m *MockTariffsService) GetTariffByID(ctx context.Context, input services.GetTariffByIDInput) (*models.Tariff, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tariff), args.Error(1)
}
