package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/resources"
	"github.com/flat-peak/go-sdk/pkg/services"
)

type MockDevicesService struct {
	mock.Mock
}

func (m *MockDevicesService) GetDevices(ctx context.Context, input services.GetDevicesInput) (*resources.ListResponse[models.Device], error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resources.ListResponse[models.Device]), args.Error(1)
}

func (m *MockDevicesService) CreateDevice(ctx context.Context, input services.CreateDeviceInput) (*models.Device, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Device), args.Error(1)
}

func (m *MockDevicesService) CheckDeviceMac(ctx context.Context, input services.CheckDeviceMacInput) (*models.MacCheck, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MacCheck), args.Error(1)
}

func (m *MockDevicesService) GetDeviceByID(ctx context.Context, input services.GetDeviceByIDInput) (*models.Device, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Device), args.Error(1)
}

func (m *MockDevicesService) UpdateDevice(ctx context.Context, input services.UpdateDeviceInput) (*models.Device, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Device), args.Error(1)
}

func (m *MockDevicesService) DeleteDevice(ctx context.Context, input services.DeleteDeviceInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockDevicesService) MeterDevice(ctx context.Context, input services.MeterDeviceInput) (*models.DeviceMeter, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeviceMeter), args.Error(1)
}
