package services

import (
	"context"

	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/resources"
)

type DevicesService interface {
	GetDevices(ctx context.Context, input GetDevicesInput) (*resources.ListResponse[models.Device], error)
	CreateDevice(ctx context.Context, input CreateDeviceInput) (*models.Device, error)
	CheckDeviceMac(ctx context.Context, input CheckDeviceMacInput) (*models.MacCheck, error)
	GetDeviceByID(ctx context.Context, input GetDeviceByIDInput) (*models.Device, error)
	UpdateDevice(ctx context.Context, input UpdateDeviceInput) (*models.Device, error)
	DeleteDevice(ctx context.Context, input DeleteDeviceInput) error
	MeterDevice(ctx context.Context, input MeterDeviceInput) (*models.DeviceMeter, error)
}

type GetDevicesInput struct {
	resources.ListQuery
	ReferenceID string
	Mac         string
	IsDisabled  *bool
}

type CreateDeviceInput struct {
	resources.CreateDeviceBody
	AccountID string
}

// CheckDeviceMacInput queries whether a MAC address can be used for a
// new device registration. CustomerID scopes the check to devices of
// that customer.
type CheckDeviceMacInput struct {
	Mac        string `validate:"required"`
	AccountID  string
	CustomerID string
}

type GetDeviceByIDInput struct {
	ID string `validate:"required"`
}

type UpdateDeviceInput struct {
	ID string `validate:"required"`
	resources.UpdateDeviceBody
}

type DeleteDeviceInput struct {
	ID string `validate:"required"`
}

type MeterDeviceInput struct {
	ID string `validate:"required"`
	models.Consumption
}
