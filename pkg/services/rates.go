package services

import (
	"context"

	"github.com/flat-peak/go-sdk/pkg/models"
)

type RatesService interface {
	GetRatesForDevice(ctx context.Context, input GetRatesForDeviceInput) (*models.Rate, error)
	GetRatesForProduct(ctx context.Context, input GetRatesForProductInput) (*models.Rate, error)
}

type GetRatesForDeviceInput struct {
	DeviceID    string `validate:"required"`
	RatesPeriod int
	RatesType   string
}

type GetRatesForProductInput struct {
	ProductID   string `validate:"required"`
	RatesPeriod int
	RatesType   string
}
