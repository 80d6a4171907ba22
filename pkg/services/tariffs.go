package services

import (
	"context"

	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/resources"
)

type TariffsService interface {
	GetTariffs(ctx context.Context, input GetTariffsInput) (*resources.ListResponse[models.Tariff], error)
	CreateTariff(ctx context.Context, input CreateTariffInput) (*models.Tariff, error)
	GetTariffByID(ctx context.Context, input GetTariffByIDInput) (*models.Tariff, error)
}

type GetTariffsInput struct {
	resources.ListQuery
}

type CreateTariffInput struct {
	resources.CreateTariffBody
	AccountID string
}

type GetTariffByIDInput struct {
	ID string `validate:"required"`
}
