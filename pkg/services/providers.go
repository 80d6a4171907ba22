package services

import (
	"context"

	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/resources"
)

type ProvidersService interface {
	GetProviders(ctx context.Context, input GetProvidersInput) (*resources.ListResponse[models.Provider], error)
	CreateProvider(ctx context.Context, input CreateProviderInput) (*models.Provider, error)
	GetProviderByID(ctx context.Context, input GetProviderByIDInput) (*models.Provider, error)
	UpdateProvider(ctx context.Context, input UpdateProviderInput) (*models.Provider, error)
}

type GetProvidersInput struct {
	resources.ListQuery
	CountryCode string
	Keywords    string
}

type CreateProviderInput struct {
	resources.CreateProviderBody
	AccountID string
}

type GetProviderByIDInput struct {
	ID string `validate:"required"`
}

type UpdateProviderInput struct {
	ID string `validate:"required"`
	resources.UpdateProviderBody
}
