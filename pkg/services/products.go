package services

import (
	"context"

	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/resources"
)

type ProductsService interface {
	GetProducts(ctx context.Context, input GetProductsInput) (*resources.ListResponse[models.Product], error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error)
	PullProduct(ctx context.Context, input PullProductInput) error
	GetProductByID(ctx context.Context, input GetProductByIDInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, input UpdateProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, input DeleteProductInput) error
	MeterProduct(ctx context.Context, input MeterProductInput) (*models.DeviceMeter, error)
}

type GetProductsInput struct {
	resources.ListQuery
	ReferenceID string
	IsDisabled  *bool
}

type CreateProductInput struct {
	resources.CreateProductBody
	AccountID string
}

// PullProductInput initiates a tariff refresh through the provider
// integration for the given provider.
type PullProductInput struct {
	ProviderID string `validate:"required"`
	resources.PullProductBody
}

type GetProductByIDInput struct {
	ID string `validate:"required"`
}

type UpdateProductInput struct {
	ID string `validate:"required"`
	resources.UpdateProductBody
}

type DeleteProductInput struct {
	ID string `validate:"required"`
}

type MeterProductInput struct {
	ID string `validate:"required"`
	models.Consumption
}
