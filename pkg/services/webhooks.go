package services

import (
	"context"

	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/resources"
)

type WebhooksService interface {
	GetWebhookEndpoints(ctx context.Context, input GetWebhookEndpointsInput) (*resources.ListResponse[models.WebhookEndpoint], error)
	CreateWebhookEndpoint(ctx context.Context, input CreateWebhookEndpointInput) (*models.WebhookEndpoint, error)
	GetWebhookEndpointByID(ctx context.Context, input GetWebhookEndpointByIDInput) (*models.WebhookEndpoint, error)
	UpdateWebhookEndpoint(ctx context.Context, input UpdateWebhookEndpointInput) (*models.WebhookEndpoint, error)
	DeleteWebhookEndpoint(ctx context.Context, input DeleteWebhookEndpointInput) error
}

type GetWebhookEndpointsInput struct {
	resources.ListQuery
}

type CreateWebhookEndpointInput struct {
	resources.CreateWebhookEndpointBody
	AccountID string
}

type GetWebhookEndpointByIDInput struct {
	ID string `validate:"required"`
}

type UpdateWebhookEndpointInput struct {
	ID string `validate:"required"`
	resources.UpdateWebhookEndpointBody
}

type DeleteWebhookEndpointInput struct {
	ID string `validate:"required"`
}
