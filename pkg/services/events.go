package services

import (
	"context"

	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/resources"
)

type EventsService interface {
	GetEvents(ctx context.Context, input GetEventsInput) (*resources.ListResponse[models.Event], error)
	GetEventByID(ctx context.Context, input GetEventByIDInput) (*models.Event, error)
}

type GetEventsInput struct {
	resources.ListQuery
	Type string
}

type GetEventByIDInput struct {
	ID string `validate:"required"`
}
