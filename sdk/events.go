package sdk

import (
	"context"
	"net/http"
	"net/url"

	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/resources"
	"github.com/flat-peak/go-sdk/pkg/services"
)

// eventsClient reads the account event feed. Both endpoints are bearer
// authenticated.
type eventsClient struct {
	bearerClient *http.Client
	state        *authState
}

func newEventsClient(bearerClient *http.Client, state *authState) services.EventsService {
	return &eventsClient{
		bearerClient: bearerClient,
		state:        state,
	}
}

func (cli *eventsClient) GetEvents(ctx context.Context, input services.GetEventsInput) (*resources.ListResponse[models.Event], error) {
	query := input.Encode(url.Values{})
	if input.Type != "" {
		query.Set("type", input.Type)
	}

	response, err := Get[resources.ListResponse[models.Event]](ctx, cli.bearerClient, cli.state.BaseURL()+"/events", query)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (cli *eventsClient) GetEventByID(ctx context.Context, input services.GetEventByIDInput) (*models.Event, error) {
	response, err := Get[models.Event](ctx, cli.bearerClient, cli.state.BaseURL()+"/events/"+input.ID, nil)
	if err != nil {
		return nil, err
	}

	return &response, nil
}
