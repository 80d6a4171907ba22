package sdk

import (
	"context"
	"net/http"
	"net/url"

	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/resources"
	"github.com/flat-peak/go-sdk/pkg/services"
)

type webhooksClient struct {
	httpClient *http.Client
	state      *authState
}

func newWebhooksClient(client *http.Client, state *authState) services.WebhooksService {
	return &webhooksClient{
		httpClient: client,
		state:      state,
	}
}

func (cli *webhooksClient) GetWebhookEndpoints(ctx context.Context, input services.GetWebhookEndpointsInput) (*resources.ListResponse[models.WebhookEndpoint], error) {
	query := input.Encode(url.Values{})
	response, err := Get[resources.ListResponse[models.WebhookEndpoint]](ctx, cli.httpClient, cli.state.BaseURL()+"/webhooks", query)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (cli *webhooksClient) CreateWebhookEndpoint(ctx context.Context, input services.CreateWebhookEndpointInput) (*models.WebhookEndpoint, error) {
	response, err := Post[models.WebhookEndpoint](ctx, cli.httpClient, cli.state.BaseURL()+"/webhooks", input.CreateWebhookEndpointBody, accountQuery(input.AccountID))
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (cli *webhooksClient) GetWebhookEndpointByID(ctx context.Context, input services.GetWebhookEndpointByIDInput) (*models.WebhookEndpoint, error) {
	response, err := Get[models.WebhookEndpoint](ctx, cli.httpClient, cli.state.BaseURL()+"/webhooks/"+input.ID, nil)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

// UpdateWebhookEndpoint replaces endpoint settings. The API models this
// as a POST on the endpoint resource.
func (cli *webhooksClient) UpdateWebhookEndpoint(ctx context.Context, input services.UpdateWebhookEndpointInput) (*models.WebhookEndpoint, error) {
	response, err := Post[models.WebhookEndpoint](ctx, cli.httpClient, cli.state.BaseURL()+"/webhooks/"+input.ID, input.UpdateWebhookEndpointBody, nil)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (cli *webhooksClient) DeleteWebhookEndpoint(ctx context.Context, input services.DeleteWebhookEndpointInput) error {
	return Delete(ctx, cli.httpClient, cli.state.BaseURL()+"/webhooks/"+input.ID)
}
