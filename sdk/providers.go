package sdk

import (
	"context"
	"net/http"
	"net/url"

	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/resources"
	"github.com/flat-peak/go-sdk/pkg/services"
)

type providersClient struct {
	httpClient *http.Client
	state      *authState
}

func newProvidersClient(client *http.Client, state *authState) services.ProvidersService {
	return &providersClient{
		httpClient: client,
		state:      state,
	}
}

func (cli *providersClient) GetProviders(ctx context.Context, input services.GetProvidersInput) (*resources.ListResponse[models.Provider], error) {
	query := input.Encode(url.Values{})
	if input.CountryCode != "" {
		query.Set("country_code", input.CountryCode)
	}

	if input.Keywords != "" {
		query.Set("keywords", input.Keywords)
	}

	response, err := Get[resources.ListResponse[models.Provider]](ctx, cli.httpClient, cli.state.BaseURL()+"/providers", query)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (cli *providersClient) CreateProvider(ctx context.Context, input services.CreateProviderInput) (*models.Provider, error) {
	response, err := Post[models.Provider](ctx, cli.httpClient, cli.state.BaseURL()+"/providers", input.CreateProviderBody, accountQuery(input.AccountID))
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (cli *providersClient) GetProviderByID(ctx context.Context, input services.GetProviderByIDInput) (*models.Provider, error) {
	response, err := Get[models.Provider](ctx, cli.httpClient, cli.state.BaseURL()+"/providers/"+input.ID, nil)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (cli *providersClient) UpdateProvider(ctx context.Context, input services.UpdateProviderInput) (*models.Provider, error) {
	response, err := Patch[models.Provider](ctx, cli.httpClient, cli.state.BaseURL()+"/providers/"+input.ID, input.UpdateProviderBody)
	if err != nil {
		return nil, err
	}

	return &response, nil
}
