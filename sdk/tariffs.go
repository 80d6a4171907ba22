package sdk

import (
	"context"
	"net/http"
	"net/url"

	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/resources"
	"github.com/flat-peak/go-sdk/pkg/services"
)

type tariffsClient struct {
	httpClient   *http.Client
	bearerClient *http.Client
	state        *authState
}

func newTariffsClient(client *http.Client, bearerClient *http.Client, state *authState) services.TariffsService {
	return &tariffsClient{
		httpClient:   client,
		bearerClient: bearerClient,
		state:        state,
	}
}

// GetTariffs lists stored tariff versions. This endpoint is bearer
// authenticated.
func (cli *tariffsClient) GetTariffs(ctx context.Context, input services.GetTariffsInput) (*resources.ListResponse[models.Tariff], error) {
	query := input.Encode(url.Values{})
	response, err := Get[resources.ListResponse[models.Tariff]](ctx, cli.bearerClient, cli.state.BaseURL()+"/tariffs", query)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (cli *tariffsClient) CreateTariff(ctx context.Context, input services.CreateTariffInput) (*models.Tariff, error) {
	response, err := Post[models.Tariff](ctx, cli.httpClient, cli.state.BaseURL()+"/tariffs", input.CreateTariffBody, accountQuery(input.AccountID))
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (cli *tariffsClient) GetTariffByID(ctx context.Context, input services.GetTariffByIDInput) (*models.Tariff, error) {
	response, err := Get[models.Tariff](ctx, cli.httpClient, cli.state.BaseURL()+"/tariffs/"+input.ID, nil)
	if err != nil {
		return nil, err
	}

	return &response, nil
}
