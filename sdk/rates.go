package sdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/services"
)

type ratesClient struct {
	httpClient   *http.Client
	bearerClient *http.Client
	state        *authState
}

func newRatesClient(client *http.Client, bearerClient *http.Client, state *authState) services.RatesService {
	return &ratesClient{
		httpClient:   client,
		bearerClient: bearerClient,
		state:        state,
	}
}

func (cli *ratesClient) GetRatesForDevice(ctx context.Context, input services.GetRatesForDeviceInput) (*models.Rate, error) {
	query := ratesQuery(input.RatesPeriod, input.RatesType)
	response, err := Get[models.Rate](ctx, cli.httpClient, cli.state.BaseURL()+"/rates/device/"+input.DeviceID, query)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

// GetRatesForProduct fetches computed rates for a product. This
// endpoint is bearer authenticated.
func (cli *ratesClient) GetRatesForProduct(ctx context.Context, input services.GetRatesForProductInput) (*models.Rate, error) {
	query := ratesQuery(input.RatesPeriod, input.RatesType)
	response, err := Get[models.Rate](ctx, cli.bearerClient, cli.state.BaseURL()+"/rates/product/"+input.ProductID, query)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func ratesQuery(period int, ratesType string) url.Values {
	query := url.Values{}
	if period > 0 {
		query.Set("rates_period", strconv.Itoa(period))
	}

	if ratesType != "" {
		query.Set("rates_type", ratesType)
	}

	return query
}
