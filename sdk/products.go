package sdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/resources"
	"github.com/flat-peak/go-sdk/pkg/services"
)

type productsClient struct {
	httpClient   *http.Client
	bearerClient *http.Client
	state        *authState
}

func newProductsClient(client *http.Client, bearerClient *http.Client, state *authState) services.ProductsService {
	return &productsClient{
		httpClient:   client,
		bearerClient: bearerClient,
		state:        state,
	}
}

// GetProducts lists products of the account. This endpoint is bearer
// authenticated.
func (cli *productsClient) GetProducts(ctx context.Context, input services.GetProductsInput) (*resources.ListResponse[models.Product], error) {
	query := input.Encode(url.Values{})
	if input.ReferenceID != "" {
		query.Set("reference_id", input.ReferenceID)
	}

	if input.IsDisabled != nil {
		query.Set("is_disabled", strconv.FormatBool(*input.IsDisabled))
	}

	response, err := Get[resources.ListResponse[models.Product]](ctx, cli.bearerClient, cli.state.BaseURL()+"/products", query)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (cli *productsClient) CreateProduct(ctx context.Context, input services.CreateProductInput) (*models.Product, error) {
	response, err := Post[models.Product](ctx, cli.httpClient, cli.state.BaseURL()+"/products", input.CreateProductBody, accountQuery(input.AccountID))
	if err != nil {
		return nil, err
	}

	return &response, nil
}

// PullProduct initiates a tariff refresh through the provider
// integration. This endpoint is bearer authenticated.
func (cli *productsClient) PullProduct(ctx context.Context, input services.PullProductInput) error {
	body := input.PullProductBody
	if body.Action == "" {
		body.Action = resources.PullActionTariff
	}

	query := url.Values{}
	query.Set("provider_id", input.ProviderID)

	_, err := requestWithBody[struct{}](ctx, cli.bearerClient, "PATCH", cli.state.BaseURL()+"/products", body, query)
	return err
}

func (cli *productsClient) GetProductByID(ctx context.Context, input services.GetProductByIDInput) (*models.Product, error) {
	response, err := Get[models.Product](ctx, cli.httpClient, cli.state.BaseURL()+"/products/"+input.ID, nil)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (cli *productsClient) UpdateProduct(ctx context.Context, input services.UpdateProductInput) (*models.Product, error) {
	response, err := Patch[models.Product](ctx, cli.httpClient, cli.state.BaseURL()+"/products/"+input.ID, input.UpdateProductBody)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (cli *productsClient) DeleteProduct(ctx context.Context, input services.DeleteProductInput) error {
	return Delete(ctx, cli.httpClient, cli.state.BaseURL()+"/products/"+input.ID)
}

func (cli *productsClient) MeterProduct(ctx context.Context, input services.MeterProductInput) (*models.DeviceMeter, error) {
	response, err := Put[models.DeviceMeter](ctx, cli.httpClient, cli.state.BaseURL()+"/products/"+input.ID, input.Consumption, nil)
	if err != nil {
		return nil, err
	}

	return &response, nil
}
