package sdk

import (
	"context"
	"net/http"
	"net/url"

	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/resources"
	"github.com/flat-peak/go-sdk/pkg/services"
)

type customersClient struct {
	httpClient *http.Client
	state      *authState
}

func newCustomersClient(client *http.Client, state *authState) services.CustomersService {
	return &customersClient{
		httpClient: client,
		state:      state,
	}
}

func (cli *customersClient) GetCustomers(ctx context.Context, input services.GetCustomersInput) (*resources.ListResponse[models.Customer], error) {
	query := input.Encode(url.Values{})
	response, err := Get[resources.ListResponse[models.Customer]](ctx, cli.httpClient, cli.state.BaseURL()+"/customers", query)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (cli *customersClient) CreateCustomer(ctx context.Context, input services.CreateCustomerInput) (*models.Customer, error) {
	response, err := Post[models.Customer](ctx, cli.httpClient, cli.state.BaseURL()+"/customers", input.CreateCustomerBody, accountQuery(input.AccountID))
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (cli *customersClient) GetCustomerByID(ctx context.Context, input services.GetCustomerByIDInput) (*models.Customer, error) {
	response, err := Get[models.Customer](ctx, cli.httpClient, cli.state.BaseURL()+"/customers/"+input.ID, nil)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (cli *customersClient) UpdateCustomer(ctx context.Context, input services.UpdateCustomerInput) (*models.Customer, error) {
	response, err := Patch[models.Customer](ctx, cli.httpClient, cli.state.BaseURL()+"/customers/"+input.ID, input.UpdateCustomerBody)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (cli *customersClient) DeleteCustomer(ctx context.Context, input services.DeleteCustomerInput) error {
	return Delete(ctx, cli.httpClient, cli.state.BaseURL()+"/customers/"+input.ID)
}
