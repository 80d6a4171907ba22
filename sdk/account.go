package sdk

import (
	"context"
	"net/http"

	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/services"
)

type accountClient struct {
	httpClient *http.Client
	state      *authState
}

func newAccountClient(client *http.Client, state *authState) services.AccountService {
	return &accountClient{
		httpClient: client,
		state:      state,
	}
}

func (cli *accountClient) GetCurrentAccount(ctx context.Context) (*models.Account, error) {
	response, err := Get[models.Account](ctx, cli.httpClient, cli.state.BaseURL()+"/account", nil)
	if err != nil {
		return nil, err
	}

	return &response, nil
}
