package sdk

import (
	"context"

	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/services"
)

type loginClient struct {
	state *authState
}

func newLoginClient(state *authState) services.LoginService {
	return &loginClient{
		state: state,
	}
}

// ObtainToken runs the login token exchange and returns the bearer
// token. The shared token cache is populated as a side effect, so
// subsequent bearer-authenticated calls reuse it.
func (cli *loginClient) ObtainToken(ctx context.Context) (*models.AuthToken, error) {
	authorization, err := cli.state.ResolveAuthorization(ctx, AuthBearer)
	if err != nil {
		return nil, err
	}

	return &models.AuthToken{Token: authorization[len("Bearer "):]}, nil
}
