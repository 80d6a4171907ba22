package sdk

import (
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/flat-peak/go-sdk/pkg/config"
	"github.com/flat-peak/go-sdk/pkg/errs"
	"github.com/flat-peak/go-sdk/pkg/helpers"
	"github.com/flat-peak/go-sdk/pkg/services"
)

// FlatPeak is the aggregate API client. Every resource gateway shares
// one authState cell, so rotating credentials through the setters is
// observed by all gateways and clears the bearer token cache.
type FlatPeak struct {
	Accounts     services.AccountService
	Login        services.LoginService
	Customers    services.CustomersService
	Devices      services.DevicesService
	Products     services.ProductsService
	Tariffs      services.TariffsService
	Providers    services.ProvidersService
	Rates        services.RatesService
	Events       services.EventsService
	Webhooks     services.WebhooksService
	Provisioning services.TariffProvisionerService

	state  *authState
	logger *logrus.Entry
}

func NewFlatPeakClient(cfg config.FlatPeakClient) (*FlatPeak, error) {
	err := validator.New().Struct(cfg)
	if err != nil {
		return nil, errs.ErrMissingHost
	}

	logger := helpers.SetupLogger(cfg.LogLevel, "flatpeak", "sdk")
	state := newAuthState(cfg, logger)

	basicCli := BuildHTTPClient(state, AuthBasic, logger)
	bearerCli := BuildHTTPClient(state, AuthBearer, logger)

	client := &FlatPeak{
		Accounts:  newAccountClient(basicCli, state),
		Login:     newLoginClient(state),
		Customers: newCustomersClient(basicCli, state),
		Devices:   newDevicesClient(basicCli, state),
		Products:  newProductsClient(basicCli, bearerCli, state),
		Tariffs:   newTariffsClient(basicCli, bearerCli, state),
		Providers: newProvidersClient(basicCli, state),
		Rates:     newRatesClient(basicCli, bearerCli, state),
		Events:    newEventsClient(bearerCli, state),
		Webhooks:  newWebhooksClient(basicCli, state),
		state:     state,
		logger:    logger,
	}

	client.Provisioning = NewTariffProvisioner(TariffProvisionerBuilder{
		Logger:    logger,
		Customers: client.Customers,
		Devices:   client.Devices,
		Products:  client.Products,
		Tariffs:   client.Tariffs,
	})

	return client, nil
}

// NewFlatPeakClientFromEnv builds a client from FLATPEAK_* environment
// variables.
func NewFlatPeakClientFromEnv() (*FlatPeak, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	return NewFlatPeakClient(cfg)
}

func (fp *FlatPeak) Host() string {
	return fp.state.Host()
}

func (fp *FlatPeak) PublishableKey() string {
	return fp.state.PublishableKey()
}

func (fp *FlatPeak) SecretKey() string {
	return fp.state.SecretKey()
}

// SetHost points the client at another API host and clears the bearer
// token cache.
func (fp *FlatPeak) SetHost(value string) {
	fp.state.SetHost(value)
}

// SetPublishableKey rotates the publishable key and clears the bearer
// token cache.
func (fp *FlatPeak) SetPublishableKey(value string) {
	fp.state.SetPublishableKey(value)
}

// SetSecretKey rotates the secret key and clears the bearer token
// cache; the next bearer-authenticated call re-runs the account lookup
// and login exchange.
func (fp *FlatPeak) SetSecretKey(value string) {
	fp.state.SetSecretKey(value)
}
