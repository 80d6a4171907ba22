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

type devicesClient struct {
	httpClient *http.Client
	state      *authState
}

func newDevicesClient(client *http.Client, state *authState) services.DevicesService {
	return &devicesClient{
		httpClient: client,
		state:      state,
	}
}

func (cli *devicesClient) GetDevices(ctx context.Context, input services.GetDevicesInput) (*resources.ListResponse[models.Device], error) {
	query := input.Encode(url.Values{})
	if input.ReferenceID != "" {
		query.Set("reference_id", input.ReferenceID)
	}

	if input.Mac != "" {
		query.Set("mac", input.Mac)
	}

	if input.IsDisabled != nil {
		query.Set("is_disabled", strconv.FormatBool(*input.IsDisabled))
	}

	response, err := Get[resources.ListResponse[models.Device]](ctx, cli.httpClient, cli.state.BaseURL()+"/devices", query)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (cli *devicesClient) CreateDevice(ctx context.Context, input services.CreateDeviceInput) (*models.Device, error) {
	response, err := Post[models.Device](ctx, cli.httpClient, cli.state.BaseURL()+"/devices", input.CreateDeviceBody, accountQuery(input.AccountID))
	if err != nil {
		return nil, err
	}

	return &response, nil
}

// CheckDeviceMac asks whether a MAC address is usable for device
// registration. The check is a bodyless PUT on the devices collection.
func (cli *devicesClient) CheckDeviceMac(ctx context.Context, input services.CheckDeviceMacInput) (*models.MacCheck, error) {
	query := url.Values{}
	query.Set("mac", input.Mac)
	if input.AccountID != "" {
		query.Set("account_id", input.AccountID)
	}

	if input.CustomerID != "" {
		query.Set("customer_id", input.CustomerID)
	}

	response, err := Put[models.MacCheck](ctx, cli.httpClient, cli.state.BaseURL()+"/devices", nil, query)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (cli *devicesClient) GetDeviceByID(ctx context.Context, input services.GetDeviceByIDInput) (*models.Device, error) {
	response, err := Get[models.Device](ctx, cli.httpClient, cli.state.BaseURL()+"/devices/"+input.ID, nil)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (cli *devicesClient) UpdateDevice(ctx context.Context, input services.UpdateDeviceInput) (*models.Device, error) {
	response, err := Patch[models.Device](ctx, cli.httpClient, cli.state.BaseURL()+"/devices/"+input.ID, input.UpdateDeviceBody)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (cli *devicesClient) DeleteDevice(ctx context.Context, input services.DeleteDeviceInput) error {
	return Delete(ctx, cli.httpClient, cli.state.BaseURL()+"/devices/"+input.ID)
}

func (cli *devicesClient) MeterDevice(ctx context.Context, input services.MeterDeviceInput) (*models.DeviceMeter, error) {
	response, err := Put[models.DeviceMeter](ctx, cli.httpClient, cli.state.BaseURL()+"/devices/"+input.ID, input.Consumption, nil)
	if err != nil {
		return nil, err
	}

	return &response, nil
}
