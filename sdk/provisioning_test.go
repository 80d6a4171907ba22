package sdk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flat-peak/go-sdk/pkg/config"
	"github.com/flat-peak/go-sdk/pkg/errs"
	"github.com/flat-peak/go-sdk/pkg/helpers"
	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/resources"
	"github.com/flat-peak/go-sdk/pkg/services"
	"github.com/flat-peak/go-sdk/pkg/services/mock"
)

type provisionerMocks struct {
	customers *mock.MockCustomersService
	devices   *mock.MockDevicesService
	products  *mock.MockProductsService
	tariffs   *mock.MockTariffsService
}

func setupProvisioner(t *testing.T) (services.TariffProvisionerService, provisionerMocks) {
	mocks := provisionerMocks{
		customers: &mock.MockCustomersService{},
		devices:   &mock.MockDevicesService{},
		products:  &mock.MockProductsService{},
		tariffs:   &mock.MockTariffsService{},
	}

	svc := NewTariffProvisioner(TariffProvisionerBuilder{
		Logger:    helpers.SetupLogger(config.None, "flatpeak", "test"),
		Customers: mocks.customers,
		Devices:   mocks.devices,
		Products:  mocks.products,
		Tariffs:   mocks.tariffs,
	})

	return svc, mocks
}

func (m provisionerMocks) assertExpectations(t *testing.T) {
	m.customers.AssertExpectations(t)
	m.devices.AssertExpectations(t)
	m.products.AssertExpectations(t)
	m.tariffs.AssertExpectations(t)
}

func TestSaveManualTariffFirstRun(t *testing.T) {
	svc, mocks := setupProvisioner(t)
	ctx := context.Background()

	plan := models.Tariff{
		DisplayName: "Day & Night",
		Import: []models.TariffWeekday{
			{Type: "weekday"},
		},
	}

	mocks.devices.On("CheckDeviceMac", ctx, services.CheckDeviceMacInput{
		Mac: "00:11:22:33:44:55",
	}).Return(&models.MacCheck{Usable: true}, nil)

	mocks.customers.On("CreateCustomer", ctx, services.CreateCustomerInput{
		CreateCustomerBody: resources.CreateCustomerBody{IsDisabled: false},
	}).Return(&models.Customer{ID: "cus_1"}, nil)

	mocks.products.On("CreateProduct", ctx, services.CreateProductInput{
		CreateProductBody: resources.CreateProductBody{
			CustomerID: "cus_1",
			ProviderID: "prv_1",
			IsDisabled: false,
			Timezone:   "Europe/London",
		},
	}).Return(&models.Product{ID: "prd_1", CustomerID: "cus_1"}, nil)

	mocks.tariffs.On("CreateTariff", ctx, services.CreateTariffInput{
		CreateTariffBody: resources.CreateTariffBody{
			ProductID:   "prd_1",
			DisplayName: "Day & Night",
			Import:      plan.Import,
			Timezone:    "Europe/London",
		},
	}).Return(&models.Tariff{ID: "trf_1", DisplayName: "Day & Night"}, nil)

	mocks.products.On("UpdateProduct", ctx, services.UpdateProductInput{
		ID: "prd_1",
		UpdateProductBody: resources.UpdateProductBody{
			TariffSettings: &models.TariffSettings{
				DisplayName: "Day & Night",
				IsEnabled:   true,
				Integrated:  false,
				TariffID:    "trf_1",
			},
		},
	}).Return(&models.Product{ID: "prd_1", CustomerID: "cus_1", TariffSettings: &models.TariffSettings{TariffID: "trf_1"}}, nil)

	mocks.devices.On("CreateDevice", ctx, services.CreateDeviceInput{
		CreateDeviceBody: resources.CreateDeviceBody{
			Mac:        "00:11:22:33:44:55",
			Products:   []string{"prd_1"},
			CustomerID: "cus_1",
		},
	}).Return(&models.Device{ID: "dev_1", Mac: "00:11:22:33:44:55"}, nil)

	result, err := svc.SaveManualTariff(ctx, services.SaveManualTariffInput{
		MacAddress: "00:11:22:33:44:55",
		Timezone:   "Europe/London",
		ProviderID: "prv_1",
		TariffPlan: plan,
	})

	require.NoError(t, err)
	assert.Equal(t, "dev_1", result.DeviceID)
	assert.Equal(t, "cus_1", result.CustomerID)
	assert.Equal(t, "prd_1", result.ProductID)
	assert.Equal(t, "trf_1", result.TariffID)
	mocks.assertExpectations(t)
}

func TestSaveManualTariffUnchangedPlanIsReused(t *testing.T) {
	svc, mocks := setupProvisioner(t)
	ctx := context.Background()

	stored := models.Tariff{
		ID:          "trf_1",
		DisplayName: "Standard",
		ProductID:   "prd_1",
		Timezone:    "Europe/London",
		Import: []models.TariffWeekday{
			{Type: "weekday"},
		},
	}

	plan := stored
	plan.Source = "app"

	mocks.devices.On("CheckDeviceMac", ctx, services.CheckDeviceMacInput{
		Mac:        "00:11:22:33:44:55",
		CustomerID: "cus_1",
	}).Return(&models.MacCheck{DeviceID: "dev_1", Usable: false}, nil)

	mocks.customers.On("GetCustomerByID", ctx, services.GetCustomerByIDInput{ID: "cus_1"}).
		Return(&models.Customer{ID: "cus_1"}, nil)

	mocks.products.On("GetProductByID", ctx, services.GetProductByIDInput{ID: "prd_1"}).
		Return(&models.Product{ID: "prd_1"}, nil)

	disabled := false
	mocks.products.On("UpdateProduct", ctx, services.UpdateProductInput{
		ID: "prd_1",
		UpdateProductBody: resources.UpdateProductBody{
			CustomerID: "cus_1",
			ProviderID: "prv_1",
			IsDisabled: &disabled,
			Timezone:   "Europe/London",
		},
	}).Return(&models.Product{ID: "prd_1", Devices: []string{"dev_1"}}, nil)

	mocks.tariffs.On("GetTariffByID", ctx, services.GetTariffByIDInput{ID: "trf_1"}).
		Return(&stored, nil)

	result, err := svc.SaveManualTariff(ctx, services.SaveManualTariffInput{
		MacAddress: "00:11:22:33:44:55",
		Timezone:   "Europe/London",
		ProductID:  "prd_1",
		CustomerID: "cus_1",
		ProviderID: "prv_1",
		TariffPlan: plan,
	})

	require.NoError(t, err)
	assert.Empty(t, result.TariffID)
	assert.Empty(t, result.DeviceID)
	assert.Equal(t, "prd_1", result.ProductID)
	mocks.tariffs.AssertNotCalled(t, "CreateTariff")
	mocks.devices.AssertNotCalled(t, "CreateDevice")
	mocks.assertExpectations(t)
}

func TestSaveManualTariffChangedPlanCreatesNewVersion(t *testing.T) {
	svc, mocks := setupProvisioner(t)
	ctx := context.Background()

	stored := models.Tariff{
		ID:          "trf_1",
		DisplayName: "Standard",
		ProductID:   "prd_1",
		Timezone:    "Europe/London",
	}

	plan := stored
	plan.DisplayName = "Standard v2"

	mocks.devices.On("CheckDeviceMac", ctx, services.CheckDeviceMacInput{
		Mac:        "00:11:22:33:44:55",
		CustomerID: "cus_1",
	}).Return(&models.MacCheck{DeviceID: "dev_1", Usable: false}, nil)

	mocks.customers.On("GetCustomerByID", ctx, services.GetCustomerByIDInput{ID: "cus_1"}).
		Return(&models.Customer{ID: "cus_1"}, nil)

	mocks.products.On("GetProductByID", ctx, services.GetProductByIDInput{ID: "prd_1"}).
		Return(&models.Product{ID: "prd_1"}, nil)

	disabled := false
	mocks.products.On("UpdateProduct", ctx, services.UpdateProductInput{
		ID: "prd_1",
		UpdateProductBody: resources.UpdateProductBody{
			CustomerID: "cus_1",
			ProviderID: "prv_1",
			IsDisabled: &disabled,
			Timezone:   "Europe/London",
		},
	}).Return(&models.Product{ID: "prd_1", Devices: []string{"dev_1"}}, nil)

	mocks.tariffs.On("GetTariffByID", ctx, services.GetTariffByIDInput{ID: "trf_1"}).
		Return(&stored, nil)

	mocks.tariffs.On("CreateTariff", ctx, services.CreateTariffInput{
		CreateTariffBody: resources.CreateTariffBody{
			ProductID:   "prd_1",
			DisplayName: "Standard v2",
			Timezone:    "Europe/London",
		},
	}).Return(&models.Tariff{ID: "trf_2", DisplayName: "Standard v2"}, nil)

	mocks.products.On("UpdateProduct", ctx, services.UpdateProductInput{
		ID: "prd_1",
		UpdateProductBody: resources.UpdateProductBody{
			TariffSettings: &models.TariffSettings{
				DisplayName: "Standard v2",
				IsEnabled:   true,
				Integrated:  false,
				TariffID:    "trf_2",
			},
		},
	}).Return(&models.Product{ID: "prd_1", Devices: []string{"dev_1"}}, nil)

	result, err := svc.SaveManualTariff(ctx, services.SaveManualTariffInput{
		MacAddress: "00:11:22:33:44:55",
		Timezone:   "Europe/London",
		ProductID:  "prd_1",
		CustomerID: "cus_1",
		ProviderID: "prv_1",
		TariffPlan: plan,
	})

	require.NoError(t, err)
	assert.Equal(t, "trf_2", result.TariffID)
	assert.Empty(t, result.DeviceID)
	mocks.assertExpectations(t)
}

func TestSaveManualTariffResumesWithKnownCustomer(t *testing.T) {
	svc, mocks := setupProvisioner(t)
	ctx := context.Background()

	mocks.devices.On("CheckDeviceMac", ctx, services.CheckDeviceMacInput{
		Mac: "00:11:22:33:44:55",
	}).Return(&models.MacCheck{Usable: true}, nil).Once()

	mocks.customers.On("CreateCustomer", ctx, services.CreateCustomerInput{
		CreateCustomerBody: resources.CreateCustomerBody{IsDisabled: false},
	}).Return(&models.Customer{ID: "cus_1"}, nil).Once()

	mocks.products.On("CreateProduct", ctx, services.CreateProductInput{
		CreateProductBody: resources.CreateProductBody{
			CustomerID: "cus_1",
			ProviderID: "prv_1",
			IsDisabled: false,
			Timezone:   "Europe/London",
		},
	}).Return(nil, &errs.APIError{Message: "provider is not integrated"}).Once()

	_, err := svc.SaveManualTariff(ctx, services.SaveManualTariffInput{
		MacAddress: "00:11:22:33:44:55",
		Timezone:   "Europe/London",
		ProviderID: "prv_1",
		TariffPlan: models.Tariff{DisplayName: "Standard"},
	})
	require.Error(t, err)

	// second run with the customer id from the first; the customer must
	// be fetched, not created again
	mocks.devices.On("CheckDeviceMac", ctx, services.CheckDeviceMacInput{
		Mac:        "00:11:22:33:44:55",
		CustomerID: "cus_1",
	}).Return(&models.MacCheck{Usable: true}, nil).Once()

	mocks.customers.On("GetCustomerByID", ctx, services.GetCustomerByIDInput{ID: "cus_1"}).
		Return(&models.Customer{ID: "cus_1"}, nil).Once()

	mocks.products.On("CreateProduct", ctx, services.CreateProductInput{
		CreateProductBody: resources.CreateProductBody{
			CustomerID: "cus_1",
			ProviderID: "prv_1",
			IsDisabled: false,
			Timezone:   "Europe/London",
		},
	}).Return(&models.Product{ID: "prd_1", CustomerID: "cus_1"}, nil).Once()

	mocks.tariffs.On("CreateTariff", ctx, services.CreateTariffInput{
		CreateTariffBody: resources.CreateTariffBody{
			ProductID:   "prd_1",
			DisplayName: "Standard",
			Timezone:    "Europe/London",
		},
	}).Return(&models.Tariff{ID: "trf_1", DisplayName: "Standard"}, nil).Once()

	mocks.products.On("UpdateProduct", ctx, services.UpdateProductInput{
		ID: "prd_1",
		UpdateProductBody: resources.UpdateProductBody{
			TariffSettings: &models.TariffSettings{
				DisplayName: "Standard",
				IsEnabled:   true,
				Integrated:  false,
				TariffID:    "trf_1",
			},
		},
	}).Return(&models.Product{ID: "prd_1"}, nil).Once()

	mocks.devices.On("CreateDevice", ctx, services.CreateDeviceInput{
		CreateDeviceBody: resources.CreateDeviceBody{
			Mac:        "00:11:22:33:44:55",
			Products:   []string{"prd_1"},
			CustomerID: "cus_1",
		},
	}).Return(&models.Device{ID: "dev_1"}, nil).Once()

	result, err := svc.SaveManualTariff(ctx, services.SaveManualTariffInput{
		MacAddress: "00:11:22:33:44:55",
		Timezone:   "Europe/London",
		CustomerID: "cus_1",
		ProviderID: "prv_1",
		TariffPlan: models.Tariff{DisplayName: "Standard"},
	})

	require.NoError(t, err)
	assert.Equal(t, "cus_1", result.CustomerID)
	mocks.customers.AssertNumberOfCalls(t, "CreateCustomer", 1)
	mocks.assertExpectations(t)
}

func TestSaveManualTariffMacCheckFailureStopsRun(t *testing.T) {
	svc, mocks := setupProvisioner(t)
	ctx := context.Background()

	mocks.devices.On("CheckDeviceMac", ctx, services.CheckDeviceMacInput{
		Mac: "not-a-mac",
	}).Return(nil, &errs.APIError{Message: "invalid mac address"})

	_, err := svc.SaveManualTariff(ctx, services.SaveManualTariffInput{
		MacAddress: "not-a-mac",
	})

	require.Error(t, err)
	assert.Equal(t, "invalid mac address", err.Error())
	mocks.customers.AssertNotCalled(t, "CreateCustomer")
	mocks.customers.AssertNotCalled(t, "GetCustomerByID")
	mocks.products.AssertNotCalled(t, "CreateProduct")
	mocks.assertExpectations(t)
}

func TestSaveConnectedTariffRequiresExistingResources(t *testing.T) {
	tests := []struct {
		name  string
		input services.SaveConnectedTariffInput
	}{
		{
			name: "missing product id",
			input: services.SaveConnectedTariffInput{
				CustomerID: "cus_1",
				TariffPlan: models.Tariff{ID: "trf_1"},
			},
		},
		{
			name: "missing customer id",
			input: services.SaveConnectedTariffInput{
				ProductID:  "prd_1",
				TariffPlan: models.Tariff{ID: "trf_1"},
			},
		},
		{
			name: "missing tariff id",
			input: services.SaveConnectedTariffInput{
				ProductID:  "prd_1",
				CustomerID: "cus_1",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, mocks := setupProvisioner(t)

			_, err := svc.SaveConnectedTariff(context.Background(), tc.input)

			require.ErrorIs(t, err, errs.ErrValidateBadRequest)
			mocks.products.AssertNotCalled(t, "GetProductByID")
			mocks.customers.AssertNotCalled(t, "GetCustomerByID")
			mocks.assertExpectations(t)
		})
	}
}

func TestSaveConnectedTariffReenablesDisabledResources(t *testing.T) {
	svc, mocks := setupProvisioner(t)
	ctx := context.Background()

	mocks.products.On("GetProductByID", ctx, services.GetProductByIDInput{ID: "prd_1"}).
		Return(&models.Product{ID: "prd_1", IsDisabled: true}, nil)

	mocks.customers.On("GetCustomerByID", ctx, services.GetCustomerByIDInput{ID: "cus_1"}).
		Return(&models.Customer{ID: "cus_1", IsDisabled: true}, nil)

	disabled := false
	mocks.customers.On("UpdateCustomer", ctx, services.UpdateCustomerInput{
		ID:                 "cus_1",
		UpdateCustomerBody: resources.UpdateCustomerBody{IsDisabled: &disabled},
	}).Return(&models.Customer{ID: "cus_1"}, nil)

	mocks.products.On("UpdateProduct", ctx, services.UpdateProductInput{
		ID:                "prd_1",
		UpdateProductBody: resources.UpdateProductBody{IsDisabled: &disabled},
	}).Return(&models.Product{ID: "prd_1"}, nil)

	result, err := svc.SaveConnectedTariff(ctx, services.SaveConnectedTariffInput{
		ProductID:  "prd_1",
		CustomerID: "cus_1",
		TariffPlan: models.Tariff{ID: "trf_1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "trf_1", result.TariffID)
	assert.Empty(t, result.DeviceID)
	mocks.assertExpectations(t)
}

func TestSaveConnectedTariffSkipsUpdatesWhenEnabled(t *testing.T) {
	svc, mocks := setupProvisioner(t)
	ctx := context.Background()

	mocks.products.On("GetProductByID", ctx, services.GetProductByIDInput{ID: "prd_1"}).
		Return(&models.Product{ID: "prd_1"}, nil)

	mocks.customers.On("GetCustomerByID", ctx, services.GetCustomerByIDInput{ID: "cus_1"}).
		Return(&models.Customer{ID: "cus_1"}, nil)

	result, err := svc.SaveConnectedTariff(ctx, services.SaveConnectedTariffInput{
		ProductID:  "prd_1",
		CustomerID: "cus_1",
		TariffPlan: models.Tariff{ID: "trf_1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "cus_1", result.CustomerID)
	assert.Equal(t, "prd_1", result.ProductID)
	mocks.customers.AssertNotCalled(t, "UpdateCustomer")
	mocks.products.AssertNotCalled(t, "UpdateProduct")
	mocks.assertExpectations(t)
}

func TestSaveConnectedTariffReusesRegisteredDevice(t *testing.T) {
	svc, mocks := setupProvisioner(t)
	ctx := context.Background()

	mocks.products.On("GetProductByID", ctx, services.GetProductByIDInput{ID: "prd_1"}).
		Return(&models.Product{ID: "prd_1", Devices: []string{"dev_1"}}, nil)

	mocks.customers.On("GetCustomerByID", ctx, services.GetCustomerByIDInput{ID: "cus_1"}).
		Return(&models.Customer{ID: "cus_1"}, nil)

	mocks.devices.On("CheckDeviceMac", ctx, services.CheckDeviceMacInput{
		Mac:        "00:11:22:33:44:55",
		CustomerID: "cus_1",
	}).Return(&models.MacCheck{DeviceID: "dev_1", Usable: false}, nil)

	mocks.devices.On("GetDeviceByID", ctx, services.GetDeviceByIDInput{ID: "dev_1"}).
		Return(&models.Device{ID: "dev_1", Mac: "00:11:22:33:44:55"}, nil)

	result, err := svc.SaveConnectedTariff(ctx, services.SaveConnectedTariffInput{
		MacAddress: "00:11:22:33:44:55",
		ProductID:  "prd_1",
		CustomerID: "cus_1",
		TariffPlan: models.Tariff{ID: "trf_1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "dev_1", result.DeviceID)
	mocks.devices.AssertNotCalled(t, "CreateDevice")
	mocks.assertExpectations(t)
}

func TestSaveConnectedTariffRegistersUnknownMac(t *testing.T) {
	svc, mocks := setupProvisioner(t)
	ctx := context.Background()

	mocks.products.On("GetProductByID", ctx, services.GetProductByIDInput{ID: "prd_1"}).
		Return(&models.Product{ID: "prd_1"}, nil)

	mocks.customers.On("GetCustomerByID", ctx, services.GetCustomerByIDInput{ID: "cus_1"}).
		Return(&models.Customer{ID: "cus_1"}, nil)

	mocks.devices.On("CheckDeviceMac", ctx, services.CheckDeviceMacInput{
		Mac:        "00:11:22:33:44:55",
		CustomerID: "cus_1",
	}).Return(&models.MacCheck{Usable: true}, nil)

	mocks.devices.On("CreateDevice", ctx, services.CreateDeviceInput{
		CreateDeviceBody: resources.CreateDeviceBody{
			Mac:        "00:11:22:33:44:55",
			Products:   []string{"prd_1"},
			CustomerID: "cus_1",
		},
	}).Return(&models.Device{ID: "dev_2"}, nil)

	result, err := svc.SaveConnectedTariff(ctx, services.SaveConnectedTariffInput{
		MacAddress: "00:11:22:33:44:55",
		ProductID:  "prd_1",
		CustomerID: "cus_1",
		TariffPlan: models.Tariff{ID: "trf_1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "dev_2", result.DeviceID)
	mocks.assertExpectations(t)
}
