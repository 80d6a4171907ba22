package sdk

import (
	"context"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/flat-peak/go-sdk/pkg/errs"
	"github.com/flat-peak/go-sdk/pkg/helpers"
	"github.com/flat-peak/go-sdk/pkg/models"
	"github.com/flat-peak/go-sdk/pkg/resources"
	"github.com/flat-peak/go-sdk/pkg/services"
)

var provisionerValidate *validator.Validate

// tariffChangeFields are the fields compared between the stored tariff
// and the caller-supplied plan. A difference in any of them makes the
// plan a new tariff version.
var tariffChangeFields = []string{"timezone", "display_name", "product_id", "import", "export"}

type TariffProvisioner struct {
	customers services.CustomersService
	devices   services.DevicesService
	products  services.ProductsService
	tariffs   services.TariffsService
	logger    *logrus.Entry
}

type TariffProvisionerBuilder struct {
	Logger    *logrus.Entry
	Customers services.CustomersService
	Devices   services.DevicesService
	Products  services.ProductsService
	Tariffs   services.TariffsService
}

func NewTariffProvisioner(builder TariffProvisionerBuilder) services.TariffProvisionerService {
	provisionerValidate = validator.New()
	provisionerValidate.RegisterStructValidation(func(sl validator.StructLevel) {
		input := sl.Current().Interface().(services.SaveConnectedTariffInput)
		if input.TariffPlan.ID == "" {
			sl.ReportError(input.TariffPlan.ID, "TariffPlan.ID", "ID", "required", "")
		}
	}, services.SaveConnectedTariffInput{})

	return &TariffProvisioner{
		customers: builder.Customers,
		devices:   builder.Devices,
		products:  builder.Products,
		tariffs:   builder.Tariffs,
		logger:    builder.Logger,
	}
}

func (svc *TariffProvisioner) SaveManualTariff(ctx context.Context, input services.SaveManualTariffInput) (*models.ProvisioningResult, error) {
	lFunc := helpers.ConfigureLogger(ctx, svc.logger)

	macCheck, err := svc.devices.CheckDeviceMac(ctx, services.CheckDeviceMacInput{
		Mac:        input.MacAddress,
		CustomerID: input.CustomerID,
	})
	if err != nil {
		lFunc.Errorf("could not check mac availability for '%s': %s", input.MacAddress, err)
		return nil, err
	}

	customer, err := svc.resolveCustomer(ctx, lFunc, input.CustomerID)
	if err != nil {
		return nil, err
	}

	product, err := svc.resolveProduct(ctx, lFunc, input, customer.ID)
	if err != nil {
		return nil, err
	}

	isNewTariff := true
	if input.TariffPlan.ID != "" {
		stored, err := svc.tariffs.GetTariffByID(ctx, services.GetTariffByIDInput{ID: input.TariffPlan.ID})
		if err != nil {
			lFunc.Errorf("could not get tariff '%s': %s", input.TariffPlan.ID, err)
			return nil, err
		}

		isNewTariff = !helpers.EqualByFields(stored, input.TariffPlan, tariffChangeFields)
	}

	tariffID := ""
	if isNewTariff {
		tariff, err := svc.tariffs.CreateTariff(ctx, services.CreateTariffInput{
			CreateTariffBody: resources.CreateTariffBody{
				ProductID:   product.ID,
				DisplayName: input.TariffPlan.DisplayName,
				Import:      input.TariffPlan.Import,
				Export:      input.TariffPlan.Export,
				Timezone:    input.Timezone,
			},
		})
		if err != nil {
			lFunc.Errorf("could not create tariff for product '%s': %s", product.ID, err)
			return nil, err
		}

		lFunc.Debugf("created tariff '%s' for product '%s'", tariff.ID, product.ID)
		tariffID = tariff.ID

		updated, err := svc.products.UpdateProduct(ctx, services.UpdateProductInput{
			ID: product.ID,
			UpdateProductBody: resources.UpdateProductBody{
				TariffSettings: &models.TariffSettings{
					DisplayName: tariff.DisplayName,
					IsEnabled:   true,
					Integrated:  false,
					TariffID:    tariff.ID,
				},
			},
		})
		if err != nil {
			lFunc.Errorf("could not attach tariff '%s' to product '%s': %s", tariff.ID, product.ID, err)
			return nil, err
		}

		product = updated
	}

	deviceID := ""
	if macCheck.DeviceID == "" || !slices.Contains(product.Devices, macCheck.DeviceID) {
		device, err := svc.devices.CreateDevice(ctx, services.CreateDeviceInput{
			CreateDeviceBody: resources.CreateDeviceBody{
				Mac:        input.MacAddress,
				Products:   []string{product.ID},
				CustomerID: customer.ID,
			},
		})
		if err != nil {
			lFunc.Errorf("could not create device for mac '%s': %s", input.MacAddress, err)
			return nil, err
		}

		lFunc.Debugf("registered device '%s' for mac '%s'", device.ID, input.MacAddress)
		deviceID = device.ID
	}

	return &models.ProvisioningResult{
		DeviceID:   deviceID,
		CustomerID: customer.ID,
		ProductID:  product.ID,
		TariffID:   tariffID,
	}, nil
}

func (svc *TariffProvisioner) SaveConnectedTariff(ctx context.Context, input services.SaveConnectedTariffInput) (*models.ProvisioningResult, error) {
	lFunc := helpers.ConfigureLogger(ctx, svc.logger)

	err := provisionerValidate.Struct(input)
	if err != nil {
		lFunc.Errorf("struct validation error: %s", err)
		return nil, errs.ErrValidateBadRequest
	}

	product, err := svc.products.GetProductByID(ctx, services.GetProductByIDInput{ID: input.ProductID})
	if err != nil {
		lFunc.Errorf("could not get product '%s': %s", input.ProductID, err)
		return nil, err
	}

	customer, err := svc.customers.GetCustomerByID(ctx, services.GetCustomerByIDInput{ID: input.CustomerID})
	if err != nil {
		lFunc.Errorf("could not get customer '%s': %s", input.CustomerID, err)
		return nil, err
	}

	var wg sync.WaitGroup
	var customerErr, productErr error

	if customer.IsDisabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			disabled := false
			_, customerErr = svc.customers.UpdateCustomer(ctx, services.UpdateCustomerInput{
				ID: customer.ID,
				UpdateCustomerBody: resources.UpdateCustomerBody{
					IsDisabled: &disabled,
				},
			})
		}()
	}

	if product.IsDisabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			disabled := false
			_, productErr = svc.products.UpdateProduct(ctx, services.UpdateProductInput{
				ID: product.ID,
				UpdateProductBody: resources.UpdateProductBody{
					IsDisabled: &disabled,
				},
			})
		}()
	}

	wg.Wait()

	if customerErr != nil {
		lFunc.Errorf("could not re-enable customer '%s': %s", customer.ID, customerErr)
		return nil, customerErr
	}

	if productErr != nil {
		lFunc.Errorf("could not re-enable product '%s': %s", product.ID, productErr)
		return nil, productErr
	}

	deviceID := ""
	if input.MacAddress != "" {
		macCheck, err := svc.devices.CheckDeviceMac(ctx, services.CheckDeviceMacInput{
			Mac:        input.MacAddress,
			CustomerID: customer.ID,
		})
		if err != nil {
			lFunc.Errorf("could not check mac availability for '%s': %s", input.MacAddress, err)
			return nil, err
		}

		if macCheck.DeviceID == "" || !slices.Contains(product.Devices, macCheck.DeviceID) {
			device, err := svc.devices.CreateDevice(ctx, services.CreateDeviceInput{
				CreateDeviceBody: resources.CreateDeviceBody{
					Mac:        input.MacAddress,
					Products:   []string{product.ID},
					CustomerID: customer.ID,
				},
			})
			if err != nil {
				lFunc.Errorf("could not create device for mac '%s': %s", input.MacAddress, err)
				return nil, err
			}

			deviceID = device.ID
		} else {
			device, err := svc.devices.GetDeviceByID(ctx, services.GetDeviceByIDInput{ID: macCheck.DeviceID})
			if err != nil {
				lFunc.Errorf("could not get device '%s': %s", macCheck.DeviceID, err)
				return nil, err
			}

			deviceID = device.ID
		}
	}

	return &models.ProvisioningResult{
		DeviceID:   deviceID,
		CustomerID: customer.ID,
		ProductID:  product.ID,
		TariffID:   input.TariffPlan.ID,
	}, nil
}

func (svc *TariffProvisioner) resolveCustomer(ctx context.Context, lFunc *logrus.Entry, customerID string) (*models.Customer, error) {
	if customerID != "" {
		customer, err := svc.customers.GetCustomerByID(ctx, services.GetCustomerByIDInput{ID: customerID})
		if err != nil {
			lFunc.Errorf("could not get customer '%s': %s", customerID, err)
			return nil, err
		}

		return customer, nil
	}

	customer, err := svc.customers.CreateCustomer(ctx, services.CreateCustomerInput{
		CreateCustomerBody: resources.CreateCustomerBody{
			IsDisabled: false,
		},
	})
	if err != nil {
		lFunc.Errorf("could not create customer: %s", err)
		return nil, err
	}

	lFunc.Debugf("created customer '%s'", customer.ID)
	return customer, nil
}

func (svc *TariffProvisioner) resolveProduct(ctx context.Context, lFunc *logrus.Entry, input services.SaveManualTariffInput, customerID string) (*models.Product, error) {
	if input.ProductID != "" {
		_, err := svc.products.GetProductByID(ctx, services.GetProductByIDInput{ID: input.ProductID})
		if err != nil {
			lFunc.Errorf("could not get product '%s': %s", input.ProductID, err)
			return nil, err
		}

		disabled := false
		product, err := svc.products.UpdateProduct(ctx, services.UpdateProductInput{
			ID: input.ProductID,
			UpdateProductBody: resources.UpdateProductBody{
				CustomerID:    customerID,
				ProviderID:    input.ProviderID,
				IsDisabled:    &disabled,
				PostalAddress: input.PostalAddress,
				Timezone:      input.Timezone,
			},
		})
		if err != nil {
			lFunc.Errorf("could not update product '%s': %s", input.ProductID, err)
			return nil, err
		}

		return product, nil
	}

	product, err := svc.products.CreateProduct(ctx, services.CreateProductInput{
		CreateProductBody: resources.CreateProductBody{
			CustomerID:    customerID,
			ProviderID:    input.ProviderID,
			IsDisabled:    false,
			PostalAddress: input.PostalAddress,
			Timezone:      input.Timezone,
		},
	})
	if err != nil {
		lFunc.Errorf("could not create product for customer '%s': %s", customerID, err)
		return nil, err
	}

	lFunc.Debugf("created product '%s'", product.ID)
	return product, nil
}
