package services

import (
	"context"

	"github.com/flat-peak/go-sdk/pkg/models"
)

// TariffProvisionerService converges remote state to "device
// registered, product configured, tariff attached", creating only what
// is missing. Neither operation retries nor rolls back: resources
// created before a failing step remain, and re-invoking with the ids
// obtained so far is the intended recovery path.
type TariffProvisionerService interface {
	SaveManualTariff(ctx context.Context, input SaveManualTariffInput) (*models.ProvisioningResult, error)
	SaveConnectedTariff(ctx context.Context, input SaveConnectedTariffInput) (*models.ProvisioningResult, error)
}

type SaveManualTariffInput struct {
	MacAddress    string
	Timezone      string
	PostalAddress *models.PostalAddress
	ProductID     string
	CustomerID    string
	ProviderID    string
	TariffPlan    models.Tariff
}

// SaveConnectedTariffInput requires the product, customer and tariff to
// already exist; TariffPlan.ID must be set. MacAddress is optional and
// device reconciliation is skipped without it.
type SaveConnectedTariffInput struct {
	MacAddress string
	ProductID  string `validate:"required"`
	CustomerID string `validate:"required"`
	TariffPlan models.Tariff
}
