package resources

import "github.com/flat-peak/go-sdk/pkg/models"

type CreateProductBody struct {
	CustomerID     string                 `json:"customer_id"`
	ProviderID     string                 `json:"provider_id"`
	Devices        []string               `json:"devices,omitempty"`
	GeoLocation    []float64              `json:"geo_location,omitempty"`
	IsDisabled     bool                   `json:"is_disabled"`
	PostalAddress  *models.PostalAddress  `json:"postal_address,omitempty"`
	TariffSettings *models.TariffSettings `json:"tariff_settings,omitempty"`
	Timezone       string                 `json:"timezone,omitempty"`
}

type UpdateProductBody struct {
	CustomerID     string                 `json:"customer_id,omitempty"`
	ProviderID     string                 `json:"provider_id,omitempty"`
	Devices        []string               `json:"devices,omitempty"`
	GeoLocation    []float64              `json:"geo_location,omitempty"`
	IsDisabled     *bool                  `json:"is_disabled,omitempty"`
	PostalAddress  *models.PostalAddress  `json:"postal_address,omitempty"`
	TariffSettings *models.TariffSettings `json:"tariff_settings,omitempty"`
	Timezone       string                 `json:"timezone,omitempty"`
}

// PullProductBody asks the integration to refresh tariffs for the given
// products. Exactly one of ProductIDs/ReferenceIDs is expected.
type PullProductBody struct {
	Action       string   `json:"action"`
	ProductIDs   []string `json:"product_ids,omitempty"`
	ReferenceIDs []string `json:"reference_ids,omitempty"`
}

const PullActionTariff = "pull_tariff"
