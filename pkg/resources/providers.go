package resources

import "github.com/flat-peak/go-sdk/pkg/models"

type CreateProviderBody struct {
	AreaServed          *models.ProviderAreaServed          `json:"area_served,omitempty"`
	CodeName            string                              `json:"code_name"`
	CodeNumber          string                              `json:"code_number,omitempty"`
	CurrencyCode        string                              `json:"currency_code"`
	IntegrationPhase    int                                 `json:"integration_phase"`
	IntegrationSettings *models.ProviderIntegrationSettings `json:"integration_settings,omitempty"`
	IsDisabled          bool                                `json:"is_disabled,omitempty"`
}

type UpdateProviderBody struct {
	AreaServed          *models.ProviderAreaServed          `json:"area_served,omitempty"`
	CodeName            string                              `json:"code_name,omitempty"`
	CodeNumber          string                              `json:"code_number,omitempty"`
	IntegrationPhase    *int                                `json:"integration_phase,omitempty"`
	IntegrationSettings *models.ProviderIntegrationSettings `json:"integration_settings,omitempty"`
	IsDisabled          *bool                               `json:"is_disabled,omitempty"`
}
