package models

type Provider struct {
	ID                  string                        `json:"id,omitempty"`
	Object              string                        `json:"object,omitempty"`
	AccountID           string                        `json:"account_id,omitempty"`
	AreaServed          *ProviderAreaServed          `json:"area_served,omitempty"`
	CodeName            string                        `json:"code_name,omitempty"`
	CodeNumber          string                        `json:"code_number,omitempty"`
	CurrencyCode        string                        `json:"currency_code,omitempty"`
	IntegrationPhase    int                           `json:"integration_phase,omitempty"`
	IntegrationSettings *ProviderIntegrationSettings `json:"integration_settings,omitempty"`
	IsDisabled          bool                          `json:"is_disabled,omitempty"`
	LiveMode            bool                          `json:"live_mode,omitempty"`
	TimeCreated         string                        `json:"time_created,omitempty"`
}

type ProviderAreaServed struct {
	CountryCode string   `json:"country_code,omitempty"`
	States      []string `json:"states,omitempty"`
}

type ProviderIntegrationSettings struct {
	APIURL     string `json:"api_url,omitempty"`
	OnboardURL string `json:"onboard_url,omitempty"`
}
