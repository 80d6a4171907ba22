package models

type Product struct {
	ID              string          `json:"id"`
	Object          string          `json:"object"`
	AccountID       string          `json:"account_id"`
	CustomerID      string          `json:"customer_id"`
	ProviderID      string          `json:"provider_id"`
	Devices         []string        `json:"devices,omitempty"`
	GeoLocation     []float64       `json:"geo_location,omitempty"`
	IsDeleted       bool            `json:"is_deleted"`
	IsDisabled      bool            `json:"is_disabled"`
	LiveMode        bool            `json:"live_mode"`
	PostalAddress   *PostalAddress  `json:"postal_address,omitempty"`
	TariffSettings  *TariffSettings `json:"tariff_settings,omitempty"`
	Timezone        string          `json:"timezone,omitempty"`
	ContractEndDate string          `json:"contract_end_date,omitempty"`
	TimeCreated     string          `json:"time_created,omitempty"`
}

// TariffSettings links a product to its current tariff and records how
// that tariff is maintained (integrated pulls vs manual updates).
type TariffSettings struct {
	AuthMetadata   *TariffAuthMetadata `json:"auth_metadata,omitempty"`
	AuthMetadataID string              `json:"auth_metadata_id,omitempty"`
	DisplayName    string              `json:"display_name,omitempty"`
	FailedAttempts int                 `json:"failed_attempts,omitempty"`
	Integrated     bool                `json:"integrated"`
	IsEnabled      bool                `json:"is_enabled"`
	IsDisabled     bool                `json:"is_disabled,omitempty"`
	LastUpdateTime int64               `json:"last_update_time,omitempty"`
	NextUpdateTime int64               `json:"next_update_time,omitempty"`
	ReferenceID    string              `json:"reference_id,omitempty"`
	TariffID       string              `json:"tariff_id,omitempty"`
}

type TariffAuthMetadata struct {
	Data        map[string]any `json:"data,omitempty"`
	ReferenceID string         `json:"reference_id,omitempty"`
}
