package models

// Rate is the response container for computed energy rates of a device
// or product.
type Rate struct {
	ID          string        `json:"id,omitempty"`
	Object      string        `json:"object,omitempty"`
	DeviceID    string        `json:"device_id,omitempty"`
	LiveMode    bool          `json:"live_mode,omitempty"`
	Products    []RateProduct `json:"products,omitempty"`
	TimeCreated string        `json:"time_created,omitempty"`
}

type RateProduct struct {
	ProductID   string       `json:"product_id,omitempty"`
	Import      []RateWindow `json:"import,omitempty"`
	Export      []RateWindow `json:"export,omitempty"`
	LastUpdated string       `json:"last_updated,omitempty"`
	NextUpdate  string       `json:"next_update,omitempty"`
}

type RateWindow struct {
	ValidFrom string      `json:"valid_from,omitempty"`
	ValidTo   string      `json:"valid_to,omitempty"`
	Tariff    *RateTariff `json:"tariff,omitempty"`
}

type RateTariff struct {
	Cost       float64 `json:"cost,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}
