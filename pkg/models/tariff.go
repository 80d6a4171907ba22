package models

// Tariff is an append-only version record of an energy plan. A new
// tariff is created whenever the caller-supplied plan differs from the
// stored one; tariffs are never updated in place.
type Tariff struct {
	ID              string          `json:"id,omitempty"`
	Object          string          `json:"object,omitempty"`
	DisplayName     string          `json:"display_name"`
	Export          []TariffWeekday `json:"export"`
	Import          []TariffWeekday `json:"import"`
	Integrated      bool            `json:"integrated,omitempty"`
	ProductID       string          `json:"product_id"`
	Source          string          `json:"source,omitempty"`
	Timezone        string          `json:"timezone,omitempty"`
	TimeCreated     string          `json:"time_created,omitempty"`
	TimeExpiry      string          `json:"time_expiry,omitempty"`
	ContractEndDate string          `json:"contract_end_date,omitempty"`
}

// TariffWeekday models a schedule that varies by season and day of the
// week.
type TariffWeekday struct {
	Type string       `json:"type,omitempty"`
	Data []TariffData `json:"data,omitempty"`
}

type TariffData struct {
	Dates        []int          `json:"dates,omitempty"`
	Months       []string       `json:"months,omitempty"`
	DaysAndHours []DaysAndHours `json:"days_and_hours,omitempty"`
}

type DaysAndHours struct {
	Days  []string     `json:"days,omitempty"`
	Hours []TariffHour `json:"hours,omitempty"`
}

type TariffHour struct {
	Cost      float64 `json:"cost,omitempty"`
	ValidFrom string  `json:"valid_from,omitempty"`
	ValidTo   string  `json:"valid_to,omitempty"`
}
