package models

type Device struct {
	ID              string           `json:"id"`
	Object          string           `json:"object"`
	Description     string           `json:"description,omitempty"`
	HardwareProfile *HardwareProfile `json:"hardware_profile,omitempty"`
	IsDeleted       bool             `json:"is_deleted"`
	IsDisabled      bool             `json:"is_disabled"`
	LastSeen        string           `json:"last_seen,omitempty"`
	Mac             string           `json:"mac"`
	Products        []string         `json:"products"`
	ReferenceID     string           `json:"reference_id,omitempty"`
	TimeCreated     string           `json:"time_created,omitempty"`
}

type HardwareProfile struct {
	Make       string `json:"make,omitempty"`
	Model      string `json:"model,omitempty"`
	Type       string `json:"type,omitempty"`
	WattageIn  int    `json:"wattage_in,omitempty"`
	WattageOut int    `json:"wattage_out,omitempty"`
}

// MacCheck is the response of the device MAC availability check. The
// device_id field is only present when a device with that MAC is
// already registered.
type MacCheck struct {
	DeviceID string `json:"device_id,omitempty"`
	Usable   bool   `json:"usable"`
}

type DeviceMeter struct {
	Powered       bool    `json:"powered"`
	Consumption   float64 `json:"consumption"`
	Peak          float64 `json:"peak"`
	Avg           float64 `json:"avg"`
	Low           float64 `json:"low"`
	IntervalStart string  `json:"interval_start"`
	IntervalEnd   string  `json:"interval_end"`
}

type Consumption struct {
	Object string                `json:"object,omitempty"`
	Data   []ConsumptionInterval `json:"data,omitempty"`
}

type ConsumptionInterval struct {
	Avg           float64 `json:"avg,omitempty"`
	Consumption   float64 `json:"consumption,omitempty"`
	IntervalStart string  `json:"interval_start,omitempty"`
	IntervalEnd   string  `json:"interval_end,omitempty"`
	Low           float64 `json:"low,omitempty"`
	Peak          float64 `json:"peak,omitempty"`
	Powered       bool    `json:"powered,omitempty"`
}
