package models

// ProvisioningResult is the consolidated outcome of a tariff
// provisioning run. Fields not produced by a given run are left empty;
// an empty TariffID means the caller-supplied tariff was reused and an
// empty DeviceID means the MAC already resolved to a registered device.
type ProvisioningResult struct {
	DeviceID   string `json:"device_id,omitempty"`
	CustomerID string `json:"customer_id"`
	ProductID  string `json:"product_id"`
	TariffID   string `json:"tariff_id,omitempty"`
}
