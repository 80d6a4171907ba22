package resources

import "github.com/flat-peak/go-sdk/pkg/models"

type CreateDeviceBody struct {
	Mac             string                  `json:"mac"`
	Products        []string                `json:"products"`
	CustomerID      string                  `json:"customer_id"`
	Description     string                  `json:"description,omitempty"`
	HardwareProfile *models.HardwareProfile `json:"hardware_profile,omitempty"`
	IsDisabled      bool                    `json:"is_disabled,omitempty"`
	ReferenceID     string                  `json:"reference_id,omitempty"`
}

type UpdateDeviceBody struct {
	Description     string                  `json:"description,omitempty"`
	HardwareProfile *models.HardwareProfile `json:"hardware_profile,omitempty"`
	IsDisabled      *bool                   `json:"is_disabled,omitempty"`
	Products        []string                `json:"products,omitempty"`
	ReferenceID     string                  `json:"reference_id,omitempty"`
}
