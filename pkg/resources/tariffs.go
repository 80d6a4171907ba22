package resources

import "github.com/flat-peak/go-sdk/pkg/models"

type CreateTariffBody struct {
	ProductID   string                 `json:"product_id"`
	DisplayName string                 `json:"display_name,omitempty"`
	Import      []models.TariffWeekday `json:"import,omitempty"`
	Export      []models.TariffWeekday `json:"export,omitempty"`
	Integrated  bool                   `json:"integrated,omitempty"`
	Timezone    string                 `json:"timezone,omitempty"`
	TimeExpiry  string                 `json:"time_expiry,omitempty"`
}
