package models

type WebhookEndpoint struct {
	ID             string   `json:"id,omitempty"`
	Object         string   `json:"object,omitempty"`
	AccountID      string   `json:"account_id,omitempty"`
	Description    string   `json:"description,omitempty"`
	DestinationURL string   `json:"destination_url,omitempty"`
	EnabledEvents  []string `json:"enabled_events,omitempty"`
	IsDisabled     bool     `json:"is_disabled,omitempty"`
	LiveMode       bool     `json:"live_mode,omitempty"`
	Secret         string   `json:"secret,omitempty"`
	Status         string   `json:"status,omitempty"`
	TimeCreated    string   `json:"time_created,omitempty"`
}
