package resources

type CreateWebhookEndpointBody struct {
	Description    string   `json:"description,omitempty"`
	DestinationURL string   `json:"destination_url,omitempty"`
	EnabledEvents  []string `json:"enabled_events,omitempty"`
	IsDisabled     bool     `json:"is_disabled,omitempty"`
	Secret         string   `json:"secret,omitempty"`
}

type UpdateWebhookEndpointBody struct {
	Description    string   `json:"description,omitempty"`
	DestinationURL string   `json:"destination_url,omitempty"`
	EnabledEvents  []string `json:"enabled_events,omitempty"`
	IsDisabled     *bool    `json:"is_disabled,omitempty"`
	Secret         string   `json:"secret,omitempty"`
}
