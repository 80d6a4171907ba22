package models

type Event struct {
	ID          string         `json:"id,omitempty"`
	Object      string         `json:"object,omitempty"`
	AccountID   string         `json:"account_id,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
	LiveMode    bool           `json:"live_mode,omitempty"`
	TimeCreated string         `json:"time_created,omitempty"`
	Type        string         `json:"type,omitempty"`
}
