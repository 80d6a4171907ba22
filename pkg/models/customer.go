package models

type Customer struct {
	ID          string   `json:"id"`
	Object      string   `json:"object"`
	AccountID   string   `json:"account_id"`
	IsDeleted   bool     `json:"is_deleted"`
	IsDisabled  bool     `json:"is_disabled"`
	LiveMode    bool     `json:"live_mode"`
	Products    []string `json:"products,omitempty"`
	ReferenceID string   `json:"reference_id,omitempty"`
	TimeCreated string   `json:"time_created,omitempty"`
}
