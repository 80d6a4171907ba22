package models

type Account struct {
	ID             string   `json:"id"`
	Object         string   `json:"object"`
	AllowedOrigins []string `json:"allowed_origins,omitempty"`
	DisplayName    string   `json:"display_name,omitempty"`
	IsDeleted      bool     `json:"is_deleted"`
	IsDisabled     bool     `json:"is_disabled"`
	LiveMode       bool     `json:"live_mode"`
	Timezone       string   `json:"timezone,omitempty"`
	TimeCreated    string   `json:"time_created,omitempty"`
}

// AuthToken is a bearer token issued by the login endpoint. The remote
// side expires it 30 minutes after issue; no expiry metadata is
// returned to the client.
type AuthToken struct {
	Token string `json:"token"`
}
