package models

// ObjectError is the sentinel value of the `object` field that marks an
// error-shaped API payload. It is the only error discriminator the API
// exposes at this layer.
const ObjectError = "error"

type FailureResponse struct {
	Object  string `json:"object"`
	Message string `json:"message"`
}

type PostalAddress struct {
	AddressLine1 string `json:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostCode     string `json:"post_code,omitempty"`
	CountryCode  string `json:"country_code,omitempty"`
}
