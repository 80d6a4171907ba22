package resources

type CreateCustomerBody struct {
	IsDisabled  bool   `json:"is_disabled"`
	ReferenceID string `json:"reference_id,omitempty"`
}

type UpdateCustomerBody struct {
	IsDisabled  *bool  `json:"is_disabled,omitempty"`
	ReferenceID string `json:"reference_id,omitempty"`
}
