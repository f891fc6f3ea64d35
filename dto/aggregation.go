package dto

// TokenMetadata ... Token details returned by the aggregation API
type TokenMetadata struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals int32  `json:"decimals"`
	LogoURI  string `json:"logoURI,omitempty"`
}

// PriceRequest ... Body sent to the upstream price endpoint
type PriceRequest struct {
	Tokens   []string `json:"tokens"`
	Currency string   `json:"currency"`
}

// ExternalServicesRequestErr ... Error payload from the aggregation API
type ExternalServicesRequestErr struct {
	StatusCode int    `json:"statusCode,omitempty"`
	Message    string `json:"message,omitempty"`
	Details    string `json:"details,omitempty"`
}
