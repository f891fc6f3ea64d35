package model

// NativeCurrency ... Descriptor for a chain's gas asset
type NativeCurrency struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals int32  `json:"decimals"`
}

// Chain ... Immutable reference data for a supported blockchain network
type Chain struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	NativeCurrency NativeCurrency `json:"nativeCurrency"`
	RPCURL         string         `json:"rpcUrl"`
}
