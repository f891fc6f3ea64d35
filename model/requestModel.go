package model

// PriceRequest ... Request body for the price proxy route
type PriceRequest struct {
	Tokens []string `json:"tokens"`
}

// QuoteAsset ... Source asset entry in a quote request
type QuoteAsset struct {
	TokenAddress string `json:"tokenAddress" validate:"required"`
	Amount       string `json:"amount" validate:"required"`
}

// QuoteRequest ... Request body for the quote proxy route
type QuoteRequest struct {
	FromAssets     []QuoteAsset `json:"fromAssets" validate:"required"`
	ToTokenAddress string       `json:"toTokenAddress" validate:"required"`
	ToChainID      int64        `json:"toChainId" validate:"required"`
	WalletAddress  string       `json:"walletAddress" validate:"required"`
	Slippage       int          `json:"slippage"`
}
