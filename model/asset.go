package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RawBalance ... A holding as reported by the balance endpoint, before any
// price or metadata has been attached. Symbol, name and decimals carry
// placeholder values until enrichment resolves them.
type RawBalance struct {
	ID            string          `json:"id"`
	Chain         Chain           `json:"chain"`
	TokenAddress  string          `json:"tokenAddress"`
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Decimals      int32           `json:"decimals"`
	Balance       string          `json:"balance"`
	Amount        decimal.Decimal `json:"amount"`
	WalletAddress string          `json:"walletAddress"`
}

// Asset ... A fully described holding: raw balance joined with resolved
// metadata and USD price.
type Asset struct {
	ID            string          `json:"id"`
	Chain         Chain           `json:"chain"`
	TokenAddress  string          `json:"tokenAddress"`
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Decimals      int32           `json:"decimals"`
	LogoURI       string          `json:"logoURI,omitempty"`
	Balance       string          `json:"balance"`
	Amount        decimal.Decimal `json:"amount"`
	Value         decimal.Decimal `json:"value"`
	WalletAddress string          `json:"walletAddress"`
}

// AssetID ... An asset is identified by chain, token and holding wallet, so
// the same token held by two connected wallets yields two distinct assets.
func AssetID(chainID int64, tokenAddress string, walletAddress string) string {
	return fmt.Sprintf("%d-%s-%s", chainID, tokenAddress, walletAddress)
}

// AmountFromRaw ... Converts a raw base-unit balance to its human amount
func AmountFromRaw(rawBalance string, decimals int32) decimal.Decimal {
	raw, err := decimal.NewFromString(rawBalance)
	if err != nil {
		return decimal.Zero
	}
	return raw.Div(decimal.New(1, decimals))
}
