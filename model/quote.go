package model

import "encoding/json"

// QuoteToken ... Token descriptor inside a swap quote
type QuoteToken struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Decimals int32  `json:"decimals"`
}

// QuoteTx ... Unsigned transaction skeleton returned with a quote
type QuoteTx struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Data     string `json:"data"`
	Value    string `json:"value"`
	Gas      string `json:"gas"`
	GasPrice string `json:"gasPrice"`
}

// Quote ... A single conversion estimate from the aggregation API
type Quote struct {
	FromToken       QuoteToken    `json:"fromToken"`
	ToToken         QuoteToken    `json:"toToken"`
	FromTokenAmount string        `json:"fromTokenAmount"`
	ToTokenAmount   string        `json:"toTokenAmount"`
	// the upstream serializes estimatedGas as a string in some versions and
	// a bare number in others; json.Number accepts both
	EstimatedGas    json.Number   `json:"estimatedGas"`
	Protocols       []interface{} `json:"protocols"`
	Tx              QuoteTx       `json:"tx"`
}
