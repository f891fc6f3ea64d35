package registry

import (
	"crypto-sweep/model"
	"crypto-sweep/utility/constants"
)

// StablecoinOptions ... Destination stablecoins per chain id
var StablecoinOptions = map[int64][]model.Token{
	1: {
		{Address: "0xdac17f958d2ee523a2206206994597c13d831ec7", Symbol: "USDT", Decimals: 6},
		{Address: "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48", Symbol: "USDC", Decimals: 6},
	},
	56: {
		{Address: "0x55d398326f99059ff775485246999027b3197955", Symbol: "USDT", Decimals: 18},
		{Address: "0x8ac76a51cc950d9822d68b83fe1ad97b32cd580d", Symbol: "USDC", Decimals: 18},
	},
	137: {
		{Address: "0xc2132d05d31c914a87c6611c10748aeb04b58e8f", Symbol: "USDT", Decimals: 6},
		{Address: "0x2791bca1f2de4661ed88a30c99a7a9449aa84174", Symbol: "USDC", Decimals: 6},
	},
	42161: {
		{Address: "0xfd086bc7cd5c481dcc9c85ebe478a1c0b69fcbb9", Symbol: "USDT", Decimals: 6},
		{Address: "0xff970a61a04b1ca14834a43f5de4533ebddb5cc8", Symbol: "USDC", Decimals: 6},
	},
	10: {
		{Address: "0x94b008aa00579c1307b0ef2c499ad98a8ce58e58", Symbol: "USDT", Decimals: 6},
		{Address: "0x7f5c764cbc14f9669b88837ca1490cca17c31607", Symbol: "USDC", Decimals: 6},
	},
	8453: {
		{Address: "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913", Symbol: "USDC", Decimals: 6},
	},
}

// NativeTokenOptions ... Destination native token per chain id
var NativeTokenOptions = map[int64]model.Token{
	1:     {Address: constants.ZERO_ADDRESS, Symbol: "ETH", Decimals: 18},
	56:    {Address: constants.ZERO_ADDRESS, Symbol: "BNB", Decimals: 18},
	137:   {Address: constants.ZERO_ADDRESS, Symbol: "MATIC", Decimals: 18},
	42161: {Address: constants.ZERO_ADDRESS, Symbol: "ETH", Decimals: 18},
	10:    {Address: constants.ZERO_ADDRESS, Symbol: "ETH", Decimals: 18},
	8453:  {Address: constants.ZERO_ADDRESS, Symbol: "ETH", Decimals: 18},
}

// NativeTokenLogos ... Logo URLs for each chain's gas asset
var NativeTokenLogos = map[int64]string{
	1:     "https://assets.coingecko.com/coins/images/279/small/ethereum.png",
	56:    "https://assets.coingecko.com/coins/images/825/small/bnb-icon2_2x.png",
	137:   "https://assets.coingecko.com/coins/images/4713/small/matic-token-icon.png",
	42161: "https://assets.coingecko.com/coins/images/279/small/ethereum.png",
	10:    "https://assets.coingecko.com/coins/images/279/small/ethereum.png",
	8453:  "https://assets.coingecko.com/coins/images/279/small/ethereum.png",
}
