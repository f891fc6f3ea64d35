package registry

import "crypto-sweep/model"

// Ethereum mainnet is defined but not yet scanned; it stays out of
// SupportedChains until upstream access is enabled for it.
var ethereum = model.Chain{
	ID:             1,
	Name:           "Ethereum",
	NativeCurrency: model.NativeCurrency{Symbol: "ETH", Name: "Ether", Decimals: 18},
	RPCURL:         "https://cloudflare-eth.com",
}

// SupportedChains ... The networks a scan fans out over
var SupportedChains = []model.Chain{
	{
		ID:             56,
		Name:           "BNB Smart Chain",
		NativeCurrency: model.NativeCurrency{Symbol: "BNB", Name: "BNB", Decimals: 18},
		RPCURL:         "https://bsc-dataseed.binance.org",
	},
	{
		ID:             137,
		Name:           "Polygon",
		NativeCurrency: model.NativeCurrency{Symbol: "MATIC", Name: "MATIC", Decimals: 18},
		RPCURL:         "https://polygon-rpc.com",
	},
	{
		ID:             42161,
		Name:           "Arbitrum One",
		NativeCurrency: model.NativeCurrency{Symbol: "ETH", Name: "Ether", Decimals: 18},
		RPCURL:         "https://arb1.arbitrum.io/rpc",
	},
	{
		ID:             10,
		Name:           "OP Mainnet",
		NativeCurrency: model.NativeCurrency{Symbol: "ETH", Name: "Ether", Decimals: 18},
		RPCURL:         "https://mainnet.optimism.io",
	},
	{
		ID:             8453,
		Name:           "Base",
		NativeCurrency: model.NativeCurrency{Symbol: "ETH", Name: "Ether", Decimals: 18},
		RPCURL:         "https://mainnet.base.org",
	},
}

// ChainByID ... Looks a chain up by its numeric id
func ChainByID(id int64) (model.Chain, bool) {
	for _, chain := range SupportedChains {
		if chain.ID == id {
			return chain, true
		}
	}
	if ethereum.ID == id {
		return ethereum, true
	}
	return model.Chain{}, false
}
