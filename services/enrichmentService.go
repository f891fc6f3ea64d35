package services

import (
	"context"
	"time"

	Config "crypto-sweep/config"
	"crypto-sweep/dto"
	"crypto-sweep/model"
	"crypto-sweep/registry"
	"crypto-sweep/utility/appError"
	"crypto-sweep/utility/constants"
	"crypto-sweep/utility/logger"

	"github.com/shopspring/decimal"
)

// EnrichmentService ... Attaches USD prices and token metadata to raw
// balances. Chains are processed one after another: a single batched price
// call per chain, then one metadata call per token, with delays in between to
// respect upstream rate limits.
type EnrichmentService struct {
	Aggregation *AggregationService
	Config      Config.Data
}

// NewEnrichmentService ...
func NewEnrichmentService(aggregation *AggregationService, config Config.Data) *EnrichmentService {
	return &EnrichmentService{
		Aggregation: aggregation,
		Config:      config,
	}
}

// Enrich ... Produces the full price-applied asset list, before the dust
// filter. Individual price or metadata failures degrade the affected asset to
// its placeholder values instead of failing the batch.
func (service *EnrichmentService) Enrich(ctx context.Context, rawBalances []model.RawBalance) ([]model.Asset, error) {
	if len(rawBalances) == 0 {
		return []model.Asset{}, nil
	}

	chainOrder, byChain := groupByChain(rawBalances)
	priceDelay := time.Duration(service.Config.PriceBatchDelay) * time.Millisecond
	metadataDelay := time.Duration(service.Config.MetadataRequestDelay) * time.Millisecond

	enriched := []model.Asset{}
	for _, chainID := range chainOrder {
		if ctx.Err() != nil {
			return nil, appError.Cancellation()
		}
		chainBalances := byChain[chainID]

		prices, err := service.Aggregation.GetTokenPrices(ctx, chainID, distinctTokens(chainBalances))
		if err != nil {
			if appError.IsCancellation(err) {
				return nil, appError.Cancellation()
			}
			logger.Error("Price batch failed for chain %d : %s", chainID, err)
			prices = map[string]string{}
		}
		if err := sleep(ctx, priceDelay); err != nil {
			return nil, err
		}

		for _, rawBalance := range chainBalances {
			if ctx.Err() != nil {
				return nil, appError.Cancellation()
			}

			metadata, fetched, err := service.resolveMetadata(ctx, rawBalance)
			if err != nil {
				return nil, err
			}
			enriched = append(enriched, mergeAsset(rawBalance, metadata, prices[rawBalance.TokenAddress]))

			if fetched {
				if err := sleep(ctx, metadataDelay); err != nil {
					return nil, err
				}
			}
		}
	}

	logger.Info("Enriched %d assets before filtering", len(enriched))
	return enriched, nil
}

// EnrichAndFilter ... Enrich followed by the minimum-value filter
func (service *EnrichmentService) EnrichAndFilter(ctx context.Context, rawBalances []model.RawBalance) ([]model.Asset, error) {
	enriched, err := service.Enrich(ctx, rawBalances)
	if err != nil {
		return nil, err
	}
	return service.FilterDust(enriched), nil
}

// FilterDust ... Drops every asset below the minimum USD value
func (service *EnrichmentService) FilterDust(assets []model.Asset) []model.Asset {
	threshold := service.Config.MinimumAssetValue
	if threshold == 0 {
		threshold = constants.MINIMUM_ASSET_VALUE_USD
	}
	minimum := decimal.NewFromFloat(threshold)

	filtered := []model.Asset{}
	for _, asset := range assets {
		if asset.Value.Cmp(minimum) >= 0 {
			filtered = append(filtered, asset)
		}
	}
	logger.Info("Filtered %d of %d assets below minimum value", len(assets)-len(filtered), len(assets))
	return filtered
}

// resolveMetadata returns the token metadata for a raw balance. The native
// sentinel address resolves from the chain descriptor without a network call;
// the second return reports whether an upstream call was made.
func (service *EnrichmentService) resolveMetadata(ctx context.Context, rawBalance model.RawBalance) (dto.TokenMetadata, bool, error) {
	if rawBalance.TokenAddress == constants.NATIVE_TOKEN_ADDRESS {
		return dto.TokenMetadata{
			Address:  constants.NATIVE_TOKEN_ADDRESS,
			Symbol:   rawBalance.Chain.NativeCurrency.Symbol,
			Name:     rawBalance.Chain.NativeCurrency.Name,
			Decimals: rawBalance.Chain.NativeCurrency.Decimals,
			LogoURI:  registry.NativeTokenLogos[rawBalance.Chain.ID],
		}, false, nil
	}

	metadata, err := service.Aggregation.GetTokenMetadata(ctx, rawBalance.Chain.ID, rawBalance.TokenAddress)
	if err != nil {
		if appError.IsCancellation(err) {
			return dto.TokenMetadata{}, true, appError.Cancellation()
		}
		logger.Error("Metadata fetch failed for %s on chain %d : %s", rawBalance.TokenAddress, rawBalance.Chain.ID, err)
		return dto.TokenMetadata{}, true, nil
	}
	return metadata, true, nil
}

// mergeAsset is the pure join of a raw balance with its resolved metadata and
// price. Missing metadata falls back to the placeholder values; a missing
// price yields value zero.
func mergeAsset(rawBalance model.RawBalance, metadata dto.TokenMetadata, priceStr string) model.Asset {
	symbol := rawBalance.Symbol
	if metadata.Symbol != "" {
		symbol = metadata.Symbol
	}
	name := rawBalance.Name
	if metadata.Name != "" {
		name = metadata.Name
	}
	decimals := rawBalance.Decimals
	if metadata.Decimals != 0 {
		decimals = metadata.Decimals
	}

	price := decimal.Zero
	if priceStr != "" {
		if parsed, err := decimal.NewFromString(priceStr); err == nil {
			price = parsed
		}
	}
	amount := model.AmountFromRaw(rawBalance.Balance, decimals)

	return model.Asset{
		ID:            rawBalance.ID,
		Chain:         rawBalance.Chain,
		TokenAddress:  rawBalance.TokenAddress,
		Symbol:        symbol,
		Name:          name,
		Decimals:      decimals,
		LogoURI:       metadata.LogoURI,
		Balance:       rawBalance.Balance,
		Amount:        amount,
		Value:         price.Mul(amount),
		WalletAddress: rawBalance.WalletAddress,
	}
}

func groupByChain(rawBalances []model.RawBalance) ([]int64, map[int64][]model.RawBalance) {
	chainOrder := []int64{}
	byChain := map[int64][]model.RawBalance{}
	for _, rawBalance := range rawBalances {
		chainID := rawBalance.Chain.ID
		if _, seen := byChain[chainID]; !seen {
			chainOrder = append(chainOrder, chainID)
		}
		byChain[chainID] = append(byChain[chainID], rawBalance)
	}
	return chainOrder, byChain
}

func distinctTokens(chainBalances []model.RawBalance) []string {
	seen := map[string]bool{}
	tokens := []string{}
	for _, rawBalance := range chainBalances {
		if !seen[rawBalance.TokenAddress] {
			seen[rawBalance.TokenAddress] = true
			tokens = append(tokens, rawBalance.TokenAddress)
		}
	}
	return tokens
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		if ctx.Err() != nil {
			return appError.Cancellation()
		}
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return appError.Cancellation()
	}
}
