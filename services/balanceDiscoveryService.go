package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	Config "crypto-sweep/config"
	"crypto-sweep/model"
	"crypto-sweep/registry"
	"crypto-sweep/utility/appError"
	"crypto-sweep/utility/constants"
	"crypto-sweep/utility/logger"

	"golang.org/x/sync/errgroup"
)

// BalanceDiscoveryService ... Fans one balance request per supported chain
// out for a wallet address. Chains fail independently; a failure on one chain
// never discards another chain's results.
type BalanceDiscoveryService struct {
	Aggregation *AggregationService
	Config      Config.Data
}

// NewBalanceDiscoveryService ...
func NewBalanceDiscoveryService(aggregation *AggregationService, config Config.Data) *BalanceDiscoveryService {
	return &BalanceDiscoveryService{
		Aggregation: aggregation,
		Config:      config,
	}
}

// DiscoverAssets ... Collects placeholder balances for walletAddress across
// every supported chain. Requests run concurrently but issuance is staggered
// to soften burst rate against the upstream. Cancelling ctx aborts promptly
// with a distinguished cancellation error.
func (service *BalanceDiscoveryService) DiscoverAssets(ctx context.Context, walletAddress string) ([]model.RawBalance, error) {
	if ctx.Err() != nil {
		return nil, appError.Cancellation()
	}

	chains := registry.SupportedChains
	stagger := time.Duration(service.Config.ChainRequestDelay) * time.Millisecond
	perChain := make([][]model.RawBalance, len(chains))

	group := new(errgroup.Group)
	for i := range chains {
		i := i
		chain := chains[i]
		delay := time.Duration(i) * stagger
		group.Go(func() error {
			if delay > 0 {
				select {
				case <-time.After(delay):
				case <-ctx.Done():
					return nil
				}
			}
			if ctx.Err() != nil {
				return nil
			}

			balances, err := service.Aggregation.GetBalances(ctx, chain.ID, walletAddress)
			if err != nil {
				if appError.IsCancellation(err) {
					return nil
				}
				if appError.StatusCode(err, 0) == http.StatusNotFound {
					logger.Info("No balances for %s on %s", walletAddress, chain.Name)
					return nil
				}
				logger.Error("Error fetching balances for %s on %s : %s", walletAddress, chain.Name, err)
				return nil
			}

			perChain[i] = buildRawBalances(chain, walletAddress, balances)
			return nil
		})
	}
	group.Wait()

	if ctx.Err() != nil {
		return nil, appError.Cancellation()
	}

	allBalances := []model.RawBalance{}
	for _, chainBalances := range perChain {
		allBalances = append(allBalances, chainBalances...)
	}
	logger.Info("Discovered %d raw assets for %s", len(allBalances), walletAddress)
	return allBalances, nil
}

// buildRawBalances maps the upstream address->balance pairs to placeholder
// balances, dropping entries whose computed amount is zero.
func buildRawBalances(chain model.Chain, walletAddress string, balances map[string]string) []model.RawBalance {
	walletAddress = strings.ToLower(walletAddress)

	chainBalances := []model.RawBalance{}
	for tokenAddress, rawBalance := range balances {
		tokenAddress = strings.ToLower(tokenAddress)
		amount := model.AmountFromRaw(rawBalance, constants.DEFAULT_TOKEN_DECIMALS)
		if amount.IsZero() {
			continue
		}
		chainBalances = append(chainBalances, model.RawBalance{
			ID:            model.AssetID(chain.ID, tokenAddress, walletAddress),
			Chain:         chain,
			TokenAddress:  tokenAddress,
			Symbol:        constants.UNKNOWN_TOKEN_SYMBOL,
			Name:          constants.UNKNOWN_TOKEN_NAME,
			Decimals:      constants.DEFAULT_TOKEN_DECIMALS,
			Balance:       rawBalance,
			Amount:        amount,
			WalletAddress: walletAddress,
		})
	}
	return chainBalances
}
