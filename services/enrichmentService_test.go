package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crypto-sweep/model"
	"crypto-sweep/registry"
	"crypto-sweep/utility/appError"
	"crypto-sweep/utility/constants"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func rawBalanceFixture(chainID int64, tokenAddress, rawAmount string) model.RawBalance {
	chain, _ := registry.ChainByID(chainID)
	return model.RawBalance{
		ID:            model.AssetID(chainID, tokenAddress, "0xwallet"),
		Chain:         chain,
		TokenAddress:  tokenAddress,
		Symbol:        constants.UNKNOWN_TOKEN_SYMBOL,
		Name:          constants.UNKNOWN_TOKEN_NAME,
		Decimals:      constants.DEFAULT_TOKEN_DECIMALS,
		Balance:       rawAmount,
		Amount:        model.AmountFromRaw(rawAmount, constants.DEFAULT_TOKEN_DECIMALS),
		WalletAddress: "0xwallet",
	}
}

func Test_Enrich_AppliesPricesAndMetadata(t *testing.T) {
	metadataCalls := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/price/v1.1/"):
			w.Write([]byte(`{"0xusdc":"1.00","` + constants.NATIVE_TOKEN_ADDRESS + `":"2000"}`))
		case strings.HasPrefix(r.URL.Path, "/portfolio/v3/"):
			metadataCalls++
			w.Write([]byte(`{"address":"0xusdc","symbol":"USDC","name":"USD Coin","decimals":6,"logoURI":"https://example.com/usdc.png"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer upstream.Close()

	aggregation := NewAggregationService(testCache(), testConfig(upstream.URL))
	service := NewEnrichmentService(aggregation, testConfig(upstream.URL))

	rawBalances := []model.RawBalance{
		rawBalanceFixture(137, "0xusdc", "3000000"),
		rawBalanceFixture(137, constants.NATIVE_TOKEN_ADDRESS, "1000000000000000000"),
	}

	assets, err := service.Enrich(context.Background(), rawBalances)
	require.NoError(t, err)
	require.Len(t, assets, 2)

	usdc := assets[0]
	require.Equal(t, "USDC", usdc.Symbol)
	require.Equal(t, "USD Coin", usdc.Name)
	require.Equal(t, int32(6), usdc.Decimals)
	require.Equal(t, "3", usdc.Amount.String(), "amount is recomputed with the resolved decimals")
	require.Equal(t, "3", usdc.Value.String())

	native := assets[1]
	polygon, _ := registry.ChainByID(137)
	require.Equal(t, polygon.NativeCurrency.Symbol, native.Symbol, "native token resolves from the chain descriptor")
	require.Equal(t, "2000", native.Value.String())
	require.Equal(t, 1, metadataCalls, "the native sentinel never hits the metadata endpoint")
}

func Test_Enrich_PriceFailureDegradesToZeroValue(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/price/v1.1/"):
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"rate limited"}`))
		case strings.HasPrefix(r.URL.Path, "/portfolio/v3/"):
			w.Write([]byte(`{"symbol":"TKN","name":"Token","decimals":18}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer upstream.Close()

	aggregation := NewAggregationService(testCache(), testConfig(upstream.URL))
	service := NewEnrichmentService(aggregation, testConfig(upstream.URL))

	assets, err := service.Enrich(context.Background(), []model.RawBalance{rawBalanceFixture(137, "0xtkn", "1000000000000000000")})
	require.NoError(t, err, "a failed price batch degrades instead of failing the run")
	require.Len(t, assets, 1)
	require.True(t, assets[0].Value.IsZero())
	require.Equal(t, "TKN", assets[0].Symbol)
}

func Test_Enrich_MetadataFailureKeepsPlaceholders(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/price/v1.1/"):
			w.Write([]byte(`{"0xtkn":"0.5"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer upstream.Close()

	aggregation := NewAggregationService(testCache(), testConfig(upstream.URL))
	service := NewEnrichmentService(aggregation, testConfig(upstream.URL))

	assets, err := service.Enrich(context.Background(), []model.RawBalance{rawBalanceFixture(137, "0xtkn", "4000000000000000000")})
	require.NoError(t, err)
	require.Len(t, assets, 1)
	require.Equal(t, constants.UNKNOWN_TOKEN_SYMBOL, assets[0].Symbol)
	require.Equal(t, "2", assets[0].Value.String())
}

func Test_FilterDust(t *testing.T) {
	service := NewEnrichmentService(nil, testConfig(""))

	assets := []model.Asset{
		{ID: "keep", Value: decimal.NewFromFloat(1.5)},
		{ID: "boundary", Value: decimal.NewFromFloat(1)},
		{ID: "drop", Value: decimal.NewFromFloat(0.99)},
		{ID: "zero", Value: decimal.Zero},
	}

	filtered := service.FilterDust(assets)
	require.Len(t, filtered, 2)
	require.Equal(t, "keep", filtered[0].ID)
	require.Equal(t, "boundary", filtered[1].ID, "assets exactly at the minimum value survive")
}

func Test_Enrich_Cancellation(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	aggregation := NewAggregationService(testCache(), testConfig(upstream.URL))
	service := NewEnrichmentService(aggregation, testConfig(upstream.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Enrich(ctx, []model.RawBalance{rawBalanceFixture(137, "0xtkn", "1000000000000000000")})
	require.Error(t, err)
	require.True(t, appError.IsCancellation(err))
}
