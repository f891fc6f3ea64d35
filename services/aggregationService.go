package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	Config "crypto-sweep/config"
	"crypto-sweep/dto"
	"crypto-sweep/model"
	"crypto-sweep/utility"
	"crypto-sweep/utility/appError"
	"crypto-sweep/utility/cache"
	"crypto-sweep/utility/constants"
	"crypto-sweep/utility/errorcode"

	"github.com/trustwallet/blockatlas/pkg/logger"
)

// AggregationService ... Wraps every outbound call to the swap-aggregation
// API. The service credential is attached here and never leaves the server.
type AggregationService struct {
	Cache  *cache.Memory
	Config Config.Data
	Error  *dto.ExternalServicesRequestErr
}

// NewAggregationService ...
func NewAggregationService(memoryCache *cache.Memory, config Config.Data) *AggregationService {
	baseService := AggregationService{
		Cache:  memoryCache,
		Config: config,
	}
	return &baseService
}

// Forward ... Sends the described request upstream with the credential
// attached and returns the upstream status and body verbatim. Fails before
// any network call when the credential is not configured.
func (service *AggregationService) Forward(ctx context.Context, metaData utility.MetaData, body interface{}) (int, []byte, error) {
	if service.Config.AggregationAPIKey == "" {
		return 0, nil, appError.Err{
			ErrCode: http.StatusInternalServerError,
			ErrType: errorcode.SERVER_ERR_CODE,
			Err:     errors.New(errorcode.MISSING_CREDENTIAL),
		}
	}

	client := NewClient(nil, service.Config, metaData.Endpoint)
	req, err := client.NewRequest(metaData.Type, metaData.Action, body)
	if err != nil {
		return 0, nil, appError.Err{ErrCode: http.StatusInternalServerError, ErrType: errorcode.SERVER_ERR_CODE, Err: err}
	}
	req = req.WithContext(ctx)
	client.AddHeader(req, map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", service.Config.AggregationAPIKey),
	})

	resp, resBody, err := client.DoRaw(req)
	if err != nil {
		if appError.IsCancellation(err) {
			return 0, nil, appError.Cancellation()
		}
		logger.Info("Error response from aggregation API : %+v", err)
		return 0, nil, appError.Err{ErrCode: http.StatusInternalServerError, ErrType: errorcode.SERVER_ERR_CODE, Err: err}
	}
	return resp.StatusCode, resBody, nil
}

// GetBalances ... Fetches the raw token balance map for a wallet on one chain
func (service *AggregationService) GetBalances(ctx context.Context, chainID int64, walletAddress string) (map[string]string, error) {
	metaData := utility.GetRequestMetaData("getBalances", service.Config, chainID, walletAddress)

	status, body, err := service.Forward(ctx, metaData, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, service.upstreamError(status, body)
	}

	balances := map[string]string{}
	if err := json.Unmarshal(body, &balances); err != nil {
		return nil, appError.Err{ErrCode: http.StatusInternalServerError, ErrType: errorcode.SERVER_ERR_CODE, Err: err}
	}
	return balances, nil
}

// GetTokenMetadata ... Fetches symbol, name, decimals and logo for one token.
// Results are cached so repeated scans skip the upstream call.
func (service *AggregationService) GetTokenMetadata(ctx context.Context, chainID int64, tokenAddress string) (dto.TokenMetadata, error) {
	tokenAddress = strings.ToLower(tokenAddress)
	cacheKey := fmt.Sprintf("metadata_%d_%s", chainID, tokenAddress)
	if service.Cache != nil {
		if cached := service.Cache.Get(cacheKey); cached != nil {
			return cached.(dto.TokenMetadata), nil
		}
	}

	metaData := utility.GetRequestMetaData("getTokenMetadata", service.Config, chainID, tokenAddress)

	status, body, err := service.Forward(ctx, metaData, nil)
	if err != nil {
		return dto.TokenMetadata{}, err
	}
	if status < 200 || status > 299 {
		return dto.TokenMetadata{}, service.upstreamError(status, body)
	}

	responseData := dto.TokenMetadata{}
	if err := json.Unmarshal(body, &responseData); err != nil {
		return dto.TokenMetadata{}, appError.Err{ErrCode: http.StatusInternalServerError, ErrType: errorcode.SERVER_ERR_CODE, Err: err}
	}
	if service.Cache != nil {
		service.Cache.Set(cacheKey, responseData, true)
	}
	return responseData, nil
}

// GetTokenPrices ... Batch-fetches USD prices for a set of tokens on one
// chain. An empty token list short-circuits to an empty map without any
// upstream call.
func (service *AggregationService) GetTokenPrices(ctx context.Context, chainID int64, tokens []string) (map[string]string, error) {
	if len(tokens) == 0 {
		return map[string]string{}, nil
	}

	metaData := utility.GetRequestMetaData("getTokenPrices", service.Config, chainID)
	requestData := dto.PriceRequest{Tokens: tokens, Currency: constants.PRICE_CURRENCY}

	status, body, err := service.Forward(ctx, metaData, requestData)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, service.upstreamError(status, body)
	}

	prices := map[string]string{}
	if err := json.Unmarshal(body, &prices); err != nil {
		return nil, appError.Err{ErrCode: http.StatusInternalServerError, ErrType: errorcode.SERVER_ERR_CODE, Err: err}
	}
	return prices, nil
}

// GetSwapQuote ... Fetches a conversion estimate for a single source asset
func (service *AggregationService) GetSwapQuote(ctx context.Context, requestData model.QuoteRequest) (model.Quote, error) {
	metaData := QuoteMetaData(service.Config, requestData)

	status, body, err := service.Forward(ctx, metaData, nil)
	if err != nil {
		return model.Quote{}, err
	}
	if status < 200 || status > 299 {
		return model.Quote{}, service.upstreamError(status, body)
	}

	responseData := model.Quote{}
	if err := json.Unmarshal(body, &responseData); err != nil {
		return model.Quote{}, appError.Err{ErrCode: http.StatusInternalServerError, ErrType: errorcode.SERVER_ERR_CODE, Err: err}
	}
	return responseData, nil
}

// QuoteMetaData ... Builds the upstream quote request for a validated
// single-asset quote request
func QuoteMetaData(config Config.Data, requestData model.QuoteRequest) utility.MetaData {
	metaData := utility.GetRequestMetaData("getSwapQuote", config, requestData.ToChainID)

	slippage := requestData.Slippage
	if slippage == 0 {
		slippage = config.DefaultSlippage
	}
	if slippage == 0 {
		slippage = constants.DEFAULT_SLIPPAGE
	}

	fromAsset := requestData.FromAssets[0]
	params := url.Values{}
	params.Set("fromTokenAddress", fromAsset.TokenAddress)
	params.Set("toTokenAddress", requestData.ToTokenAddress)
	params.Set("amount", fromAsset.Amount)
	params.Set("walletAddress", requestData.WalletAddress)
	params.Set("slippage", strconv.Itoa(slippage))
	metaData.Action = metaData.Action + "?" + params.Encode()
	return metaData
}

// upstreamError records the upstream failure on the service and returns it as
// a typed error carrying the upstream status.
func (service *AggregationService) upstreamError(status int, body []byte) error {
	requestErr := dto.ExternalServicesRequestErr{}
	if err := json.Unmarshal(body, &requestErr); err != nil || requestErr.Message == "" {
		requestErr.Details = string(body)
	}
	requestErr.StatusCode = status
	service.Error = &requestErr

	return appError.Err{
		ErrCode: status,
		ErrType: errorcode.EXTERNAL_API_ERR_CODE,
		Err:     fmt.Errorf("aggregation API error: %d %s", status, string(body)),
	}
}
