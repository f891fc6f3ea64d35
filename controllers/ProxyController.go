package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"crypto-sweep/dto"
	"crypto-sweep/model"
	"crypto-sweep/services"
	"crypto-sweep/utility"
	"crypto-sweep/utility/appError"
	"crypto-sweep/utility/constants"
	"crypto-sweep/utility/errorcode"
	"crypto-sweep/utility/response"

	"github.com/gorilla/mux"
)

// GetBalances ... Proxies the raw balance lookup for a wallet on one chain
func (controller *Controller) GetBalances(responseWriter http.ResponseWriter, requestReader *http.Request) {

	routeParams := mux.Vars(requestReader)
	chainID, err := strconv.ParseInt(routeParams["chainId"], 10, 64)
	if err != nil || routeParams["walletAddress"] == "" {
		writeProxyError(responseWriter, http.StatusBadRequest, "Missing chainId or walletAddress", "")
		return
	}
	controller.Logger.Info("Incoming request details for GetBalances : chainId : %d, walletAddress : %s", chainID, routeParams["walletAddress"])

	metaData := utility.GetRequestMetaData("getBalances", controller.Config, chainID, routeParams["walletAddress"])
	status, body, err := controller.Aggregation.Forward(requestReader.Context(), metaData, nil)
	if err != nil {
		controller.writeForwardError(responseWriter, "GetBalances", err)
		return
	}
	relayUpstream(responseWriter, status, body, fmt.Sprintf("Aggregation API Error: %d", status))
}

// GetTokenMetadata ... Proxies the metadata lookup for one token
func (controller *Controller) GetTokenMetadata(responseWriter http.ResponseWriter, requestReader *http.Request) {

	routeParams := mux.Vars(requestReader)
	chainID, err := strconv.ParseInt(routeParams["chainId"], 10, 64)
	if err != nil || routeParams["tokenAddress"] == "" {
		writeProxyError(responseWriter, http.StatusBadRequest, "Missing chainId or tokenAddress", "")
		return
	}
	controller.Logger.Info("Incoming request details for GetTokenMetadata : chainId : %d, tokenAddress : %s", chainID, routeParams["tokenAddress"])

	metaData := utility.GetRequestMetaData("getTokenMetadata", controller.Config, chainID, routeParams["tokenAddress"])
	status, body, err := controller.Aggregation.Forward(requestReader.Context(), metaData, nil)
	if err != nil {
		controller.writeForwardError(responseWriter, "GetTokenMetadata", err)
		return
	}
	relayUpstream(responseWriter, status, body, fmt.Sprintf("Aggregation Metadata API Error: %d", status))
}

// GetTokenPrices ... Proxies the batched USD price lookup for one chain. An
// empty token list returns an empty object without touching the upstream.
func (controller *Controller) GetTokenPrices(responseWriter http.ResponseWriter, requestReader *http.Request) {

	routeParams := mux.Vars(requestReader)
	chainID, err := strconv.ParseInt(routeParams["chainId"], 10, 64)
	if err != nil {
		writeProxyError(responseWriter, http.StatusBadRequest, "Missing chainId", "")
		return
	}

	requestData := model.PriceRequest{}
	if err := json.NewDecoder(requestReader.Body).Decode(&requestData); err != nil || requestData.Tokens == nil {
		writeProxyError(responseWriter, http.StatusBadRequest, `Invalid request body. Expecting { "tokens": [...] }`, "")
		return
	}
	controller.Logger.Info("Incoming request details for GetTokenPrices : chainId : %d, tokens : %d", chainID, len(requestData.Tokens))

	if len(requestData.Tokens) == 0 {
		responseWriter.Header().Set("Content-Type", "application/json")
		responseWriter.WriteHeader(http.StatusOK)
		json.NewEncoder(responseWriter).Encode(map[string]string{})
		return
	}

	metaData := utility.GetRequestMetaData("getTokenPrices", controller.Config, chainID)
	requestBody := dto.PriceRequest{Tokens: requestData.Tokens, Currency: constants.PRICE_CURRENCY}

	status, body, err := controller.Aggregation.Forward(requestReader.Context(), metaData, requestBody)
	if err != nil {
		controller.writeForwardError(responseWriter, "GetTokenPrices", err)
		return
	}
	relayUpstream(responseWriter, status, body, fmt.Sprintf("Aggregation Price API Error: %d", status))
}

// GetSwapQuote ... Proxies the conversion estimate for a single source asset
func (controller *Controller) GetSwapQuote(responseWriter http.ResponseWriter, requestReader *http.Request) {

	requestData := model.QuoteRequest{}
	if err := json.NewDecoder(requestReader.Body).Decode(&requestData); err != nil {
		writeProxyError(responseWriter, http.StatusBadRequest, "Invalid request body. Expecting a quote request object", "")
		return
	}
	controller.Logger.Info("Incoming request details for GetSwapQuote : %+v", requestData)

	if validationErr := ValidateRequest(controller.Validator, requestData, controller.Logger); len(validationErr) > 0 {
		writeProxyError(responseWriter, http.StatusBadRequest, errorcode.MISSING_PARAMS_ERR, "")
		return
	}
	if len(requestData.FromAssets) != 1 {
		writeProxyError(responseWriter, http.StatusBadRequest, errorcode.SINGLE_ASSET_ONLY, "")
		return
	}

	metaData := services.QuoteMetaData(controller.Config, requestData)
	status, body, err := controller.Aggregation.Forward(requestReader.Context(), metaData, nil)
	if err != nil {
		controller.writeForwardError(responseWriter, "GetSwapQuote", err)
		return
	}

	if status < 200 || status > 299 {
		upstream := response.ProxyErrorObj{}
		if parseErr := json.Unmarshal(body, &upstream); parseErr != nil {
			writeProxyError(responseWriter, status, "Failed to fetch quote: Invalid response from API", "")
			return
		}
		message := upstream.Message
		if message == "" {
			message = errorcode.QUOTE_FETCH_ERR
		}
		writeProxyError(responseWriter, status, message, "")
		return
	}
	relayUpstream(responseWriter, status, body, "")
}

// writeForwardError maps a Forward failure to the response contract: a missing
// credential is a configuration error, everything else a generic proxy error.
func (controller *Controller) writeForwardError(responseWriter http.ResponseWriter, action string, err error) {
	if appError.IsCancellation(err) {
		ReturnError(responseWriter, action, 499, err, response.ProxyErrorObj{Message: "Request canceled"}, controller.Logger)
		return
	}
	if err.Error() == errorcode.MISSING_CREDENTIAL {
		ReturnError(responseWriter, action, http.StatusInternalServerError, err, response.ProxyErrorObj{Message: errorcode.CONFIGURATION_ERR}, controller.Logger)
		return
	}
	ReturnError(responseWriter, action, http.StatusInternalServerError, err, response.ProxyErrorObj{Message: errorcode.PROXY_ERR}, controller.Logger)
}

// relayUpstream passes a 2xx upstream body through at 200 and wraps any other
// upstream status in the proxy error shape at that same status.
func relayUpstream(responseWriter http.ResponseWriter, status int, body []byte, errorMessage string) {
	responseWriter.Header().Set("Content-Type", "application/json")
	if status >= 200 && status <= 299 {
		responseWriter.WriteHeader(http.StatusOK)
		responseWriter.Write(body)
		return
	}
	writeProxyError(responseWriter, status, errorMessage, string(body))
}

func writeProxyError(responseWriter http.ResponseWriter, status int, message string, details string) {
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(status)
	json.NewEncoder(responseWriter).Encode(response.ProxyErrorObj{Message: message, Details: details})
}
