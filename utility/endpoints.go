package utility

import (
	"fmt"
	"net/http"

	Config "crypto-sweep/config"
)

type MetaData struct {
	Type, Endpoint, Action string
}

// GetRequestMetaData ... Resolves method, base endpoint and path for a named
// aggregation API call. Path parameters are supplied in positional order.
func GetRequestMetaData(request string, config Config.Data, params ...interface{}) MetaData {
	switch request {
	case "getBalances":
		return MetaData{
			Type:     http.MethodGet,
			Endpoint: config.AggregationAPIURL,
			Action:   fmt.Sprintf("/balance/v1.2/%v/balances/%v", params...),
		}
	case "getTokenMetadata":
		return MetaData{
			Type:     http.MethodGet,
			Endpoint: config.AggregationAPIURL,
			Action:   fmt.Sprintf("/portfolio/v3/tokens/by-address/%v/%v", params...),
		}
	case "getTokenPrices":
		return MetaData{
			Type:     http.MethodPost,
			Endpoint: config.AggregationAPIURL,
			Action:   fmt.Sprintf("/price/v1.1/%v", params...),
		}
	case "getSwapQuote":
		return MetaData{
			Type:     http.MethodGet,
			Endpoint: config.AggregationAPIURL,
			Action:   fmt.Sprintf("/swap/v5.2/%v/quote", params...),
		}
	default:
		return MetaData{}
	}
}

// GetIPAdress ... Extracts the caller address from an incoming request
func GetIPAdress(requestReader *http.Request) string {
	if forwarded := requestReader.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	return requestReader.RemoteAddr
}
