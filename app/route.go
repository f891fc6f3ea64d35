package app

import (
	"net/http"
	"sync"

	Config "crypto-sweep/config"
	"crypto-sweep/controllers"
	"crypto-sweep/services"
	"crypto-sweep/utility/cache"
	"crypto-sweep/utility/logger"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	validation "gopkg.in/go-playground/validator.v9"
)

var (
	once sync.Once
)

// RegisterRoutes ... Register all route endpoints
func RegisterRoutes(router *mux.Router, validator *validation.Validate, config Config.Data, appLogger *logger.Logger, memoryCache *cache.Memory) {

	once.Do(func() {
		aggregationService := services.NewAggregationService(memoryCache, config)
		controller := controllers.NewController(appLogger, config, validator, aggregationService)

		baseURL := config.BasePath
		if baseURL == "" {
			baseURL = "/api/v1"
		}

		apiRouter := router.PathPrefix(baseURL).Subrouter()
		router.PathPrefix("/swagger").Handler(httpSwagger.WrapHandler)

		// General Routes
		apiRouter.HandleFunc("/crypto/ping", controller.Ping).Methods(http.MethodGet)

		// Aggregation proxy routes
		apiRouter.HandleFunc("/balances/{chainId}/{walletAddress}", controller.GetBalances).Methods(http.MethodGet)
		apiRouter.HandleFunc("/metadata/{chainId}/{tokenAddress}", controller.GetTokenMetadata).Methods(http.MethodGet)
		apiRouter.HandleFunc("/prices/{chainId}", controller.GetTokenPrices).Methods(http.MethodPost)
		apiRouter.HandleFunc("/quote", controller.GetSwapQuote).Methods(http.MethodPost)
	})

	appLogger.Info("App routes registered successfully!")
}
