package main

import (
	"log"
	"net/http"
	"time"

	"crypto-sweep/app"
	Config "crypto-sweep/config"
	"crypto-sweep/middlewares"
	"crypto-sweep/utility/cache"
	appLogger "crypto-sweep/utility/logger"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
	validation "gopkg.in/go-playground/validator.v9"
)

func main() {
	config := Config.Data{}
	config.Init("")

	logger := appLogger.NewLogger()
	router := mux.NewRouter()
	validator := validation.New()

	if config.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: config.SentryDSN}); err != nil {
			logger.Error("Sentry initialization failed : %s", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	memoryCache := cache.Initialize(config.ExpireCacheDuration*time.Second, config.PurgeCacheInterval*time.Second)

	app.RegisterRoutes(router, validator, config, logger, memoryCache)

	serviceAddress := ":" + config.AppPort

	middleware := middlewares.NewMiddleware(logger, router).
		LogAPIRequests().
		Recover().
		Build()

	logger.Info("Server started and listening on port %s", config.AppPort)
	log.Fatal(http.ListenAndServe(serviceAddress, middleware))
}
