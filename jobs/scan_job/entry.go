package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	Config "crypto-sweep/config"
	"crypto-sweep/flow"
	"crypto-sweep/registry"
	"crypto-sweep/services"
	"crypto-sweep/session"
	"crypto-sweep/utility/cache"
	appLogger "crypto-sweep/utility/logger"
)

func main() {
	walletFlag := flag.String("wallets", "", "comma-separated wallet addresses to scan")
	flag.Parse()

	fmt.Println("Starting Scan Job")

	config := Config.Data{}
	config.Init("")

	logger := appLogger.NewLogger()

	wallets := []string{}
	for _, wallet := range strings.Split(*walletFlag, ",") {
		if trimmed := strings.TrimSpace(wallet); trimmed != "" {
			wallets = append(wallets, trimmed)
		}
	}
	if len(wallets) == 0 {
		logger.Fatal("No wallet addresses supplied. Use -wallets=0x...,0x...")
	}

	purgeInterval := config.PurgeCacheInterval * time.Second
	cacheDuration := config.ExpireCacheDuration * time.Second
	memoryCache := cache.Initialize(cacheDuration, purgeInterval)

	aggregation := services.NewAggregationService(memoryCache, config)
	discovery := services.NewBalanceDiscoveryService(aggregation, config)
	enrichment := services.NewEnrichmentService(aggregation, config)

	store := session.NewStore(config)
	defer store.Close()
	sweepSession := store.Connect(wallets)

	runner := flow.NewScanRunner(sweepSession, discovery, enrichment)
	runner.Start(wallets)
	runner.Wait()

	if runner.State() == flow.ScanError {
		logger.Fatal("Scan failed : %s", runner.Error())
	}

	sweepSession.SelectAll()
	assets := sweepSession.SelectedAssets()
	fmt.Printf("Scanned %d wallets, found %d assets above the minimum value\n\n", len(wallets), len(assets))
	for _, asset := range assets {
		fmt.Printf("%-20s %-8s amount %-24s value $%s\n", asset.Chain.Name, asset.Symbol, asset.Amount.String(), asset.Value.StringFixed(2))
	}

	totalValue := sweepSession.TotalValue()
	serviceFee := registry.ServiceFee(totalValue)
	fmt.Printf("\nTotal value     $%s\n", totalValue.StringFixed(2))
	fmt.Printf("Service fee     $%s\n", serviceFee.StringFixed(2))
	fmt.Printf("Final amount    $%s\n", registry.FinalAmount(totalValue).StringFixed(2))
}
