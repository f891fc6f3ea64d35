package flow

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	Config "crypto-sweep/config"
	"crypto-sweep/services"
	"crypto-sweep/session"
	"crypto-sweep/utility/cache"

	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) Config.Data {
	return Config.Data{
		AggregationAPIURL:    baseURL,
		AggregationAPIKey:    "test-api-key",
		RequestTimeout:       5,
		ChainRequestDelay:    1,
		PriceBatchDelay:      1,
		MetadataRequestDelay: 1,
		MinimumAssetValue:    1,
		DefaultSlippage:      1,
	}
}

func newScanFixture(t *testing.T, upstream *httptest.Server) (*session.Session, *ScanRunner) {
	t.Helper()
	config := testConfig(upstream.URL)
	memoryCache := cache.Initialize(60*time.Second, 5*time.Minute)

	aggregation := services.NewAggregationService(memoryCache, config)
	discovery := services.NewBalanceDiscoveryService(aggregation, config)
	enrichment := services.NewEnrichmentService(aggregation, config)

	store := session.NewStore(config)
	t.Cleanup(store.Close)
	sweepSession := store.Connect(nil)

	return sweepSession, NewScanRunner(sweepSession, discovery, enrichment)
}

// sweepUpstream serves a scan scenario: one wallet holding USDC and the
// native token on Polygon, nothing anywhere else.
func sweepUpstream() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/balance/v1.2/137/"):
			w.Write([]byte(`{
				"0xusdc": "5000000000000000000",
				"0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee": "1000000000000000000",
				"0xdust": "1000000000000000"
			}`))
		case strings.HasPrefix(r.URL.Path, "/balance/v1.2/"):
			w.WriteHeader(http.StatusNotFound)
		case strings.HasPrefix(r.URL.Path, "/price/v1.1/"):
			w.Write([]byte(`{"0xusdc":"1.00","0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee":"1.72","0xdust":"1.00"}`))
		case strings.HasPrefix(r.URL.Path, "/portfolio/v3/") && strings.Contains(r.URL.Path, "0xusdc"):
			w.Write([]byte(`{"address":"0xusdc","symbol":"USDC","name":"USD Coin","decimals":6}`))
		case strings.HasPrefix(r.URL.Path, "/portfolio/v3/"):
			w.Write([]byte(`{"symbol":"DUST","name":"Dust","decimals":18}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func Test_ScanRunner_EndToEnd(t *testing.T) {
	upstream := sweepUpstream()
	defer upstream.Close()

	sweepSession, runner := newScanFixture(t, upstream)
	require.Equal(t, ScanConnecting, runner.State())

	runner.Start([]string{"0xWallet"})
	runner.Wait()

	require.Equal(t, ScanComplete, runner.State())
	require.Empty(t, runner.Error())
	require.Equal(t, []string{"0xWallet"}, runner.ScannedWallets())

	assets := sweepSession.Assets()
	require.Len(t, assets, 2, "dust below the minimum value is filtered out")

	bySymbol := map[string]string{}
	for _, asset := range assets {
		bySymbol[asset.Symbol] = asset.Value.String()
	}
	require.Contains(t, bySymbol, "USDC")
	require.Equal(t, "1.72", bySymbol["MATIC"], "native balance priced from the chain descriptor")
}

func Test_ScanRunner_EmptyWalletsResets(t *testing.T) {
	upstream := sweepUpstream()
	defer upstream.Close()

	sweepSession, runner := newScanFixture(t, upstream)

	runner.Start([]string{"0xWallet"})
	runner.Wait()
	require.NotEmpty(t, sweepSession.Assets())

	runner.Start(nil)
	runner.Wait()
	require.Equal(t, ScanConnecting, runner.State())
	require.Empty(t, sweepSession.Assets())
}

func Test_ScanRunner_StopNeverSetsErrorState(t *testing.T) {
	release := make(chan struct{})
	var entered int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.StoreInt32(&entered, 1)
		<-release
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()
	defer close(release)

	sweepSession, runner := newScanFixture(t, upstream)

	runner.Start([]string{"0xWallet"})
	for atomic.LoadInt32(&entered) == 0 {
		time.Sleep(time.Millisecond)
	}
	runner.Stop()
	runner.Wait()

	require.Equal(t, ScanScanning, runner.State(), "cancellation is not an error and not a completion")
	require.Empty(t, runner.Error())
	require.Empty(t, sweepSession.Assets())
}

func Test_ScanRunner_SupersededRunNeverCommits(t *testing.T) {
	release := make(chan struct{})
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "0xSlowWallet") {
			<-release
			w.Write([]byte(`{"0xold":"9000000000000000000"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	sweepSession, runner := newScanFixture(t, upstream)

	runner.Start([]string{"0xSlowWallet"})
	runner.Start([]string{"0xFastWallet"})
	close(release)
	runner.Wait()

	require.Equal(t, ScanComplete, runner.State())
	require.Equal(t, []string{"0xFastWallet"}, sweepSession.ConnectedWallets())
	require.Empty(t, sweepSession.Assets(), "the superseded scan's balances never land in the session")
}

func Test_ScanRunner_SupersededMidEnrichmentNeverCommits(t *testing.T) {
	release := make(chan struct{})
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "0xSlowWallet"):
			w.Write([]byte(`{"0xstale":"7000000000000000000"}`))
		case strings.HasPrefix(r.URL.Path, "/price/v1.1/"):
			<-release
			w.Write([]byte(`{"0xstale":"100"}`))
		case strings.HasPrefix(r.URL.Path, "/portfolio/v3/"):
			w.Write([]byte(`{"symbol":"STALE","name":"Stale Token","decimals":18}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer upstream.Close()
	defer close(release)

	sweepSession, runner := newScanFixture(t, upstream)

	// first run gets past discovery and blocks inside enrichment before the
	// second Start supersedes it
	runner.Start([]string{"0xSlowWallet"})
	runner.Start([]string{"0xFastWallet"})
	runner.Wait()
	time.Sleep(50 * time.Millisecond)

	require.Equal(t, ScanComplete, runner.State())
	require.Equal(t, []string{"0xFastWallet"}, sweepSession.ConnectedWallets())
	require.Empty(t, sweepSession.Assets(), "enrichment results of a superseded run never land in the session")
}

func Test_ScanRunner_DeadUpstreamCompletesEmpty(t *testing.T) {
	upstream := sweepUpstream()
	sweepSession, runner := newScanFixture(t, upstream)
	upstream.Close()

	runner.Start([]string{"0xWallet"})
	runner.Wait()

	// chain failures are contained, so even a dead upstream completes with
	// zero assets rather than erroring
	require.Equal(t, ScanComplete, runner.State())
	require.Empty(t, sweepSession.Assets())
}
