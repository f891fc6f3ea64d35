package flow

import (
	"context"
	"sync"

	"crypto-sweep/model"
	"crypto-sweep/services"
	"crypto-sweep/session"
	"crypto-sweep/utility/appError"
	"crypto-sweep/utility/errorcode"
	"crypto-sweep/utility/logger"
)

// ScanState ... Sub-state of the scan stage
type ScanState string

const (
	ScanConnecting ScanState = "connecting"
	ScanScanning   ScanState = "scanning"
	ScanComplete   ScanState = "complete"
	ScanError      ScanState = "error"
)

// ScanRunner ... Drives the scan stage: discovery then enrichment for the
// connected wallet set. Starting a new run cancels any run still in flight,
// and a canceled run never commits results or an error to the session.
type ScanRunner struct {
	mu         sync.Mutex
	state      ScanState
	errMessage string
	generation int
	cancel     context.CancelFunc
	done       chan struct{}

	scannedWallets []string
	currentWallet  string

	sweepSession *session.Session
	discovery    *services.BalanceDiscoveryService
	enrichment   *services.EnrichmentService
}

// NewScanRunner ...
func NewScanRunner(sweepSession *session.Session, discovery *services.BalanceDiscoveryService, enrichment *services.EnrichmentService) *ScanRunner {
	done := make(chan struct{})
	close(done)
	return &ScanRunner{
		state:        ScanConnecting,
		done:         done,
		sweepSession: sweepSession,
		discovery:    discovery,
		enrichment:   enrichment,
	}
}

// Start ... Begins a scan for the given wallet set, superseding any scan
// still running. An empty wallet set resets the runner to the connecting
// state and clears the session's assets.
func (runner *ScanRunner) Start(wallets []string) {
	runner.mu.Lock()
	if runner.cancel != nil {
		runner.cancel()
		runner.cancel = nil
	}
	runner.generation++
	generation := runner.generation
	runner.sweepSession.SetConnectedWallets(wallets)
	runner.scannedWallets = []string{}
	runner.currentWallet = ""
	runner.errMessage = ""

	if len(wallets) == 0 {
		runner.state = ScanConnecting
		done := make(chan struct{})
		close(done)
		runner.done = done
		runner.sweepSession.ReplaceAssets(nil)
		runner.mu.Unlock()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	runner.cancel = cancel
	runner.state = ScanScanning
	done := make(chan struct{})
	runner.done = done
	runner.mu.Unlock()

	go runner.run(ctx, generation, append([]string{}, wallets...), done)
}

// Stop ... Cancels any in-flight scan; used on view teardown. The generation
// bump fences out any state or session write the canceled run still attempts.
func (runner *ScanRunner) Stop() {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if runner.cancel != nil {
		runner.cancel()
		runner.cancel = nil
		runner.generation++
	}
}

// State ...
func (runner *ScanRunner) State() ScanState {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	return runner.state
}

// Error ... The visible error message, empty unless the scan failed
func (runner *ScanRunner) Error() string {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	return runner.errMessage
}

// CurrentWallet ... The wallet the scan is working through, empty when idle
func (runner *ScanRunner) CurrentWallet() string {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	return runner.currentWallet
}

// ScannedWallets ...
func (runner *ScanRunner) ScannedWallets() []string {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	return append([]string{}, runner.scannedWallets...)
}

// Wait ... Blocks until the current run finishes, is canceled or superseded
func (runner *ScanRunner) Wait() {
	runner.mu.Lock()
	done := runner.done
	runner.mu.Unlock()
	<-done
}

func (runner *ScanRunner) run(ctx context.Context, generation int, wallets []string, done chan struct{}) {
	defer close(done)

	allBalances := []model.RawBalance{}
	for _, walletAddress := range wallets {
		if ctx.Err() != nil {
			return
		}
		runner.setCurrentWallet(generation, walletAddress)

		walletBalances, err := runner.discovery.DiscoverAssets(ctx, walletAddress)
		if err != nil {
			if appError.IsCancellation(err) {
				logger.Info("Scan canceled for wallet %s", walletAddress)
				return
			}
			runner.fail(generation, err)
			return
		}
		allBalances = append(allBalances, walletBalances...)
		runner.markScanned(generation, walletAddress)
	}

	assets, err := runner.enrichment.EnrichAndFilter(ctx, allBalances)
	if err != nil {
		if appError.IsCancellation(err) {
			logger.Info("Scan canceled during enrichment")
			return
		}
		runner.fail(generation, err)
		return
	}
	if ctx.Err() != nil {
		return
	}

	// the generation check and the session commit must be one atomic step:
	// a Start or Stop landing between them could otherwise let this run
	// write a stale asset list for the superseding wallet set
	runner.mu.Lock()
	if runner.generation != generation {
		runner.mu.Unlock()
		return
	}
	runner.state = ScanComplete
	runner.currentWallet = ""
	runner.sweepSession.ReplaceAssets(assets)
	runner.mu.Unlock()

	logger.Info("Scan complete: %d assets across %d wallets", len(assets), len(wallets))
}

func (runner *ScanRunner) setCurrentWallet(generation int, walletAddress string) {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if runner.generation == generation {
		runner.currentWallet = walletAddress
	}
}

func (runner *ScanRunner) markScanned(generation int, walletAddress string) {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if runner.generation == generation {
		runner.scannedWallets = append(runner.scannedWallets, walletAddress)
	}
}

func (runner *ScanRunner) fail(generation int, err error) {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if runner.generation != generation {
		return
	}
	runner.state = ScanError
	runner.errMessage = errorcode.SCAN_ERR
	logger.Error("Scan failed : %s", err)
}
