package flow

import (
	"testing"

	"crypto-sweep/model"
	"crypto-sweep/session"
	"crypto-sweep/utility/errorcode"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func sessionWith(t *testing.T, assets ...model.Asset) (*session.Store, *session.Session) {
	t.Helper()
	store := session.NewStore(testConfig(""))
	t.Cleanup(store.Close)

	sweepSession := store.Connect([]string{"0xwallet"})
	sweepSession.ReplaceAssets(assets)
	return store, sweepSession
}

func flowAsset(tokenAddress string, value float64) model.Asset {
	return model.Asset{
		ID:            model.AssetID(137, tokenAddress, "0xwallet"),
		Chain:         model.Chain{ID: 137, Name: "Polygon"},
		TokenAddress:  tokenAddress,
		Balance:       "1000000",
		Amount:        decimal.NewFromFloat(1),
		Value:         decimal.NewFromFloat(value),
		WalletAddress: "0xwallet",
	}
}

func Test_RedirectFor_NoWalletFallsBackToConnect(t *testing.T) {
	store := session.NewStore(testConfig(""))
	defer store.Close()
	sweepSession := store.Connect(nil)

	require.Equal(t, StageConnect, RedirectFor(sweepSession, StageScan))
	require.Equal(t, StageConnect, RedirectFor(sweepSession, StageQuote))
	require.Equal(t, StageConnect, RedirectFor(sweepSession, StageConnect))
}

func Test_RedirectFor_MissingSelectionStopsAtScan(t *testing.T) {
	_, sweepSession := sessionWith(t, flowAsset("0xusdc", 5))

	require.Equal(t, StageScan, RedirectFor(sweepSession, StageScan))
	require.Equal(t, StageScan, RedirectFor(sweepSession, StageDestination))
	require.Equal(t, StageScan, RedirectFor(sweepSession, StageTransaction))
}

func Test_RedirectFor_MissingQuoteStopsAtQuote(t *testing.T) {
	_, sweepSession := sessionWith(t, flowAsset("0xusdc", 5))
	sweepSession.ToggleSelection(model.AssetID(137, "0xusdc", "0xwallet"), true)
	sweepSession.SetDestinationChain(&model.Chain{ID: 137, Name: "Polygon"})
	sweepSession.SetDestinationToken(&model.Token{Address: "0xto", Symbol: "USDT"})

	require.Equal(t, StageQuote, RedirectFor(sweepSession, StageQuote))
	require.Equal(t, StageQuote, RedirectFor(sweepSession, StageTransaction))
	require.Equal(t, StageQuote, RedirectFor(sweepSession, StageSuccess))

	sweepSession.SetQuote(&model.Quote{ToTokenAmount: "990000"})
	require.Equal(t, StageTransaction, RedirectFor(sweepSession, StageTransaction))
	require.Equal(t, StageSuccess, RedirectFor(sweepSession, StageSuccess))
}

func Test_ValidateAdvance_SingleAssetRule(t *testing.T) {
	_, sweepSession := sessionWith(t, flowAsset("0xaaa", 5), flowAsset("0xbbb", 3))
	sweepSession.SelectAll()
	sweepSession.SetDestinationChain(&model.Chain{ID: 137, Name: "Polygon"})
	sweepSession.SetDestinationToken(&model.Token{Address: "0xto", Symbol: "USDT"})

	err := ValidateAdvance(sweepSession, StageDestination)
	require.Error(t, err)
	require.Equal(t, errorcode.SINGLE_ASSET_ONLY, err.Error())

	sweepSession.ToggleSelection(model.AssetID(137, "0xbbb", "0xwallet"), false)
	require.NoError(t, ValidateAdvance(sweepSession, StageDestination))
}

func Test_ValidateAdvance_RequiresSelection(t *testing.T) {
	_, sweepSession := sessionWith(t, flowAsset("0xaaa", 5))

	require.Error(t, ValidateAdvance(sweepSession, StageScan))

	sweepSession.ToggleSelection(model.AssetID(137, "0xaaa", "0xwallet"), true)
	require.NoError(t, ValidateAdvance(sweepSession, StageScan))
}
