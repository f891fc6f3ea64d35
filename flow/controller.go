package flow

import (
	"context"
	"errors"
	"net/http"

	Config "crypto-sweep/config"
	"crypto-sweep/model"
	"crypto-sweep/services"
	"crypto-sweep/session"
	"crypto-sweep/utility/appError"
	"crypto-sweep/utility/constants"
	"crypto-sweep/utility/errorcode"
	"crypto-sweep/utility/logger"
)

// Controller ... Ties one session to the quote operation of the sweep wizard
type Controller struct {
	Session     *session.Session
	Aggregation *services.AggregationService
	Config      Config.Data
}

// NewController ...
func NewController(sweepSession *session.Session, aggregation *services.AggregationService, config Config.Data) *Controller {
	return &Controller{
		Session:     sweepSession,
		Aggregation: aggregation,
		Config:      config,
	}
}

// FetchQuote ... Requests a fresh conversion estimate for the single selected
// asset and stores it on the session. Requires exactly one selected asset and
// a chosen destination.
func (controller *Controller) FetchQuote(ctx context.Context) (*model.Quote, error) {
	selected := controller.Session.SelectedAssets()
	if len(selected) == 0 {
		return nil, appError.Err{ErrCode: http.StatusBadRequest, ErrType: errorcode.INPUT_ERR_CODE, Err: errors.New("no assets selected")}
	}
	if len(selected) > 1 {
		return nil, appError.Err{ErrCode: http.StatusBadRequest, ErrType: errorcode.INPUT_ERR_CODE, Err: errors.New(errorcode.SINGLE_ASSET_ONLY)}
	}

	destinationChain := controller.Session.DestinationChain()
	destinationToken := controller.Session.DestinationToken()
	if destinationChain == nil || destinationToken == nil {
		return nil, appError.Err{ErrCode: http.StatusBadRequest, ErrType: errorcode.INPUT_ERR_CODE, Err: errors.New("destination not chosen")}
	}

	sourceAsset := selected[0]
	destinationWallet := controller.Session.DestinationWallet()
	if destinationWallet == "" {
		destinationWallet = sourceAsset.WalletAddress
	}
	toTokenAddress := destinationToken.Address
	if toTokenAddress == "" {
		toTokenAddress = constants.ZERO_ADDRESS
	}

	requestData := model.QuoteRequest{
		FromAssets: []model.QuoteAsset{
			{TokenAddress: sourceAsset.TokenAddress, Amount: sourceAsset.Balance},
		},
		ToTokenAddress: toTokenAddress,
		ToChainID:      destinationChain.ID,
		WalletAddress:  destinationWallet,
		Slippage:       controller.Config.DefaultSlippage,
	}

	quote, err := controller.Aggregation.GetSwapQuote(ctx, requestData)
	if err != nil {
		if appError.IsCancellation(err) {
			return nil, appError.Cancellation()
		}
		logger.Error("Quote fetch failed for %s : %s", sourceAsset.ID, err)
		return nil, appError.Err{
			ErrCode: appError.StatusCode(err, http.StatusBadGateway),
			ErrType: errorcode.EXTERNAL_API_ERR_CODE,
			Err:     errors.New(errorcode.QUOTE_FETCH_ERR),
		}
	}

	controller.Session.SetQuote(&quote)
	return &quote, nil
}
