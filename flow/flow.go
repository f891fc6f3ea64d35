package flow

import (
	"errors"
	"net/http"

	"crypto-sweep/session"
	"crypto-sweep/utility/appError"
	"crypto-sweep/utility/errorcode"
)

// Stage ... One step of the linear sweep wizard
type Stage string

const (
	StageConnect     Stage = "connect"
	StageScan        Stage = "scan"
	StageDestination Stage = "destination"
	StageQuote       Stage = "quote"
	StageTransaction Stage = "transaction"
	StageSuccess     Stage = "success"
)

// stageOrder lists the wizard stages in forward order.
var stageOrder = []Stage{StageConnect, StageScan, StageDestination, StageQuote, StageTransaction, StageSuccess}

// prerequisite reports whether the state required to enter a stage holds.
func prerequisite(sweepSession *session.Session, stage Stage) bool {
	switch stage {
	case StageConnect:
		return true
	case StageScan:
		return sweepSession != nil && len(sweepSession.ConnectedWallets()) > 0
	case StageDestination:
		return len(sweepSession.SelectedIDs()) > 0
	case StageQuote:
		return sweepSession.DestinationChain() != nil && sweepSession.DestinationToken() != nil
	case StageTransaction, StageSuccess:
		return sweepSession.Quote() != nil
	}
	return false
}

// RedirectFor ... Returns the stage to render for a requested target: the
// target itself when every upstream prerequisite holds, otherwise the first
// stage whose prerequisite is unmet.
func RedirectFor(sweepSession *session.Session, target Stage) Stage {
	for _, stage := range stageOrder {
		if !prerequisite(sweepSession, stage) {
			return previousStage(stage)
		}
		if stage == target {
			return target
		}
	}
	return target
}

// ValidateAdvance ... Checks the local completion condition for leaving a
// stage forward. Only single-asset conversions are supported, so advancing
// from the quote stage with more than one selected asset is a blocking
// validation error.
func ValidateAdvance(sweepSession *session.Session, from Stage) error {
	switch from {
	case StageScan:
		if len(sweepSession.SelectedIDs()) == 0 {
			return appError.Err{ErrCode: http.StatusBadRequest, ErrType: errorcode.INPUT_ERR_CODE, Err: errors.New("no assets selected")}
		}
	case StageDestination:
		if sweepSession.DestinationChain() == nil || sweepSession.DestinationToken() == nil {
			return appError.Err{ErrCode: http.StatusBadRequest, ErrType: errorcode.INPUT_ERR_CODE, Err: errors.New("destination not chosen")}
		}
		if len(sweepSession.SelectedIDs()) > 1 {
			return appError.Err{ErrCode: http.StatusBadRequest, ErrType: errorcode.INPUT_ERR_CODE, Err: errors.New(errorcode.SINGLE_ASSET_ONLY)}
		}
	case StageQuote:
		if len(sweepSession.SelectedIDs()) > 1 {
			return appError.Err{ErrCode: http.StatusBadRequest, ErrType: errorcode.INPUT_ERR_CODE, Err: errors.New(errorcode.SINGLE_ASSET_ONLY)}
		}
		if sweepSession.Quote() == nil {
			return appError.Err{ErrCode: http.StatusBadRequest, ErrType: errorcode.INPUT_ERR_CODE, Err: errors.New("quote not loaded")}
		}
	}
	return nil
}

func previousStage(stage Stage) Stage {
	for i, candidate := range stageOrder {
		if candidate == stage && i > 0 {
			return stageOrder[i-1]
		}
	}
	return StageConnect
}
