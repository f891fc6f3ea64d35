package appError

import (
	"context"
	"errors"
	"fmt"

	"crypto-sweep/utility/errorcode"
)

// Err ... Error struct
type Err struct {
	ErrCode int
	ErrType string
	Err     error
}

func (e Err) Error() string {
	return fmt.Sprintf("%s", e.Err)
}

func (e Err) Unwrap() error {
	return e.Err
}

// Cancellation ... Builds the distinguished cancellation error returned when a
// scan or enrichment run is aborted through its context
func Cancellation() Err {
	return Err{
		ErrCode: 499,
		ErrType: errorcode.CANCELLED_ERR_CODE,
		Err:     context.Canceled,
	}
}

// IsCancellation ... Reports whether err represents an intentional abort rather
// than a data or upstream failure
func IsCancellation(err error) bool {
	if err == nil {
		return false
	}
	var appErr Err
	if errors.As(err, &appErr) && appErr.ErrType == errorcode.CANCELLED_ERR_CODE {
		return true
	}
	return errors.Is(err, context.Canceled)
}

// StatusCode ... Extracts the HTTP status carried by err, defaulting to defaultCode
func StatusCode(err error, defaultCode int) int {
	var appErr Err
	if errors.As(err, &appErr) && appErr.ErrCode != 0 {
		return appErr.ErrCode
	}
	return defaultCode
}
