package common

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMissingDenom the input has no non-digit character
	ErrMissingDenom = errors.New("missing denominator")
	// ErrMissingAmount the input doesn't start with a digit, this includes negative amounts
	ErrMissingAmount = errors.New("missing amount or non-digit characters in amount")
	// ErrNegativeAmount a signed amount below zero can't become a Coin
	ErrNegativeAmount = errors.New("negative amount")
)

// AmountError is returned when the digits of a coin can't be turned into an Uint128
type AmountError struct {
	Err error
}

func (e *AmountError) Error() string {
	return fmt.Sprintf("invalid amount: %s", e.Err)
}

func (e *AmountError) Unwrap() error {
	return e.Err
}
