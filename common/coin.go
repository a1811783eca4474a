package common

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
)

// Coin is an amount of a single denomination
type Coin struct {
	Denom  string  `json:"denom"`
	Amount Uint128 `json:"amount"`
}

// NewCoin return a new instance of Coin, denom is not validated
func NewCoin(amount Uint128, denom string) Coin {
	return Coin{
		Denom:  denom,
		Amount: amount,
	}
}

// NewUint64Coin is a shorthand for NewCoin(NewUint128(amount), denom)
func NewUint64Coin(amount uint64, denom string) Coin {
	return NewCoin(NewUint128(amount), denom)
}

// NewCoinFromSDKCoin converts a cosmos sdk coin, the amount must fit in 128 bits
func NewCoinFromSDKCoin(c sdk.Coin) (Coin, error) {
	if c.Amount == (sdk.Int{}) {
		return NewCoin(ZeroUint128(), c.Denom), nil
	}
	amount, err := NewUint128FromBigInt(c.Amount.BigInt())
	if err != nil {
		if errors.Is(err, ErrNegativeAmount) {
			return Coin{}, err
		}
		return Coin{}, &AmountError{Err: err}
	}
	return NewCoin(amount, c.Denom), nil
}

// ParseCoin decodes the canonical form, the amount digits directly followed by the denom.
// The amount ends at the first byte that is not an ASCII digit.
func ParseCoin(s string) (Coin, error) {
	pos := -1
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			pos = i
			break
		}
	}
	if pos < 0 {
		return Coin{}, ErrMissingDenom
	}
	if pos == 0 {
		return Coin{}, ErrMissingAmount
	}
	amount, err := ParseUint128(s[:pos])
	if err != nil {
		return Coin{}, &AmountError{Err: err}
	}
	return NewCoin(amount, s[pos:]), nil
}

// Equals compares amount and denom, denoms are compared byte for byte
func (c Coin) Equals(c2 Coin) bool {
	return c.Denom == c2.Denom && c.Amount.Equal(c2.Amount)
}

func (c Coin) IsZero() bool {
	return c.Amount.IsZero()
}

// ToSDKCoin converts to a cosmos sdk coin without validating the denom
func (c Coin) ToSDKCoin() sdk.Coin {
	return sdk.Coin{
		Denom:  c.Denom,
		Amount: sdk.NewIntFromBigInt(c.Amount.BigInt()),
	}
}

// String returns the canonical form, e.g. 123ucosm
func (c Coin) String() string {
	// same layout as the cosmos sdk, no space between amount and denom
	return fmt.Sprintf("%s%s", c.Amount.String(), c.Denom)
}
