package common

import (
	"encoding/json"
	"math/big"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
)

const uint128Bits = 128

var (
	ErrEmptyString    = errors.New("cannot parse integer from empty string")
	ErrInvalidDigit   = errors.New("invalid digit found in string")
	ErrNumberTooLarge = errors.New("number too large to fit in target type")
)

var maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint128Bits), big.NewInt(1))

// Uint128 is an unsigned integer bounded to 128 bits.
// The zero value is zero.
type Uint128 struct {
	i sdk.Uint
}

// NewUint128 create a new Uint128 from an uint64
func NewUint128(n uint64) Uint128 {
	return Uint128{i: sdk.NewUint(n)}
}

// NewUint128FromBigInt create a new Uint128, fails when i is negative or wider than 128 bits
func NewUint128FromBigInt(i *big.Int) (Uint128, error) {
	if i == nil {
		return ZeroUint128(), nil
	}
	if i.Sign() < 0 {
		return Uint128{}, ErrNegativeAmount
	}
	if i.BitLen() > uint128Bits {
		return Uint128{}, ErrNumberTooLarge
	}
	return Uint128{i: sdk.NewUintFromBigInt(new(big.Int).Set(i))}, nil
}

// ParseUint128 parse a decimal string, leading zeros and a single leading '+' are accepted
func ParseUint128(s string) (Uint128, error) {
	digits := s
	if len(digits) > 0 && digits[0] == '+' {
		digits = digits[1:]
	}
	if len(digits) == 0 {
		if len(s) == 0 {
			return Uint128{}, ErrEmptyString
		}
		return Uint128{}, ErrInvalidDigit
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return Uint128{}, ErrInvalidDigit
		}
	}
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Uint128{}, ErrInvalidDigit
	}
	return NewUint128FromBigInt(n)
}

// ZeroUint128 returns zero
func ZeroUint128() Uint128 {
	return Uint128{i: sdk.ZeroUint()}
}

// MaxUint128 returns 2^128 - 1
func MaxUint128() Uint128 {
	return Uint128{i: sdk.NewUintFromBigInt(new(big.Int).Set(maxUint128))}
}

func (u Uint128) value() sdk.Uint {
	if u.i == (sdk.Uint{}) {
		return sdk.ZeroUint()
	}
	return u.i
}

func (u Uint128) IsZero() bool {
	return u.value().IsZero()
}

func (u Uint128) Equal(u2 Uint128) bool {
	return u.value().Equal(u2.value())
}

func (u Uint128) GT(u2 Uint128) bool {
	return u.value().GT(u2.value())
}

func (u Uint128) GTE(u2 Uint128) bool {
	return u.value().GTE(u2.value())
}

func (u Uint128) LT(u2 Uint128) bool {
	return u.value().LT(u2.value())
}

func (u Uint128) LTE(u2 Uint128) bool {
	return u.value().LTE(u2.value())
}

// IsUint64 returns true when the value fits in an uint64
func (u Uint128) IsUint64() bool {
	return u.BigInt().IsUint64()
}

// Uint64 returns the low 64 bits, check IsUint64 first
func (u Uint128) Uint64() uint64 {
	return u.BigInt().Uint64()
}

// BigInt returns a copy of the value
func (u Uint128) BigInt() *big.Int {
	return u.value().BigInt()
}

// Uint returns the value as sdk.Uint
func (u Uint128) Uint() sdk.Uint {
	return u.value()
}

// String returns the decimal form, without leading zeros
func (u Uint128) String() string {
	return u.value().String()
}

// MarshalJSON encodes the value as a quoted decimal string
func (u Uint128) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON accepts the quoted decimal string produced by MarshalJSON
func (u *Uint128) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseUint128(s)
	if err != nil {
		return &AmountError{Err: err}
	}
	*u = v
	return nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
