package common

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
)

// Coins is an ordered set of coins, the same denom may appear more than once
type Coins []Coin

// NewCoins returns a set holding a single coin
func NewCoins(amount Uint128, denom string) Coins {
	return Coins{NewCoin(amount, denom)}
}

// NewUint64Coins is a shorthand for NewCoins(NewUint128(amount), denom)
func NewUint64Coins(amount uint64, denom string) Coins {
	return Coins{NewUint64Coin(amount, denom)}
}

// ParseCoins decodes a comma separated list of canonical coins, e.g. 1ucosm,2uatom.
// Whitespace around every element is trimmed before ParseCoin sees it, so " 1ucosm" is
// accepted here while ParseCoin rejects it with ErrMissingAmount. Denoms holding a comma
// or trailing whitespace don't survive a Coins.String / ParseCoins round trip.
func ParseCoins(s string) (Coins, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Coins{}, nil
	}
	parts := strings.Split(s, ",")
	coins := make(Coins, 0, len(parts))
	for _, part := range parts {
		coin, err := ParseCoin(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrapf(err, "fail to parse coin(%s)", part)
		}
		coins = append(coins, coin)
	}
	return coins, nil
}

// HasCoins returns true if the first coin of the required denom is at least the required amount
func HasCoins(coins Coins, required Coin) bool {
	for _, c := range coins {
		if c.Denom == required.Denom {
			return c.Amount.GTE(required.Amount)
		}
	}
	return false
}

// AmountOf returns the amount of the first coin with the given denom, zero when there is none
func (cs Coins) AmountOf(denom string) Uint128 {
	for _, c := range cs {
		if c.Denom == denom {
			return c.Amount
		}
	}
	return ZeroUint128()
}

func (cs Coins) Equals(cs2 Coins) bool {
	if len(cs) != len(cs2) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(cs2[i]) {
			return false
		}
	}
	return true
}

// ToSDKCoins converts every coin, order is kept and nothing is sorted
func (cs Coins) ToSDKCoins() sdk.Coins {
	coins := make(sdk.Coins, len(cs))
	for i, c := range cs {
		coins[i] = c.ToSDKCoin()
	}
	return coins
}

func (cs Coins) String() string {
	coins := make([]string, len(cs))
	for i, c := range cs {
		coins[i] = c.String()
	}
	return strings.Join(coins, ",")
}
