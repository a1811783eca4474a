package common

import (
	"encoding/json"
	"fmt"
	"math/big"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
	. "gopkg.in/check.v1"
)

type CoinSuite struct{}

var _ = Suite(&CoinSuite{})

const ibcDenom = "ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2"

func (s CoinSuite) TestCoin(c *C) {
	coin := NewUint64Coin(123, "ucosm")
	c.Check(coin.Denom, Equals, "ucosm")
	c.Check(coin.Amount.Uint64(), Equals, uint64(123))
	c.Check(coin.Equals(NewCoin(NewUint128(123), "ucosm")), Equals, true)
	c.Check(coin.Equals(NewUint64Coin(123, "UCOSM")), Equals, false)
	c.Check(coin.Equals(NewUint64Coin(124, "ucosm")), Equals, false)
	c.Check(coin.IsZero(), Equals, false)

	zero := NewUint64Coin(0, "ucosm")
	c.Check(zero.IsZero(), Equals, true)
	c.Check(zero.Equals(Coin{Denom: "ucosm"}), Equals, true)

	// no validation on the denom
	odd := NewUint64Coin(1, "")
	c.Check(odd.Denom, Equals, "")
}

func (s CoinSuite) TestString(c *C) {
	coin := NewUint64Coin(123, "ucosm")
	c.Check(coin.String(), Equals, "123ucosm")
	c.Check(fmt.Sprintf("Amount: %s", coin), Equals, "Amount: 123ucosm")
	c.Check(Coin{Denom: "ucosm"}.String(), Equals, "0ucosm")
	c.Check(NewCoin(MaxUint128(), "ucosm").String(), Equals, "340282366920938463463374607431768211455ucosm")
}

func (s CoinSuite) TestParseCoin(c *C) {
	expected := NewUint64Coin(123, "ucosm")

	coin, err := ParseCoin("123ucosm")
	c.Assert(err, IsNil)
	c.Check(coin.Equals(expected), Equals, true)

	// leading zeros are ignored
	coin, err = ParseCoin("00123ucosm")
	c.Assert(err, IsNil)
	c.Check(coin.Equals(expected), Equals, true)

	coin, err = ParseCoin("0ucosm")
	c.Assert(err, IsNil)
	c.Check(coin.Equals(NewUint64Coin(0, "ucosm")), Equals, true)

	coin, err = ParseCoin("11111" + ibcDenom)
	c.Assert(err, IsNil)
	c.Check(coin.Equals(NewUint64Coin(11111, ibcDenom)), Equals, true)

	// everything after the first non-digit belongs to the denom
	coin, err = ParseCoin("5u1 2")
	c.Assert(err, IsNil)
	c.Check(coin.Denom, Equals, "u1 2")

	coin, err = ParseCoin("340282366920938463463374607431768211455ucosm")
	c.Assert(err, IsNil)
	c.Check(coin.Amount.Equal(MaxUint128()), Equals, true)
}

func (s CoinSuite) TestParseCoinErrors(c *C) {
	inputs := []struct {
		input string
		err   error
	}{
		{"123", ErrMissingDenom},
		{"", ErrMissingDenom},
		{"ucosm", ErrMissingAmount},
		{"-123ucosm", ErrMissingAmount},
		{"+123ucosm", ErrMissingAmount},
		{" 1ucosm", ErrMissingAmount},
		{"\xff1ucosm", ErrMissingAmount},
		{"�1ucosm", ErrMissingAmount},
	}
	for _, item := range inputs {
		coin, err := ParseCoin(item.input)
		c.Check(err, Equals, item.err, Commentf("input: %q", item.input))
		c.Check(coin.Equals(Coin{}), Equals, true)
	}
}

func (s CoinSuite) TestParseCoinOverflow(c *C) {
	_, err := ParseCoin("340282366920938463463374607431768211456ucosm")
	c.Assert(err, NotNil)
	c.Check(err.Error(), Equals, "invalid amount: number too large to fit in target type")
	var amountErr *AmountError
	c.Check(errors.As(err, &amountErr), Equals, true)
	c.Check(errors.Is(err, ErrNumberTooLarge), Equals, true)
	c.Check(errors.Is(err, ErrMissingAmount), Equals, false)
	c.Check(errors.Is(err, ErrMissingDenom), Equals, false)

	// leading zeros don't count towards the width
	coin, err := ParseCoin("0000000000340282366920938463463374607431768211455ucosm")
	c.Assert(err, IsNil)
	c.Check(coin.Amount.Equal(MaxUint128()), Equals, true)
}

func (s CoinSuite) TestRoundTrip(c *C) {
	amounts := []Uint128{ZeroUint128(), NewUint128(1), NewUint128(1<<63 + 5), MaxUint128()}
	denoms := []string{"ucosm", "ETH", ibcDenom, "a", "-", " x", "µatom", "u1"}
	for _, amount := range amounts {
		for _, denom := range denoms {
			coin := NewCoin(amount, denom)
			parsed, err := ParseCoin(coin.String())
			c.Assert(err, IsNil)
			c.Check(parsed.Equals(coin), Equals, true, Commentf("coin: %s", coin))
		}
	}
}

func (s CoinSuite) TestJSON(c *C) {
	coin := NewUint64Coin(123, "ucosm")
	buf, err := json.Marshal(coin)
	c.Assert(err, IsNil)
	c.Check(string(buf), Equals, `{"denom":"ucosm","amount":"123"}`)

	var decoded Coin
	c.Assert(json.Unmarshal(buf, &decoded), IsNil)
	c.Check(decoded.Equals(coin), Equals, true)

	c.Check(json.Unmarshal([]byte(`{"denom":"ucosm","amount":123}`), &decoded), NotNil)
	err = json.Unmarshal([]byte(`{"denom":"ucosm","amount":"340282366920938463463374607431768211456"}`), &decoded)
	c.Check(errors.Is(err, ErrNumberTooLarge), Equals, true)
}

func (s CoinSuite) TestSDKCoin(c *C) {
	coin := NewUint64Coin(123, "ucosm")
	sdkCoin := coin.ToSDKCoin()
	c.Check(sdkCoin.Denom, Equals, "ucosm")
	c.Check(sdkCoin.Amount.Int64(), Equals, int64(123))

	back, err := NewCoinFromSDKCoin(sdkCoin)
	c.Assert(err, IsNil)
	c.Check(back.Equals(coin), Equals, true)

	max := NewCoin(MaxUint128(), "ucosm")
	back, err = NewCoinFromSDKCoin(max.ToSDKCoin())
	c.Assert(err, IsNil)
	c.Check(back.Equals(max), Equals, true)

	_, err = NewCoinFromSDKCoin(sdk.Coin{Denom: "ucosm", Amount: sdk.NewInt(-1)})
	c.Check(err, Equals, ErrNegativeAmount)

	tooBig := new(big.Int).Lsh(big.NewInt(1), 128)
	_, err = NewCoinFromSDKCoin(sdk.Coin{Denom: "ucosm", Amount: sdk.NewIntFromBigInt(tooBig)})
	c.Check(errors.Is(err, ErrNumberTooLarge), Equals, true)

	back, err = NewCoinFromSDKCoin(sdk.Coin{Denom: "ucosm"})
	c.Assert(err, IsNil)
	c.Check(back.IsZero(), Equals, true)
}
