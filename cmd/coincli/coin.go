package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"gitlab.com/thorchain/coinstd/common"
)

var errInsufficientCoins = errors.New("required coin is not covered")

var _ pflag.Value = &coinValue{}

// coinValue decodes a coin flag in its canonical text form
type coinValue struct {
	coin common.Coin
	set  bool
}

func (v *coinValue) String() string {
	if !v.set {
		return ""
	}
	return v.coin.String()
}

func (v *coinValue) Set(s string) error {
	coin, err := common.ParseCoin(s)
	if err != nil {
		return err
	}
	v.coin = coin
	v.set = true
	return nil
}

func (v *coinValue) Type() string {
	return "coin"
}

func (c *cli) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <coin>",
		Short: "Decode a coin from its canonical text form, e.g. 123ucosm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coin, err := common.ParseCoin(args[0])
			if err != nil {
				log.Debug().Err(err).Str("input", args[0]).Msg("fail to parse coin")
				return err
			}
			log.Debug().Str("denom", coin.Denom).Str("amount", coin.Amount.String()).Msg("coin parsed")
			return c.print(cmd, coin.String(), coin)
		},
	}
}

func (c *cli) formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <amount> [denom]",
		Short: "Encode an amount and a denom into the canonical text form",
		Long:  "Encode an amount and a denom into the canonical text form, the denom falls back to --denom when omitted",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := common.ParseUint128(args[0])
			if err != nil {
				return &common.AmountError{Err: err}
			}
			denom := c.settings.DefaultDenom
			if len(args) == 2 {
				denom = args[1]
			}
			if len(denom) == 0 {
				return common.ErrMissingDenom
			}
			coin := common.NewCoin(amount, denom)
			return c.print(cmd, coin.String(), coin)
		},
	}
}

func (c *cli) hasCmd() *cobra.Command {
	required := &coinValue{}
	cmd := &cobra.Command{
		Use:   "has <coins>",
		Short: "Check whether a comma separated list of coins covers the required coin",
		Long:  "Check whether a comma separated list of coins covers the required coin, only the first coin of the required denom is compared",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coins, err := common.ParseCoins(args[0])
			if err != nil {
				return err
			}
			result := common.HasCoins(coins, required.coin)
			log.Debug().
				Str("coins", coins.String()).
				Str("required", required.coin.String()).
				Bool("result", result).
				Msg("checked coins")
			if err := c.print(cmd, strconv.FormatBool(result), hasResult{Result: result}); err != nil {
				return err
			}
			strict, err := cmd.Flags().GetBool("strict")
			if err != nil {
				return err
			}
			if strict && !result {
				return errInsufficientCoins
			}
			return nil
		},
	}
	cmd.Flags().VarP(required, "required", "r", "the coin to look for, e.g. 777ucosm")
	cmd.Flags().Bool("strict", false, "fail when the required coin is not covered")
	_ = cmd.MarkFlagRequired("required")
	return cmd
}

type hasResult struct {
	Result bool `json:"result"`
}
