package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"gitlab.com/thorchain/coinstd/config"
)

// version / revision are injected from the CI pipeline
var (
	version  string
	revision string
)

const (
	serverIdentity = "coincli"
)

// cli holds the state shared by all the sub commands
type cli struct {
	settings *config.Settings
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("fail to execute command")
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{settings: config.DefaultSettings()}
	rootCmd := &cobra.Command{
		Use:               serverIdentity,
		Short:             "Encode, decode and compare coins in their canonical text form",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.loadSettings,
	}
	rootCmd.PersistentFlags().StringP("cfg", "c", "", "configuration file with extension")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "Log Level")
	rootCmd.PersistentFlags().BoolP("pretty-log", "p", false, "Enables unstructured prettified logging. This is useful for local debugging")
	rootCmd.PersistentFlags().StringP("output", "o", config.OutputText, "output format, text or json")
	rootCmd.PersistentFlags().StringP("denom", "d", "", "denom used when an amount is given without one")

	rootCmd.AddCommand(c.parseCmd())
	rootCmd.AddCommand(c.formatCmd())
	rootCmd.AddCommand(c.hasCmd())
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

// loadSettings merges the config file, the environment and the flags, flags win
func (c *cli) loadSettings(cmd *cobra.Command, _ []string) error {
	cfgFile, err := cmd.Flags().GetString("cfg")
	if err != nil {
		return errors.Wrap(err, "fail to get cfg from flag")
	}
	s, err := config.LoadSettings(cfgFile)
	if err != nil {
		return errors.Wrap(err, "fail to load settings")
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		if s.LogLevel, err = flags.GetString("log-level"); err != nil {
			return errors.Wrap(err, "fail to get log-level from flag")
		}
	}
	if flags.Changed("pretty-log") {
		if s.PrettyLog, err = flags.GetBool("pretty-log"); err != nil {
			return errors.Wrap(err, "fail to get pretty-log from flag")
		}
	}
	if flags.Changed("output") {
		if s.Output, err = flags.GetString("output"); err != nil {
			return errors.Wrap(err, "fail to get output from flag")
		}
	}
	if flags.Changed("denom") {
		if s.DefaultDenom, err = flags.GetString("denom"); err != nil {
			return errors.Wrap(err, "fail to get denom from flag")
		}
	}
	if err := s.Validate(); err != nil {
		return err
	}
	c.settings = s
	initLog(s.LogLevel, s.PrettyLog, cmd.ErrOrStderr())
	log.Debug().Interface("settings", s).Msg("settings loaded")
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Shows version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s v%s, rev %s\n", serverIdentity, version, revision)
			return err
		},
	}
}

func initLog(level string, pretty bool, out io.Writer) {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		l = zerolog.InfoLevel
	}
	if out == nil {
		out = os.Stderr
	}
	if pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}
	zerolog.SetGlobalLevel(l)
	log.Logger = log.Output(out).With().Str("service", serverIdentity).Logger()
	if err != nil {
		log.Warn().Msgf("%s is not a valid log-level, falling back to 'info'", level)
	}
}

func (c *cli) print(cmd *cobra.Command, text string, v interface{}) error {
	if c.settings.Output == config.OutputJSON {
		buf, err := json.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "fail to marshal output")
		}
		text = string(buf)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}
