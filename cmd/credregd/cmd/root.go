package cmd

import (
	"fmt"

	"cosmossdk.io/log"
	"github.com/celestiaorg/credential-registration/pkg/trust"
	originatorcli "github.com/celestiaorg/credential-registration/x/originator/client/cli"
	registrarcli "github.com/celestiaorg/credential-registration/x/registrar/client/cli"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
)

const (
	// FlagEnvFile lists the .env files loaded before the environment is read.
	FlagEnvFile = "env-file"

	// FlagLogLevel sets the level of the stderr logger.
	FlagLogLevel = "log-level"
)

// rootState is filled in by the root PersistentPreRunE and read lazily by
// subcommands that need the trust configuration.
type rootState struct {
	logger log.Logger
}

func (s *rootState) loadConfig() (trust.Config, error) {
	return trust.Load(s.logger)
}

// NewRootCmd creates the credregd root command.
func NewRootCmd() *cobra.Command {
	state := &rootState{logger: log.NewNopLogger()}

	rootCmd := &cobra.Command{
		Use:   "credregd",
		Short: "Credential registration tooling",
		Long: `credregd inspects the credential registration bridge: it derives the keyless
identities the originator dispatches with, encodes and decodes register
instructions and registration message bodies, and shows the trusted
configuration resolved from the environment.

The network is chosen with ` + trust.EnvPrefix + `_NETWORK (mainnet or testnet) and single
identities can be overridden with ` + trust.EnvPrefix + `_<FIELD>, e.g. ` + trust.EnvPrefix + `_MAILBOX_ID.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetOut(cmd.OutOrStdout())
			cmd.SetErr(cmd.ErrOrStderr())

			envFiles, err := cmd.Flags().GetStringSlice(FlagEnvFile)
			if err != nil {
				return err
			}
			if err := trust.LoadEnvFiles(envFiles...); err != nil {
				return err
			}

			levelStr, err := cmd.Flags().GetString(FlagLogLevel)
			if err != nil {
				return err
			}
			level, err := zerolog.ParseLevel(levelStr)
			if err != nil {
				return fmt.Errorf("invalid --%s: %w", FlagLogLevel, err)
			}

			state.logger = log.NewLogger(cmd.ErrOrStderr(), log.LevelOption(level))
			return nil
		},
	}

	rootCmd.PersistentFlags().AddFlagSet(persistentFlags())

	rootCmd.AddCommand(
		configCommand(state.loadConfig),
		originatorcli.GetCmd(state.loadConfig),
		registrarcli.GetCmd(state.loadConfig),
	)

	return rootCmd
}

func persistentFlags() *flag.FlagSet {
	flags := &flag.FlagSet{}
	flags.StringSlice(FlagEnvFile, []string{".env"}, "env files to load, missing files are skipped")
	flags.String(FlagLogLevel, zerolog.InfoLevel.String(), "log level (trace|debug|info|warn|error)")
	return flags
}
