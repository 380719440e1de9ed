package cmd

import (
	"fmt"

	"github.com/celestiaorg/credential-registration/pkg/trust"
	"github.com/spf13/cobra"
)

func configCommand(loadConfig func() (trust.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the trust configuration",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the configuration resolved from the environment as TOML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				bz, err := cfg.EncodeTOML()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(bz)
				return err
			},
		},
		&cobra.Command{
			Use:   "networks",
			Short: "List the networks with an embedded configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				for _, network := range trust.Networks() {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), network); err != nil {
						return err
					}
				}
				return nil
			},
		},
	)

	return cmd
}
