package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/celestiaorg/credential-registration/pkg/identity"
	"github.com/celestiaorg/credential-registration/pkg/trust"
	"github.com/celestiaorg/credential-registration/pkg/wire"
	"github.com/celestiaorg/credential-registration/x/registrar/types"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/spf13/cobra"
)

// ConfigLoader resolves the trust configuration on demand.
type ConfigLoader func() (trust.Config, error)

// GetCmd returns the offline registrar subcommands.
func GetCmd(loadConfig ConfigLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Registrar utilities",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdDecodeBody(),
		CmdShouldHandle(loadConfig),
	)

	return cmd
}

type bodyOutput struct {
	Payer      string `json:"payer"`
	Credential string `json:"credential"`
	Owner      string `json:"owner"`
}

// CmdDecodeBody decodes a registration message body and shows the account
// the credential would be bound to.
func CmdDecodeBody() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-body [hex]",
		Short: "Decode a registration message body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
			if err != nil {
				return fmt.Errorf("invalid hex: %w", err)
			}

			body, err := wire.DecodeBody(data)
			if err != nil {
				return err
			}

			owner, err := identity.ToAccAddress(body.Payer)
			if err != nil {
				return err
			}

			bz, err := json.MarshalIndent(bodyOutput{
				Payer:      body.Payer.String(),
				Credential: body.Credential.String(),
				Owner:      owner.String(),
			}, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return err
		},
	}
}

// CmdShouldHandle reports whether a message from the given origin domain and
// sender would be treated as a registration.
func CmdShouldHandle(loadConfig ConfigLoader) *cobra.Command {
	return &cobra.Command{
		Use:     "should-handle [origin-domain] [sender]",
		Short:   "Check whether a message origin is the trusted originator",
		Example: "credregd registrar should-handle 1399811149 4KdqVph6eMnS2omUBLBH2u4G6wwqxG5hzesZpsFcSWod",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			origin, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid origin domain: %w", err)
			}

			sender, err := identity.ParseAddress(args[1])
			if err != nil {
				return fmt.Errorf("invalid sender: %w", err)
			}

			trusted := uint32(origin) == cfg.Registrar.OriginDomain && sender == cfg.Registrar.OriginatorProgramId
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(trusted))
			return err
		},
	}
}
