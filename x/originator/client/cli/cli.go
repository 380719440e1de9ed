package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/bcp-innovations/hyperlane-cosmos/util"
	"github.com/celestiaorg/credential-registration/pkg/identity"
	"github.com/celestiaorg/credential-registration/pkg/trust"
	"github.com/celestiaorg/credential-registration/pkg/wire"
	"github.com/celestiaorg/credential-registration/x/originator/keeper"
	"github.com/celestiaorg/credential-registration/x/originator/types"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/spf13/cobra"
)

const (
	FlagProgramId = "program-id"
	FlagMailbox   = "mailbox"
	FlagUnique    = "unique"
)

// ConfigLoader resolves the trust configuration lazily, so commands that do
// not need it never touch the environment.
type ConfigLoader func() (trust.Config, error)

// GetCmd returns the offline originator subcommands.
func GetCmd(loadConfig ConfigLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Originator utilities",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdDeriveAuthority(loadConfig),
		CmdEncodeInstruction(),
		CmdDecodeInstruction(),
	)

	return cmd
}

// accountsOutput lists the derived accounts for a register call.
type accountsOutput struct {
	ProgramId         string `json:"program_id"`
	DispatchAuthority string `json:"dispatch_authority"`
	Bump              uint8  `json:"bump"`
	Mailbox           string `json:"mailbox"`
	Outbox            string `json:"outbox"`
	UniqueMessage     string `json:"unique_message,omitempty"`
	DispatchedMessage string `json:"dispatched_message,omitempty"`
}

// CmdDeriveAuthority prints the keyless identities a register call must pass.
func CmdDeriveAuthority(loadConfig ConfigLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive-authority",
		Short: "Derive the dispatch authority and mailbox accounts of the originator",
		Long: `Derive the dispatch authority of the originator program together with the
outbox of the trusted mailbox. With --unique, the dispatched message account
for that unique message account is derived as well.

Example:
  credregd originator derive-authority --unique 0x54b0b39fd02198dfaf116360668610d2a6c28833ed646a589cc54435c80f648d`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			programId, err := addressFlag(cmd, FlagProgramId, cfg.Originator.ProgramId)
			if err != nil {
				return err
			}
			mailboxId, err := addressFlag(cmd, FlagMailbox, cfg.Originator.MailboxId)
			if err != nil {
				return err
			}

			authority, bump, err := identity.FindProgramAddress(types.DispatchAuthoritySeeds(), programId)
			if err != nil {
				return err
			}
			outbox, err := keeper.OutboxAddress(mailboxId)
			if err != nil {
				return err
			}

			out := accountsOutput{
				ProgramId:         identity.Base58(programId),
				DispatchAuthority: identity.Base58(authority),
				Bump:              bump,
				Mailbox:           identity.Base58(mailboxId),
				Outbox:            identity.Base58(outbox),
			}

			if s, _ := cmd.Flags().GetString(FlagUnique); s != "" {
				unique, err := identity.ParseAddress(s)
				if err != nil {
					return fmt.Errorf("invalid --%s: %w", FlagUnique, err)
				}
				dispatched, err := keeper.DispatchedMessageAddress(mailboxId, unique)
				if err != nil {
					return err
				}
				out.UniqueMessage = identity.Base58(unique)
				out.DispatchedMessage = identity.Base58(dispatched)
			}

			return printJSON(cmd, out)
		},
	}

	cmd.Flags().String(FlagProgramId, "", "originator program id (defaults to the configured one)")
	cmd.Flags().String(FlagMailbox, "", "mailbox id (defaults to the configured one)")
	cmd.Flags().String(FlagUnique, "", "unique message account to derive the dispatched message account for")

	return cmd
}

// CmdEncodeInstruction encodes a register instruction as hex.
func CmdEncodeInstruction() *cobra.Command {
	return &cobra.Command{
		Use:   "encode-instruction [destination-domain] [embedded-credential] [recipient]",
		Short: "Encode a register instruction",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			destination, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid destination domain: %w", err)
			}

			credential, err := wire.ParseCredential(args[1])
			if err != nil {
				return fmt.Errorf("invalid embedded credential: %w", err)
			}

			if _, err := identity.ParseAddress(args[2]); err != nil {
				return fmt.Errorf("invalid recipient: %w", err)
			}

			data, err := wire.MarshalInstruction(wire.RegisterMessage{
				Destination:        uint32(destination),
				EmbeddedCredential: credential,
				Recipient:          args[2],
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
			return err
		},
	}
}

type instructionOutput struct {
	Destination        uint32 `json:"destination"`
	EmbeddedCredential string `json:"embedded_credential"`
	Recipient          string `json:"recipient"`
}

// CmdDecodeInstruction decodes a hex encoded register instruction.
func CmdDecodeInstruction() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-instruction [hex]",
		Short: "Decode a register instruction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
			if err != nil {
				return fmt.Errorf("invalid hex: %w", err)
			}

			msg, err := wire.UnmarshalInstruction(data)
			if err != nil {
				return err
			}

			return printJSON(cmd, instructionOutput{
				Destination:        msg.Destination,
				EmbeddedCredential: msg.EmbeddedCredential.String(),
				Recipient:          msg.Recipient,
			})
		},
	}
}

func addressFlag(cmd *cobra.Command, name string, fallback util.HexAddress) (util.HexAddress, error) {
	s, err := cmd.Flags().GetString(name)
	if err != nil {
		return util.HexAddress{}, err
	}
	if s == "" {
		return fallback, nil
	}
	addr, err := identity.ParseAddress(s)
	if err != nil {
		return util.HexAddress{}, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return addr, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
