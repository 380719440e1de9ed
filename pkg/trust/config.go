// Package trust holds the statically trusted identities of the registration
// protocol. Values are resolved once at startup into an explicit Config and
// handed to the originator and registrar keepers; nothing reads them from
// package globals afterwards.
package trust

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"cosmossdk.io/log"
	"github.com/bcp-innovations/hyperlane-cosmos/util"
	"github.com/celestiaorg/credential-registration/pkg/identity"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "CREDREG"

// Network names a source network with a known set of trusted identities.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"

	DefaultNetwork = Mainnet
)

var ErrInvalidConfig = errors.New("invalid trust configuration")

//go:embed networks.toml
var networksTOML []byte

// OriginatorConfig is the trust configuration of the source side.
type OriginatorConfig struct {
	// Domain is the Hyperlane domain of the source network.
	Domain uint32
	// ProgramId is the identity of the originator itself. It is the sender of
	// every dispatched envelope and owns the dispatch authority.
	ProgramId util.HexAddress
	// MailboxId is the only messaging program the originator dispatches through.
	MailboxId       util.HexAddress
	SystemProgramId util.HexAddress
	NoopProgramId   util.HexAddress
	// GasLimit is forwarded to the mailbox post-dispatch hooks.
	GasLimit uint64
}

// RegistrarConfig is the trust configuration of the destination side: the
// single (origin domain, sender) pair whose envelopes are treated as
// registrations.
type RegistrarConfig struct {
	OriginDomain        uint32
	OriginatorProgramId util.HexAddress
}

// Config is the resolved configuration for one network.
type Config struct {
	Network    Network
	Originator OriginatorConfig
	Registrar  RegistrarConfig
}

// Validate checks that every trusted identity required by the originator is set.
func (c OriginatorConfig) Validate() error {
	if c.Domain == 0 {
		return fmt.Errorf("%w: originator domain is zero", ErrInvalidConfig)
	}
	if c.ProgramId.IsZeroAddress() {
		return fmt.Errorf("%w: originator program id is zero", ErrInvalidConfig)
	}
	if c.MailboxId.IsZeroAddress() {
		return fmt.Errorf("%w: mailbox id is zero", ErrInvalidConfig)
	}
	if c.NoopProgramId.IsZeroAddress() {
		return fmt.Errorf("%w: noop program id is zero", ErrInvalidConfig)
	}
	if c.MailboxId == c.ProgramId {
		return fmt.Errorf("%w: mailbox id equals originator program id", ErrInvalidConfig)
	}
	return nil
}

// Validate rejects an unset trusted origin.
func (c RegistrarConfig) Validate() error {
	if c.OriginDomain == 0 {
		return fmt.Errorf("%w: trusted origin domain is zero", ErrInvalidConfig)
	}
	if c.OriginatorProgramId.IsZeroAddress() {
		return fmt.Errorf("%w: trusted originator program id is zero", ErrInvalidConfig)
	}
	return nil
}

func (c Config) Validate() error {
	if err := c.Originator.Validate(); err != nil {
		return err
	}
	return c.Registrar.Validate()
}

// networkEntry is the on-disk form of a single network table.
type networkEntry struct {
	Domain          uint32 `toml:"domain"`
	ProgramId       string `toml:"program_id"`
	MailboxId       string `toml:"mailbox_id"`
	SystemProgramId string `toml:"system_program_id"`
	NoopProgramId   string `toml:"noop_program_id"`
	GasLimit        uint64 `toml:"gas_limit"`
}

func (e networkEntry) resolve(network Network) (Config, error) {
	var (
		cfg = Config{Network: network}
		err error
	)

	cfg.Originator.Domain = e.Domain
	cfg.Originator.GasLimit = e.GasLimit

	fields := []struct {
		name  string
		value string
		dst   *util.HexAddress
	}{
		{"program_id", e.ProgramId, &cfg.Originator.ProgramId},
		{"mailbox_id", e.MailboxId, &cfg.Originator.MailboxId},
		{"system_program_id", e.SystemProgramId, &cfg.Originator.SystemProgramId},
		{"noop_program_id", e.NoopProgramId, &cfg.Originator.NoopProgramId},
	}
	for _, f := range fields {
		*f.dst, err = identity.ParseAddress(f.value)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s.%s: %v", ErrInvalidConfig, network, f.name, err)
		}
	}

	cfg.Registrar = RegistrarConfig{
		OriginDomain:        cfg.Originator.Domain,
		OriginatorProgramId: cfg.Originator.ProgramId,
	}

	return cfg, cfg.Validate()
}

func loadNetworks() (map[Network]networkEntry, error) {
	var raw map[string]networkEntry
	if err := toml.Unmarshal(networksTOML, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode embedded networks: %w", err)
	}

	networks := make(map[Network]networkEntry, len(raw))
	for name, entry := range raw {
		networks[Network(name)] = entry
	}
	return networks, nil
}

// Networks lists the networks that have an embedded configuration.
func Networks() []Network {
	networks, err := loadNetworks()
	if err != nil {
		return nil
	}

	names := make([]Network, 0, len(networks))
	for name := range networks {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// ForNetwork returns the embedded configuration of a network without
// consulting the environment.
func ForNetwork(network Network) (Config, error) {
	networks, err := loadNetworks()
	if err != nil {
		return Config{}, err
	}

	entry, ok := networks[network]
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown network %q", ErrInvalidConfig, network)
	}
	return entry.resolve(network)
}

// LoadEnvFiles loads .env style files into the process environment. Missing
// files are skipped and variables that are already set are not overwritten.
func LoadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}
	return nil
}

// Load resolves the configuration from the environment. CREDREG_NETWORK
// selects the embedded network table, defaulting to mainnet when unset; an
// unknown value is an ErrInvalidConfig. Single
// fields can then be overridden with CREDREG_<FIELD>, e.g. CREDREG_MAILBOX_ID.
func Load(logger log.Logger) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	networks, err := loadNetworks()
	if err != nil {
		return Config{}, err
	}

	network := DefaultNetwork
	if requested := strings.ToLower(strings.TrimSpace(v.GetString("network"))); requested != "" {
		if _, ok := networks[Network(requested)]; !ok {
			logger.Error("unknown network requested", "requested", requested)
			return Config{}, fmt.Errorf("%w: unknown network %q in %s_NETWORK", ErrInvalidConfig, requested, EnvPrefix)
		}
		network = Network(requested)
	}

	entry := networks[network]
	if err := applyOverrides(v, &entry); err != nil {
		return Config{}, err
	}

	cfg, err := entry.resolve(network)
	if err != nil {
		return Config{}, err
	}

	logger.Debug("resolved trust configuration", "network", cfg.Network, "mailbox", cfg.Originator.MailboxId.String())
	return cfg, nil
}

func applyOverrides(v *viper.Viper, entry *networkEntry) error {
	strs := map[string]*string{
		"program_id":        &entry.ProgramId,
		"mailbox_id":        &entry.MailboxId,
		"system_program_id": &entry.SystemProgramId,
		"noop_program_id":   &entry.NoopProgramId,
	}
	for key, dst := range strs {
		if s := v.GetString(key); s != "" {
			*dst = s
		}
	}

	if raw := v.Get("domain"); raw != nil && cast.ToString(raw) != "" {
		domain, err := cast.ToUint32E(raw)
		if err != nil {
			return fmt.Errorf("%w: %s_DOMAIN: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		entry.Domain = domain
	}

	if raw := v.Get("gas_limit"); raw != nil && cast.ToString(raw) != "" {
		gasLimit, err := cast.ToUint64E(raw)
		if err != nil {
			return fmt.Errorf("%w: %s_GAS_LIMIT: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		entry.GasLimit = gasLimit
	}

	return nil
}

// EncodeTOML renders the configuration in the same layout as the embedded
// network table, with identities in hex.
func (c Config) EncodeTOML() ([]byte, error) {
	doc := map[string]networkEntry{
		string(c.Network): {
			Domain:          c.Originator.Domain,
			ProgramId:       c.Originator.ProgramId.String(),
			MailboxId:       c.Originator.MailboxId.String(),
			SystemProgramId: c.Originator.SystemProgramId.String(),
			NoopProgramId:   c.Originator.NoopProgramId.String(),
			GasLimit:        c.Originator.GasLimit,
		},
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
