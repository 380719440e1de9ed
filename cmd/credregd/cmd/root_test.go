package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/celestiaorg/credential-registration/cmd/credregd/cmd"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShow(t *testing.T) {
	t.Setenv("CREDREG_NETWORK", "testnet")

	output, err := executeCmd(cmd.NewRootCmd(), "config", "show", "--env-file", "")
	require.NoError(t, err)
	assert.Contains(t, output, "[testnet]")
	assert.Contains(t, output, "domain = 1399811150")
}

func TestConfigShowRejectsUnknownNetwork(t *testing.T) {
	t.Setenv("CREDREG_NETWORK", "devnet")

	output, err := executeCmd(cmd.NewRootCmd(), "config", "show", "--env-file", "")
	assert.ErrorContains(t, err, `unknown network "devnet"`)
	assert.NotContains(t, output, "[mainnet]")
}

func TestConfigShowLoadsEnvFile(t *testing.T) {
	if _, ok := os.LookupEnv("CREDREG_GAS_LIMIT"); ok {
		t.Skip("CREDREG_GAS_LIMIT already set")
	}
	t.Cleanup(func() { os.Unsetenv("CREDREG_GAS_LIMIT") })

	path := filepath.Join(t.TempDir(), "credreg.env")
	require.NoError(t, os.WriteFile(path, []byte("CREDREG_GAS_LIMIT=123456\n"), 0o600))

	output, err := executeCmd(cmd.NewRootCmd(), "config", "show", "--env-file", path)
	require.NoError(t, err)
	assert.Contains(t, output, "gas_limit = 123456")
}

func TestConfigNetworks(t *testing.T) {
	output, err := executeCmd(cmd.NewRootCmd(), "config", "networks")
	require.NoError(t, err)
	assert.Equal(t, []string{"mainnet", "testnet"}, strings.Fields(output))
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := executeCmd(cmd.NewRootCmd(), "config", "networks", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid --log-level")
}

func TestModuleCommandsAreMounted(t *testing.T) {
	credential := "0x" + strings.Repeat("02", 32)

	output, err := executeCmd(cmd.NewRootCmd(), "originator", "encode-instruction", "69420", credential, credential)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(output), "002c0f0100"))

	output, err = executeCmd(cmd.NewRootCmd(), "registrar", "should-handle", "--env-file", "", "1", credential)
	require.NoError(t, err)
	assert.Equal(t, "false", strings.TrimSpace(output))
}

func executeCmd(cmd *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
