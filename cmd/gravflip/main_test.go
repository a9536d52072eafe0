package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCommandPrintsDefaults(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "--defaults"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "spawn_interval_ms: 600")
	assert.Contains(t, out.String(), "motion: frame")
}

func TestPortOf(t *testing.T) {
	assert.Equal(t, "23234", portOf(":23234"))
	assert.Equal(t, "2222", portOf("localhost:2222"))
	assert.Equal(t, "weird", portOf("weird"))
}

func TestSeedZeroIsAllowed(t *testing.T) {
	t.Cleanup(func() { flagSeed = 0 })
	cmd := &cobra.Command{}
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "")

	first := seed(cmd)
	assert.NotZero(t, first, "unset flag falls back to the clock")

	require.NoError(t, cmd.Flags().Set("seed", "0"))
	assert.Equal(t, int64(0), seed(cmd))

	require.NoError(t, cmd.Flags().Set("seed", "42"))
	assert.Equal(t, int64(42), seed(cmd))
}

func TestServeFlagDefaults(t *testing.T) {
	flag := serveCmd.Flags().Lookup("ssh")
	require.NotNil(t, flag)
	assert.Equal(t, ":23234", flag.DefValue)

	flag = serveCmd.Flags().Lookup("idle-timeout")
	require.NotNil(t, flag)
	assert.Equal(t, "30m0s", flag.DefValue)
}
