package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/evcharge/config"
	"github.com/katalvlaran/evcharge/core"
	"github.com/stretchr/testify/require"
)

// The tests below use t.Setenv and therefore do not run in parallel.

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"EVCHARGE_ADDR", "EVCHARGE_LOCATIONS", "EVCHARGE_WEIGHTS",
		"EVCHARGE_COST_PER_KM", "EVCHARGE_FREE_LIMIT", "EVCHARGE_SEED", "EVCHARGE_LOG_FORMAT",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := config.Load(filepath.Join(t.TempDir(), "absent.env"), nil)
	require.NoError(t, err)
	want := config.Default()
	require.Equal(t, want, c)
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	env := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(env, []byte("EVCHARGE_ADDR=:9000\nEVCHARGE_FREE_LIMIT=30\nEVCHARGE_SEED=5\n"), 0o600))
	t.Setenv("EVCHARGE_FREE_LIMIT", "20") // environment beats the file

	c, err := config.Load(env, []string{"-seed", "9", "query", "nearest", "Home"})
	require.NoError(t, err)
	require.Equal(t, ":9000", c.Addr)
	require.Equal(t, 20, c.FreeChargeLimit)
	require.Equal(t, uint64(9), c.Seed)
	require.Equal(t, []string{"query", "nearest", "Home"}, c.Args)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	absent := filepath.Join(t.TempDir(), "absent.env")

	t.Setenv("EVCHARGE_COST_PER_KM", "cheap")
	_, err := config.Load(absent, nil)
	require.ErrorIs(t, err, config.ErrBadValue)

	clearEnv(t)
	_, err = config.Load(absent, []string{"-log-format", "xml"})
	require.ErrorIs(t, err, core.ErrInvalid)

	_, err = config.Load(absent, []string{"-free-limit", "-3"})
	require.ErrorIs(t, err, core.ErrInvalid)

	_, err = config.Load(absent, []string{"-no-such-flag"})
	require.Error(t, err)
}
