package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaults(t *testing.T) {
	cfg, err := Build("", nil)
	require.NoError(t, err)

	assert.Equal(t, "conciliacao_saida.xlsx", cfg.Saida)
	assert.False(t, cfg.Verbose)
}

func TestBuildFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("saida: custom.xlsx\nverbose: true\n"), 0o644))

	cfg, err := Build(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "custom.xlsx", cfg.Saida)
	assert.True(t, cfg.Verbose)
}

func TestBuildMissingExplicitFile(t *testing.T) {
	_, err := Build(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}

func TestBuildEnvOverride(t *testing.T) {
	t.Setenv("CONCILIA_SAIDA", "from-env.xlsx")

	cfg, err := Build("", nil)
	require.NoError(t, err)
	assert.Equal(t, "from-env.xlsx", cfg.Saida)
}

func TestBuildFlagOverride(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("saida", "", "")
	require.NoError(t, flags.Set("saida", "from-flag.xlsx"))

	cfg, err := Build("", flags)
	require.NoError(t, err)
	assert.Equal(t, "from-flag.xlsx", cfg.Saida)
}
