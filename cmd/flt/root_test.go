package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/flt"
)

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	assert.NoError(t, cmd.Execute())
	assert.Equal(t, "flt version "+flt.Version+"\n", out.String())
}

func TestVersionRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"version", "1 + 2"})
	assert.Error(t, cmd.Execute())
}

func loadFlags(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	// Keep the user's own config file out of the way.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var f rootFlags
	cmd := &cobra.Command{}
	f.addFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatal(err)
	}
	return f.load(cmd)
}

func TestFlagsDefault(t *testing.T) {
	cfg, err := loadFlags(t)
	assert.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestFlagsOverride(t *testing.T) {
	cfg, err := loadFlags(t, "--format", "infix", "--max-depth", "3", "--no-history", "--no-color")
	assert.NoError(t, err)
	assert.Equal(t, formatInfix, cfg.Format)
	assert.Equal(t, 3, cfg.MaxDepth)
	assert.Equal(t, "", cfg.HistoryFile)
	assert.False(t, cfg.Color)
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "format = \"infix\"\nmax_depth = 7\n")
	cfg, err := loadFlags(t, "--config", path, "--format", "debug")
	assert.NoError(t, err)
	assert.Equal(t, formatDebug, cfg.Format)
	assert.Equal(t, 7, cfg.MaxDepth)
}

func TestFlagsBadFormat(t *testing.T) {
	_, err := loadFlags(t, "--format", "tree")
	assert.Error(t, err)
}

func TestFlagsMissingConfig(t *testing.T) {
	_, err := loadFlags(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
