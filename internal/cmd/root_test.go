package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "skelgen", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "gen")
	assert.Contains(t, names, "tree")
	assert.Contains(t, names, "layouts")
	assert.Contains(t, names, "config")
	assert.Contains(t, names, "version")

	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("timestamps"))
}

func TestRoot_GenThroughRoot(t *testing.T) {
	tmpDir := t.TempDir()

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"gen", "admin-panel", "--dir", tmpDir})
	outBuf, errBuf := silence(t)
	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)

	require.NoError(t, cmd.Execute())

	assert.FileExists(t, tmpDir+"/admin-panel/app/layout.tsx")
}

func TestGetConfig_DefaultsWhenUnloaded(t *testing.T) {
	prev := skelConfig
	skelConfig = nil
	t.Cleanup(func() { skelConfig = prev })

	cfg := GetConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "flutter-app", cfg.Layout)
}
