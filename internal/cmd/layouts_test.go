package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayoutsCmd(t *testing.T) {
	cmd := NewLayoutsCmd()

	assert.Equal(t, "layouts", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
}

func TestLayouts_Runs(t *testing.T) {
	cmd := NewLayoutsCmd()
	cmd.SetArgs([]string{})
	outBuf, errBuf := silence(t)
	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)

	require.NoError(t, cmd.Execute())
}

func TestLayouts_RejectsArgs(t *testing.T) {
	cmd := NewLayoutsCmd()
	cmd.SetArgs([]string{"extra"})
	outBuf, errBuf := silence(t)
	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)

	assert.Error(t, cmd.Execute())
}
