package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Version:")
}

func TestRootCmdRejectsArgs(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"unexpected"})

	assert.Error(t, root.Execute())
}

func TestRootCmdFlags(t *testing.T) {
	root := NewRootCmd()
	for _, name := range []string{"config", "base-url", "output", "workers", "log-level"} {
		assert.NotNil(t, root.Flags().Lookup(name), name)
	}
}
