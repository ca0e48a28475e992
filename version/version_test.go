package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	oldVersion, oldHash := Version, GitHash
	defer func() { Version, GitHash = oldVersion, oldHash }()

	Version = "v1.0.0"
	GitHash = "0123456789abcdef"
	assert.Equal(t, "v1.0.0-0123456", GetVersion())

	GitHash = "abc"
	assert.Equal(t, "v1.0.0-abc", GetVersion())

	GitHash = ""
	assert.Equal(t, "v1.0.0", GetVersion())
}

func TestPrinter(t *testing.T) {
	oldBranch := GitBranch
	defer func() { GitBranch = oldBranch }()
	GitBranch = "main"

	var buf bytes.Buffer
	Printer(&buf)

	out := buf.String()
	assert.Contains(t, out, "Version:")
	assert.Regexp(t, `Git Branch: +main\n`, out)
	assert.Contains(t, out, "Build Time (UTC): ")
}
