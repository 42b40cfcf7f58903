package tools_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/effective-security/gentools/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := tools.LoadConfig("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Tools)

	_, err = tools.LoadConfig("testdata/missing.yaml")
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "tools.yaml")
	err = os.WriteFile(file, []byte(`
tools:
  - name: echo
    disabled: true
  - name: add
    description: Sums two operands.
`), 0644)
	require.NoError(t, err)

	cfg, err = tools.LoadConfig(file)
	require.NoError(t, err)
	require.Len(t, cfg.Tools, 2)
	assert.True(t, cfg.Tools[0].Disabled)
	assert.Equal(t, "Sums two operands.", cfg.Tools[1].Description)
}

func TestConfigBuild(t *testing.T) {
	cfg := &tools.Config{
		Tools: []*tools.ToolConfig{
			{Name: "echo", Disabled: true},
			{Name: "add", Description: "Sums two operands."},
		},
	}

	r := cfg.Build(
		newAddTool(t),
		newEchoTool(t, "echo", "Echoes the input."),
		newEchoTool(t, "upper", "Uppercases the input."),
	)

	// disabled tools are dropped
	assert.Equal(t, []string{"add", "upper"}, r.Names())

	add, err := r.Lookup("add")
	require.NoError(t, err)
	assert.Equal(t, "Sums two operands.", add.Description())

	// tools absent from the config pass through unchanged
	upper, err := r.Lookup("upper")
	require.NoError(t, err)
	assert.Equal(t, "Uppercases the input.", upper.Description())
}

func TestConfigPopulate(t *testing.T) {
	cfg := new(tools.Config)
	r := tools.NewRegistry()
	cfg.Populate(r, newAddTool(t))
	assert.Equal(t, 1, r.Len())
}
