package scenario_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/recourse-go/recourse/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const popUpShopYAML = `
scenarios:
  - id: high
    probability: 0.10
    params:
      demand: 650
  - id: base
    probability: 0.60
    params:
      demand: 400
  - id: low
    probability: 0.30
    params:
      demand: 200
`

// TestLoad_PopUpShop parses the canonical three-scenario demand table.
func TestLoad_PopUpShop(t *testing.T) {
	set, err := scenario.Load(strings.NewReader(popUpShopYAML))
	require.NoError(t, err)

	require.Equal(t, 3, set.Len())
	assert.Equal(t, []string{"high", "base", "low"}, set.IDs())

	base, err := set.ByID("base")
	require.NoError(t, err)
	d, ok := base.Param("demand")
	require.True(t, ok)
	assert.Equal(t, 400.0, d)
}

// TestLoad_BadWeights applies NewSet validation to file input.
func TestLoad_BadWeights(t *testing.T) {
	const badYAML = `
scenarios:
  - id: a
    probability: 0.5
    params: {demand: 1}
  - id: b
    probability: 0.4
    params: {demand: 2}
`
	_, err := scenario.Load(strings.NewReader(badYAML))
	assert.ErrorIs(t, err, scenario.ErrBadWeights)
}

// TestLoad_Malformed surfaces YAML syntax errors.
func TestLoad_Malformed(t *testing.T) {
	_, err := scenario.Load(strings.NewReader("scenarios: ["))
	assert.Error(t, err)
}

// TestLoadFile round-trips through a temp file and covers the missing-file
// path.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(popUpShopYAML), 0o600))

	set, err := scenario.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())

	_, err = scenario.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
