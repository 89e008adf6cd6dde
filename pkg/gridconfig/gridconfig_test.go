package gridconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosswarped.com/weave/pkg/primitives"
	"crosswarped.com/weave/xw_generator/generator"
)

const fullConfig = `
grid {
  width  = 15
  height = 13
  wrap   = true
}

search {
  trials  = 500
  workers = 8
  seed    = 42
}
`

func TestLoadBytesFullConfig(t *testing.T) {
	s, err := LoadBytes([]byte(fullConfig), "test.hcl")
	require.NoError(t, err)

	assert.Equal(t, primitives.Config{Width: 15, Height: 13, Wrap: true}, s.Grid)
	assert.Equal(t, generator.Params{Trials: 500, Workers: 8, Seed: 42}, s.Search)
}

func TestLoadBytesDefaults(t *testing.T) {
	s, err := LoadBytes([]byte("grid {\n  width = 9\n  height = 9\n}\n"), "test.hcl")
	require.NoError(t, err)

	assert.False(t, s.Grid.Wrap)
	assert.Equal(t, generator.DefaultParams(), s.Search)
}

func TestLoadBytesMissingGridBlock(t *testing.T) {
	_, err := LoadBytes([]byte("search {\n  trials = 10\n}\n"), "test.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grid block")
}

func TestLoadBytesRejectsBadDimensions(t *testing.T) {
	_, err := LoadBytes([]byte("grid {\n  width = 0\n  height = 9\n}\n"), "test.hcl")
	require.ErrorIs(t, err, primitives.ErrBadDimensions)
}

func TestLoadBytesRejectsBadBudget(t *testing.T) {
	src := "grid {\n  width = 9\n  height = 9\n}\nsearch {\n  workers = 0\n}\n"
	_, err := LoadBytes([]byte(src), "test.hcl")
	require.ErrorIs(t, err, generator.ErrNoWorkers)
}

func TestLoadBytesRejectsNonNumericSeed(t *testing.T) {
	src := "grid {\n  width = 9\n  height = 9\n}\nsearch {\n  seed = \"abc\"\n}\n"
	_, err := LoadBytes([]byte(src), "test.hcl")
	require.Error(t, err)
}

func TestLoadBytesSyntaxError(t *testing.T) {
	_, err := LoadBytes([]byte("grid {"), "broken.hcl")
	require.Error(t, err)
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.hcl")
	require.NoError(t, os.WriteFile(path, []byte(fullConfig), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 15, s.Grid.Width)

	_, err = Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
}
