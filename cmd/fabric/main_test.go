package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/esimov/fabric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEigen(t *testing.T) {
	e, err := parseEigen("2, 5, 3")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, e.E1, 1e-12)
	assert.InDelta(t, 0.3, e.E2, 1e-12)
	assert.InDelta(t, 0.2, e.E3, 1e-12)

	_, err = parseEigen("0.5,0.5")
	assert.Error(t, err)
	_, err = parseEigen("0.5,x,0.1")
	assert.Error(t, err)
}

func TestLoadProcessor(t *testing.T) {
	p, err := loadProcessor("")
	require.NoError(t, err)
	assert.Equal(t, fabric.DefaultProcessor(), p)

	path := filepath.Join(t.TempDir(), "plot.toml")
	config := `
size = 400
grid = 60
tolerance = 0.01
mode = "expected-intensity"
colormap = "gray"
labels = false

[expected]
e1 = 0.5
e2 = 0.3
e3 = 0.2
`
	require.NoError(t, os.WriteFile(path, []byte(config), 0o644))

	p, err = loadProcessor(path)
	require.NoError(t, err)
	assert.Equal(t, 400, p.Size)
	assert.Equal(t, 60, p.GridSize)
	assert.Equal(t, 0.01, p.Tolerance)
	assert.Equal(t, fabric.ExpectedIntensity, p.Mode)
	assert.Equal(t, "gray", p.Colormap)
	assert.False(t, p.Labels)
	assert.InDelta(t, 0.5, p.Expected.E1, 1e-12)
	assert.InDelta(t, 0.3, p.Expected.E2, 1e-12)
	assert.InDelta(t, 0.2, p.Expected.E3, 1e-12)
	// untouched keys keep their defaults
	assert.Equal(t, 8, p.Levels)

	// the protolith is normalized like the -expected flag
	require.NoError(t, os.WriteFile(path, []byte("[expected]\ne1 = 2.0\ne2 = 5.0\ne3 = 3.0\n"), 0o644))
	p, err = loadProcessor(path)
	require.NoError(t, err)
	want, err := parseEigen("2,5,3")
	require.NoError(t, err)
	assert.Equal(t, want, p.Expected)
	assert.InDelta(t, 0.5, p.Expected.E1, 1e-12)

	require.NoError(t, os.WriteFile(path, []byte(`mode = "girdle"`), 0o644))
	_, err = loadProcessor(path)
	assert.Error(t, err)

	_, err = loadProcessor(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestApplyFlags(t *testing.T) {
	require.NoError(t, flag.Set("n", "33"))
	require.NoError(t, flag.Set("mode", "intensity"))
	require.NoError(t, flag.Set("expected", "0.6,0.3,0.1"))
	require.NoError(t, flag.Set("nolabels", "true"))

	p := fabric.DefaultProcessor()
	require.NoError(t, applyFlags(p))
	assert.Equal(t, 33, p.GridSize)
	assert.Equal(t, fabric.Intensity, p.Mode)
	assert.InDelta(t, 0.6, p.Expected.E1, 1e-12)
	assert.False(t, p.Labels)
	// flags left alone do not override
	assert.Equal(t, 800, p.Size)

	require.NoError(t, flag.Set("mode", "bogus"))
	assert.ErrorIs(t, applyFlags(fabric.DefaultProcessor()), fabric.ErrInvalidMode)
}
