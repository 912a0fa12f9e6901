package codegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestUnit builds a unit against a per-test cache directory and a
// private identifier sequence so tests never share global state.
func newTestUnit(t *testing.T) *Unit {
	t.Helper()

	return newTestUnitConfig(t, Config{})
}

func newTestUnitConfig(t *testing.T, cfg Config) *Unit {
	t.Helper()

	if cfg.CacheDir == "" {
		cfg.CacheDir = t.TempDir()
	}

	if cfg.Sequence == nil {
		cfg.Sequence = NewSequence(DefaultIDLimit)
	}

	unit, err := NewUnit(cfg)
	require.NoError(t, err)

	return unit
}

func TestNewUnitDerivedNames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	unit, err := NewUnit(Config{
		CacheDir: dir,
		Suffix:   "c",
		Sequence: NewSequence(DefaultIDLimit),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, unit.ID())
	assert.Equal(t, "func000000", unit.FuncName())
	assert.Equal(t, "tmp0000.c", unit.SourceName())
	assert.Equal(t, filepath.Join(dir, "tmp0000.c"), unit.SourcePath())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "cache directory must exist after construction")
}

func TestNewUnitsAllocateIncreasingIDs(t *testing.T) {
	t.Parallel()

	cfg := Config{
		CacheDir: t.TempDir(),
		Sequence: NewSequence(DefaultIDLimit),
	}

	a, err := NewUnit(cfg)
	require.NoError(t, err)

	b, err := NewUnit(cfg)
	require.NoError(t, err)

	assert.Greater(t, b.ID(), a.ID())
	assert.NotEqual(t, a.FuncName(), b.FuncName())
	assert.NotEqual(t, a.SourcePath(), b.SourcePath())
	assert.NotEqual(t, a.ArtifactPath(), b.ArtifactPath())
}

func TestNewUnitFailsWhenSequenceExhausted(t *testing.T) {
	t.Parallel()

	cfg := Config{
		CacheDir: t.TempDir(),
		Sequence: NewSequence(1),
	}

	_, err := NewUnit(cfg)
	require.NoError(t, err)

	_, err = NewUnit(cfg)
	require.ErrorIs(t, err, ErrSequenceExhausted)
}

func TestEnterRegionRestoresCursor(t *testing.T) {
	t.Parallel()

	unit := newTestUnit(t)
	require.Equal(t, RegionHeader, unit.CurrentRegion())

	outer := unit.EnterRegion(RegionExteriorLoopBegin)
	assert.Equal(t, RegionExteriorLoopBegin, unit.CurrentRegion())

	inner := unit.EnterRegion(RegionInteriorLoopBegin)
	assert.Equal(t, RegionInteriorLoopBegin, unit.CurrentRegion())

	body := unit.EnterRegion(RegionBody)
	assert.Equal(t, RegionBody, unit.CurrentRegion())

	body()
	assert.Equal(t, RegionInteriorLoopBegin, unit.CurrentRegion())

	inner()
	assert.Equal(t, RegionExteriorLoopBegin, unit.CurrentRegion())

	outer()
	assert.Equal(t, RegionHeader, unit.CurrentRegion())
}

func TestEnterRegionRestoresOnPanic(t *testing.T) {
	t.Parallel()

	unit := newTestUnit(t)

	emit := func() {
		defer unit.EnterRegion(RegionResidualBody)()

		unit.Emit("// residual element handling")
		panic("generation blew up")
	}

	assert.Panics(t, emit)
	assert.Equal(t, RegionHeader, unit.CurrentRegion())
	assert.Contains(t, unit.Source(), "// region residual_body")
}

func TestEmitFollowsCursor(t *testing.T) {
	t.Parallel()

	unit := newTestUnit(t)

	unit.Emit("#include <math.h>")

	done := unit.EnterRegion(RegionBody)
	unit.Emit("double y = 0.0;")
	done()

	unit.Emit("// back in the header")

	want := "// region header\n" +
		"#include <math.h>\n" +
		"// back in the header\n" +
		"// region body\n" +
		"double y = 0.0;\n"

	assert.Equal(t, want, unit.Source())
}

func TestEmitHonorsLineSuffix(t *testing.T) {
	t.Parallel()

	unit := newTestUnitConfig(t, Config{LineSuffix: "\r\n"})

	unit.EmitTo(RegionBody, "int z;")

	assert.Equal(t, "// region body\nint z;\r\n", unit.Source())
}
