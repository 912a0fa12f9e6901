package codegen_test

import (
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"kerneljit/codegen"
	"kerneljit/toolchain"
)

// requirePipelineHost skips tests that run the real compile and load
// pipeline when the host cannot carry them out.
func requirePipelineHost(t *testing.T, profile toolchain.Profile) {
	t.Helper()

	switch runtime.GOOS {
	case "linux", "darwin", "freebsd":
	default:
		t.Skipf("kernel loading is unsupported on %s", runtime.GOOS)
	}

	if _, err := exec.LookPath(profile.Compiler); err != nil {
		t.Skipf("compiler %q not on PATH: %v", profile.Compiler, err)
	}
}

// testProfile returns the host toolchain with the optional tools
// disabled so pipeline tests do not depend on their availability.
func testProfile() toolchain.Profile {
	profile := toolchain.Default()
	profile.Formatter = ""
	profile.Disassembler = ""

	return profile
}

func newPipelineUnit(t *testing.T, cfg codegen.Config) *codegen.Unit {
	t.Helper()

	if cfg.CacheDir == "" {
		cfg.CacheDir = t.TempDir()
	}

	if cfg.Sequence == nil {
		cfg.Sequence = codegen.NewSequence(codegen.DefaultIDLimit)
	}

	if cfg.Toolchain.Compiler == "" {
		cfg.Toolchain = testProfile()
	}

	unit, err := codegen.NewUnit(cfg)
	require.NoError(t, err)

	unit.WithLogger(zaptest.NewLogger(t))

	return unit
}

// emitConstantKernel fills the unit with a kernel whose entry point
// takes no arguments and returns value.
func emitConstantKernel(unit *codegen.Unit, value int32) {
	unit.EmitTo(codegen.RegionHeader, "#include <stdint.h>")

	defer unit.EnterRegion(codegen.RegionBody)()
	unit.Emit("int32_t %s(void) {", unit.FuncName())
	unit.Emit("  return %d;", value)
	unit.Emit("}")
}

// buildConstantKernel emits, materializes and compiles a constant
// kernel, failing the test on any pipeline error.
func buildConstantKernel(t *testing.T, unit *codegen.Unit, value int32) {
	t.Helper()

	emitConstantKernel(unit, value)
	require.NoError(t, unit.WriteSource())
	require.NoError(t, unit.Build())
}
