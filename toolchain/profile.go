// Package toolchain describes the external tools the kernel pipeline
// drives: the native compiler producing shared artifacts, the source
// formatter and the disassembler.
//
// Profiles resolve in three layers:
//   - Per-platform defaults (Default)
//   - A YAML profile file (LoadFile)
//   - Environment overrides (KERNELJIT_CC, then the conventional CC)
package toolchain

import (
	"os"
	"runtime"
)

// Profile is one complete toolchain configuration.
type Profile struct {
	// Compiler is the native toolchain binary compiling kernel sources
	// into shared artifacts.
	Compiler string `yaml:"compiler"`
	// Flags is passed to the compiler before the output and source
	// paths.
	Flags []string `yaml:"flags"`
	// Formatter is run in place on materialized sources. Empty disables
	// formatting.
	Formatter string `yaml:"formatter,omitempty"`
	// Disassembler produces .s listings from built artifacts. Empty
	// disables disassembly.
	Disassembler string `yaml:"disassembler,omitempty"`
}

// Default returns the host platform profile. The compiler honors the
// KERNELJIT_CC and CC environment overrides, falling back to cc.
func Default() Profile {
	return defaultFor(runtime.GOOS)
}

// defaultFor builds the profile for a given GOOS. Shared objects are
// linked with -shared everywhere except darwin, which wants -dynamiclib
// for dylib artifacts. Disassembly defaults on only where objdump is the
// platform convention.
func defaultFor(goos string) Profile {
	p := Profile{
		Compiler:  compilerFromEnv(),
		Flags:     []string{"-std=c11", "-O2", "-shared", "-fPIC"},
		Formatter: "clang-format",
	}

	switch goos {
	case "darwin":
		p.Flags = []string{"-std=c11", "-O2", "-dynamiclib", "-fPIC"}
	case "linux":
		p.Disassembler = "objdump"
	}

	return p
}

// compilerFromEnv resolves the compiler binary, most specific override
// first.
func compilerFromEnv() string {
	if cc := os.Getenv("KERNELJIT_CC"); cc != "" {
		return cc
	}

	if cc := os.Getenv("CC"); cc != "" {
		return cc
	}

	return "cc"
}

// CompileCommand assembles the argv compiling source into artifact.
func (p Profile) CompileCommand(artifact, source string) []string {
	argv := make([]string, 0, len(p.Flags)+4)
	argv = append(argv, p.Compiler)
	argv = append(argv, p.Flags...)

	return append(argv, "-o", artifact, source)
}
