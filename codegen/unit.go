package codegen

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"kerneljit/internal/cachedir"
	"kerneljit/toolchain"
)

// Config holds construction parameters for a Unit.
type Config struct {
	// CacheDir is the directory sources and artifacts are written to.
	CacheDir string
	// Suffix is the source language file extension, without the dot.
	Suffix string
	// LineSuffix terminates every emitted line.
	LineSuffix string
	// Toolchain drives the formatter, compiler and disassembler. A
	// profile without a compiler is replaced by toolchain.Default().
	Toolchain toolchain.Profile
	// Sequence allocates kernel identifiers. The process-wide default
	// sequence is used when nil.
	Sequence *Sequence
}

// DefaultConfig returns the engine defaults: a project-local cache
// directory, C sources, newline terminated lines and the host toolchain.
func DefaultConfig() Config {
	return Config{
		CacheDir:   cachedir.DefaultDir(),
		Suffix:     "c",
		LineSuffix: "\n",
		Toolchain:  toolchain.Default(),
	}
}

// Unit is one end-to-end kernel compilation: emit regions, materialize
// the source, build the shared artifact, bind its symbols. A Unit is
// driven by a single goroutine; independent Units may run concurrently
// because all file paths derive from the unit's unique identifier.
type Unit struct {
	cfg      Config
	id       int
	funcName string
	buf      *regionBuffer
	cursor   Region
	dll      uintptr
	built    bool
	log      *zap.Logger
}

// NewUnit allocates an identifier, derives the unit's names and ensures
// the cache directory exists. Identifier exhaustion and directory
// creation failures are fatal.
func NewUnit(cfg Config) (*Unit, error) {
	if cfg.CacheDir == "" {
		cfg.CacheDir = cachedir.DefaultDir()
	}

	if cfg.Suffix == "" {
		cfg.Suffix = "c"
	}

	if cfg.LineSuffix == "" {
		cfg.LineSuffix = "\n"
	}

	if cfg.Toolchain.Compiler == "" {
		cfg.Toolchain = toolchain.Default()
	}

	if cfg.Sequence == nil {
		cfg.Sequence = kernelIDs
	}

	id, err := cfg.Sequence.Next()
	if err != nil {
		return nil, err
	}

	if err := cachedir.Ensure(cfg.CacheDir); err != nil {
		return nil, err
	}

	return &Unit{
		cfg:      cfg,
		id:       id,
		funcName: fmt.Sprintf("func%06d", id),
		buf:      newRegionBuffer(),
		cursor:   RegionHeader,
		log:      zap.NewNop(),
	}, nil
}

// WithLogger sets the logger used for materialization, build and load
// events.
func (u *Unit) WithLogger(log *zap.Logger) {
	u.log = log.With(zap.String("kernel", u.funcName))
}

// ID returns the unit's process-unique identifier.
func (u *Unit) ID() int {
	return u.id
}

// FuncName returns the derived kernel entry point name ("func%06d").
func (u *Unit) FuncName() string {
	return u.funcName
}

// SourceName returns the source file name ("tmp%04d.<suffix>").
func (u *Unit) SourceName() string {
	return cachedir.SourceName(u.id, u.cfg.Suffix)
}

// SourcePath returns the source file path inside the cache directory.
func (u *Unit) SourcePath() string {
	return filepath.Join(u.cfg.CacheDir, u.SourceName())
}

// ArtifactPath returns the shared library path the toolchain produces.
func (u *Unit) ArtifactPath() string {
	return filepath.Join(u.cfg.CacheDir, cachedir.ArtifactName(u.id, u.cfg.Suffix))
}

// CurrentRegion returns the region the cursor points at.
func (u *Unit) CurrentRegion() Region {
	return u.cursor
}

// EnterRegion points the cursor at r and returns a restore token that
// puts the previous value back. Callers must release tokens in reverse
// entry order; deferring the call directly gives that discipline on all
// exit paths, including panics:
//
//	defer u.EnterRegion(codegen.RegionBody)()
func (u *Unit) EnterRegion(r Region) (restore func()) {
	previous := u.cursor
	u.cursor = r

	return func() { u.cursor = previous }
}

// Emit appends formatted text plus the configured line terminator to the
// region the cursor currently points at.
func (u *Unit) Emit(format string, args ...any) {
	u.EmitTo(u.cursor, format, args...)
}

// EmitTo appends formatted text plus the line terminator to an explicit
// region, leaving the cursor untouched.
func (u *Unit) EmitTo(r Region, format string, args ...any) {
	u.buf.append(r, fmt.Sprintf(format, args...)+u.cfg.LineSuffix)
}

// Source returns the serialized source: every populated region in
// canonical order, each preceded by a region banner comment. Regions
// never emitted to are skipped.
func (u *Unit) Source() string {
	return u.buf.serialize()
}
