package codegen

import (
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"
)

// Disassemble writes a disassembly listing next to the artifact and
// returns the listing path. It is best-effort diagnostics: platforms or
// profiles without a disassembler return an empty path and no error, and
// failures must never affect the primary pipeline, so callers are free
// to ignore the returned error.
func (u *Unit) Disassemble() (string, error) {
	tool := u.cfg.Toolchain.Disassembler
	if tool == "" {
		return "", nil
	}

	if !u.built {
		return "", ErrNotBuilt
	}

	artifact := u.ArtifactPath()

	out, err := exec.Command(tool, "-d", artifact).Output()
	if err != nil {
		return "", fmt.Errorf("disassembling %s: %w", artifact, err)
	}

	listing := artifact + ".s"
	if err := os.WriteFile(listing, out, filePerm); err != nil {
		return "", fmt.Errorf("writing listing %s: %w", listing, err)
	}

	u.log.Debug("wrote disassembly listing", zap.String("path", listing))

	return listing, nil
}
