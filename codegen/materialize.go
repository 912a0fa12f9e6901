package codegen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

const filePerm = 0o644

// debugMarker on the first line of an existing source file means a
// developer is hand-editing it; materialization must not clobber it.
const debugMarker = "debug"

// WriteSource serializes the regions to the unit's source path, archives
// an unformatted copy for diffing and runs the formatter in place.
//
// If the file already exists and carries the debug marker on its first
// line, the file is left untouched and the freshly generated code is
// discarded with a warning. Write failures are fatal; a failing or
// missing formatter is not.
func (u *Unit) WriteSource() error {
	path := u.SourcePath()

	edited, err := hasDebugMarker(path)
	if err != nil {
		return err
	}

	if edited {
		u.log.Warn("source carries debug marker, keeping hand-edited file",
			zap.String("path", path))

		return nil
	}

	source := []byte(u.Source())

	if err := os.WriteFile(path, source, filePerm); err != nil {
		return fmt.Errorf("writing source %s: %w", path, err)
	}

	// The pre-format copy, kept next to the source for diffing. The
	// suffix spelling is part of the cache file layout.
	backup := path + "_unformated"
	if err := os.WriteFile(backup, source, filePerm); err != nil {
		return fmt.Errorf("writing source backup %s: %w", backup, err)
	}

	u.runFormatter(path)

	return nil
}

// hasDebugMarker reports whether the first line of an existing file
// contains the debug marker. A missing file simply means there is
// nothing to preserve.
func hasDebugMarker(path string) (bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("inspecting existing source %s: %w", path, err)
	}
	defer f.Close()

	firstLine, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading first line of %s: %w", path, err)
	}

	return strings.Contains(firstLine, debugMarker), nil
}

// runFormatter reformats the materialized source in place. Best-effort:
// generation proceeds with the unformatted file when the formatter is
// unavailable or exits nonzero.
func (u *Unit) runFormatter(path string) {
	formatter := u.cfg.Toolchain.Formatter
	if formatter == "" {
		return
	}

	out, err := exec.Command(formatter, "-i", path).CombinedOutput()
	if err != nil {
		u.log.Warn("formatter failed, keeping unformatted source",
			zap.String("formatter", formatter),
			zap.String("path", path),
			zap.Error(err),
			zap.ByteString("output", out))
	}
}
