package codegen

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// ErrNotBuilt is returned by operations that need a built artifact
// before Build has succeeded.
var ErrNotBuilt = errors.New("kernel artifact has not been built")

// Build compiles the materialized source into the unit's shared
// artifact. One Unit maps to exactly one build: the engine never decides
// to rebuild or reuse, callers wanting cross-run reuse must key the
// identifier themselves.
//
// A nonzero toolchain exit is fatal to this unit's pipeline and the
// returned error carries the full command line and the compiler output.
// There is no retry and no timeout; a hung toolchain blocks the calling
// goroutine.
func (u *Unit) Build() error {
	argv := u.cfg.Toolchain.CompileCommand(u.ArtifactPath(), u.SourcePath())

	u.log.Debug("compiling kernel", zap.Strings("argv", argv))

	out, err := exec.Command(argv[0], argv[1:]...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("running %s: %w: %s", strings.Join(argv, " "), err, out)
	}

	u.built = true

	return nil
}
