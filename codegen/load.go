package codegen

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"unsafe"

	"go.uber.org/zap"
)

// ErrUnsupportedPlatform is returned by Bind and LoadKernel on platforms
// without dynamic kernel loading.
var ErrUnsupportedPlatform = errors.New("dynamic kernel loading is not supported on this platform")

// KernelFunc is the uniform calling convention for generated kernel
// entry points: one context pointer, no return value. Callers are
// responsible for matching the context layout to what the generated
// code expects.
type KernelFunc func(ctx unsafe.Pointer)

// Bind resolves symbol inside the built artifact and binds it to *fn,
// which must be a non-nil pointer to a function variable of the expected
// signature. The artifact is opened lazily on the first Bind and the
// handle is held for the remaining process lifetime.
//
// A missing artifact and a missing symbol are both fatal and
// non-retriable: they indicate a generation or build defect, never a
// transient condition. The returned error carries the loader diagnostic.
func (u *Unit) Bind(symbol string, fn any) error {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Func {
		return fmt.Errorf("bind target for %s must be a non-nil pointer to a function variable", symbol)
	}

	if u.dll == 0 {
		if err := u.open(); err != nil {
			return err
		}
	}

	addr, err := dlSym(u.dll, symbol)
	if err != nil {
		return fmt.Errorf("resolving symbol %s in %s: %w", symbol, u.ArtifactPath(), err)
	}

	registerFunc(fn, addr)

	u.log.Debug("bound kernel symbol", zap.String("symbol", symbol))

	return nil
}

// LoadKernel binds the unit's own entry point to the uniform kernel
// signature.
func (u *Unit) LoadKernel() (KernelFunc, error) {
	var fn KernelFunc
	if err := u.Bind(u.funcName, &fn); err != nil {
		return nil, err
	}

	return fn, nil
}

// open dlopens the artifact. The loader consults the system search path
// when given a bare file name, so paths without a separator get an
// explicit "./" prefix.
func (u *Unit) open() error {
	path := u.ArtifactPath()
	if !strings.ContainsRune(path, os.PathSeparator) {
		path = "./" + path
	}

	handle, err := dlOpen(path)
	if err != nil {
		return fmt.Errorf("opening kernel artifact %s: %w", path, err)
	}

	u.dll = handle

	return nil
}
