//go:build darwin || freebsd || linux

package codegen

import (
	"github.com/ebitengine/purego"
)

func dlOpen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_LAZY)
}

func dlSym(handle uintptr, symbol string) (uintptr, error) {
	return purego.Dlsym(handle, symbol)
}

// registerFunc casts a raw symbol address to the function variable fn
// points at. Signature mismatches cannot be detected here; purego panics
// on structurally invalid targets, which Bind rules out beforehand.
func registerFunc(fn any, addr uintptr) {
	purego.RegisterFunc(fn, addr)
}
