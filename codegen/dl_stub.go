//go:build !(darwin || freebsd || linux)

package codegen

func dlOpen(path string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func dlSym(handle uintptr, symbol string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func registerFunc(fn any, addr uintptr) {}
