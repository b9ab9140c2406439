//go:build darwin || freebsd || linux

package linker

import "github.com/ebitengine/purego"

func openLibrary(name string, _ bool) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func lookupSymbol(handle uintptr, symbol string) (uintptr, error) {
	return purego.Dlsym(handle, symbol)
}
