//go:build windows

package linker

import "golang.org/x/sys/windows"

// openLibrary resolves bare names through the DLL search order. Absolute
// paths load with the library's own directory searched first for its imports.
func openLibrary(name string, search bool) (uintptr, error) {
	if search {
		h, err := windows.LoadLibrary(name)
		return uintptr(h), err
	}
	h, err := windows.LoadLibraryEx(name, 0, windows.LOAD_WITH_ALTERED_SEARCH_PATH)
	return uintptr(h), err
}

func lookupSymbol(handle uintptr, symbol string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), symbol)
}
