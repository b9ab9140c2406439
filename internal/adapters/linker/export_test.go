package linker

// NewWith creates a Linker backed by the given loader functions.
func NewWith(
	open func(name string, search bool) (uintptr, error),
	lookup func(handle uintptr, symbol string) (uintptr, error),
) *Linker {
	return newLinker(open, lookup)
}
