package domain

// LoadState tracks how far a library has progressed through the loader.
type LoadState uint8

const (
	// NotAttempted means no load is running and none has succeeded.
	NotAttempted LoadState = iota
	// Attempted means a load is running right now.
	Attempted
	// Loaded means the library is resident for the rest of the process lifetime.
	Loaded
)

func (s LoadState) String() string {
	switch s {
	case Attempted:
		return "attempted"
	case Loaded:
		return "loaded"
	default:
		return "not-attempted"
	}
}
