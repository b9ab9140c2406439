//go:build !darwin && !freebsd && !linux && !windows

package linker

import "go.trai.ch/ktxload/internal/core/domain"

func openLibrary(_ string, _ bool) (uintptr, error) {
	return 0, domain.ErrLinkerUnsupported
}

func lookupSymbol(_ uintptr, _ string) (uintptr, error) {
	return 0, domain.ErrLinkerUnsupported
}
