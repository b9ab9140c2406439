package ports

import "go.trai.ch/ktxload/internal/core/domain"

// EnvironmentProbe reports the host signals the loader classifies.
//
//go:generate mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type EnvironmentProbe interface {
	// Ambient returns the raw host signals.
	Ambient() domain.Ambient

	// Platform returns the classified host.
	Platform() domain.Platform
}
