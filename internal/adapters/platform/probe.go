package platform

import (
	"os"
	"runtime"
	"strconv"
	"sync"

	"go.trai.ch/ktxload/internal/core/domain"
)

// Environment variables that override the detected host signals.
const (
	EnvOSName  = "KTXLOAD_OS_NAME"
	EnvOSArch  = "KTXLOAD_OS_ARCH"
	EnvVendor  = "KTXLOAD_VENDOR"
	EnvTempDir = "KTXLOAD_TMPDIR"
)

var osNames = map[string]string{
	"darwin":  "Mac OS X",
	"ios":     "Mac OS X",
	"windows": "Windows",
	"linux":   "Linux",
	"android": "Linux",
	"solaris": "SunOS",
	"illumos": "SunOS",
	"freebsd": "FreeBSD",
	"openbsd": "OpenBSD",
	"netbsd":  "NetBSD",
}

var archNames = map[string]string{
	"386":   "x86",
	"arm64": "aarch64",
}

// Probe implements ports.EnvironmentProbe from the Go runtime and environment.
// Signals are read once, on first use.
type Probe struct {
	getenv  func(string) string
	goos    string
	goarch  string
	ambient func() domain.Ambient
}

// NewProbe creates a Probe for the running process.
func NewProbe() *Probe {
	return newProbe(os.Getenv, runtime.GOOS, runtime.GOARCH)
}

func newProbe(getenv func(string) string, goos, goarch string) *Probe {
	p := &Probe{getenv: getenv, goos: goos, goarch: goarch}
	p.ambient = sync.OnceValue(p.read)
	return p
}

// Ambient returns the raw host signals.
func (p *Probe) Ambient() domain.Ambient {
	return p.ambient()
}

// Platform returns the classified host.
func (p *Probe) Platform() domain.Platform {
	return Classify(p.Ambient())
}

func (p *Probe) read() domain.Ambient {
	a := domain.Ambient{
		OSName:    osName(p.goos),
		Arch:      archName(p.goarch),
		DataModel: strconv.Itoa(strconv.IntSize),
		TempDir:   os.TempDir(),
	}
	if p.goos == "android" {
		a.Vendor = AndroidVendor
	}

	if v := p.getenv(EnvOSName); v != "" {
		a.OSName = v
	}
	if v := p.getenv(EnvOSArch); v != "" {
		a.Arch = v
	}
	if v := p.getenv(EnvVendor); v != "" {
		a.Vendor = v
	}
	if v := p.getenv(EnvTempDir); v != "" {
		a.TempDir = v
	}
	return a
}

func osName(goos string) string {
	if name, ok := osNames[goos]; ok {
		return name
	}
	return goos
}

func archName(goarch string) string {
	if name, ok := archNames[goarch]; ok {
		return name
	}
	return goarch
}
