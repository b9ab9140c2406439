package bootstrap_test

import (
	"path/filepath"
	"sync"

	"go.trai.ch/ktxload/internal/core/domain"
	"go.trai.ch/ktxload/internal/core/ports"
	"go.trai.ch/zerr"
)

var linuxAmbient = domain.Ambient{
	OSName:    "Linux",
	Arch:      "amd64",
	DataModel: "64",
}

var linuxX86 = domain.Platform{OS: domain.OSLinux, Arch: domain.ArchX86_64}

type staticProbe struct {
	ambient  domain.Ambient
	platform domain.Platform
}

func (p staticProbe) Ambient() domain.Ambient   { return p.ambient }
func (p staticProbe) Platform() domain.Platform { return p.platform }

func newProbe(tempDir string) staticProbe {
	a := linuxAmbient
	a.TempDir = tempDir
	return staticProbe{ambient: a, platform: linuxX86}
}

// fakeLinker records load calls. System loads fail unless the file name is
// listed in system; path loads succeed for any absolute path.
type fakeLinker struct {
	mu     sync.Mutex
	system map[string]bool
	calls  []string
	gate   chan struct{}
}

func (f *fakeLinker) LoadSystem(fileName string) (ports.LibraryHandle, error) {
	if f.gate != nil {
		<-f.gate
	}
	f.record("system:" + fileName)
	if f.system[fileName] {
		return ports.LibraryHandle(len(fileName)), nil
	}
	return 0, zerr.With(zerr.Wrap(domain.ErrSystemLoadFailed, fileName+": cannot open shared object file"), "library", fileName)
}

func (f *fakeLinker) LoadPath(path string) (ports.LibraryHandle, error) {
	f.record("path:" + path)
	if !filepath.IsAbs(path) {
		return 0, zerr.With(zerr.Wrap(domain.ErrPathLoadFailed, "library path must be absolute"), "path", path)
	}
	return ports.LibraryHandle(len(path)), nil
}

func (f *fakeLinker) Lookup(handle ports.LibraryHandle, symbol string) (uintptr, error) {
	return uintptr(handle) + uintptr(len(symbol)), nil
}

func (f *fakeLinker) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeLinker) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}
