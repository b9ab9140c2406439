package config_test

import (
	"io/fs"
	"testing/fstest"
)

type mapFS struct {
	fsys fstest.MapFS
}

func (m mapFS) Stat(path string) (fs.FileInfo, error) {
	return fs.Stat(m.fsys, path)
}

func (m mapFS) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(m.fsys, path)
}
