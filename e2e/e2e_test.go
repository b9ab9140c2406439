//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var ktxloadBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "ktxload-e2e-*")
	if err != nil {
		panic(err)
	}

	ktxloadBinary = filepath.Join(tmpDir, "ktxload")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", ktxloadBinary, "./cmd/ktxload")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build ktxload binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")

	binDir := filepath.Dir(ktxloadBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	// Pin the classified host so paths in the scripts do not depend on the runner.
	env.Setenv("KTXLOAD_OS_NAME", "Linux")
	env.Setenv("KTXLOAD_OS_ARCH", "amd64")

	return nil
}
