// Package containers provides test container utilities
package containers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

type Container interface {
	Terminate(ctx context.Context)
}

// GetProjectRoot returns the absolute path to the module root,
// walking up from the caller's directory until it finds go.mod
func GetProjectRoot() (string, error) {
	_, filename, _, ok := runtime.Caller(1)
	if !ok {
		return "", errors.New("failed to get the caller information")
	}

	for dir := filepath.Dir(filename); ; {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("reached root without finding go.mod")
		}
		dir = parent
	}
}
