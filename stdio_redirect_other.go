//go:build !unix

package main

import (
	"fmt"
	"os"
)

// redirectStdIO points os.Stdout and os.Stderr at path. Runtime panics still
// reach the original stderr on these platforms.
func redirectStdIO(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
