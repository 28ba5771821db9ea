// Package system holds the generator's contact with the host: finding the
// project root, probing the PNG codec and writing files.
package system

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// ErrPNGUnavailable means the binary cannot encode or decode PNG images.
var ErrPNGUnavailable = errors.New("PNG codec unavailable")

// ErrNoProjectRoot means no ancestor of the start directory looks like the
// game project.
var ErrNoProjectRoot = errors.New("project root not found")

// rootMarker is the directory whose presence identifies the project root.
var rootMarker = filepath.Join("client", "src")

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// FindProjectRoot walks up from start to the first directory containing
// client/src.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if info, err := os.Stat(filepath.Join(dir, rootMarker)); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s above %s", ErrNoProjectRoot, rootMarker, start)
		}
		dir = parent
	}
}

// CheckPNG round-trips a one-pixel image through the PNG codec.
func CheckPNG() error {
	probe := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	var buf bytes.Buffer
	if err := png.Encode(&buf, probe); err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPNGUnavailable, err)
	}
	_, format, err := image.DecodeConfig(&buf)
	if err != nil {
		return fmt.Errorf("%w: decode: %v", ErrPNGUnavailable, err)
	}
	if format != "png" {
		return fmt.Errorf("%w: probe decoded as %q", ErrPNGUnavailable, format)
	}
	return nil
}

// EncodePNG returns the PNG encoding of img. The output depends only on the
// pixels, so equal images give equal bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile creates path's parent directories and replaces the file with data.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteFileWithLog is WriteFile with a log line on either outcome.
func WriteFileWithLog(l logger, path string, data []byte) error {
	err := WriteFile(path, data)
	if l != nil {
		if err != nil {
			l.Errorf("fs", "%v", err)
		} else {
			l.Infof("fs", "wrote %s (%d bytes)", path, len(data))
		}
	}
	return err
}
