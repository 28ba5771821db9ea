// Package app runs a manifest: it draws every task, writes the PNG files and
// reports progress on the console.
package app

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/poorcraft/texgen/internal/manifest"
	"github.com/poorcraft/texgen/internal/system"
)

// ErrStale is returned by Verify when any file on disk differs from what the
// generator would write.
var ErrStale = errors.New("textures out of date")

// Asset is one generated image and where it was written.
type Asset struct {
	Path  string
	Image *image.NRGBA
}

// Report lists the assets of a completed run in manifest order.
type Report struct {
	Assets []Asset
}

// Generator executes manifests against one project layout.
type Generator struct {
	Layout manifest.Layout
	Out    io.Writer
	Logger Logger

	// checkPNG is swapped in tests.
	checkPNG func() error
}

func New(layout manifest.Layout, out io.Writer) *Generator {
	return &Generator{Layout: layout, Out: out, Logger: NoopLogger{}, checkPNG: system.CheckPNG}
}

func (g *Generator) logger() Logger {
	if g.Logger == nil {
		return NoopLogger{}
	}
	return g.Logger
}

func (g *Generator) preflight(m manifest.Manifest) error {
	check := g.checkPNG
	if check == nil {
		check = system.CheckPNG
	}
	if err := check(); err != nil {
		g.logger().Errorf("app", "png probe failed: %v", err)
		return err
	}
	return m.Validate()
}

// render draws and encodes one task.
func (g *Generator) render(task manifest.Task) (*image.NRGBA, []byte, error) {
	img, err := task.Generate()
	if err != nil {
		return nil, nil, fmt.Errorf("generate %s: %w", g.Layout.Rel(task.Path), err)
	}
	data, err := system.EncodePNG(img)
	if err != nil {
		return nil, nil, fmt.Errorf("encode %s: %w", g.Layout.Rel(task.Path), err)
	}
	return img, data, nil
}

// Run generates and writes every task in order, stopping at the first error.
func (g *Generator) Run(m manifest.Manifest) (Report, error) {
	var report Report
	if err := g.preflight(m); err != nil {
		return report, err
	}
	log := g.logger()
	log.Infof("app", "generating %d textures under %s", len(m), g.Layout.Root)
	fmt.Fprintln(g.Out, "Generating placeholder textures...")

	for _, task := range m {
		img, data, err := g.render(task)
		if err != nil {
			log.Errorf("app", "%v", err)
			return report, err
		}
		if err := system.WriteFileWithLog(log, task.Path, data); err != nil {
			return report, err
		}
		report.Assets = append(report.Assets, Asset{Path: task.Path, Image: img})
		fmt.Fprintf(g.Out, "  Created: %s\n", g.Layout.Rel(task.Path))
	}

	fmt.Fprintf(g.Out, "\nSuccessfully generated %d placeholder textures!\n", len(report.Assets))
	return report, nil
}

// FileStatus is how a file on disk compares to a fresh render.
type FileStatus string

const (
	StatusOK      FileStatus = "ok"
	StatusStale   FileStatus = "stale"
	StatusMissing FileStatus = "missing"
)

// Check is the verification result for one task.
type Check struct {
	Path   string
	Status FileStatus
}

// Verify renders every task in memory and compares it with the file on disk.
// Nothing is written. It returns ErrStale when any file is stale or missing.
func (g *Generator) Verify(m manifest.Manifest) ([]Check, error) {
	if err := g.preflight(m); err != nil {
		return nil, err
	}
	log := g.logger()
	fmt.Fprintln(g.Out, "Verifying placeholder textures...")

	checks := make([]Check, 0, len(m))
	bad := 0
	for _, task := range m {
		_, data, err := g.render(task)
		if err != nil {
			return checks, err
		}
		sum, exists, err := system.FileFingerprint(task.Path)
		if err != nil {
			return checks, err
		}
		status := StatusOK
		switch {
		case !exists:
			status = StatusMissing
		case sum != system.Fingerprint(data):
			status = StatusStale
		}
		if status != StatusOK {
			bad++
			log.Infof("verify", "%s: %s", task.Path, status)
		}
		checks = append(checks, Check{Path: task.Path, Status: status})
		fmt.Fprintf(g.Out, "  %-7s %s\n", status, g.Layout.Rel(task.Path))
	}

	fmt.Fprintf(g.Out, "\n%d of %d textures up to date\n", len(m)-bad, len(m))
	if bad > 0 {
		return checks, fmt.Errorf("%w: %d of %d files need regenerating", ErrStale, bad, len(m))
	}
	return checks, nil
}
