package app

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poorcraft/texgen/internal/manifest"
	"github.com/poorcraft/texgen/internal/system"
)

func newGenerator(t *testing.T) (*Generator, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return New(manifest.Layout{Root: t.TempDir()}, &out), &out
}

func build(t *testing.T, g *Generator, set manifest.Set) manifest.Manifest {
	t.Helper()
	m, err := manifest.Build(set, g.Layout)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func pngFiles(t *testing.T, root string) map[string][]byte {
	t.Helper()
	files := map[string][]byte{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".png" {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[path] = data
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return files
}

func TestRunIntoEmptyRoot(t *testing.T) {
	tests := []struct {
		set  manifest.Set
		want int
	}{
		{manifest.SetBlocks, 12},
		{manifest.SetUI, 24},
		{manifest.SetAll, 36},
	}
	for _, tt := range tests {
		t.Run(string(tt.set), func(t *testing.T) {
			g, out := newGenerator(t)
			report, err := g.Run(build(t, g, tt.set))
			if err != nil {
				t.Fatal(err)
			}
			if len(report.Assets) != tt.want {
				t.Errorf("report has %d assets, want %d", len(report.Assets), tt.want)
			}
			if n := len(pngFiles(t, g.Layout.Root)); n != tt.want {
				t.Errorf("%d files on disk, want %d", n, tt.want)
			}
			if n := strings.Count(out.String(), "  Created: "); n != tt.want {
				t.Errorf("%d Created lines, want %d", n, tt.want)
			}
			summary := fmt.Sprintf("Successfully generated %d placeholder textures!\n", tt.want)
			if !strings.HasSuffix(out.String(), summary) {
				t.Errorf("output does not end with %q:\n%s", summary, out.String())
			}
		})
	}
}

func TestRunPrintsPathsRelativeToRoot(t *testing.T) {
	g, out := newGenerator(t)
	if _, err := g.Run(build(t, g, manifest.SetBlocks)); err != nil {
		t.Fatal(err)
	}
	want := "  Created: " + filepath.Join("client", "src", "main", "resources", "textures", "blocks", "stone.png") + "\n"
	if !strings.Contains(out.String(), want) {
		t.Errorf("missing %q in:\n%s", want, out.String())
	}
	if strings.Contains(out.String(), g.Layout.Root) {
		t.Error("console output contains the absolute root")
	}
}

func TestRunIsIdempotent(t *testing.T) {
	g, _ := newGenerator(t)
	m := build(t, g, manifest.SetAll)
	if _, err := g.Run(m); err != nil {
		t.Fatal(err)
	}
	first := pngFiles(t, g.Layout.Root)
	if _, err := g.Run(m); err != nil {
		t.Fatal(err)
	}
	second := pngFiles(t, g.Layout.Root)
	if len(first) != len(second) {
		t.Fatalf("file count changed: %d -> %d", len(first), len(second))
	}
	for path, data := range first {
		if !bytes.Equal(data, second[path]) {
			t.Errorf("%s changed between runs", path)
		}
	}
}

func TestRunAbortsWithoutPNG(t *testing.T) {
	g, out := newGenerator(t)
	g.checkPNG = func() error { return fmt.Errorf("%w: test", system.ErrPNGUnavailable) }
	_, err := g.Run(build(t, g, manifest.SetUI))
	if !errors.Is(err, system.ErrPNGUnavailable) {
		t.Fatalf("err = %v, want ErrPNGUnavailable", err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output: %q", out.String())
	}
	if n := len(pngFiles(t, g.Layout.Root)); n != 0 {
		t.Errorf("%d files written", n)
	}
}

func TestRunSurfacesWriteErrors(t *testing.T) {
	g, _ := newGenerator(t)
	// Occupy the textures directory path with a regular file.
	textures := g.Layout.TexturesDir()
	if err := os.MkdirAll(filepath.Dir(textures), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(textures, []byte("not a dir"), 0o644); err != nil {
		t.Fatal(err)
	}
	report, err := g.Run(build(t, g, manifest.SetBlocks))
	if err == nil {
		t.Fatal("expected a write error")
	}
	if !strings.Contains(err.Error(), textures) {
		t.Errorf("error %q does not name the offending path", err)
	}
	if len(report.Assets) != 0 {
		t.Errorf("report lists %d assets", len(report.Assets))
	}
}

func TestRunStopsAtGeneratorError(t *testing.T) {
	g, _ := newGenerator(t)
	boom := errors.New("boom")
	m := build(t, g, manifest.SetBlocks)
	m[3].Generate = func() (*image.NRGBA, error) { return nil, boom }
	report, err := g.Run(m)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if len(report.Assets) != 3 {
		t.Errorf("%d assets before the failure, want 3", len(report.Assets))
	}
}

func TestVerify(t *testing.T) {
	g, out := newGenerator(t)
	m := build(t, g, manifest.SetUI)

	checks, err := g.Verify(m)
	if !errors.Is(err, ErrStale) {
		t.Fatalf("verify before run: err = %v", err)
	}
	for _, c := range checks {
		if c.Status != StatusMissing {
			t.Fatalf("%s: %s before any run", c.Path, c.Status)
		}
	}

	if _, err := g.Run(m); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Verify(m); err != nil {
		t.Fatalf("verify after run: %v", err)
	}

	if err := os.WriteFile(m[0].Path, []byte("tampered"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(m[1].Path); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	checks, err = g.Verify(m)
	if !errors.Is(err, ErrStale) {
		t.Fatalf("err = %v, want ErrStale", err)
	}
	if checks[0].Status != StatusStale || checks[1].Status != StatusMissing || checks[2].Status != StatusOK {
		t.Errorf("statuses = %s %s %s", checks[0].Status, checks[1].Status, checks[2].Status)
	}
	if !strings.Contains(out.String(), "22 of 24 textures up to date") {
		t.Errorf("summary missing:\n%s", out.String())
	}
}

func TestFileLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewFileLogger(&buf)
	l.Infof("fs", "wrote %d", 3)
	l.Errorf("app", "failed")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.HasSuffix(lines[0], " [INFO] fs: wrote 3") || !strings.HasSuffix(lines[1], " [ERROR] app: failed") {
		t.Errorf("lines = %q", lines)
	}
}
