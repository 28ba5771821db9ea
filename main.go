package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/poorcraft/texgen/internal/app"
	"github.com/poorcraft/texgen/internal/manifest"
	"github.com/poorcraft/texgen/internal/preview"
	"github.com/poorcraft/texgen/internal/system"
)

// Exit codes.
const (
	exitOK = iota
	exitFailure
	exitUsage
	exitNoPNG
)

func main() {
	os.Exit(run())
}

func run() int {
	rootFlag := flag.String("root", "", "project root containing client/src; discovered from the working directory when empty")
	setFlag := flag.String("set", string(manifest.SetAll), "texture set to generate: all | blocks | ui")
	verify := flag.Bool("verify", false, "compare files on disk with a fresh render instead of writing")
	previewPath := flag.String("preview", "", "also write a contact sheet of every generated texture to this file; not allowed with -verify")
	debug := flag.Bool("debug", false, "enable debug logging to ./texgen-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file")
	flag.Parse()

	if err := checkFlags(*verify, *previewPath); err != nil {
		fmt.Println("ERROR:", err)
		return exitUsage
	}

	if *stdioLog != "" {
		if err := redirectStdIO(*stdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./texgen-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	if err := system.CheckPNG(); err != nil {
		fmt.Println("ERROR:", err)
		fmt.Println("Rebuild texgen with the standard library image/png package linked in.")
		return exitNoPNG
	}

	set, err := manifest.ParseSet(*setFlag)
	if err != nil {
		fmt.Println("ERROR:", err)
		return exitUsage
	}

	root := *rootFlag
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			fmt.Println("ERROR:", err)
			return exitFailure
		}
		if root, err = system.FindProjectRoot(wd); err != nil {
			fmt.Println("ERROR:", err)
			fmt.Println("Run texgen inside the project or pass -root.")
			return exitUsage
		}
	}
	if root, err = filepath.Abs(root); err != nil {
		fmt.Println("ERROR:", err)
		return exitFailure
	}
	logger.Infof("main", "project root %s, set %s", root, set)

	layout := manifest.Layout{Root: root}
	m, err := manifest.Build(set, layout)
	if err != nil {
		fmt.Println("ERROR:", err)
		return exitFailure
	}

	gen := app.New(layout, os.Stdout)
	gen.Logger = logger

	if *verify {
		if _, err := gen.Verify(m); err != nil {
			fmt.Println("ERROR:", err)
			return exitFailure
		}
		return exitOK
	}

	report, err := gen.Run(m)
	if err != nil {
		fmt.Println("ERROR:", err)
		if errors.Is(err, system.ErrPNGUnavailable) {
			return exitNoPNG
		}
		return exitFailure
	}

	if *previewPath != "" {
		if err := writePreview(*previewPath, layout, report, logger); err != nil {
			fmt.Println("ERROR:", err)
			return exitFailure
		}
		fmt.Println("Preview:", *previewPath)
	}
	return exitOK
}

// checkFlags rejects flag combinations that cannot all be honoured.
func checkFlags(verify bool, previewPath string) error {
	if verify && previewPath != "" {
		return errors.New("-preview needs a write run and cannot be combined with -verify")
	}
	return nil
}

func writePreview(path string, layout manifest.Layout, report app.Report, logger app.Logger) error {
	items := make([]preview.Item, 0, len(report.Assets))
	for _, a := range report.Assets {
		items = append(items, preview.Item{Label: filepath.Base(a.Path), Image: a.Image})
	}
	sheet, err := preview.New("PoorCraft placeholder textures").Render(items)
	if err != nil {
		return err
	}
	data, err := system.EncodePNG(sheet)
	if err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return system.WriteFileWithLog(logger, path, data)
}
