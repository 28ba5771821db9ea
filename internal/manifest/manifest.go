// Package manifest assembles the ordered list of files one run produces.
package manifest

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/poorcraft/texgen/internal/textures"
)

// Task pairs an output path with the function that draws it.
type Task struct {
	Path     string
	Generate func() (*image.NRGBA, error)
}

// Manifest is an ordered list of tasks.
type Manifest []Task

// Validate rejects empty paths, missing generators and duplicate outputs.
func (m Manifest) Validate() error {
	seen := make(map[string]int, len(m))
	for i, task := range m {
		if task.Path == "" {
			return fmt.Errorf("task %d: empty output path", i)
		}
		if task.Generate == nil {
			return fmt.Errorf("task %d (%s): no generator", i, task.Path)
		}
		key := filepath.Clean(task.Path)
		if j, dup := seen[key]; dup {
			return fmt.Errorf("tasks %d and %d both write %s", j, i, task.Path)
		}
		seen[key] = i
	}
	return nil
}

// Set names a group of tasks selectable from the command line.
type Set string

const (
	SetAll    Set = "all"
	SetBlocks Set = "blocks"
	SetUI     Set = "ui"
)

// ParseSet accepts all, blocks or ui (case-insensitive).
func ParseSet(s string) (Set, error) {
	switch set := Set(strings.ToLower(strings.TrimSpace(s))); set {
	case SetAll, SetBlocks, SetUI:
		return set, nil
	}
	return "", fmt.Errorf("unknown texture set %q (want all, blocks or ui)", s)
}

// Build returns the validated manifest for set under l.
func Build(set Set, l Layout) (Manifest, error) {
	var m Manifest
	switch set {
	case SetBlocks:
		m = Blocks(l)
	case SetUI:
		m = UI(l)
	case SetAll:
		m = append(Blocks(l), UI(l)...)
	default:
		return nil, fmt.Errorf("unknown texture set %q", string(set))
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Blocks lists the flat block textures.
func Blocks(l Layout) Manifest {
	m := make(Manifest, 0, len(textures.Blocks))
	for _, b := range textures.Blocks {
		m = append(m, Task{
			Path:     filepath.Join(l.BlocksDir(), b.File),
			Generate: func() (*image.NRGBA, error) { return textures.SolidBlock(textures.BlockSize, b.Color) },
		})
	}
	return m
}

// UI lists the HUD icons, crack overlays, skins and the UV test grid.
func UI(l Layout) Manifest {
	ui := func(name string) string { return filepath.Join(l.UIDir(), name) }

	m := Manifest{
		{ui("crosshair.png"), func() (*image.NRGBA, error) { return textures.Crosshair(16) }},
	}
	for _, s := range textures.States {
		m = append(m, Task{ui("heart_" + s.String() + ".png"), stateIcon(textures.Heart, s)})
	}
	for _, s := range textures.States {
		m = append(m, Task{ui("hunger_" + s.String() + ".png"), stateIcon(textures.Hunger, s)})
	}
	m = append(m,
		Task{ui("hotbar.png"), func() (*image.NRGBA, error) { return textures.Hotbar(182, 22) }},
		Task{ui("hotbar_selection.png"), func() (*image.NRGBA, error) { return textures.HotbarSelection(24) }},
		Task{ui("slot.png"), func() (*image.NRGBA, error) { return textures.Slot(18) }},
		Task{ui("inventory_background.png"), func() (*image.NRGBA, error) { return textures.InventoryBackground(176, 166) }},
	)
	for stage := 0; stage < textures.CrackStages; stage++ {
		m = append(m, Task{ui(fmt.Sprintf("crack_%d.png", stage)), func() (*image.NRGBA, error) { return textures.Crack(16, stage) }})
	}
	m = append(m,
		Task{filepath.Join(l.SkinsDir(), "player_default.png"), func() (*image.NRGBA, error) { return textures.PlayerSkin(32) }},
		Task{filepath.Join(l.SkinsDir(), "npc_villager.png"), func() (*image.NRGBA, error) { return textures.NPCSkin(32) }},
		Task{l.TestPath(), func() (*image.NRGBA, error) { return textures.TestGrid(256) }},
	)
	return m
}

func stateIcon(draw func(int, textures.State) (*image.NRGBA, error), s textures.State) func() (*image.NRGBA, error) {
	return func() (*image.NRGBA, error) { return draw(9, s) }
}
