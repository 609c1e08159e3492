package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 15 || cfg.Height != 15 {
		t.Errorf("expected 15x15 default grid, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.CellSize <= 0 {
		t.Error("cell size should be positive")
	}
	if cfg.Colormap != "plasma" {
		t.Errorf("expected plasma colormap, got %s", cfg.Colormap)
	}
}

func TestNormalize(t *testing.T) {
	cfg := &Config{Width: -2, Height: 0, CellSize: 0}
	cfg.Normalize()

	if cfg.Width != DefaultWidth || cfg.Height != DefaultHeight {
		t.Errorf("expected default dimensions, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.CellSize != DefaultCellSize {
		t.Errorf("expected default cell size, got %d", cfg.CellSize)
	}
	if cfg.Colormap != DefaultColormap {
		t.Errorf("expected default colormap, got %q", cfg.Colormap)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pvflab.yaml")

	cfg := DefaultConfig()
	cfg.Width = 9
	cfg.Preset = "pillars"
	cfg.Walls = [][2]int{{1, 2}, {3, 4}}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Width != 9 || loaded.Preset != "pillars" {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if len(loaded.Walls) != 2 || loaded.Walls[1] != [2]int{3, 4} {
		t.Errorf("round trip lost walls: %v", loaded.Walls)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("width: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Width != 7 {
		t.Errorf("expected width 7, got %d", cfg.Width)
	}
	if cfg.Height != DefaultHeight || cfg.Colormap != DefaultColormap {
		t.Error("unset fields should keep defaults")
	}
}

func TestGetPreset(t *testing.T) {
	walls := GetPreset("divided", 15, 15)
	if len(walls) != 14 {
		t.Errorf("divided 15x15 should have 14 wall cells, got %d", len(walls))
	}
	for _, wl := range walls {
		if wl[1] != 7 {
			t.Errorf("divided walls belong to the middle column, got %v", wl)
		}
	}

	if GetPreset("nonexistent", 15, 15) != nil {
		t.Error("expected nil for unknown preset")
	}
	if GetPreset("open", 15, 15) != nil {
		t.Error("open preset has no walls")
	}
}

func TestPresetsStayInBounds(t *testing.T) {
	for _, name := range ListPresets() {
		for _, dim := range [][2]int{{15, 15}, {5, 9}, {2, 2}, {1, 1}} {
			w, h := dim[0], dim[1]
			for _, wl := range GetPreset(name, w, h) {
				if wl[0] < 0 || wl[0] >= h || wl[1] < 0 || wl[1] >= w {
					t.Errorf("preset %s emits out-of-bounds wall %v for %dx%d", name, wl, w, h)
				}
			}
		}
	}
}

func TestPresetsLeaveFreeCells(t *testing.T) {
	// A preset that walls off the whole grid would defeat the tool.
	for _, name := range ListPresets() {
		walls := GetPreset(name, 15, 15)
		if len(walls) >= 15*15 {
			t.Errorf("preset %s fills the entire grid", name)
		}
	}
}

func TestInitialWalls(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.InitialWalls() != nil {
		t.Error("default config should start open")
	}

	cfg.Preset = "pillars"
	if len(cfg.InitialWalls()) == 0 {
		t.Error("preset should produce walls")
	}

	cfg.Walls = [][2]int{{0, 0}}
	got := cfg.InitialWalls()
	if len(got) != 1 || got[0] != [2]int{0, 0} {
		t.Error("explicit walls take precedence over the preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	for _, want := range []string{"open", "divided", "chambers", "pillars", "corridor"} {
		if !seen[want] {
			t.Errorf("missing preset %s", want)
		}
	}
}
