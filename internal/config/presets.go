package config

import "sort"

// Wall-layout presets, parametrized by grid size so they scale with the
// configured dimensions. Each generator returns (row, col) wall pairs.
var presets = map[string]func(w, h int) [][2]int{
	"open":     func(w, h int) [][2]int { return nil },
	"divided":  dividedPreset,
	"chambers": chambersPreset,
	"pillars":  pillarsPreset,
	"corridor": corridorPreset,
}

// GetPreset returns the wall layout for a named preset, or nil when the
// name is unknown.
func GetPreset(name string, w, h int) [][2]int {
	gen, ok := presets[name]
	if !ok {
		return nil
	}
	return gen(w, h)
}

// ListPresets returns the available preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// dividedPreset: a vertical wall down the middle with a single door.
func dividedPreset(w, h int) [][2]int {
	if w < 3 {
		return nil
	}
	col := w / 2
	door := h / 2
	var walls [][2]int
	for r := 0; r < h; r++ {
		if r == door {
			continue
		}
		walls = append(walls, [2]int{r, col})
	}
	return walls
}

// chambersPreset: a cross of walls splitting the grid into four rooms,
// each pair of rooms connected by one door.
func chambersPreset(w, h int) [][2]int {
	if w < 3 || h < 3 {
		return nil
	}
	midR, midC := h/2, w/2
	var walls [][2]int
	for c := 0; c < w; c++ {
		if c == w/4 || c == 3*w/4 {
			continue
		}
		walls = append(walls, [2]int{midR, c})
	}
	for r := 0; r < h; r++ {
		if r == midR || r == h/4 || r == 3*h/4 {
			continue
		}
		walls = append(walls, [2]int{r, midC})
	}
	return walls
}

// pillarsPreset: a regular lattice of single-cell obstacles.
func pillarsPreset(w, h int) [][2]int {
	var walls [][2]int
	for r := 1; r < h; r += 2 {
		for c := 1; c < w; c += 2 {
			walls = append(walls, [2]int{r, c})
		}
	}
	return walls
}

// corridorPreset: horizontal walls forming a snaking corridor.
func corridorPreset(w, h int) [][2]int {
	if w < 2 {
		return nil
	}
	var walls [][2]int
	for r := 2; r < h-1; r += 3 {
		band := (r / 3) % 2
		for c := 0; c < w; c++ {
			if band == 0 && c == w-1 {
				continue
			}
			if band == 1 && c == 0 {
				continue
			}
			walls = append(walls, [2]int{r, c})
		}
	}
	return walls
}
