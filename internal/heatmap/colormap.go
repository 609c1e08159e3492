package heatmap

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Colormap maps a value in [-1, 1] to a display color. Values outside the
// range are clamped.
type Colormap func(v float64) color.Color

// Anchor colors for the supported maps, blended pairwise in Luv space.
var (
	plasmaAnchors = mustAnchors(
		"#0d0887", "#6a00a8", "#b12a90", "#e16462", "#fca636", "#f0f921",
	)
	viridisAnchors = mustAnchors(
		"#440154", "#414487", "#2a788e", "#22a884", "#7ad151", "#fde725",
	)
)

func mustAnchors(hexes ...string) []colorful.Color {
	out := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic("heatmap: bad anchor color " + h)
		}
		out[i] = c
	}
	return out
}

func gradient(anchors []colorful.Color, v float64) color.Color {
	t := (clamp(v) + 1) / 2
	pos := t * float64(len(anchors)-1)
	i := int(pos)
	if i >= len(anchors)-1 {
		return anchors[len(anchors)-1]
	}
	return anchors[i].BlendLuv(anchors[i+1], pos-float64(i)).Clamped()
}

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// Plasma is the default colormap, matching the classic PVF display.
func Plasma(v float64) color.Color { return gradient(plasmaAnchors, v) }

// Viridis is an alternate perceptually uniform colormap.
func Viridis(v float64) color.Color { return gradient(viridisAnchors, v) }

// ByName resolves a colormap by configuration name, defaulting to Plasma.
func ByName(name string) Colormap {
	switch name {
	case "viridis":
		return Viridis
	default:
		return Plasma
	}
}

// Hex returns the css hex form of a colormap color, for terminal renderers.
func Hex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
