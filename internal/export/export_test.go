package export

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/mkorzen/pvflab/internal/grid"
	"github.com/mkorzen/pvflab/internal/heatmap"
	"github.com/mkorzen/pvflab/internal/spectral"
)

func makeSpectrum(t *testing.T) *spectral.Spectrum {
	t.Helper()
	g := grid.New(3, 3)
	g.SetWall(1, 1)
	s, err := spectral.Solve(spectral.BuildLaplacian(g))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSpectrumCSVEigenvalues(t *testing.T) {
	s := makeSpectrum(t)

	var buf bytes.Buffer
	if err := SpectrumCSV(&buf, s, -1); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1+s.Len() {
		t.Errorf("expected header plus %d rows, got %d lines", s.Len(), len(lines))
	}
	if lines[0] != "rank,eigenvalue" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0,0.000000000") {
		t.Errorf("first row should be the zero mode, got %s", lines[1])
	}
}

func TestSpectrumCSVVector(t *testing.T) {
	s := makeSpectrum(t)

	var buf bytes.Buffer
	if err := SpectrumCSV(&buf, s, 0); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "row,col,component" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if len(lines) != 1+s.Len() {
		t.Errorf("expected one row per free cell, got %d lines", len(lines))
	}
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "1,1,") {
			t.Error("wall cell must not appear in the export")
		}
	}
}

func TestSpectrumCSVRankOutOfRange(t *testing.T) {
	s := makeSpectrum(t)

	var buf bytes.Buffer
	if err := SpectrumCSV(&buf, s, s.Len()); err != spectral.ErrIndexRange {
		t.Errorf("expected ErrIndexRange, got %v", err)
	}
}

func TestFieldSVG(t *testing.T) {
	field := [][]float64{
		{0.25, math.NaN()},
		{-0.5, 1},
	}

	svg := FieldSVG(field, 10, heatmap.Plasma)

	if !strings.Contains(svg, `width="20" height="20"`) {
		t.Error("svg dimensions should match cols*cell x rows*cell")
	}
	// 3 value cells plus the background rect.
	if got := strings.Count(svg, "<rect"); got != 4 {
		t.Errorf("expected 4 rects, got %d", got)
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("svg should be terminated")
	}
}

func TestFieldSVGEmpty(t *testing.T) {
	svg := FieldSVG(nil, 10, heatmap.Plasma)
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Error("empty field still yields a well-formed document")
	}
}
