package main

import "testing"

// The two export commands carry different rank defaults (-1 selects the
// eigenvalue table, 0 a concrete eigenvector). Each must own its flag
// storage: a shared variable would let the later registration overwrite
// the earlier default.
func TestExportRankDefaultsIndependent(t *testing.T) {
	csvCmd := newExportCSVCmd()
	svgCmd := newExportSVGCmd()

	got, err := csvCmd.Flags().GetInt("rank")
	if err != nil {
		t.Fatalf("export-csv rank flag: %v", err)
	}
	if got != -1 {
		t.Errorf("export-csv default rank = %d, want -1 (eigenvalue table)", got)
	}

	got, err = svgCmd.Flags().GetInt("rank")
	if err != nil {
		t.Fatalf("export-svg rank flag: %v", err)
	}
	if got != 0 {
		t.Errorf("export-svg default rank = %d, want 0", got)
	}
}
