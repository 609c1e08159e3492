package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/mkorzen/pvflab/internal/config"
	"github.com/mkorzen/pvflab/internal/export"
	"github.com/mkorzen/pvflab/internal/gui"
	"github.com/mkorzen/pvflab/internal/heatmap"
	"github.com/mkorzen/pvflab/internal/session"
	"github.com/mkorzen/pvflab/internal/viz"
)

var (
	configFile string
	width      int
	height     int
	cellSize   int
	colormap   string
	preset     string
)

// main registers the pvflab commands. With no subcommand the graphical
// frontend opens, matching the tool's primary use.
func main() {
	rootCmd := &cobra.Command{
		Use:   "pvflab",
		Short: "proto-value function visualizer for grid-world mazes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.IntVar(&width, "width", config.DefaultWidth, "grid width in cells")
	pf.IntVar(&height, "height", config.DefaultHeight, "grid height in cells")
	pf.IntVar(&cellSize, "cell-size", config.DefaultCellSize, "cell size in pixels")
	pf.StringVar(&colormap, "colormap", config.DefaultColormap, "heatmap colormap (plasma, viridis)")
	pf.StringVar(&preset, "preset", "", "initial wall layout preset")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the graphical editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "open the terminal editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(cfg)
		},
	}

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "print the eigenvalue spectrum of the configured grid",
		RunE:  runSpectrum,
	}

	exportCSVCmd := newExportCSVCmd()
	exportSVGCmd := newExportSVGCmd()

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list wall layout presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, spectrumCmd, exportCSVCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the session config: file first, then CLI flags
// override whatever the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("cell-size") {
		cfg.CellSize = cellSize
	}
	if cmd.Flags().Changed("colormap") {
		cfg.Colormap = colormap
	}
	if cmd.Flags().Changed("preset") {
		cfg.Preset = preset
	}
	cfg.Normalize()
	return cfg, nil
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sess := session.NewFromConfig(cfg)
	sp := sess.Spectrum()

	fmt.Printf("grid: %dx%d, %d free cells\n\n", cfg.Width, cfg.Height, sess.Grid().FreeCount())

	if sp.Len() == 0 {
		fmt.Println("no free cells: empty spectrum")
		return nil
	}

	graph := asciigraph.Plot(sp.Values(),
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption("eigenvalues (ascending)"),
	)
	fmt.Println(graph)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tEIGENVALUE")
	for i, v := range sp.Values() {
		fmt.Fprintf(w, "%d\t%.6f\n", i, v)
	}
	return w.Flush()
}

// newExportCSVCmd builds the export-csv command. The rank flag is local to
// the command so its default stays independent of export-svg's.
func newExportCSVCmd() *cobra.Command {
	var rank int
	cmd := &cobra.Command{
		Use:   "export-csv",
		Short: "write the spectrum as CSV on stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			sess := session.NewFromConfig(cfg)
			return export.SpectrumCSV(os.Stdout, sess.Spectrum(), rank)
		},
	}
	cmd.Flags().IntVar(&rank, "rank", -1, "export this eigenvector instead of the eigenvalue table")
	return cmd
}

func newExportSVGCmd() *cobra.Command {
	var rank int
	cmd := &cobra.Command{
		Use:   "export-svg",
		Short: "write the heatmap of one eigenvector as SVG on stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			sess := session.NewFromConfig(cfg)
			sess.SelectRank(rank)

			svg := export.FieldSVG(sess.Field(), cfg.CellSize, heatmap.ByName(cfg.Colormap))
			_, err = os.Stdout.WriteString(svg)
			return err
		},
	}
	cmd.Flags().IntVar(&rank, "rank", 0, "eigenvector rank to render")
	return cmd
}
