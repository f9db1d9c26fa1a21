// Command mandelbrot renders the Mandelbrot set: locally to PNG, across
// a websocket render farm, or interactively in the terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivantronics/mandelbrot"
	"github.com/ivantronics/mandelbrot/internal/config"
)

var (
	configFile string
	preset     string
	regionName string

	maxIterations int
	escapeRadius  float64
	centerRe      float64
	centerIm      float64
	planeWidth    float64
	imageWidth    int
	imageHeight   int
	smooth        bool
	paletteName   string
	paletteSize   int
	supersample   int
	workers       int
	tileSize      int
	output        string
	writeConfig   string

	profileRow int

	serveAddr  string
	serverURL  string
	workerName string
	procs      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "escape-time renderer for the Mandelbrot set",
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render to a PNG file",
		Args:  cobra.ExactArgs(0),
		RunE:  runRender,
	}
	addRenderFlags(renderCmd)
	renderCmd.Flags().StringVar(&writeConfig, "write-config", "", "also save the effective settings as a yaml config")

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot stability along one image row",
		Args:  cobra.ExactArgs(0),
		RunE:  runProfile,
	}
	addRenderFlags(profileCmd)
	profileCmd.Flags().IntVar(&profileRow, "row", -1, "image row to sample (default: middle)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "coordinate a render farm",
		Args:  cobra.ExactArgs(0),
		RunE:  runServe,
	}
	addRenderFlags(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")

	workCmd := &cobra.Command{
		Use:   "work",
		Short: "render tiles for a farm server",
		Args:  cobra.ExactArgs(0),
		RunE:  runWork,
	}
	workCmd.Flags().StringVar(&serverURL, "server", "ws://localhost:8080/ws", "farm server websocket URL")
	workCmd.Flags().StringVar(&workerName, "name", "", "worker name (default: hostname)")
	workCmd.Flags().IntVar(&procs, "procs", 0, "parallel sessions (default: CPU count)")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "browse the set interactively in the terminal",
		Args:  cobra.ExactArgs(0),
		RunE:  runExplore,
	}
	addRenderFlags(exploreCmd)

	regionsCmd := &cobra.Command{
		Use:   "regions",
		Short: "list built-in regions",
		Args:  cobra.ExactArgs(0),
		RunE:  runRegions,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in render presets",
		Args:  cobra.ExactArgs(0),
		RunE:  runPresets,
	}

	rootCmd.AddCommand(renderCmd, profileCmd, serveCmd, workCmd, exploreCmd, regionsCmd, presetsCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func addRenderFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "start from a named preset")
	f.StringVar(&regionName, "region", "", "frame a named region")
	f.IntVar(&maxIterations, "iterations", config.DefaultMaxIterations, "iteration budget")
	f.Float64Var(&escapeRadius, "radius", config.DefaultEscapeRadius, "escape radius")
	f.Float64Var(&centerRe, "real", config.DefaultCenterRe, "center, real part")
	f.Float64Var(&centerIm, "imag", config.DefaultCenterIm, "center, imaginary part")
	f.Float64Var(&planeWidth, "width", config.DefaultWidth, "plane width spanned by the image")
	f.IntVar(&imageWidth, "image-width", config.DefaultImageWidth, "image width in pixels")
	f.IntVar(&imageHeight, "image-height", config.DefaultImageHeight, "image height in pixels")
	f.BoolVar(&smooth, "smooth", true, "smooth (renormalized) escape counts")
	f.StringVar(&paletteName, "palette", "plasma", "palette name")
	f.IntVar(&paletteSize, "palette-size", config.DefaultPaletteSize, "palette size")
	f.IntVar(&supersample, "supersample", 1, "supersampling factor")
	f.IntVar(&workers, "workers", 0, "render goroutines (default: CPU count)")
	f.IntVar(&tileSize, "tile-size", mandelbrot.DefaultTileSize, "farm tile edge length")
	f.StringVarP(&output, "output", "o", config.DefaultOutput, "output PNG path")
}

// resolveConfig layers the sources of render settings: defaults, then
// preset, then config file, then the region flag, then any flag set
// explicitly on the command line.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if regionName != "" {
		r, ok := mandelbrot.LandmarkByName(regionName)
		if !ok {
			return nil, fmt.Errorf("unknown region: %s (see 'mandelbrot regions')", regionName)
		}
		cfg.SetRegion(r)
	}

	flags := cmd.Flags()
	if flags.Changed("iterations") {
		cfg.MaxIterations = maxIterations
	}
	if flags.Changed("radius") {
		cfg.EscapeRadius = escapeRadius
	}
	if flags.Changed("real") {
		cfg.CenterRe = centerRe
	}
	if flags.Changed("imag") {
		cfg.CenterIm = centerIm
	}
	if flags.Changed("width") {
		cfg.Width = planeWidth
	}
	if flags.Changed("image-width") {
		cfg.ImageWidth = imageWidth
	}
	if flags.Changed("image-height") {
		cfg.ImageHeight = imageHeight
	}
	if flags.Changed("smooth") {
		cfg.Smooth = smooth
	}
	if flags.Changed("palette") {
		cfg.Palette = paletteName
	}
	if flags.Changed("palette-size") {
		cfg.PaletteSize = paletteSize
	}
	if flags.Changed("supersample") {
		cfg.Supersample = supersample
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("tile-size") {
		cfg.TileSize = tileSize
	}
	if flags.Changed("output") {
		cfg.Output = output
	}

	return cfg, nil
}
