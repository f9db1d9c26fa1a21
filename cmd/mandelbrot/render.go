package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/ivantronics/mandelbrot"
	"github.com/ivantronics/mandelbrot/internal/config"
)

func runRender(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	set, vp, pal, err := cfg.Components()
	if err != nil {
		return err
	}

	if writeConfig != "" {
		if err := config.Save(writeConfig, cfg); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		log.Printf("wrote %s", writeConfig)
	}

	log.Printf("rendering %dx%d, %d iterations, width %.6g around %.6g%+.6gi",
		cfg.ImageWidth, cfg.ImageHeight, cfg.MaxIterations, cfg.Width, cfg.CenterRe, cfg.CenterIm)

	img := image.NewRGBA(vp.Bounds)
	start := time.Now()
	if err := mandelbrot.PaintSuperSampled(set, vp, pal, cfg.Smooth, img, cfg.Supersample, cfg.Workers); err != nil {
		return err
	}
	log.Printf("rendered in %v", time.Since(start))

	return savePNG(cfg.Output, img)
}

func runProfile(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	set, vp, _, err := cfg.Components()
	if err != nil {
		return err
	}

	row := cfg.ImageHeight / 2
	if cmd.Flags().Changed("row") {
		if profileRow < 0 || profileRow >= cfg.ImageHeight {
			return fmt.Errorf("row %d outside image height %d", profileRow, cfg.ImageHeight)
		}
		row = profileRow
	}

	data := make([]float64, cfg.ImageWidth)
	for x := range data {
		data[x] = set.Stability(vp.ToComplex(x, row), cfg.Smooth, true)
	}

	caption := fmt.Sprintf("stability along im = %.6g", imag(vp.ToComplex(0, row)))
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	))
	return nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	log.Printf("saved %s", path)
	return nil
}
