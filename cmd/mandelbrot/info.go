package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ivantronics/mandelbrot"
	"github.com/ivantronics/mandelbrot/internal/config"
)

func runRegions(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCENTER\tWIDTH")
	for _, l := range mandelbrot.Landmarks() {
		c := l.Region.Center()
		fmt.Fprintf(w, "%s\t%.6g%+.6gi\t%.4g\n", l.Name, real(c), imag(c), l.Region.Width())
	}
	return w.Flush()
}

func runPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tITERATIONS\tPALETTE\tOUTPUT")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%s\t%s\n",
			name, p.ImageWidth, p.ImageHeight, p.MaxIterations, p.Palette, p.Output)
	}
	return w.Flush()
}
