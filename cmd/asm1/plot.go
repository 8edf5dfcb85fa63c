package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bioproc/go-asm1/plotter"
	"github.com/bioproc/go-asm1/results"
)

func plot(args []string) error {
	fs := flag.NewFlagSet("plot", flag.ExitOnError)
	output := fs.String("output", "plot.svg", "Output SVG file")
	variables := fs.String("variables", "", "Comma-separated variables to plot (default: SS,SNH,SNO,XBH)")
	width := fs.Float64("width", 800, "Chart width in pixels")
	height := fs.Float64("height", 600, "Chart height in pixels")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: asm1 plot <results.json> [options]

Render state trajectories from a saved results file as an SVG chart.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  asm1 plot results.json --output cod.svg --variables "SS,XS"
  asm1 plot results.json --variables "SNH,SNO,SND"
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("results file required")
	}

	doc, err := results.ReadJSON(fs.Arg(0))
	if err != nil {
		return err
	}

	names := []string{"SS", "SNH", "SNO", "XBH"}
	if *variables != "" {
		names = nil
		for _, v := range strings.Split(*variables, ",") {
			names = append(names, strings.TrimSpace(v))
		}
	}

	p := plotter.NewSVGPlotter(*width, *height)
	p.SetTitle("ASM1 simulation")
	for _, name := range names {
		series, ok := doc.Data.Variables[name]
		if !ok {
			return fmt.Errorf("variable %q not in results", name)
		}
		p.AddSeries(doc.Data.Time, series, name, "")
	}

	if err := os.WriteFile(*output, []byte(p.Render()), 0644); err != nil {
		return fmt.Errorf("write SVG: %w", err)
	}
	fmt.Printf("Chart written to %s\n", *output)
	return nil
}
