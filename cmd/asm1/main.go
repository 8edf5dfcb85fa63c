// Command asm1 runs ASM1 activated-sludge simulations from YAML scenario
// files: dynamic runs, quick steady-state screening, kinetic parameter
// sweeps, SVG charts, and a local archive of past runs.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "simulate":
		err = simulate(args)
	case "steady":
		err = steady(args)
	case "sweep":
		err = sweep(args)
	case "plot":
		err = plot(args)
	case "runs":
		err = runs(args)
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("asm1 version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`asm1 - activated sludge (ASM1) reactor simulation

Usage:
  asm1 <command> [options]

Commands:
  simulate   Run a dynamic simulation from a scenario file
  steady     Quick approximate steady-state screening
  sweep      Sweep one kinetic parameter across a range
  plot       Render an SVG chart from a saved results file
  runs       List or inspect archived runs
  help       Show this help
  version    Show version

Run 'asm1 <command> -h' for command options.`)
}
