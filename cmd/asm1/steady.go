package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bioproc/go-asm1/asm"
	"github.com/bioproc/go-asm1/simulation"
)

func steady(args []string) error {
	fs := flag.NewFlagSet("steady", flag.ExitOnError)
	maxIters := fs.Int("max-iters", 1000, "Maximum relaxation iterations")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: asm1 steady <scenario.yaml> [options]

Estimate the reactor steady state by fixed-step relaxation. This is a
cheap screening calculation; use 'asm1 simulate' for accurate dynamics.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("scenario file required")
	}

	sc, err := LoadScenario(fs.Arg(0))
	if err != nil {
		return err
	}

	est := simulation.QuickSteadyState(sc.Config, sc.Reactor, sc.InfluentState(), *maxIters)

	if est.Converged {
		fmt.Printf("Converged after %d iterations (max change %.2e)\n", est.Iterations, est.MaxChange)
	} else {
		fmt.Printf("Not converged after %d iterations (max change %.2e); treat values as rough\n",
			est.Iterations, est.MaxChange)
	}

	arr := est.State.ToArray()
	for i, label := range asm.ComponentLabels {
		fmt.Printf("  %-5s %10.3f\n", label, arr[i])
	}
	return nil
}
