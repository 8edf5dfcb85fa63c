package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bioproc/go-asm1/results"
	"github.com/bioproc/go-asm1/simulation"
	"github.com/bioproc/go-asm1/store"
)

func simulate(args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	output := fs.String("output", "", "Output file for results JSON (required)")
	downsample := fs.Int("downsample", 150, "Target number of stored points (0 = all)")
	dbPath := fs.String("db", "", "Also archive the run in this SQLite database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: asm1 simulate <scenario.yaml> [options]

Run a dynamic ASM1 simulation described by a scenario file.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  asm1 simulate plant.yaml --output results.json
  asm1 simulate plant.yaml --output results.json --db runs.db
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("scenario file required")
	}
	if *output == "" {
		fs.Usage()
		return fmt.Errorf("--output required")
	}

	sc, err := LoadScenario(fs.Arg(0))
	if err != nil {
		return err
	}

	res, err := simulation.Run(sc.Config, sc.Reactor, sc.InfluentState())
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	doc := results.FromSimulation(res, *downsample)
	if err := results.WriteJSON(doc, *output); err != nil {
		return err
	}

	if *dbPath != "" {
		db, err := store.Open(*dbPath)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.SaveRun(doc); err != nil {
			return err
		}
	}

	printSummary(res)
	fmt.Printf("Results written to %s (run %s)\n", *output, doc.Metadata.RunID)
	return nil
}

func printSummary(res *simulation.Result) {
	d := res.Diagnostics
	if !d.Success {
		fmt.Printf("Solver did not complete: %s\n", d.Message)
	}
	fmt.Printf("Solver %s, %d steps, %.3f s\n", d.Solver, d.TotalSteps, d.ComputeTime)
	fmt.Printf("Effluent: COD %.1f  BOD5 %.1f  TSS %.1f  NH4 %.2f  NO3 %.2f (g/m3)\n",
		res.Effluent.COD, res.Effluent.BOD5, res.Effluent.TSS, res.Effluent.NH4, res.Effluent.NO3)
	fmt.Printf("Removal: COD %.1f%%  BOD %.1f%%  NH4 %.1f%%  TN %.1f%%\n",
		res.Performance.CODRemoval, res.Performance.BODRemoval,
		res.Performance.NH4Removal, res.Performance.TNRemoval)
	fmt.Printf("Oxygen demand %.1f kg/d, sludge %.1f kg VSS/d\n",
		res.Oxygen.Total, res.Sludge.TotalVSS)
	if res.SteadyState.Reached {
		fmt.Printf("Steady state reached at t=%.2f d\n", res.SteadyState.Time)
	} else {
		fmt.Println("Steady state not reached within the horizon")
	}
}
