package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bioproc/go-asm1/results"
	"github.com/bioproc/go-asm1/store"
)

func runs(args []string) error {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	dbPath := fs.String("db", "runs.db", "SQLite database of archived runs")
	limit := fs.Int("limit", 20, "Maximum entries to list (0 = all)")
	export := fs.String("export", "", "Export a run (by ID) to a JSON file")
	runID := fs.String("id", "", "Run ID to export or delete")
	del := fs.Bool("delete", false, "Delete the run given by --id")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: asm1 runs [options]

List, export, or delete archived simulation runs.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  asm1 runs --db runs.db
  asm1 runs --db runs.db --id <run-id> --export run.json
  asm1 runs --db runs.db --id <run-id> --delete
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := store.Open(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	switch {
	case *del:
		if *runID == "" {
			return fmt.Errorf("--id required with --delete")
		}
		if err := db.DeleteRun(*runID); err != nil {
			return err
		}
		fmt.Printf("Deleted run %s\n", *runID)
		return nil

	case *export != "":
		if *runID == "" {
			return fmt.Errorf("--id required with --export")
		}
		doc, err := db.LoadRun(*runID)
		if err != nil {
			return err
		}
		if err := results.WriteJSON(doc, *export); err != nil {
			return err
		}
		fmt.Printf("Exported run %s to %s\n", *runID, *export)
		return nil

	default:
		summaries, err := db.ListRuns(*limit)
		if err != nil {
			return err
		}
		if len(summaries) == 0 {
			fmt.Println("No archived runs")
			return nil
		}
		fmt.Printf("%-36s  %-19s  %-6s  %-7s  %8s  %8s\n",
			"RUN", "TIME", "SOLVER", "STATUS", "NH4 %", "COD %")
		for _, r := range summaries {
			fmt.Printf("%-36s  %-19s  %-6s  %-7s  %8.1f  %8.1f\n",
				r.RunID, r.Timestamp.Format("2006-01-02 15:04:05"),
				r.Solver, r.Status, r.NH4Removal, r.CODRemoval)
		}
		return nil
	}
}
