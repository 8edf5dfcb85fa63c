package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/bioproc/go-asm1/results"
	"github.com/bioproc/go-asm1/simulation"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleDocument(runID string, ts time.Time) *results.Document {
	return &results.Document{
		Version: results.SchemaVersion,
		Metadata: results.Metadata{
			RunID:     runID,
			Timestamp: ts,
			Solver:    "rk4",
			Status:    "success",
		},
		Data: results.Data{
			Points:    11,
			FinalTime: 10,
		},
		Assessment: results.Assessment{
			Performance: simulation.Performance{
				NH4Removal: 87.5,
				CODRemoval: 92.1,
			},
		},
	}
}

func TestSaveAndLoadRun(t *testing.T) {
	s := openTestStore(t)
	doc := sampleDocument("run-1", time.Now().UTC())

	if err := s.SaveRun(doc); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	got, err := s.LoadRun("run-1")
	if err != nil {
		t.Fatalf("LoadRun: %v", err)
	}
	if got.Metadata.RunID != "run-1" {
		t.Errorf("run ID = %q, want run-1", got.Metadata.RunID)
	}
	if got.Data.FinalTime != 10 {
		t.Errorf("final time = %g, want 10", got.Data.FinalTime)
	}
	if got.Assessment.Performance.NH4Removal != 87.5 {
		t.Errorf("NH4 removal = %g, want 87.5", got.Assessment.Performance.NH4Removal)
	}
}

func TestSaveRunReplacesExisting(t *testing.T) {
	s := openTestStore(t)
	doc := sampleDocument("run-1", time.Now().UTC())
	if err := s.SaveRun(doc); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	doc.Data.FinalTime = 42
	if err := s.SaveRun(doc); err != nil {
		t.Fatalf("SaveRun replace: %v", err)
	}

	got, err := s.LoadRun("run-1")
	if err != nil {
		t.Fatalf("LoadRun: %v", err)
	}
	if got.Data.FinalTime != 42 {
		t.Errorf("final time = %g, want the replacement 42", got.Data.FinalTime)
	}
	runs, err := s.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected a single row after replace, got %d", len(runs))
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"run-a", "run-b", "run-c"} {
		if err := s.SaveRun(sampleDocument(id, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("SaveRun %s: %v", id, err)
		}
	}

	runs, err := s.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].RunID != "run-c" || runs[2].RunID != "run-a" {
		t.Errorf("order = %s, %s, %s; want newest first", runs[0].RunID, runs[1].RunID, runs[2].RunID)
	}
	if runs[0].NH4Removal != 87.5 {
		t.Errorf("summary NH4 removal = %g, want 87.5", runs[0].NH4Removal)
	}

	limited, err := s.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns limit: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit 2 returned %d runs", len(limited))
	}
}

func TestDeleteRun(t *testing.T) {
	s := openTestStore(t)
	if err := s.SaveRun(sampleDocument("run-1", time.Now().UTC())); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if err := s.DeleteRun("run-1"); err != nil {
		t.Fatalf("DeleteRun: %v", err)
	}
	if _, err := s.LoadRun("run-1"); err == nil {
		t.Error("expected error loading a deleted run")
	}
	if err := s.DeleteRun("run-1"); err == nil {
		t.Error("expected error deleting a missing run")
	}
}

func TestLoadRunMissing(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.LoadRun("nope"); err == nil {
		t.Error("expected error for unknown run ID")
	}
}
