package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skm-dev/gravstream/internal/body"
	"github.com/skm-dev/gravstream/internal/sim"
)

func TestSaveListRoundtrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	snaps := []sim.Snapshot{
		{Timestamp: 0, Bodies: []sim.BodySnapshot{
			{ID: 0, X: 1, Y: 0, Type: body.Solar, Mass: 1},
			{ID: 1, X: -1, Y: 0, Type: body.Planet, Mass: 1},
		}},
		{Timestamp: 0.001, Bodies: []sim.BodySnapshot{
			{ID: 0, X: 0.999, Y: 0.01, Type: body.Solar, Mass: 1},
			{ID: 1, X: -0.999, Y: -0.01, Type: body.Planet, Mass: 1},
		}},
	}

	runID, err := store.Save(RunMetadata{
		Preset:   "binary",
		Solver:   "leapfrog",
		Dt:       0.001,
		Duration: 0.001,
		Bodies:   2,
		Metrics:  map[string]float64{"energy_drift": 1e-9},
	}, snaps)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(runID, "binary_") {
		t.Errorf("run ID %q does not carry the preset name", runID)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 archived run, got %d", len(runs))
	}

	meta := runs[0]
	if meta.ID != runID || meta.Solver != "leapfrog" || meta.Bodies != 2 {
		t.Errorf("metadata roundtrip lost fields: %+v", meta)
	}
	if meta.Metrics["energy_drift"] != 1e-9 {
		t.Errorf("metrics not preserved: %+v", meta.Metrics)
	}
}

func TestSaveWritesSnapshotRows(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	snaps := []sim.Snapshot{
		{Timestamp: 0.5, Bodies: []sim.BodySnapshot{{ID: 0, X: 2, Y: 3, Type: body.Moon, Mass: 0.1}}},
	}
	runID, err := store.Save(RunMetadata{Preset: "ring"}, snaps)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, runID, "snapshots.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus 1 row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "moon") {
		t.Errorf("row missing body type: %q", lines[1])
	}
}

func TestListOnMissingDirectory(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "nope"))

	runs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty list, got %d", len(runs))
	}
}
