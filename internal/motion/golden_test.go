package motion

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

type goldenRow struct {
	tick  int
	angle float64
	dir   Direction
}

func loadGolden(t *testing.T, name string) []goldenRow {
	t.Helper()

	f, err := os.Open(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("open golden: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}

	rows := make([]goldenRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		tick, err := strconv.Atoi(rec[0])
		if err != nil {
			t.Fatalf("bad tick %q: %v", rec[0], err)
		}
		angle, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			t.Fatalf("bad angle %q: %v", rec[1], err)
		}
		dir, err := strconv.Atoi(rec[2])
		if err != nil {
			t.Fatalf("bad direction %q: %v", rec[2], err)
		}
		rows = append(rows, goldenRow{tick, angle, Direction(dir)})
	}
	return rows
}

func TestSwingGoldenSequence(t *testing.T) {
	rows := loadGolden(t, "swing_200.golden")
	if len(rows) != 201 {
		t.Fatalf("expected 201 golden rows, got %d", len(rows))
	}

	rig := NewRig(DefaultParams())
	got := rig.Frame()

	for i, want := range rows {
		if i > 0 {
			got = rig.Step()
		}
		if got.Tick != want.tick {
			t.Fatalf("row %d: expected tick %d, got %d", i, want.tick, got.Tick)
		}
		// Exact comparison: the sequence must match bit for bit.
		if got.Swing != want.angle || got.Direction != want.dir {
			t.Fatalf("tick %d: expected (%v, %v), got (%v, %v)",
				want.tick, want.angle, want.dir, got.Swing, got.Direction)
		}
	}
}
