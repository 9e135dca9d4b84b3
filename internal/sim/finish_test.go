package sim

import (
	"math"
	"testing"

	"goracer/internal/geometry"
	"goracer/internal/track"
)

// corridorTrack is a wide-open straight hallway with the start tile at the
// very top (so the whole start row is markable as finish line) and a long
// run of open rows beneath it for a car heading "south" to travel through
// without ever nearing a wall.
const corridorTrack = "" +
	"+-------+\n" +
	"|***s***|\n" +
	"|       |\n" +
	"|       |\n" +
	"|       |\n" +
	"|       |\n" +
	"|       |\n" +
	"|       |\n" +
	"|       |\n" +
	"|       |\n" +
	"|       |\n" +
	"+-------+\n"

func buildCorridorTrack(t *testing.T, laps int) *track.Track {
	t.Helper()
	tr, err := track.Compile(corridorTrack, laps)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return tr
}

// TestRunFinishesDrivingThroughTheStartTile regression-tests the start tile
// itself carrying the finish line. Facing pi (see car.State.Update) makes a
// zero-steering run translate due south with no lateral drift at all, and at
// that heading car.State.Corners splits cleanly along X: the front corners
// land exactly on the start tile's column, the back corners one tile over.
// The test strips every other tile in the start row of its ContainsFinishLine
// flag so that column is the only one that can possibly register a crossing
// — if materializeFinishLine ever again left the start tile unmarked, the
// front corners' crossing would go undetected and the run would never
// succeed.
func TestRunFinishesDrivingThroughTheStartTile(t *testing.T) {
	tr := buildCorridorTrack(t, 0)
	tr.InitialCarState.Angle = math.Pi

	startRow := int(math.Floor(tr.InitialCarState.Pos.Y / track.TileSize))
	startCol := int(math.Floor(tr.InitialCarState.Pos.X / track.TileSize))
	for col := range tr.Grid[startRow] {
		if col != startCol {
			tr.Grid[startRow][col].ContainsFinishLine = false
		}
	}

	score, _, err := Run(tr, constantController(1, 0))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !score.Successful {
		t.Fatalf("expected a successful run driving straight through the finish line, got unsuccessful after %d ticks", score.Time)
	}
	if score.Time >= TickLimit {
		t.Errorf("expected to finish well before TickLimit, got time=%d", score.Time)
	}
}

// TestLapCounterDirectionDisciplineScenario4 covers spec scenario 4: a
// reversed (wrong-direction) crossing must add to the number of correctly
// oriented crossings still required, not merely be ignored.
func TestLapCounterDirectionDisciplineScenario4(t *testing.T) {
	tr := buildCorridorTrack(t, 1)
	lc := newLapCounter(tr.Laps)
	if lc.remaining != 4 {
		t.Fatalf("remaining after newLapCounter(1) = %d, want 4", lc.remaining)
	}

	cx := tr.InitialCarState.Pos.X
	fy := tr.FinishLine[0].Y
	below := geometry.Point{X: cx, Y: fy - 0.5}
	above := geometry.Point{X: cx, Y: fy + 0.5}

	// Driving backward through the line (south to north) is a reversed
	// crossing: it must increase the number of correct crossings still
	// needed, not decrease it.
	if finished := lc.cross(tr, below, above); finished {
		t.Fatalf("a reversed crossing must never finish the run")
	}
	if lc.remaining != 5 {
		t.Fatalf("remaining after one reversed crossing = %d, want 5", lc.remaining)
	}

	// Five correctly oriented crossings are now needed to bring the counter
	// to zero, not the usual four, since the reversed crossing added one
	// back; the crossing after that finishes the run.
	for i := 0; i < 5; i++ {
		if finished := lc.cross(tr, above, below); finished {
			t.Fatalf("crossing %d finished early with remaining=%d", i+1, lc.remaining)
		}
	}
	if lc.remaining != 0 {
		t.Fatalf("remaining after 5 correct crossings = %d, want 0", lc.remaining)
	}
	if finished := lc.cross(tr, above, below); !finished {
		t.Fatalf("the 6th correctly oriented crossing should finish the run")
	}
}
