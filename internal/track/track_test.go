package track

import (
	"math"
	"strings"
	"testing"
)

const minimalTrack = "" +
	"+-----+\n" +
	"|xxxxx|\n" +
	"|x   x|\n" +
	"|x*s*x|\n" +
	"|x   x|\n" +
	"|xxxxx|\n" +
	"+-----+\n"

func TestCompileMinimalTrack(t *testing.T) {
	tr, err := Compile(minimalTrack, 1)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if tr.Width != 5 || tr.Height != 5 {
		t.Fatalf("got %dx%d, want 5x5", tr.Width, tr.Height)
	}
	if tr.InitialCarState.Angle != 3*math.Pi/2 {
		t.Errorf("initial angle = %v, want 3*pi/2", tr.InitialCarState.Angle)
	}
	if tr.InitialCarState.Speed != 0 {
		t.Errorf("initial speed = %v, want 0", tr.InitialCarState.Speed)
	}
}

func TestCompileBorderSegmentEndpointsOnDistinctEdges(t *testing.T) {
	tr, err := Compile(minimalTrack, 1)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for y, row := range tr.Grid {
		for x, tile := range row {
			if tile.Kind != Border {
				continue
			}
			onEdge := func(p [2]float64) bool {
				minX, minY := float64(x)*TileSize, float64(y)*TileSize
				maxX, maxY := minX+TileSize, minY+TileSize
				return p[0] == minX || p[0] == maxX || p[1] == minY || p[1] == maxY
			}
			a := [2]float64{tile.Segment[0].X, tile.Segment[0].Y}
			b := [2]float64{tile.Segment[1].X, tile.Segment[1].Y}
			if !onEdge(a) || !onEdge(b) {
				t.Errorf("tile (%d,%d) border segment %v not on tile edge", x, y, tile.Segment)
			}
			if a == b {
				t.Errorf("tile (%d,%d) border segment has coincident endpoints", x, y)
			}
		}
	}
}

func TestCompileFinishLineTilesMatchInput(t *testing.T) {
	input := "" +
		"+---------+\n" +
		"|xxxxxxxxx|\n" +
		"|x       x|\n" +
		"|x***s***x|\n" +
		"|x       x|\n" +
		"|xxxxxxxxx|\n" +
		"+---------+\n"
	tr, err := Compile(input, 1)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	count := 0
	for _, row := range tr.Grid {
		for _, tile := range row {
			if tile.ContainsFinishLine {
				count++
			}
		}
	}
	if count != 6 { // the 6 '*' tiles either side of 's'; the start tile itself is never marked
		t.Errorf("got %d finish-line tiles, want 6", count)
	}
}

func TestCompileRejectsMultipleStarts(t *testing.T) {
	input := strings.ReplaceAll(minimalTrack, "x   x", "x s x")
	if _, err := Compile(input, 1); err == nil {
		t.Fatalf("expected an error for multiple start tiles")
	}
}

func TestCompileRejectsUnreachableRegion(t *testing.T) {
	input := "" +
		"+-------+\n" +
		"|xxxxxxx|\n" +
		"|x s x x|\n" +
		"|x   x x|\n" +
		"|xxxxxxx|\n" +
		"+-------+\n"
	_, err := Compile(input, 1)
	if err == nil {
		t.Fatalf("expected an error for an unreachable region")
	}
}

func TestCompileRejectsSkinnyTrack(t *testing.T) {
	input := "" +
		"+-----+\n" +
		"|xxxxx|\n" +
		"|x x x|\n" +
		"|x s x|\n" +
		"|x x x|\n" +
		"|xxxxx|\n" +
		"+-----+\n"
	_, err := Compile(input, 1)
	if err == nil {
		t.Fatalf("expected an error for a skinny track")
	}
}

func TestCompileRejectsMisplacedFinishLine(t *testing.T) {
	input := "" +
		"+-------+\n" +
		"|xxxxxxx|\n" +
		"|x  *  x|\n" +
		"|x  s  x|\n" +
		"|x     x|\n" +
		"|xxxxxxx|\n" +
		"+-------+\n"
	_, err := Compile(input, 1)
	if err == nil {
		t.Fatalf("expected an error for a finish-line marker outside the start tile's span")
	}
}

func TestCompileAcceptsTrailingNewline(t *testing.T) {
	if _, err := Compile(minimalTrack, 1); err != nil {
		t.Fatalf("Compile with trailing newline: %v", err)
	}
	noTrailing := strings.TrimSuffix(minimalTrack, "\n")
	if _, err := Compile(noTrailing, 1); err != nil {
		t.Fatalf("Compile without trailing newline: %v", err)
	}
}
