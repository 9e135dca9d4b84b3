package sim

import (
	"testing"

	"goracer/internal/geometry"
	"goracer/internal/track"
)

func TestWalkTilesFindsBorderCrossing(t *testing.T) {
	tr, err := track.Compile(minimalTrack, 1)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	// The start tile is at the grid centre; a segment straight through the
	// right-hand wall must be caught by the tile walk.
	start := tr.InitialCarState.Pos
	end := geometry.Point{X: start.X + 20, Y: start.Y}

	p, ok := walkTiles(tr, start, end, borderLine)
	if !ok {
		t.Fatalf("expected a border crossing")
	}
	if p.X <= start.X || p.X >= end.X {
		t.Errorf("crossing point %v not between start and end", p)
	}
}

func TestWalkTilesNoCrossingWithinRoom(t *testing.T) {
	tr, err := track.Compile(minimalTrack, 1)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	start := tr.InitialCarState.Pos
	end := geometry.Point{X: start.X + 0.1, Y: start.Y}

	if _, ok := walkTiles(tr, start, end, borderLine); ok {
		t.Errorf("expected no border crossing for a tiny segment inside the room")
	}
}
