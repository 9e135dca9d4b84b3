package sim

import (
	"goracer/internal/geometry"
	"goracer/internal/track"
)

// lapCounter tracks the signed lap count described by the glossary: four
// corners crossing the finish line once each makes one lap, decremented on a
// correctly oriented crossing and incremented on a reversed one. Finishing
// requires reaching zero on a correctly oriented crossing.
type lapCounter struct {
	remaining int
}

func newLapCounter(laps int) lapCounter {
	return lapCounter{remaining: 4 * laps}
}

// cross evaluates one corner sweep against the track's finish line, per
// spec.md §4.3.3, updating the counter and reporting whether the run has now
// finished.
func (lc *lapCounter) cross(t *track.Track, before, after geometry.Point) (finished bool) {
	f1 := t.FinishLine[0]
	if _, ok := walkTiles(t, before, after, finishLineOf(t.FinishLine[0], t.FinishLine[1])); !ok {
		return false
	}

	correctDirection := before.Y > f1.Y && after.Y < f1.Y

	switch {
	case correctDirection && lc.remaining == 0:
		return true
	case correctDirection:
		lc.remaining--
		return false
	default:
		lc.remaining++
		return false
	}
}
