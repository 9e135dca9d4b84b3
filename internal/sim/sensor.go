package sim

import (
	"math"

	"goracer/internal/car"
	"goracer/internal/geometry"
	"goracer/internal/track"
)

// NumberAnglesToCheck is the fixed width of a SensorView's dist-to-wall fan.
const NumberAnglesToCheck = 60

// distanceQuantum is the sensor resolution: reported distances are snapped to
// the nearest 1/16 unit to keep controllers insulated from floating-point
// noise, per spec.md §4.3.5 step 3.
const distanceQuantum = 16.0

// SensorView is the read-only snapshot of the car and its surroundings
// handed to a Controller on a refresh tick.
type SensorView struct {
	Pos           geometry.Point
	Angle         float64
	SpeedFraction float64
	// DistToWall is ordered strictly left to right relative to the car:
	// index 0 is the ray at Angle + pi/2, the last index at Angle - pi/2.
	DistToWall [NumberAnglesToCheck]float64
}

// buildSensorView constructs the SensorView for the car's current state,
// casting NumberAnglesToCheck rays from car.Pos out to the track's bounding
// rectangle and finding the nearest wall along each, per spec.md §4.3.5.
func buildSensorView(t *track.Track, state car.State) SensorView {
	view := SensorView{
		Pos:           state.Pos,
		Angle:         state.Angle,
		SpeedFraction: state.Speed / car.MaxSpeed,
	}

	baseAngle := state.Angle + math.Pi/2
	angleDelta := math.Pi / (NumberAnglesToCheck - 1)
	minPt, maxPt := t.BoundingRect()

	for i := 0; i < NumberAnglesToCheck; i++ {
		angle := baseAngle - float64(i)*angleDelta
		edge := projectToRect(state.Pos, angle, minPt, maxPt)

		wallPoint, ok := walkTiles(t, state.Pos, edge, borderLine)
		if !ok {
			// A track built by the compiler always encloses its bounding
			// rectangle with border tiles, so every ray must hit a wall
			// before leaving it; failing to find one is a bug, not a user
			// fault (spec.md §7's "internal invariants").
			panic("sim: sensor ray found no wall before leaving the track bounds")
		}

		dist := wallPoint.Sub(state.Pos).Length()
		view.DistToWall[i] = math.Round(dist*distanceQuantum) / distanceQuantum
	}

	return view
}

// projectToRect returns the point where the ray from origin at the given
// angle leaves the axis-aligned rectangle spanned by min/max — chosen by
// which quadrant the angle's cosine/sine fall in, i.e. which pair of
// rectangle edges the ray can possibly reach first.
func projectToRect(origin geometry.Point, angle float64, min, max geometry.Point) geometry.Point {
	dx, dy := math.Cos(angle), math.Sin(angle)

	tx := math.Inf(1)
	switch {
	case dx > 0:
		tx = (max.X - origin.X) / dx
	case dx < 0:
		tx = (min.X - origin.X) / dx
	}

	ty := math.Inf(1)
	switch {
	case dy > 0:
		ty = (max.Y - origin.Y) / dy
	case dy < 0:
		ty = (min.Y - origin.Y) / dy
	}

	t := math.Min(tx, ty)
	return geometry.Point{X: origin.X + dx*t, Y: origin.Y + dy*t}
}
