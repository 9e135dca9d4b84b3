// Package car holds the bicycle-model car state and kinematics shared by the
// racetrack compiler (which needs to describe a starting state) and the
// simulator (which advances it tick by tick).
package car

import (
	"math"

	"goracer/internal/geometry"
)

const (
	// TicksPerSecond is the fixed simulation rate.
	TicksPerSecond = 100

	// Length is the car's length along its heading, in world units.
	Length = 1.0
	// Width is the car's width across its heading, in world units. The
	// simulator's wall-collision check only samples the four corner sweeps,
	// which is only sound while Width < 1.0 tile (see sim.Run).
	Width = 0.3

	// MaxSpeed is the car's top speed, in world units per tick.
	MaxSpeed = 10.0 / TicksPerSecond
	// MaxAcc is the car's maximum forward acceleration at a standstill, in
	// units/tick^2. The usable acceleration scales down to zero as speed
	// approaches MaxSpeed — see State.MaxAcc.
	MaxAcc = 0.5 * MaxSpeed / TicksPerSecond
	// MaxDec is the car's maximum braking deceleration at top speed, in
	// units/tick^2. The usable deceleration scales down to zero as speed
	// approaches zero — see State.MaxDec.
	MaxDec = 0.3 * MaxSpeed / TicksPerSecond
)

// State is a snapshot of the car at a single tick.
type State struct {
	Pos   geometry.Point
	Angle float64 // radians, anticlockwise from +x
	Speed float64 // units per tick, always in [0, MaxSpeed]
}

// MaxAcc returns the car's maximum available acceleration at its current
// speed: full MaxAcc at a standstill, tapering linearly to zero at top speed.
func (s State) MaxAcc() float64 {
	return (1 - s.Speed/MaxSpeed) * MaxAcc
}

// MaxDec returns the car's maximum available deceleration at its current
// speed: zero at a standstill, tapering linearly up to MaxDec at top speed.
func (s State) MaxDec() float64 {
	return (s.Speed / MaxSpeed) * MaxDec
}

// Action is one controller decision: how hard to accelerate/brake, and how
// far to turn the wheel.
type Action struct {
	Acc      float64 // clamped to [-1, 1]; positive accelerates, negative brakes
	Steering float64 // clamped to [-1, 1]; interpreted as wheel angle in [-pi/4, pi/4]
}

// Clamp returns a, with Acc and Steering clamped to [-1, 1].
func (a Action) Clamp() Action {
	return Action{Acc: clamp(a.Acc, -1, 1), Steering: clamp(a.Steering, -1, 1)}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Corners returns the car's four corners in world space, ordered front-right,
// front-left, back-right, back-left.
func (s State) Corners() [4]geometry.Point {
	toFront := geometry.Point{X: math.Cos(s.Angle) * Length, Y: math.Sin(s.Angle) * Length}
	toRight := geometry.Point{X: math.Sin(s.Angle) * Width, Y: -math.Cos(s.Angle) * Width}

	return [4]geometry.Point{
		s.Pos.Add(toFront).Add(toRight), // front right
		s.Pos.Add(toFront).Sub(toRight), // front left
		s.Pos.Sub(toFront).Add(toRight), // back right
		s.Pos.Sub(toFront).Sub(toRight), // back left
	}
}

// Update advances the car by distance world units, with the wheel turned to
// wheelInput (clamped to [-1, 1], mapped to a physical wheel angle in
// [-pi/4, pi/4]). It implements a single-track (bicycle) motion model: the
// car sweeps an arc whose radius is set by the wheel angle and the car's
// width, except when the wheel is centered, in which case it simply moves
// straight ahead.
func (s *State) Update(distance, wheelInput float64) {
	wheelInput = clamp(wheelInput, -1, 1)
	theta := wheelInput * math.Pi / 4

	var shift geometry.Point
	var angleChange float64

	switch {
	case theta == 0:
		shift = geometry.Point{X: 0, Y: distance}
		angleChange = 0

	case theta > 0: // turning right
		r := Width / (2 * math.Sin(theta/2))
		alpha := distance / r
		shift = geometry.Point{X: r * (1 - math.Cos(alpha)), Y: r * math.Sin(alpha)}
		angleChange = -alpha

	default: // turning left
		thetaAbs := -theta
		r := Width / (2 * math.Sin(thetaAbs/2))
		alpha := distance / r
		shift = geometry.Point{X: r * (math.Cos(alpha) - 1), Y: r * math.Sin(alpha)}
		angleChange = alpha
	}

	cosA, sinA := math.Cos(s.Angle), math.Sin(s.Angle)
	rotated := geometry.Point{
		X: shift.X*cosA - shift.Y*sinA,
		Y: shift.X*sinA + shift.Y*cosA,
	}

	s.Pos = s.Pos.Add(rotated)
	s.Angle += angleChange
}
