package sim

import (
	"fmt"

	"goracer/internal/car"
	"goracer/internal/track"
)

// TicksPerUpdate is how often the controller is polled for a fresh Action;
// the same Action is held between refreshes.
const TicksPerUpdate = 10

// TickLimit is the simulator's hard budget: a run that never finishes or
// crashes is reported unsuccessful once it is reached.
const TickLimit = 60_000

// Run drives the given track to completion with the given controller,
// following spec.md §4.3's tick loop exactly: poll the controller every
// TicksPerUpdate ticks, advance the bicycle model, check every swept corner
// for a wall hit then a finish-line crossing, and stop on the first of a
// crash, a finish, or TickLimit.
//
// Precondition: car.Width < 1.0, so that corner-only wall sampling cannot
// miss a wall passing between two corners.
func Run(t *track.Track, controller Controller) (Score, History, error) {
	if car.Width >= 1.0 {
		panic("sim: car.Width must be < 1.0 for corner-sweep wall collision to be sound")
	}

	state := t.InitialCarState
	history := History{States: []car.State{state}, Tps: car.TicksPerSecond}
	laps := newLapCounter(t.Laps)

	action, err := controller.Act(buildSensorView(t, state))
	if err != nil {
		return Score{}, history, fmt.Errorf("controller: %w", err)
	}
	action = action.Clamp()

	passedFinish := false
	ticks := 0

	for !passedFinish && ticks < TickLimit {
		if ticks != 0 && ticks%TicksPerUpdate == 0 {
			action, err = controller.Act(buildSensorView(t, state))
			if err != nil {
				return Score{}, history, fmt.Errorf("controller: %w", err)
			}
			action = action.Clamp()
		}
		ticks++

		before := state.Corners()

		var maxAcc float64
		if action.Acc >= 0 {
			maxAcc = state.MaxAcc()
		} else {
			maxAcc = state.MaxDec()
		}
		newSpeed := clampSpeed(state.Speed + action.Acc*maxAcc)
		dist := (state.Speed + newSpeed) / 2
		state.Speed = newSpeed
		state.Update(dist, action.Steering)

		history.States = append(history.States, state)

		after := state.Corners()

		for i := range before {
			if hitWall(t, before[i], after[i]) {
				return Score{Successful: false, Time: ticks}, history, nil
			}
		}

		for i := range before {
			if laps.cross(t, before[i], after[i]) {
				passedFinish = true
			}
		}
	}

	return Score{Successful: passedFinish, Time: ticks}, history, nil
}

func clampSpeed(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > car.MaxSpeed {
		return car.MaxSpeed
	}
	return v
}
