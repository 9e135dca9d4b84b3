package sim

import "goracer/internal/car"

// Controller is the one capability the simulator consumes: given the car's
// current SensorView, decide the next Action. Implementations are opaque to
// the simulator — a native closure, a rule-language interpreter, or a remote
// process all satisfy the same interface (spec.md §9, "no knowledge of how
// the controller is realised leaks into the core").
type Controller interface {
	Act(view SensorView) (car.Action, error)
}

// ControllerFunc adapts a plain function to the Controller interface.
type ControllerFunc func(SensorView) (car.Action, error)

// Act calls f.
func (f ControllerFunc) Act(view SensorView) (car.Action, error) {
	return f(view)
}
