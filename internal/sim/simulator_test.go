package sim

import (
	"errors"
	"testing"

	"goracer/internal/car"
	"goracer/internal/track"
)

const minimalTrack = "" +
	"+-----+\n" +
	"|xxxxx|\n" +
	"|x   x|\n" +
	"|x*s*x|\n" +
	"|x   x|\n" +
	"|xxxxx|\n" +
	"+-----+\n"

func stationaryController() Controller {
	return ControllerFunc(func(SensorView) (car.Action, error) {
		return car.Action{}, nil
	})
}

func constantController(acc, steering float64) Controller {
	return ControllerFunc(func(SensorView) (car.Action, error) {
		return car.Action{Acc: acc, Steering: steering}, nil
	})
}

func TestRunStationaryReachesTickLimit(t *testing.T) {
	tr, err := track.Compile(minimalTrack, 1)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	score, hist, err := Run(tr, stationaryController())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if score.Successful {
		t.Fatalf("expected an unsuccessful run, got successful")
	}
	if score.Time != TickLimit {
		t.Errorf("time = %d, want %d", score.Time, TickLimit)
	}
	if len(hist.States) != TickLimit+1 {
		t.Errorf("history length = %d, want %d", len(hist.States), TickLimit+1)
	}
	for _, s := range hist.States {
		if s != tr.InitialCarState {
			t.Fatalf("stationary run state changed: %+v vs initial %+v", s, tr.InitialCarState)
		}
	}
}

func TestRunCrashesDrivingForwardOffMinimalTrack(t *testing.T) {
	tr, err := track.Compile(minimalTrack, 1)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	score, hist, err := Run(tr, constantController(1, 0))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if score.Successful {
		t.Fatalf("expected a crash, got successful")
	}
	if score.Time == 0 || score.Time >= TickLimit {
		t.Errorf("expected a crash well before TickLimit, got time=%d", score.Time)
	}
	if hist.States[0] != tr.InitialCarState {
		t.Errorf("history[0] != initial state")
	}
	if len(hist.States) != score.Time+1 {
		t.Errorf("history length = %d, want %d", len(hist.States), score.Time+1)
	}
}

func TestRunControllerErrorAborts(t *testing.T) {
	tr, err := track.Compile(minimalTrack, 1)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	boom := errors.New("boom")
	controller := ControllerFunc(func(SensorView) (car.Action, error) {
		return car.Action{}, boom
	})

	_, _, err = Run(tr, controller)
	if err == nil {
		t.Fatalf("expected the controller error to abort the run")
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected the controller error to be wrapped, got %v", err)
	}
}

func TestRunSpeedAndAngleStayInBounds(t *testing.T) {
	tr, err := track.Compile(minimalTrack, 1)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	_, hist, err := Run(tr, constantController(1, 1))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, s := range hist.States {
		if s.Speed < 0 || s.Speed > car.MaxSpeed {
			t.Fatalf("state %d: speed %v out of [0, %v]", i, s.Speed, car.MaxSpeed)
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	tr, err := track.Compile(minimalTrack, 1)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	score1, hist1, err := Run(tr, constantController(1, -0.3))
	if err != nil {
		t.Fatalf("Run 1: %v", err)
	}
	score2, hist2, err := Run(tr, constantController(1, -0.3))
	if err != nil {
		t.Fatalf("Run 2: %v", err)
	}

	if score1 != score2 {
		t.Errorf("scores differ: %+v vs %+v", score1, score2)
	}
	if len(hist1.States) != len(hist2.States) {
		t.Fatalf("history lengths differ: %d vs %d", len(hist1.States), len(hist2.States))
	}
	for i := range hist1.States {
		if hist1.States[i] != hist2.States[i] {
			t.Fatalf("state %d differs: %+v vs %+v", i, hist1.States[i], hist2.States[i])
		}
	}
}
