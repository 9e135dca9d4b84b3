// Package controller implements a small rule-based program for driving the
// simulated car, standing in for the untrusted-code host spec.md treats as
// an external collaborator (the HTTP surface, sandboxing, and timeouts that
// would normally wrap it are out of scope here too). A program is a list of
// guarded actions evaluated top to bottom, falling through to a default
// action if no guard matches.
//
// Grammar, one rule per line:
//
//	if <sensor> <op> <value>: acc=<v> steer=<v>
//	default: acc=<v> steer=<v>
//
// <sensor> is one of "speed", "angle", or "dist[N]" for 0 <= N < 60 (an index
// into SensorView.DistToWall). <op> is one of < <= > >= ==. Blank lines and
// lines starting with '#' are ignored.
package controller

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"goracer/internal/car"
	"goracer/internal/sim"
)

// sensorField identifies which part of a SensorView a rule's guard reads.
type sensorField struct {
	kind  string // "speed", "angle", or "dist"
	index int    // meaningful only when kind == "dist"
}

func (f sensorField) value(view sim.SensorView) float64 {
	switch f.kind {
	case "speed":
		return view.SpeedFraction
	case "angle":
		return view.Angle
	default:
		return view.DistToWall[f.index]
	}
}

// comparator is one guard test.
type comparator func(lhs, rhs float64) bool

var comparators = map[string]comparator{
	"<":  func(a, b float64) bool { return a < b },
	"<=": func(a, b float64) bool { return a <= b },
	">":  func(a, b float64) bool { return a > b },
	">=": func(a, b float64) bool { return a >= b },
	"==": func(a, b float64) bool { return a == b },
}

// rule is one guarded action.
type rule struct {
	field  sensorField
	cmp    comparator
	value  float64
	action car.Action
}

// Program is a parsed rule-based controller.
type Program struct {
	rules  []rule
	def    car.Action
	hasDef bool
}

// Parse compiles source into a Program, or returns a descriptive error
// naming the offending line.
func Parse(source string) (*Program, error) {
	p := &Program{}

	scanner := bufio.NewScanner(strings.NewReader(source))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if rest, ok := strings.CutPrefix(line, "default:"); ok {
			action, err := parseAction(strings.TrimSpace(rest))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			p.def = action
			p.hasDef = true
			continue
		}

		rest, ok := strings.CutPrefix(line, "if ")
		if !ok {
			return nil, fmt.Errorf("line %d: expected \"if ...\" or \"default: ...\"", lineNo)
		}
		cond, actionSrc, ok := strings.Cut(rest, ":")
		if !ok {
			return nil, fmt.Errorf("line %d: missing ':' separating condition from action", lineNo)
		}

		r, err := parseCondition(strings.TrimSpace(cond))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		action, err := parseAction(strings.TrimSpace(actionSrc))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		r.action = action
		p.rules = append(p.rules, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}
	if !p.hasDef {
		return nil, fmt.Errorf("program has no \"default:\" action")
	}

	return p, nil
}

func parseCondition(cond string) (rule, error) {
	fields := strings.Fields(cond)
	if len(fields) != 3 {
		return rule{}, fmt.Errorf("expected \"<sensor> <op> <value>\", got %q", cond)
	}

	field, err := parseSensorField(fields[0])
	if err != nil {
		return rule{}, err
	}
	cmp, ok := comparators[fields[1]]
	if !ok {
		return rule{}, fmt.Errorf("unknown comparator %q", fields[1])
	}
	value, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return rule{}, fmt.Errorf("invalid threshold %q: %w", fields[2], err)
	}

	return rule{field: field, cmp: cmp, value: value}, nil
}

func parseSensorField(name string) (sensorField, error) {
	switch name {
	case "speed":
		return sensorField{kind: "speed"}, nil
	case "angle":
		return sensorField{kind: "angle"}, nil
	}
	if rest, ok := strings.CutPrefix(name, "dist["); ok {
		rest, ok = strings.CutSuffix(rest, "]")
		if !ok {
			return sensorField{}, fmt.Errorf("malformed sensor reference %q", name)
		}
		idx, err := strconv.Atoi(rest)
		if err != nil {
			return sensorField{}, fmt.Errorf("invalid dist index %q: %w", rest, err)
		}
		if idx < 0 || idx >= sim.NumberAnglesToCheck {
			return sensorField{}, fmt.Errorf("dist index %d out of range [0, %d)", idx, sim.NumberAnglesToCheck)
		}
		return sensorField{kind: "dist", index: idx}, nil
	}
	return sensorField{}, fmt.Errorf("unknown sensor %q", name)
}

func parseAction(src string) (car.Action, error) {
	fields := strings.Fields(src)
	if len(fields) != 2 {
		return car.Action{}, fmt.Errorf("expected \"acc=<v> steer=<v>\", got %q", src)
	}

	var action car.Action
	for _, field := range fields {
		key, val, ok := strings.Cut(field, "=")
		if !ok {
			return car.Action{}, fmt.Errorf("malformed assignment %q", field)
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return car.Action{}, fmt.Errorf("invalid value in %q: %w", field, err)
		}
		switch key {
		case "acc":
			action.Acc = f
		case "steer":
			action.Steering = f
		default:
			return car.Action{}, fmt.Errorf("unknown field %q", key)
		}
	}
	return action.Clamp(), nil
}

// Act implements sim.Controller: it evaluates each rule's guard in order
// against view, returning the first matching action, or the default if none
// matched.
func (p *Program) Act(view sim.SensorView) (car.Action, error) {
	for _, r := range p.rules {
		if r.cmp(r.field.value(view), r.value) {
			return r.action, nil
		}
	}
	return p.def, nil
}
