package leaderboard

import (
	"testing"

	"goracer/internal/sim"
)

func TestTopNRanksSuccessfulAboveUnsuccessful(t *testing.T) {
	var lb Leaderboard
	lb.Add("dnf", "x", sim.Score{Successful: false, Time: 10})
	lb.Add("winner", "y", sim.Score{Successful: true, Time: 5000})

	top := lb.TopN(2)
	if top[0].Username != "winner" {
		t.Errorf("got %q first, want \"winner\"", top[0].Username)
	}
}

func TestTopNRanksFasterTimeHigher(t *testing.T) {
	var lb Leaderboard
	lb.Add("slow", "x", sim.Score{Successful: true, Time: 2000})
	lb.Add("fast", "y", sim.Score{Successful: true, Time: 1000})

	top := lb.TopN(2)
	if top[0].Username != "fast" {
		t.Errorf("got %q first, want \"fast\"", top[0].Username)
	}
}

func TestTopNBreaksTiesWithShorterSource(t *testing.T) {
	var lb Leaderboard
	lb.Add("long", "aaaaaaaaaa", sim.Score{Successful: true, Time: 1000})
	lb.Add("short", "aa", sim.Score{Successful: true, Time: 1000})

	top := lb.TopN(2)
	if top[0].Username != "short" {
		t.Errorf("got %q first, want \"short\"", top[0].Username)
	}
}

func TestTopNInsertionOrderIndependent(t *testing.T) {
	var a, b Leaderboard
	entries := []Entry{
		{Username: "one", Source: "x", Score: sim.Score{Successful: true, Time: 100}},
		{Username: "two", Source: "y", Score: sim.Score{Successful: false, Time: 10}},
		{Username: "three", Source: "z", Score: sim.Score{Successful: true, Time: 50}},
	}
	for _, e := range entries {
		a.Add(e.Username, e.Source, e.Score)
	}
	for i := len(entries) - 1; i >= 0; i-- {
		b.Add(entries[i].Username, entries[i].Source, entries[i].Score)
	}

	topA, topB := a.TopN(3), b.TopN(3)
	for i := range topA {
		if topA[i].Username != topB[i].Username {
			t.Fatalf("rank %d differs by insertion order: %q vs %q", i, topA[i].Username, topB[i].Username)
		}
	}
}

func TestTopNClampsToAvailableEntries(t *testing.T) {
	var lb Leaderboard
	lb.Add("only", "x", sim.Score{Successful: true, Time: 1})
	if got := lb.TopN(10); len(got) != 1 {
		t.Errorf("got %d entries, want 1", len(got))
	}
}
