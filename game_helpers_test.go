package main

import (
	"testing"

	"github.com/bshapka/life-in-go/model"
	"github.com/bshapka/life-in-go/utils"
)

// ---- helpers ----

func mustWorld(t *testing.T, height, width int, live []model.Coordinate) *model.World {
	t.Helper()
	world, err := model.NewWorld(height, width, live)
	if err != nil {
		t.Fatalf("NewWorld(%d, %d, %v) failed: %v", height, width, live, err)
	}
	return world
}

// ---- stagnation tracking ----

func TestStagnationTrackerSpotsOscillators(t *testing.T) {
	tracker := &stagnationTracker{}

	world := mustWorld(t, 5, 5, model.Blinker(2, 1))
	if tracker.Observe(world) {
		t.Fatal("first observation reported stagnation")
	}

	next := world.NextGeneration()
	if tracker.Observe(next) {
		t.Fatal("second phase of the blinker reported stagnation")
	}

	// One full period later the fingerprint repeats.
	if !tracker.Observe(next.NextGeneration()) {
		t.Fatal("repeated fingerprint not reported as stagnation")
	}
}

func TestStagnationTrackerHistoryIsBounded(t *testing.T) {
	tracker := &stagnationTracker{}

	worlds := make([]*model.World, historySize+1)
	for i := range worlds {
		worlds[i] = mustWorld(t, 1, 10, []model.Coordinate{{Row: 0, Col: i}})
		if tracker.Observe(worlds[i]) {
			t.Fatalf("distinct world %d reported as stagnant", i)
		}
	}

	// The first fingerprint has been evicted by now.
	if tracker.Observe(worlds[0]) {
		t.Fatal("evicted fingerprint still reported as stagnant")
	}
}

func TestStagnationTrackerReset(t *testing.T) {
	tracker := &stagnationTracker{}
	world := mustWorld(t, 5, 5, model.Block(1, 1))

	tracker.Observe(world)
	tracker.Reset()

	if tracker.Observe(world) {
		t.Fatal("fingerprint survived a reset")
	}
}

// ---- restart policy ----

func TestShouldRestartOnExtinction(t *testing.T) {
	restart, reason := shouldRestart(0, 0, 17, 0, utils.DefaultConfig())

	if !restart || reason != "extinction" {
		t.Fatalf("shouldRestart on empty world = (%v, %q), want (true, extinction)", restart, reason)
	}
}

func TestShouldRestartOnStagnation(t *testing.T) {
	config := utils.DefaultConfig()

	restart, reason := shouldRestart(12, config.StagnationThreshold, 17, 0, config)
	if !restart || reason != "stagnation detected" {
		t.Fatalf("shouldRestart at threshold = (%v, %q), want (true, stagnation detected)", restart, reason)
	}

	if restart, _ := shouldRestart(12, config.StagnationThreshold-1, 17, 0, config); restart {
		t.Fatal("shouldRestart below threshold requested a restart")
	}
}

func TestShouldRestartPeriodicRefresh(t *testing.T) {
	config := utils.DefaultConfig()

	restart, reason := shouldRestart(12, 0, refreshInterval, 0, config)
	if !restart || reason != "periodic refresh" {
		t.Fatalf("shouldRestart at refresh interval = (%v, %q), want (true, periodic refresh)", restart, reason)
	}

	// The interval counts from the last reseed, not from zero.
	if restart, _ := shouldRestart(12, 0, refreshInterval, refreshInterval, config); restart {
		t.Fatal("shouldRestart right after a reseed requested a restart")
	}
	if restart, _ := shouldRestart(12, 0, refreshInterval+1, 0, config); restart {
		t.Fatal("shouldRestart off the interval requested a restart")
	}
}

func TestShouldRestartHealthyRun(t *testing.T) {
	if restart, reason := shouldRestart(12, 0, 17, 0, utils.DefaultConfig()); restart {
		t.Fatalf("healthy run requested a restart: %q", reason)
	}
}

// ---- seeding ----

func TestPatternSeedSmallGridGetsNoPatterns(t *testing.T) {
	for _, dims := range []struct{ height, width int }{
		{9, 9}, {9, 40}, {40, 9},
	} {
		if got := patternSeed(dims.height, dims.width); got != nil {
			t.Fatalf("patternSeed(%d, %d) = %v, want nil", dims.height, dims.width, got)
		}
	}
}

func TestPatternSeedStaysInBounds(t *testing.T) {
	for _, dims := range []struct{ height, width int }{
		{10, 10}, {15, 20}, {30, 60}, {100, 200}, {12, 35},
	} {
		live := patternSeed(dims.height, dims.width)
		if len(live) == 0 {
			t.Fatalf("patternSeed(%d, %d) returned no cells", dims.height, dims.width)
		}
		// NewWorld rejects anything outside the grid.
		mustWorld(t, dims.height, dims.width, live)
	}
}

func TestPatternSeedGrowsWithTheGrid(t *testing.T) {
	small := len(patternSeed(10, 10))
	large := len(patternSeed(30, 60))

	if small >= large {
		t.Fatalf("seed sizes: 10x10=%d, 30x60=%d, want the larger grid to carry more patterns", small, large)
	}
}

func TestBuildInitialWorldPatternsOnly(t *testing.T) {
	config := utils.DefaultConfig()
	config.RandomDensity = 0 // no noise, patterns only

	world, err := buildInitialWorld(config)
	if err != nil {
		t.Fatalf("buildInitialWorld failed: %v", err)
	}

	want := patternSeed(config.Height, config.Width)
	if got := world.Population(); got != len(want) {
		t.Fatalf("population = %d, want %d pattern cells", got, len(want))
	}
	for _, c := range want {
		if !world.IsLive(c.Row, c.Col) {
			t.Fatalf("pattern cell %v is dead", c)
		}
	}
}

func TestBuildInitialWorldRandomOnly(t *testing.T) {
	config := utils.DefaultConfig()
	config.SeedPatterns = false
	config.RandomDensity = 0

	world, err := buildInitialWorld(config)
	if err != nil {
		t.Fatalf("buildInitialWorld failed: %v", err)
	}
	if got := world.Population(); got != 0 {
		t.Fatalf("population = %d, want 0 with zero density and no patterns", got)
	}
}
