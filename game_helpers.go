package main

import (
	"context"
	"fmt"
	"time"

	"github.com/bshapka/life-in-go/display"
	"github.com/bshapka/life-in-go/model"
	"github.com/bshapka/life-in-go/utils"
)

const (
	// How often the loop reports the live-cell count in windowed mode.
	reportInterval = 2 * time.Second
	// Generations between automatic reseeds of a run that never stalls.
	refreshInterval = 200
	// Fingerprints kept for stagnation detection.
	historySize = 5
)

// buildInitialWorld seeds the starting state: the classic patterns when the
// grid has room for them, plus a random fill at the configured density.
func buildInitialWorld(config utils.Config) (*model.World, error) {
	if !config.SeedPatterns {
		return model.RandomWorld(config.Height, config.Width, config.RandomDensity)
	}

	live := patternSeed(config.Height, config.Width)
	random, err := model.RandomWorld(config.Height, config.Width, config.RandomDensity)
	if err != nil {
		return nil, err
	}
	live = append(live, random.LiveCells()...)

	return model.NewWorld(config.Height, config.Width, live)
}

// patternSeed places gliders near the top corners and blinkers on the
// quarter lines, when the grid is big enough for them.
func patternSeed(height, width int) []model.Coordinate {
	if height < 10 || width < 10 {
		return nil
	}

	live := model.Glider(5, 5)
	if width >= 20 && height >= 15 {
		live = append(live, model.Glider(5, width-8)...)
	}

	live = append(live, model.Blinker(height/4, width/4)...)
	if width >= 30 {
		live = append(live, model.Blinker(3*height/4, 3*width/4)...)
	}

	return live
}

// stagnationTracker keeps a short history of world fingerprints so the loop
// can notice still lifes and short-period oscillators.
type stagnationTracker struct {
	history []string
}

// Observe records the world's fingerprint and reports whether it matches
// any of the last few generations.
func (t *stagnationTracker) Observe(w *model.World) bool {
	fingerprint := w.Fingerprint()

	stagnant := false
	for _, h := range t.history {
		if h == fingerprint {
			stagnant = true
			break
		}
	}

	t.history = append(t.history, fingerprint)
	if len(t.history) > historySize {
		t.history = t.history[1:]
	}
	return stagnant
}

// Reset forgets the history, e.g. after a reseed.
func (t *stagnationTracker) Reset() {
	t.history = nil
}

// shouldRestart decides whether the current run has played itself out.
func shouldRestart(population, stagnantCount, generation, lastRestartGen int, config utils.Config) (bool, string) {
	if population == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > lastRestartGen && (generation-lastRestartGen)%refreshInterval == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// displayStatus shows the current game status above the frame.
func displayStatus(generation int, world *model.World, stats *utils.Stats, lastRestartGen int) {
	population := world.Population()
	density := float64(population) / float64(world.Height()*world.Width()) * 100

	status := "Active"
	if population == 0 {
		status = "Extinct"
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, population, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// runGame owns the frame loop: render, step, and reseed until the context
// is cancelled, the user quits, or the generation limit is reached.
func runGame(ctx context.Context, game *model.Game, renderer display.Renderer, config utils.Config, stats *utils.Stats) error {
	frames := time.NewTicker(config.FrameRate)
	defer frames.Stop()
	reports := time.NewTicker(reportInterval)
	defer reports.Stop()

	// Terminal frames carry their own status header; windowed runs get a
	// periodic report line on the console instead.
	windowed := config.Renderer == utils.RendererSDL

	tracker := &stagnationTracker{}
	var (
		completed      = 0 // generations finished before the last reseed
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\n🛑 Shutting down gracefully...")
			return nil

		case <-reports.C:
			if windowed {
				fmt.Printf("Gen: %d | Living: %d\n",
					completed+game.GenerationCount(), game.CurrentWorld().Population())
			}

		case <-frames.C:
			if renderer.QuitRequested() {
				return nil
			}

			world := game.CurrentWorld()
			generation := completed + game.GenerationCount()

			frameStart := time.Now()
			stats.Update(generation, world.Population(), frameStart.Sub(lastFrameTime))
			lastFrameTime = frameStart

			renderer.Clear()
			if !windowed {
				displayStatus(generation, world, stats, lastRestartGen)
			}
			if err := renderer.Display(world); err != nil {
				return err
			}

			if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
				fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
				return nil
			}

			if tracker.Observe(world) {
				stagnantCount++
			} else {
				stagnantCount = 0
			}

			if restart, reason := shouldRestart(world.Population(), stagnantCount, generation, lastRestartGen, config); restart {
				if !config.AutoRestart {
					fmt.Printf("\nStopping: %s\n", reason)
					return nil
				}

				fmt.Printf("🔄 Restarting due to %s...\n", reason)
				fresh, err := buildInitialWorld(config)
				if err != nil {
					return err
				}
				fmt.Printf("✨ New patterns loaded! Living cells: %d\n", fresh.Population())

				completed += game.GenerationCount()
				lastRestartGen = completed
				game = model.NewGame(fresh)
				tracker.Reset()
				stagnantCount = 0
				continue
			}

			game.Step()
		}
	}
}
