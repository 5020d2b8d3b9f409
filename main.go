package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/bshapka/life-in-go/display"
	"github.com/bshapka/life-in-go/model"
	"github.com/bshapka/life-in-go/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
	}

	world, err := buildInitialWorld(config)
	if err != nil {
		fmt.Printf("Failed to seed world: %v\n", err)
		os.Exit(1)
	}

	renderer, err := display.New(config)
	if err != nil {
		fmt.Printf("Failed to initialise renderer: %v\n", err)
		os.Exit(1)
	}

	game := model.NewGame(world)
	stats := utils.NewStats()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var eg errgroup.Group
	eg.Go(func() error {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
		return nil
	})
	eg.Go(func() error {
		defer cancel()
		return runGame(ctx, game, renderer, config, stats)
	})

	runErr := eg.Wait()
	if err := renderer.Close(); err != nil {
		fmt.Printf("Failed to close renderer: %v\n", err)
	}
	if runErr != nil {
		fmt.Printf("Run failed: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
