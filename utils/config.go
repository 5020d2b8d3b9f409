package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Renderer selection values for Config.Renderer.
const (
	RendererTerminal = "terminal"
	RendererSDL      = "sdl"
)

// Config holds the driver-level settings for a run. None of it reaches the
// core: a world only ever sees dimensions and seed cells.
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	CellSize            int           `json:"cell_size"`
	FrameRate           time.Duration `json:"frame_rate"`
	Renderer            string        `json:"renderer"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	MaxGenerations      int           `json:"max_generations"`
	RandomDensity       float64       `json:"random_density"`
	SeedPatterns        bool          `json:"seed_patterns"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		CellSize:            10,
		FrameRate:           150 * time.Millisecond,
		Renderer:            RendererTerminal,
		AutoRestart:         true,
		StagnationThreshold: 5,
		MaxGenerations:      1000,
		RandomDensity:       0.1,
		SeedPatterns:        true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
