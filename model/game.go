package model

// Game drives a World through successive generations. It owns exactly one
// current snapshot and a counter of how many steps produced it.
type Game struct {
	world      *World
	generation int
}

// NewGame wraps an initial world. The generation counter starts at zero.
func NewGame(initial *World) *Game {
	return &Game{world: initial}
}

// Step replaces the current world with its next generation and advances
// the counter by one.
func (g *Game) Step() {
	g.world = g.world.NextGeneration()
	g.generation++
}

// CurrentWorld returns the current snapshot for inspection or rendering.
func (g *Game) CurrentWorld() *World {
	return g.world
}

// GenerationCount returns the number of steps taken so far.
func (g *Game) GenerationCount() int {
	return g.generation
}
