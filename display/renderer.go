package display

import (
	"os"

	"github.com/pkg/errors"

	"github.com/bshapka/life-in-go/model"
	"github.com/bshapka/life-in-go/utils"
)

// Renderer paints one world snapshot per frame. Implementations own any
// terminal or window state and release it in Close.
type Renderer interface {
	// Display renders the given snapshot.
	Display(w *model.World) error
	// Clear wipes the previous frame.
	Clear()
	// QuitRequested reports whether the user asked to stop. It may block
	// while the user holds the simulation paused.
	QuitRequested() bool
	// Close releases the renderer's resources.
	Close() error
}

// New builds the renderer selected by config.Renderer.
func New(config utils.Config) (Renderer, error) {
	switch config.Renderer {
	case utils.RendererTerminal, "":
		return NewTerminalRenderer(os.Stdout), nil
	case utils.RendererSDL:
		return NewSDLRenderer(config)
	default:
		return nil, errors.Errorf("[New] unknown renderer: %q", config.Renderer)
	}
}
