package display

import (
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/bshapka/life-in-go/model"
	"github.com/bshapka/life-in-go/utils"
)

const windowTitle = "Game of Life"

// SDLRenderer draws each frame into an SDL window: live cells as green
// squares on a white background, scaled by the configured cell size.
type SDLRenderer struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	cellSize int32
}

// NewSDLRenderer opens a window sized to the scaled grid. The cell size
// must be positive and the scaled grid must fit the current display.
func NewSDLRenderer(config utils.Config) (*SDLRenderer, error) {
	if config.CellSize <= 0 {
		return nil, errors.Errorf("[NewSDLRenderer] cell size must be positive, got %d", config.CellSize)
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Wrap(err, "[NewSDLRenderer] failed to initialise SDL")
	}

	winWidth := int32(config.Width * config.CellSize)
	winHeight := int32(config.Height * config.CellSize)
	if mode, err := sdl.GetCurrentDisplayMode(0); err == nil && (winWidth > mode.W || winHeight > mode.H) {
		sdl.Quit()
		return nil, errors.Errorf("[NewSDLRenderer] %dx%d window exceeds the %dx%d display", winWidth, winHeight, mode.W, mode.H)
	}

	window, err := sdl.CreateWindow(windowTitle, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		winWidth, winHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrap(err, "[NewSDLRenderer] failed to create window")
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, errors.Wrap(err, "[NewSDLRenderer] failed to create renderer")
	}

	return &SDLRenderer{window: window, renderer: renderer, cellSize: int32(config.CellSize)}, nil
}

// Display paints the snapshot and presents the frame.
func (r *SDLRenderer) Display(w *model.World) error {
	if err := r.renderer.SetDrawColor(255, 255, 255, 255); err != nil {
		return errors.Wrap(err, "[Display] failed to set background colour")
	}
	if err := r.renderer.Clear(); err != nil {
		return errors.Wrap(err, "[Display] failed to clear frame")
	}

	if err := r.renderer.SetDrawColor(0, 255, 0, 255); err != nil {
		return errors.Wrap(err, "[Display] failed to set cell colour")
	}
	for row := 0; row < w.Height(); row++ {
		for col := 0; col < w.Width(); col++ {
			if !w.IsLive(row, col) {
				continue
			}
			cell := sdl.Rect{
				X: int32(col) * r.cellSize,
				Y: int32(row) * r.cellSize,
				W: r.cellSize,
				H: r.cellSize,
			}
			if err := r.renderer.FillRect(&cell); err != nil {
				return errors.Wrapf(err, "[Display] failed to draw cell (%d,%d)", row, col)
			}
		}
	}

	r.renderer.Present()
	return nil
}

// Clear is a no-op: Display repaints the whole frame.
func (r *SDLRenderer) Clear() {}

// QuitRequested drains pending window events. Closing the window or
// pressing q requests a stop; p pauses until p is pressed again.
func (r *SDLRenderer) QuitRequested() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_q:
				return true
			case sdl.K_p:
				if quit := r.waitForUnpause(); quit {
					return true
				}
			}
		}
	}
	return false
}

// waitForUnpause blocks until the next p keypress, reporting whether a
// quit arrived while paused.
func (r *SDLRenderer) waitForUnpause() bool {
	for {
		event := sdl.WaitEvent()
		if event == nil {
			return true
		}
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_q:
				return true
			case sdl.K_p:
				return false
			}
		}
	}
}

// Close tears down the window and shuts SDL off.
func (r *SDLRenderer) Close() error {
	if err := r.renderer.Destroy(); err != nil {
		return errors.Wrap(err, "[Close] failed to destroy renderer")
	}
	if err := r.window.Destroy(); err != nil {
		return errors.Wrap(err, "[Close] failed to destroy window")
	}
	sdl.Quit()
	return nil
}
