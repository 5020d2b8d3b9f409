package display

import (
	"testing"

	"github.com/bshapka/life-in-go/utils"
)

func TestNewSelectsTerminalRenderer(t *testing.T) {
	for _, name := range []string{utils.RendererTerminal, ""} {
		config := utils.DefaultConfig()
		config.Renderer = name

		renderer, err := New(config)
		if err != nil {
			t.Fatalf("New(renderer=%q) failed: %v", name, err)
		}
		if _, ok := renderer.(*TerminalRenderer); !ok {
			t.Fatalf("New(renderer=%q) = %T, want *TerminalRenderer", name, renderer)
		}
	}
}

func TestNewRejectsUnknownRenderer(t *testing.T) {
	config := utils.DefaultConfig()
	config.Renderer = "holographic"

	if _, err := New(config); err == nil {
		t.Fatal("New accepted an unknown renderer name")
	}
}
