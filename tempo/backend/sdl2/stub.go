//go:build !sdl2

package sdl2

import (
	"fmt"

	"github.com/valerio/go-tempo/tempo/input"
)

// Source stub for when SDL2 is not available
type Source struct{}

// New returns an error indicating SDL2 is not available
func New(title string, width, height int) (*Source, error) {
	return nil, fmt.Errorf("SDL2 source not available - build with -tags sdl2 to enable")
}

func (s *Source) ShouldClose() bool { return true }

func (s *Source) Size() (int, int) { return 0, 0 }

func (s *Source) Present() {}

func (s *Source) PollInput() (input.Event, bool) { return input.Event{}, false }

// Cleanup does nothing
func (s *Source) Cleanup() error { return nil }
