//go:build !sdl2

package main

import (
	"fmt"

	"github.com/valerio/go-tempo/tempo"
)

func runSDL(config tempo.Config) error {
	return fmt.Errorf("SDL2 source not available - build with -tags sdl2 to enable")
}
