package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/urfave/cli"
	"github.com/valerio/go-tempo/tempo"
)

func main() {
	app := cli.NewApp()
	app.Name = "tempo"
	app.Description = "A fixed-timestep event loop demo"
	app.Usage = "tempo [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "ups",
			Usage: "Fixed updates per second",
			Value: tempo.DefaultUPS,
		},
		cli.IntFlag{
			Name:  "max-fps",
			Usage: "Maximum frames per second",
			Value: tempo.DefaultMaxFPS,
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "Path to a YAML config file with loop settings",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run the loop without a display",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
		cli.BoolFlag{
			Name:  "sdl",
			Usage: "Use the SDL2 window source (requires -tags sdl2 build)",
		},
	}
	app.Action = run

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running loop", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	config, err := buildConfig(c)
	if err != nil {
		return err
	}

	if c.Bool("headless") {
		frames := c.Int("frames")
		if frames <= 0 {
			return errors.New("headless mode requires --frames option with a positive value")
		}
		return runHeadless(config, frames)
	}

	if c.Bool("sdl") {
		return runSDL(config)
	}

	return runTerminal(config)
}

func buildConfig(c *cli.Context) (tempo.Config, error) {
	config := tempo.DefaultConfig()

	if path := c.String("config"); path != "" {
		loaded, err := tempo.LoadConfig(path)
		if err != nil {
			return tempo.Config{}, err
		}
		config = loaded
	}

	if c.IsSet("ups") {
		config.UpdatesPerSecond = c.Int("ups")
	}
	if c.IsSet("max-fps") {
		config.MaxFramesPerSecond = c.Int("max-fps")
	}

	return config, nil
}
