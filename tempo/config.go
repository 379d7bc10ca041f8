package tempo

import (
	"errors"
	"fmt"
	"os"

	"github.com/valerio/go-tempo/tempo/timing"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultUPS is the default number of fixed updates per second.
	DefaultUPS = 120
	// DefaultMaxFPS is the default maximum number of frames per second.
	DefaultMaxFPS = 60
)

// ErrInvalidConfig is returned when a rate setting would produce an
// undefined interval.
var ErrInvalidConfig = errors.New("invalid loop configuration")

// Config holds the loop settings.
//
// UpdatesPerSecond is the fixed update rate, on average over time; if the
// loop lags it will catch up. MaxFramesPerSecond caps the render rate; the
// actual rate can be lower because each frame is scheduled from the
// previous one, so frames slip over time.
type Config struct {
	UpdatesPerSecond   int `yaml:"updates_per_second"`
	MaxFramesPerSecond int `yaml:"max_frames_per_second"`

	// Clock overrides the time source, nil means the system clock.
	Clock timing.Clock `yaml:"-"`
}

// DefaultConfig returns a Config with the default rates.
func DefaultConfig() Config {
	return Config{
		UpdatesPerSecond:   DefaultUPS,
		MaxFramesPerSecond: DefaultMaxFPS,
	}
}

// Validate checks that both rates are positive and at most one per
// nanosecond. A rate outside that range would make the derived interval
// undefined or zero, so it is rejected here, before the loop is ever
// constructed.
func (c Config) Validate() error {
	if c.UpdatesPerSecond < 1 {
		return fmt.Errorf("%w: updates per second must be positive, got %d",
			ErrInvalidConfig, c.UpdatesPerSecond)
	}
	if c.UpdatesPerSecond > billion {
		return fmt.Errorf("%w: updates per second must be at most %d, got %d",
			ErrInvalidConfig, billion, c.UpdatesPerSecond)
	}
	if c.MaxFramesPerSecond < 1 {
		return fmt.Errorf("%w: max frames per second must be positive, got %d",
			ErrInvalidConfig, c.MaxFramesPerSecond)
	}
	if c.MaxFramesPerSecond > billion {
		return fmt.Errorf("%w: max frames per second must be at most %d, got %d",
			ErrInvalidConfig, billion, c.MaxFramesPerSecond)
	}
	return nil
}

// LoadConfig reads loop settings from a YAML file. Settings missing from
// the file keep their defaults; the result is validated before returning.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %v", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %v", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}
