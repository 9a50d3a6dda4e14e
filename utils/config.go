package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/model"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a simulation run
type Config struct {
	Width      int              `json:"width"`
	Height     int              `json:"height"`
	Frames     int              `json:"frames"`
	FrameDelay time.Duration    `json:"frame_delay"`
	CellSize   int              `json:"cell_size"`
	Workers    int              `json:"workers"`
	Output     string           `json:"output"`
	Print      bool             `json:"print"`
	Alive      []model.Location `json:"alive"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:      model.DefaultWidth,
		Height:     model.DefaultHeight,
		Frames:     38,
		FrameDelay: 100 * time.Millisecond,
		CellSize:   16,
		Output:     "animated_chessboard.gif",
		Print:      false,
		Alive:      model.Glider(0, 0),
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

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid settings in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the settings a run cannot start without
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.Frames <= 0:
		return errors.Wrapf(ErrInvalidConfig, "frames must be positive, got %d", c.Frames)
	case c.FrameDelay < 0:
		return errors.Wrapf(ErrInvalidConfig, "frame_delay must not be negative, got %s", c.FrameDelay)
	case c.Output == "":
		return errors.Wrap(ErrInvalidConfig, "output path is empty")
	}
	return nil
}
