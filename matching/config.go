package matching

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/BurntSushi/torsmatch/mcq"
)

// Defaults used by DefaultConfig.
const (
	DefaultThreshold    = 60.0
	DefaultMinLength    = 3
	DefaultGapTolerance = 1
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid matcher configuration")

// Config controls how fragments are found.
type Config struct {
	// Threshold is the largest per-position MCQ, in degrees, for a pair of
	// residues to be considered corresponding.
	Threshold float64 `mapstructure:"threshold"`

	// MinLength is the fewest residue pairs a fragment may have.
	MinLength int `mapstructure:"min-length"`

	// GapTolerance is the number of consecutive positions above Threshold
	// that extension will bridge.
	GapTolerance int `mapstructure:"gap-tolerance"`

	// Workers is the number of goroutines computing the distance matrix.
	// Zero means one per CPU.
	Workers int `mapstructure:"workers"`
}

// DefaultConfig returns the configuration used when nothing else is known:
// a 60 degree threshold, fragments of at least 3 residues, and a single
// gap position.
func DefaultConfig() Config {
	return Config{
		Threshold:    DefaultThreshold,
		MinLength:    DefaultMinLength,
		GapTolerance: DefaultGapTolerance,
		Workers:      0,
	}
}

// Validate returns an error wrapping ErrInvalidConfig if any of the options
// are out of range.
func (c Config) Validate() error {
	switch {
	case !(c.Threshold > 0):
		return fmt.Errorf("%w: threshold must be positive, got %v",
			ErrInvalidConfig, c.Threshold)
	case c.Threshold > mcq.MaxDistance:
		return fmt.Errorf("%w: threshold must be at most %v degrees, got %v",
			ErrInvalidConfig, mcq.MaxDistance, c.Threshold)
	case c.MinLength < 1:
		return fmt.Errorf("%w: minimum fragment length must be positive, got %d",
			ErrInvalidConfig, c.MinLength)
	case c.GapTolerance < 0:
		return fmt.Errorf("%w: gap tolerance must not be negative, got %d",
			ErrInvalidConfig, c.GapTolerance)
	case c.Workers < 0:
		return fmt.Errorf("%w: worker count must not be negative, got %d",
			ErrInvalidConfig, c.Workers)
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers == 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}
