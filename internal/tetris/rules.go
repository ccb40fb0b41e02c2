package tetris

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRules is returned by Rules.Validate
var ErrInvalidRules = errors.New("invalid rules")

// Rules are the timing and geometry constants of a game
type Rules struct {
	Width           int           `mapstructure:"grid_width"`
	Height          int           `mapstructure:"grid_height"`
	HiddenRows      int           `mapstructure:"hidden_rows"`
	SpawnRow        int           `mapstructure:"spawn_row"`
	FPS             int           `mapstructure:"fps"`
	LockDelayFrames int           `mapstructure:"lock_delay_frames"`
	GravityBase     time.Duration `mapstructure:"gravity_base"`
	MaxLevel        int           `mapstructure:"max_level"`
}

// DefaultRules returns the standard 10x40 game at 60 frames per second
func DefaultRules() Rules {
	return Rules{
		Width:           10,
		Height:          40,
		HiddenRows:      20,
		SpawnRow:        18,
		FPS:             60,
		LockDelayFrames: 30,
		GravityBase:     500 * time.Millisecond,
		MaxLevel:        30,
	}
}

// Validate checks that a game can be played with the rules
func (rules Rules) Validate() error {
	switch {
	case rules.Width < 5:
		return fmt.Errorf("%w: width %d is below 5", ErrInvalidRules, rules.Width)
	case rules.Height < 5:
		return fmt.Errorf("%w: height %d is below 5", ErrInvalidRules, rules.Height)
	case rules.HiddenRows < 0 || rules.HiddenRows >= rules.Height:
		return fmt.Errorf("%w: hidden rows %d outside [0, %d)", ErrInvalidRules, rules.HiddenRows, rules.Height)
	case rules.SpawnRow < 0 || rules.SpawnRow >= rules.Height:
		return fmt.Errorf("%w: spawn row %d outside [0, %d)", ErrInvalidRules, rules.SpawnRow, rules.Height)
	case rules.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive", ErrInvalidRules)
	case rules.LockDelayFrames < 0:
		return fmt.Errorf("%w: negative lock delay", ErrInvalidRules)
	case rules.GravityBase <= 0:
		return fmt.Errorf("%w: gravity base must be positive", ErrInvalidRules)
	}
	return nil
}

// GravityFrames converts the gravity interval at level into frames, at least one
func (rules Rules) GravityFrames(level int) int {
	frame := time.Second / time.Duration(rules.FPS)
	frames := int(TickInterval(rules.GravityBase, level) / frame)
	if frames < 1 {
		return 1
	}
	return frames
}

// FrameInterval returns the wall clock length of a frame
func (rules Rules) FrameInterval() time.Duration {
	return time.Second / time.Duration(rules.FPS)
}
