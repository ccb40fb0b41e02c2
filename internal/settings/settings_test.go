package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/spf13/viper"
	"github.com/tursodatabase/pentris/internal/tetris"
)

func TestSettings(t *testing.T) {
	c := qt.New(t)

	dir := c.TempDir()
	viper.Set("config-path", dir)
	s, err := ReadSettings()
	c.Assert(err, qt.IsNil)
	c.Assert(s.Path(), qt.Equals, dir)
	c.Assert(s.HistoryPath(), qt.Equals, filepath.Join(dir, "history.db"))

	_, err = os.Stat(filepath.Join(dir, "settings.json"))
	c.Assert(err, qt.IsNil)

	config, err := s.Config()
	c.Assert(err, qt.IsNil)
	c.Assert(config.Variant, qt.Equals, tetris.VariantTetromino)
	c.Assert(config.Player, qt.Not(qt.Equals), "")
	c.Assert(config.History, qt.IsTrue)
	c.Assert(config.Rules, qt.Equals, tetris.DefaultRules())

	c.Run("set", func(c *qt.C) {
		c.Assert(s.Set("fps", "30"), qt.IsNil)
		c.Assert(s.Set("gravity_base", "1s"), qt.IsNil)
		c.Assert(s.Set("history", "false"), qt.IsNil)
		config, err := s.Config()
		c.Assert(err, qt.IsNil)
		c.Assert(config.Rules.FPS, qt.Equals, 30)
		c.Assert(config.Rules.GravityBase, qt.Equals, time.Second)
		c.Assert(config.History, qt.IsFalse)

		value, err := s.Get("fps")
		c.Assert(err, qt.IsNil)
		c.Assert(value, qt.Equals, "30")
	})

	c.Run("invalid", func(c *qt.C) {
		c.Assert(s.Set("variant", "hexomino"), qt.ErrorIs, tetris.ErrUnknownVariant)
		c.Assert(s.Set("fps", "0"), qt.ErrorIs, tetris.ErrInvalidRules)
		c.Assert(s.Set("colour", "red"), qt.ErrorIs, ErrUnknownKey)
		_, err := s.Get("colour")
		c.Assert(err, qt.ErrorIs, ErrUnknownKey)

		config, err := s.Config()
		c.Assert(err, qt.IsNil)
		c.Assert(config.Variant, qt.Equals, tetris.VariantTetromino)
		c.Assert(config.Rules.FPS, qt.Equals, 30)
	})

	c.Run("last sim cache", func(c *qt.C) {
		_, ok := s.LastSimCache()
		c.Assert(ok, qt.IsFalse)
		s.SetLastSimCache(LastSim{Variant: tetris.VariantPentomino, Seed: 7, Sessions: 4, Frames: 1000})
		sim, ok := s.LastSimCache()
		c.Assert(ok, qt.IsTrue)
		c.Assert(sim, qt.Equals, LastSim{Variant: tetris.VariantPentomino, Seed: 7, Sessions: 4, Frames: 1000})

		s.InvalidateLastSimCache()
		_, ok = s.LastSimCache()
		c.Assert(ok, qt.IsFalse)
		s.SetLastSimCache(LastSim{Variant: tetris.VariantTetromino, Seed: 9, Sessions: 2})
	})

	PersistChanges()
	data, err := os.ReadFile(filepath.Join(dir, "settings.json"))
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Contains, `"last_sim"`)
	c.Assert(string(data), qt.Contains, `"player"`)
}
