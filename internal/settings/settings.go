package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/athoscouto/codename"
	"github.com/kirsle/configdir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/tursodatabase/pentris/internal/flags"
	"github.com/tursodatabase/pentris/internal/tetris"
)

var ErrUnknownKey = errors.New("unknown setting")

// Config is the decoded settings file
type Config struct {
	Variant string       `mapstructure:"variant"`
	Player  string       `mapstructure:"player"`
	History bool         `mapstructure:"history"`
	LogFile string       `mapstructure:"log_file"`
	Rules   tetris.Rules `mapstructure:",squash"`
}

type Settings struct {
	path    string
	changed bool
}

var settings *Settings
var mu sync.Mutex

func defaults() map[string]any {
	rules := tetris.DefaultRules()
	return map[string]any{
		"variant":           tetris.VariantTetromino,
		"player":            "",
		"history":           true,
		"log_file":          "",
		"grid_width":        rules.Width,
		"grid_height":       rules.Height,
		"hidden_rows":       rules.HiddenRows,
		"spawn_row":         rules.SpawnRow,
		"fps":               rules.FPS,
		"lock_delay_frames": rules.LockDelayFrames,
		"gravity_base":      rules.GravityBase.String(),
		"max_level":         rules.MaxLevel,
	}
}

// ReadSettings loads settings.json from the config directory, creating it
// on first use. A random player name is picked when none is set.
func ReadSettings() (*Settings, error) {
	mu.Lock()
	defer mu.Unlock()
	if settings != nil {
		return settings, nil
	}

	configPath := configdir.LocalConfig("pentris")
	configPathFlag := viper.GetString("config-path")
	if len(configPathFlag) > 0 {
		configPath = configPathFlag
	}
	err := configdir.MakePath(configPath)
	if err != nil {
		return nil, err
	}
	if flags.ResetConfig() {
		err := os.Remove(filepath.Join(configPath, "settings.json"))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	for key, value := range defaults() {
		viper.SetDefault(key, value)
	}
	viper.SetConfigName("settings")
	viper.SetConfigType("json")
	viper.AddConfigPath(configPath)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Force config creation
			if err := viper.SafeWriteConfig(); err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	settings = &Settings{path: configPath}
	if viper.GetString("player") == "" {
		rng, err := codename.DefaultRNG()
		if err != nil {
			return nil, err
		}
		viper.Set("player", codename.Generate(rng, 0))
		settings.changed = true
	}
	return settings, nil
}

// PersistChanges writes the settings file if anything was changed
func PersistChanges() {
	if settings == nil || !settings.changed {
		return
	}

	if err := viper.WriteConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving settings: ", err)
	}
	settings.changed = false
}

// Path returns the config directory
func (s *Settings) Path() string {
	return s.path
}

// RankingDir is where the per variant high score files live
func (s *Settings) RankingDir() string {
	return filepath.Join(s.path, "rankings")
}

// HistoryPath is the sqlite file of finished games
func (s *Settings) HistoryPath() string {
	return filepath.Join(s.path, "history.db")
}

// Keys returns the known setting names, sorted
func (s *Settings) Keys() []string {
	keys := make([]string, 0, len(defaults()))
	for key := range defaults() {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a known setting
func (s *Settings) Get(key string) (string, error) {
	if _, ok := defaults()[key]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return viper.GetString(key), nil
}

// Set changes a setting. The whole configuration is decoded and validated
// with the new value before it is kept.
func (s *Settings) Set(key string, value string) error {
	if _, ok := defaults()[key]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	previous := viper.Get(key)
	viper.Set(key, value)
	if _, err := s.Config(); err != nil {
		viper.Set(key, previous)
		return err
	}
	s.changed = true
	return nil
}

// Config decodes and validates the settings
func (s *Settings) Config() (Config, error) {
	var config Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           &config,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(viper.AllSettings()); err != nil {
		return Config{}, fmt.Errorf("invalid settings: %w", err)
	}
	if _, err := tetris.CatalogByName(config.Variant); err != nil {
		return Config{}, err
	}
	if err := config.Rules.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}
