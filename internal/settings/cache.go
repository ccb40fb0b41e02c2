package settings

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Entry[T any] struct {
	Expiration int64 `json:"expiration"`
	Data       T     `json:"data"`
}

var ErrExpired = errors.New("cache entry expired")

func cacheKey(key string) string {
	return "cache." + key
}

func setCache[T any](key string, ttl int64, value T) error {
	entry := Entry[T]{Data: value}
	if ttl > 0 {
		entry.Expiration = time.Now().Unix() + ttl
	}
	viper.Set(cacheKey(key), entry)
	settings.changed = true
	return nil
}

func getCache[T any](key string) (T, error) {
	entry := Entry[T]{}
	value := viper.Get(cacheKey(key))
	if err := mapstructure.Decode(value, &entry); err != nil {
		return entry.Data, fmt.Errorf("failed to get cache data for %s", key)
	}

	if entry.Expiration != 0 && entry.Expiration < time.Now().Unix() {
		return entry.Data, ErrExpired
	}

	return entry.Data, nil
}

// invalidateCache replaces the entry with an expired one
func invalidateCache[T any](key string) error {
	viper.Set(cacheKey(key), Entry[T]{Expiration: 1})
	settings.changed = true
	return nil
}

const LAST_SIM_CACHE_KEY = "last_sim"

// LastSim is the setup of the previous simulation, kept for replays
type LastSim struct {
	Variant  string `json:"variant"`
	Seed     int64  `json:"seed"`
	Sessions int    `json:"sessions"`
	Frames   int    `json:"frames"`
}

func (s *Settings) SetLastSimCache(sim LastSim) {
	setCache(LAST_SIM_CACHE_KEY, 0, sim)
}

func (s *Settings) LastSimCache() (LastSim, bool) {
	sim, err := getCache[LastSim](LAST_SIM_CACHE_KEY)
	if err != nil || sim.Sessions == 0 {
		return LastSim{}, false
	}
	return sim, true
}

func (s *Settings) InvalidateLastSimCache() {
	invalidateCache[LastSim](LAST_SIM_CACHE_KEY)
}
