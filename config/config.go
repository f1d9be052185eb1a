package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/ratel-online/uno/consts"
)

const Prefix = "UNO"

type Config struct {
	PlayerName string `split_words:"true" default:"You"`
	Players    int    `default:"3"`
	Autoplay   bool   `default:"false"`
	// Seed 0 shuffles with a time-based seed.
	Seed    int64 `default:"0"`
	PauseMs int   `split_words:"true" default:"600"`
}

func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return nil, errors.Wrap(err, "loading config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c.Players < consts.MinPlayers || c.Players > consts.MaxPlayers {
		return errors.Errorf("%s_PLAYERS must be between %d and %d, got %d", Prefix, consts.MinPlayers, consts.MaxPlayers, c.Players)
	}
	if c.PauseMs < 0 {
		return errors.Errorf("%s_PAUSE_MS must not be negative, got %d", Prefix, c.PauseMs)
	}
	return nil
}

func (c *Config) Pause() time.Duration {
	return time.Duration(c.PauseMs) * time.Millisecond
}
