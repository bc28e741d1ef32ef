package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadConfig starts from DefaultConfig, loads the given dotenv files (".env"
// when none are given, ignored if missing) and applies PONG_* overrides.
func LoadConfig(files ...string) (Config, error) {
	cfg := DefaultConfig()

	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return cfg, fmt.Errorf("load %v: %w", files, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PONG_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	durations := map[string]*time.Duration{
		"PONG_MIN_TICK_INTERVAL": &cfg.MinTickInterval,
		"PONG_GAME_TICK_PERIOD":  &cfg.GameTickPeriod,
		"PONG_BROADCAST_PERIOD":  &cfg.BroadcastPeriod,
		"PONG_ASK_TIMEOUT":       &cfg.AskTimeout,
	}
	for key, dst := range durations {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = d
	}

	ints := map[string]*int{
		"PONG_SCREEN_WIDTH":  &cfg.ScreenWidth,
		"PONG_SCREEN_HEIGHT": &cfg.ScreenHeight,
	}
	for key, dst := range ints {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
	}
	return nil
}
