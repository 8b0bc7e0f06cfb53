package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	// MinDim and MaxDim bound both board dimensions.
	MinDim = 6
	MaxDim = 12
)

type AppConfig struct {
	// Board dimensions. Zero means "prompt the player interactively".
	BoardWidth  int
	BoardHeight int

	// Optional scoreboard backends.
	RedisURL    string
	DatabaseURL string

	// Default file written by the snapshot command.
	SnapshotPath string

	// Optional directory with message catalog overrides.
	MessageDir string
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		SnapshotPath: "board.png",
	}

	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.MessageDir = strings.TrimSpace(os.Getenv("MESSAGE_DIR"))
	if v := strings.TrimSpace(os.Getenv("SNAPSHOT_PATH")); v != "" {
		cfg.SnapshotPath = v
	}

	var err error
	if cfg.BoardWidth, err = dimFromEnv("BOARD_WIDTH"); err != nil {
		return nil, err
	}
	if cfg.BoardHeight, err = dimFromEnv("BOARD_HEIGHT"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// dimFromEnv reads an optional board dimension. Unset keeps zero so the
// driver prompts for it; a set value must parse and fall within bounds.
func dimFromEnv(key string) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", key, v)
	}
	if !ValidDim(n) {
		return 0, fmt.Errorf("%s: %d not in %d-%d", key, n, MinDim, MaxDim)
	}
	return n, nil
}

// ValidDim reports whether n is an acceptable board dimension.
func ValidDim(n int) bool {
	return n >= MinDim && n <= MaxDim
}
