// Package config reads respak settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dendrascience/respak/codec"
	"github.com/dendrascience/respak/pool"
	"github.com/joho/godotenv"
)

// EnvFile is loaded from the working directory or its parent when present.
const EnvFile = ".env.local"

var ErrNegativeThreads = errors.New("thread count must not be negative")

// Config holds the run settings. Command-line flags override these values.
type Config struct {
	Threads       int    // RESPAK_THREADS, 0 means one per processor
	Progress      string // RESPAK_PROGRESS: line or overwrite
	Codec         string // RESPAK_CODEC: lz4 or zstd
	OnLockFailure string // RESPAK_ON_LOCK_FAILURE: drain or abort
}

// Load reads the environment, after loading EnvFile if one exists, and
// validates the result.
func Load() (*Config, error) {
	loadEnvFile()

	c := &Config{
		Threads:       getEnvAsInt("RESPAK_THREADS", 0),
		Progress:      getEnv("RESPAK_PROGRESS", pool.ModeLine.String()),
		Codec:         getEnv("RESPAK_CODEC", codec.Default),
		OnLockFailure: getEnv("RESPAK_ON_LOCK_FAILURE", pool.Drain.String()),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func loadEnvFile() {
	if err := godotenv.Load(EnvFile); err == nil {
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		return
	}
	parent := filepath.Dir(cwd)
	if parent == "" || parent == cwd {
		return
	}
	_ = godotenv.Load(filepath.Join(parent, EnvFile))
}

// Validate rejects values the pool or codec registry would not accept.
func (c *Config) Validate() error {
	if c.Threads < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeThreads, c.Threads)
	}
	if _, err := pool.ParseMode(c.Progress); err != nil {
		return fmt.Errorf("RESPAK_PROGRESS: %w", err)
	}
	if _, err := codec.ByName(c.Codec); err != nil {
		return fmt.Errorf("RESPAK_CODEC: %w", err)
	}
	if _, err := pool.ParseLockPolicy(c.OnLockFailure); err != nil {
		return fmt.Errorf("RESPAK_ON_LOCK_FAILURE: %w", err)
	}
	return nil
}

// PoolConfig builds the pool settings for one run. Call Validate first after
// changing fields.
func (c *Config) PoolConfig(dir pool.Direction, out io.Writer, logger *log.Logger) (pool.Config, error) {
	mode, err := pool.ParseMode(c.Progress)
	if err != nil {
		return pool.Config{}, err
	}
	policy, err := pool.ParseLockPolicy(c.OnLockFailure)
	if err != nil {
		return pool.Config{}, err
	}
	return pool.Config{
		Threads:       c.Threads,
		Direction:     dir,
		Progress:      mode,
		Output:        out,
		OnLockFailure: policy,
		Logger:        logger,
	}, nil
}

// CodecImpl returns the configured codec.
func (c *Config) CodecImpl() (codec.Codec, error) {
	return codec.ByName(c.Codec)
}

// getEnv returns the variable or defaultValue when unset or empty.
func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt returns the variable as an int, or defaultValue when unset or
// unparsable.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
