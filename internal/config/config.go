package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/snake-terminal/internal/apperror"
)

type Config struct {
	LogLevel string `env:"SNAKE_LOG_LEVEL" env-default:"info"`
	LogFile  string `env:"SNAKE_LOG_FILE"`
	FPS      int    `env:"SNAKE_FPS" env-default:"2"`
	Board    Board
	Redis    Redis
}

type Board struct {
	Width  int `env:"SNAKE_BOARD_WIDTH" env-default:"4"`
	Height int `env:"SNAKE_BOARD_HEIGHT" env-default:"4"`
}

type Redis struct {
	Host string `env:"SNAKE_REDIS_HOST" env-default:""`
	Port string `env:"SNAKE_REDIS_PORT" env-default:"6379"`
}

// Load - reads the configuration from the environment.
func Load() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - same as Load but panics on error.
func MustLoad() *Config {
	config, err := Load()
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func (that *Config) Validate() error {
	if that.Board.Width < 1 || that.Board.Height < 1 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", apperror.ErrInvalidConfig, that.Board.Width, that.Board.Height)
	}

	if that.FPS < 1 {
		return fmt.Errorf("%w: fps must be positive, got %d", apperror.ErrInvalidConfig, that.FPS)
	}

	return nil
}

// TickPeriod - time between two game updates.
func (that *Config) TickPeriod() time.Duration {
	return time.Second / time.Duration(that.FPS)
}

// Enabled - result recording is only used when a Redis host is configured.
func (that *Redis) Enabled() bool {
	return that.Host != ""
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
