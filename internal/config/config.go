package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/caro-backend/internal/apperror"
	"github.com/rocketscienceinc/caro-backend/internal/caro"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis  `yaml:"redis"`
	Caro     Caro   `yaml:"caro"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Caro holds the game parameters. Presentation timings live next to them but never reach the engine.
type Caro struct {
	BoardSize         int    `yaml:"board-size" env:"CARO_BOARD_SIZE" env-default:"3"`
	MaxPieces         int    `yaml:"max-pieces" env:"CARO_MAX_PIECES" env-default:"3"`
	MinimaxDepth      int    `yaml:"minimax-depth" env:"CARO_MINIMAX_DEPTH" env-default:"9"`
	BotMistakeEnabled bool   `yaml:"bot-mistake-enabled" env:"CARO_BOT_MISTAKE_ENABLED" env-default:"false"`
	BotMistakeChance  int    `yaml:"bot-mistake-chance" env:"CARO_BOT_MISTAKE_CHANCE" env-default:"0"`
	BotGoesFirst      string `yaml:"bot-goes-first" env:"CARO_BOT_GOES_FIRST" env-default:"false"`

	TurnTimeout       time.Duration `yaml:"turn-timeout" env:"CARO_TURN_TIMEOUT" env-default:"5m"`
	FinishedRetention time.Duration `yaml:"finished-retention" env:"CARO_FINISHED_RETENTION" env-default:"10s"`
	LockTTL           time.Duration `yaml:"lock-ttl" env:"CARO_LOCK_TTL" env-default:"30s"`
	SweepInterval     time.Duration `yaml:"sweep-interval" env:"CARO_SWEEP_INTERVAL" env-default:"5s"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the config file, applies env overrides and validates game parameters.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if _, err := config.Caro.Settings(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadEnv - builds the config from environment variables and defaults only.
func LoadEnv() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	if _, err := config.Caro.Settings(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// Settings - converts the loaded values into the immutable engine settings.
func (that *Caro) Settings() (caro.Settings, error) {
	firstMover, err := parseFirstMover(that.BotGoesFirst)
	if err != nil {
		return caro.Settings{}, err
	}

	settings := caro.Settings{
		BoardSize:      that.BoardSize,
		MaxPieces:      that.MaxPieces,
		MinimaxDepth:   that.MinimaxDepth,
		MistakeEnabled: that.BotMistakeEnabled,
		MistakeChance:  that.BotMistakeChance,
		FirstMover:     firstMover,
	}

	if err = settings.Validate(); err != nil {
		return caro.Settings{}, fmt.Errorf("caro config: %w", err)
	}

	return settings, nil
}

func parseFirstMover(value string) (caro.FirstMover, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "o":
		return caro.FirstMoverO, nil
	case "false", "no", "x", "":
		return caro.FirstMoverX, nil
	case "random":
		return caro.FirstMoverRandom, nil
	default:
		return "", fmt.Errorf("%w: bot-goes-first must be true, false or random, got %q", apperror.ErrInvalidSettings, value)
	}
}
