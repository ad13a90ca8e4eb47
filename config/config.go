package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"rpsrockets/game"
)

// Config 进程级配置：先读 .env，再读 RPS_* 环境变量，最后由命令行参数覆盖
type Config struct {
	Addr           string
	LogFile        string
	LogLevel       string
	RoomID         string
	TicksPerSecond int
	Headless       bool
	HeadlessTicks  int

	Game game.Options
}

// Default 默认配置
func Default() Config {
	return Config{
		Addr:           ":8080",
		LogFile:        "app.log",
		LogLevel:       "debug",
		RoomID:         "room-1",
		TicksPerSecond: 60,
		HeadlessTicks:  600,
		Game:           game.DefaultOptions(),
	}
}

// Load 读取可选的 .env 文件（不存在则跳过）并应用环境变量
func Load(envFile string) (Config, error) {
	cfg := Default()
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// GetEnvVariable 读取必填环境变量
func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}
	return b, nil
}

func (c *Config) applyEnv() error {
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s=%q: %w", key, v, err))
				return
			}
			*dst = n
		}
	}
	float := func(key string, dst *float64) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s=%q: %w", key, v, err))
				return
			}
			*dst = f
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s=%q: %w", key, v, err))
				return
			}
			*dst = b
		}
	}

	str("RPS_ADDR", &c.Addr)
	str("RPS_LOG_FILE", &c.LogFile)
	str("RPS_LOG_LEVEL", &c.LogLevel)
	str("RPS_ROOM", &c.RoomID)
	integer("RPS_TPS", &c.TicksPerSecond)
	boolean("RPS_HEADLESS", &c.Headless)
	integer("RPS_HEADLESS_TICKS", &c.HeadlessTicks)

	g := &c.Game
	float("RPS_WALL_SHORT_SIDE", &g.WallShortSide)
	integer("RPS_PLAYERS", &g.NumPlayers)
	integer("RPS_TICK_BUDGET", &g.TickBudget)
	integer("RPS_SHELTERS", &g.NumShelters)
	integer("RPS_ENEMIES", &g.NumEnemies)
	integer("RPS_FOOD", &g.NumFood)
	integer("RPS_FOOD_REGENERATION", &g.FoodRegenerationTime)
	boolean("RPS_FOOD_COLORS_PLAYER", &g.FoodColorsPlayer)
	integer("RPS_STUN_DURATION", &g.StunDuration)
	if v, ok := os.LookupEnv("RPS_SEED"); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("RPS_SEED=%q: %w", v, err))
		} else {
			g.Seed = n
		}
	}
	if v, ok := os.LookupEnv("RPS_SHELTER_LAYOUT"); ok && v != "" {
		layout, err := ParseShelterLayout(v)
		if err != nil {
			errs = append(errs, err)
		} else {
			g.ShelterLayout = layout
		}
	}
	if v, ok := os.LookupEnv("RPS_ENV_TYPE"); ok && v != "" {
		k, err := game.ParseEnvironmentType(strings.ToLower(v))
		if err != nil {
			errs = append(errs, err)
		} else {
			g.EnvType = k
		}
	}
	return errors.Join(errs...)
}

// ParseShelterLayout "ring" 或 "random"
func ParseShelterLayout(s string) (game.ShelterLayout, error) {
	switch strings.ToLower(s) {
	case "ring":
		return game.ShelterRing, nil
	case "random":
		return game.ShelterRandom, nil
	}
	return game.ShelterRing, fmt.Errorf("unknown shelter layout %q", s)
}

// Validate 校验进程配置与游戏参数
func (c Config) Validate() error {
	if c.TicksPerSecond <= 0 || c.TicksPerSecond > 1000 {
		return fmt.Errorf("ticks per second %d out of range (1..1000)", c.TicksPerSecond)
	}
	if c.Headless && c.HeadlessTicks <= 0 {
		return fmt.Errorf("headless ticks %d must be positive", c.HeadlessTicks)
	}
	return c.Game.Validate()
}
