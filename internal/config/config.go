package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Erzhan279/Durac-game-telegram/internal/game"
)

type Config struct {
	Addr     string
	WebDist  string
	BotDelay time.Duration
	BotLevel string
	Debug    bool
}

// Load reads a .env file if present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:     ":8080",
		WebDist:  envDef(getenv, "WEB_DIST", "web/dist"),
		BotDelay: game.DefaultBotDelay,
		BotLevel: "normal",
	}
	if v := getenv("ADDR"); v != "" {
		cfg.Addr = v
	} else if port := getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if v := getenv("BOT_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("BOT_DELAY: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("BOT_DELAY: negative duration %s", d)
		}
		cfg.BotDelay = d
	}
	if v := strings.ToLower(strings.TrimSpace(getenv("BOT_LEVEL"))); v != "" {
		if v != "normal" && v != "easy" {
			return Config{}, fmt.Errorf("BOT_LEVEL: unknown level %q", v)
		}
		cfg.BotLevel = v
	}
	debug, err := asBool(getenv("DEBUG"))
	if err != nil {
		return Config{}, fmt.Errorf("DEBUG: %w", err)
	}
	cfg.Debug = debug
	return cfg, nil
}

func envDef(getenv func(string) string, k, def string) string {
	if v := getenv(k); v != "" {
		return v
	}
	return def
}

func asBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "false", "no", "n", "off":
		return false, nil
	case "1", "true", "yes", "y", "on":
		return true, nil
	default:
		return false, fmt.Errorf("not a boolean: %q", s)
	}
}
