package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnvFile reads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	slog.Info("env file loaded", "path", path)
	return nil
}

// TokenTTL is the fixed access token lifetime. There is no refresh.
const TokenTTL = 30 * time.Minute

func Load() App {
	cfg := App{
		Port:             getenv("APP_PORT", "8080"),
		Env:              getenv("APP_ENV", "dev"),
		DatabaseDriver:   getenv("DATABASE_DRIVER", "postgres"),
		DatabaseURL:      must("DATABASE_URL"),
		JWTSecret:        getenv("JWT_SECRET", "local_dev_secret"),
		TokenTTL:         TokenTTL,
		InstagramToken:   os.Getenv("INSTAGRAM_ACCESS_TOKEN"),
		InstagramUserID:  os.Getenv("INSTAGRAM_USER_ID"),
		InstagramTimeout: seconds("INSTAGRAM_TIMEOUT_SECONDS", 10),
		CORSOrigins:      list("CORS_ALLOW_ORIGINS", "*"),
	}
	if cfg.Env != "dev" && cfg.JWTSecret == "local_dev_secret" {
		slog.Warn("JWT_SECRET not set, using development secret", "env", cfg.Env)
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}

func seconds(k string, def int) time.Duration {
	return time.Duration(positiveInt(k, def)) * time.Second
}

func positiveInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid env value, using default", "key", k, "value", v, "default", def)
		return def
	}
	return n
}

func list(k, def string) []string {
	var out []string
	for _, p := range strings.Split(getenv(k, def), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
