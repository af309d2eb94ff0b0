package config

import "time"

type App struct {
	Port             string        `env:"APP_PORT" default:"8080"`
	Env              string        `env:"APP_ENV" default:"dev"`
	DatabaseDriver   string        `env:"DATABASE_DRIVER" default:"postgres"`
	DatabaseURL      string        `env:"DATABASE_URL,required"`
	JWTSecret        string        `env:"JWT_SECRET" default:"local_dev_secret"`
	TokenTTL         time.Duration
	InstagramToken   string        `env:"INSTAGRAM_ACCESS_TOKEN"`
	InstagramUserID  string        `env:"INSTAGRAM_USER_ID"`
	InstagramTimeout time.Duration `env:"INSTAGRAM_TIMEOUT_SECONDS" default:"10"`
	CORSOrigins      []string      `env:"CORS_ALLOW_ORIGINS" default:"*"`
}

// InstagramConfigured reports whether both feed credentials are present.
func (a App) InstagramConfigured() bool {
	return a.InstagramToken != "" && a.InstagramUserID != ""
}
