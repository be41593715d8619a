package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	Admin   AdminConfig
	Catalog CatalogConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BARRUNTO_APP_ENV" default:"development"`
	Port         string `envconfig:"BARRUNTO_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"BARRUNTO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BARRUNTO_LOG_WARN_STACK" default:"false"`

	ShutdownTimeout time.Duration `envconfig:"BARRUNTO_SHUTDOWN_TIMEOUT" default:"10s"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Path        string `envconfig:"BARRUNTO_DB_PATH" default:"barrunto.db"`
	AutoMigrate bool   `envconfig:"BARRUNTO_AUTO_MIGRATE" default:"true"`
}

type JWTConfig struct {
	Secret            string `envconfig:"BARRUNTO_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"BARRUNTO_JWT_ISSUER" default:"barrunto-backend"`
	ExpirationMinutes int    `envconfig:"BARRUNTO_JWT_EXPIRATION_MINUTES" default:"480"`
}

// AdminConfig carries the single back-office credential pair. The defaults
// mirror the storefront's original fixture login.
type AdminConfig struct {
	User     string `envconfig:"BARRUNTO_ADMIN_USER" default:"admin"`
	Password string `envconfig:"BARRUNTO_ADMIN_PASSWORD" default:"admin"`
}

type CatalogConfig struct {
	MenuPath string `envconfig:"BARRUNTO_MENU_PATH" default:"menu.json"`
}
