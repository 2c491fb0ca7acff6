package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPAddr string `koanf:"http_addr"`
		LogFile  string `koanf:"log_file"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout     time.Duration `koanf:"read_timeout"`
		WriteTimeout    time.Duration `koanf:"write_timeout"`
		IdleTimeout     time.Duration `koanf:"idle_timeout"`
		RequestTimeout  time.Duration `koanf:"request_timeout"`
		ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	} `koanf:"http"`

	Mongo struct {
		URI         string `koanf:"uri"`
		Database    string `koanf:"database"`
		MaxPoolSize uint64 `koanf:"max_pool_size"`
		MinPoolSize uint64 `koanf:"min_pool_size"`
	} `koanf:"mongo"`

	Redis struct {
		Addr     string `koanf:"addr"`
		Password string `koanf:"password"`
	} `koanf:"redis"`

	Rabbit struct {
		URL string `koanf:"url"`
	} `koanf:"rabbitmq"`

	Admin struct {
		Username  string        `koanf:"username"`
		Password  string        `koanf:"password"`
		JWTSecret string        `koanf:"jwt_secret"`
		Issuer    string        `koanf:"issuer"`
		TokenTTL  time.Duration `koanf:"token_ttl"`
	} `koanf:"admin"`
}

// Load reads the yaml config file and overlays FASTBITE_-prefixed environment
// variables, nested keys separated with __ (e.g. FASTBITE_MONGO__URI).
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := k.Load(env.Provider("FASTBITE_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "FASTBITE_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo.uri required")
	}
	if c.Admin.JWTSecret == "" {
		return fmt.Errorf("admin.jwt_secret required")
	}
	return nil
}
