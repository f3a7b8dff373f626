package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/bharathk2498/migrationgpt/pkg/services/ai"
	"github.com/bharathk2498/migrationgpt/pkg/store/duckdb"
	"github.com/bharathk2498/migrationgpt/pkg/store/upload"
)

const EnvPrefix = "MIGRATION"

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

type Pricing struct {
	// File is an optional ini rate card overriding the built-in prices.
	File string `mapstructure:"file"`
}

type AWS struct {
	Profile string `mapstructure:"profile"`
	Region  string `mapstructure:"region"`
}

type Config struct {
	Server  Server          `mapstructure:"server"`
	AI      ai.Config       `mapstructure:"ai"`
	DB      duckdb.Settings `mapstructure:"db"`
	Upload  upload.Settings `mapstructure:"upload"`
	Pricing Pricing         `mapstructure:"pricing"`
	AWS     AWS             `mapstructure:"aws"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("ai.mode", ai.ModeDemo)
	v.SetDefault("ai.provider", ai.ProviderBedrock)
	v.SetDefault("ai.model", "")
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.region", "us-east-1")
	v.SetDefault("ai.profile", "")

	v.SetDefault("db.path", "migration-atlas.db")
	v.SetDefault("db.threads", 4)

	v.SetDefault("upload.backend", upload.BackendLocal)
	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.bucket", "")
	v.SetDefault("upload.prefix", "uploads")

	v.SetDefault("pricing.file", "")

	v.SetDefault("aws.profile", "")
	v.SetDefault("aws.region", "us-east-1")
}

// Load reads defaults, then the optional config file, then MIGRATION_*
// environment variables (MIGRATION_SERVER_PORT overrides server.port).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.AI.Mode = strings.ToLower(strings.TrimSpace(cfg.AI.Mode))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d is out of range", c.Server.Port))
	}
	switch strings.ToLower(c.AI.Mode) {
	case ai.ModeDemo, ai.ModeProduction:
	default:
		errs = append(errs, fmt.Errorf("ai.mode must be %q or %q, got %q", ai.ModeDemo, ai.ModeProduction, c.AI.Mode))
	}
	switch c.Upload.Backend {
	case upload.BackendLocal:
		if c.Upload.Dir == "" {
			errs = append(errs, errors.New("upload.dir is required for the local backend"))
		}
	case upload.BackendS3:
		if c.Upload.Bucket == "" {
			errs = append(errs, errors.New("upload.bucket is required for the s3 backend"))
		}
	case upload.BackendNone:
	default:
		errs = append(errs, fmt.Errorf("unknown upload.backend %q", c.Upload.Backend))
	}
	if c.DB.DbPath == "" {
		errs = append(errs, errors.New("db.path is required"))
	}
	return errors.Join(errs...)
}
