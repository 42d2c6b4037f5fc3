package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "config/config.yaml"

	ModeDev     = "dev"
	ModeRelease = "release"

	DriverMySQL = "mysql"
	DriverMongo = "mongo"
)

type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
	// Transactions requires a replica set or sharded cluster.
	Transactions bool `yaml:"transactions"`
}

type DatabaseConfig struct {
	Driver       string        `yaml:"driver"`
	QueryTimeout time.Duration `yaml:"query_timeout"`
	AutoMigrate  bool          `yaml:"auto_migrate"`
	MySQL        MySQLConfig   `yaml:"mysql"`
	Mongo        MongoConfig   `yaml:"mongo"`
}

type Certs struct {
	Cert string `yaml:"cert"`
	Key  string `yaml:"key"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	StaticDir       string        `yaml:"static_dir"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	Certificate     Certs         `yaml:"certificate"`
}

type AppConfig struct {
	Timezone string `yaml:"timezone"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Config struct {
	Version  string         `yaml:"version"`
	Mode     string         `yaml:"mode"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	App      AppConfig      `yaml:"app"`
	Log      LogConfig      `yaml:"log"`
}

func Default() Config {
	return Config{
		Mode: ModeDev,
		Server: ServerConfig{
			Addr:            ":8080",
			CORSOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:       DriverMySQL,
			QueryTimeout: 5 * time.Second,
			AutoMigrate:  true,
			MySQL:        MySQLConfig{Host: "127.0.0.1", Port: 3306, Username: "hrms", DBName: "hrms"},
			Mongo:        MongoConfig{URI: "mongodb://127.0.0.1:27017", Database: "hrms"},
		},
		App: AppConfig{Timezone: "UTC"},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the YAML file at path (a missing file keeps the defaults), then
// applies .env and HRMS_* environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	buf, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(buf, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		slog.Warn("config file not found, using defaults", "path", path)
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("HRMS_MODE", &c.Mode)
	str("HRMS_ADDR", &c.Server.Addr)
	str("HRMS_STATIC_DIR", &c.Server.StaticDir)
	str("HRMS_DB_DRIVER", &c.Database.Driver)
	str("HRMS_MYSQL_HOST", &c.Database.MySQL.Host)
	str("HRMS_MYSQL_USER", &c.Database.MySQL.Username)
	str("HRMS_MYSQL_PASSWORD", &c.Database.MySQL.Password)
	str("HRMS_MYSQL_DBNAME", &c.Database.MySQL.DBName)
	str("HRMS_MONGO_URI", &c.Database.Mongo.URI)
	str("HRMS_MONGO_DATABASE", &c.Database.Mongo.Database)
	str("HRMS_TIMEZONE", &c.App.Timezone)
	str("HRMS_LOG_LEVEL", &c.Log.Level)
	str("HRMS_LOG_FORMAT", &c.Log.Format)

	if v, ok := lookup("HRMS_MYSQL_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HRMS_MYSQL_PORT: %w", err)
		}
		c.Database.MySQL.Port = port
	}
	if v, ok := lookup("HRMS_QUERY_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("HRMS_QUERY_TIMEOUT: %w", err)
		}
		c.Database.QueryTimeout = d
	}
	if v, ok := lookup("HRMS_CORS_ORIGINS"); ok && v != "" {
		c.Server.CORSOrigins = strings.Split(v, ",")
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Mode != ModeDev && c.Mode != ModeRelease {
		return fmt.Errorf("mode must be %q or %q, got %q", ModeDev, ModeRelease, c.Mode)
	}
	switch c.Database.Driver {
	case DriverMySQL:
		if c.Database.MySQL.DBName == "" {
			return errors.New("database.mysql.dbname is required")
		}
	case DriverMongo:
		if c.Database.Mongo.URI == "" || c.Database.Mongo.Database == "" {
			return errors.New("database.mongo.uri and database.mongo.database are required")
		}
	default:
		return fmt.Errorf("database.driver must be %q or %q, got %q", DriverMySQL, DriverMongo, c.Database.Driver)
	}
	if c.Database.QueryTimeout <= 0 {
		return errors.New("database.query_timeout must be > 0")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("app.timezone: %w", err)
	}
	return nil
}

// LogFormat is log.format, or json in release and text in dev when unset.
func (c *Config) LogFormat() string {
	if c.Log.Format != "" {
		return c.Log.Format
	}
	if c.Mode == ModeRelease {
		return "json"
	}
	return "text"
}

// Location resolves app.timezone; "today" is evaluated in this zone.
func (c *Config) Location() (*time.Location, error) {
	if c.App.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.App.Timezone)
}
