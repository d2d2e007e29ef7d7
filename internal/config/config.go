package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"db"`
	Admin  AdminConfig  `mapstructure:"admin"`
	Assets AssetsConfig `mapstructure:"assets"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string    `mapstructure:"port"`
	TLS  TLSConfig `mapstructure:"tls"`
}

// TLSConfig holds TLS-specific configuration.
type TLSConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	CertFile string `mapstructure:"certFile"`
	KeyFile  string `mapstructure:"keyFile"`
}

// DBConfig holds the connection settings for the hosted Postgres backend.
type DBConfig struct {
	DSN string `mapstructure:"dsn"`
}

// AdminConfig holds the portal access settings. The passphrase is the single
// shared credential staff use to open a session; it is never compiled into
// any client artifact.
type AdminConfig struct {
	Passphrase      string `mapstructure:"passphrase"`
	SessionLifetime int    `mapstructure:"session_lifetime"` // hours
}

// AssetsConfig holds the asset storage collaborator settings.
type AssetsConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Token    string `mapstructure:"token"`
	Bucket   string `mapstructure:"bucket"`
}

// CacheConfig holds the local SQLite cache settings.
type CacheConfig struct {
	FilePath string `mapstructure:"file_path"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // e.g., "debug", "info", "warn", "error"
	Format string `mapstructure:"format"` // e.g., "json", "console"
}

// LoadConfig reads configuration from a .env file (if present), a config
// file, and environment variables, in increasing order of precedence.
func LoadConfig() (*Config, error) {
	// A local .env file is a development convenience; absence is fine.
	_ = godotenv.Load()

	// Set default values. Every key gets a default, even an empty one:
	// AutomaticEnv only surfaces environment variables for keys viper
	// already knows about, so an undeclared key could not be set via
	// STRAVIGO_* at all.
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.tls.enabled", false)
	viper.SetDefault("server.tls.certFile", "")
	viper.SetDefault("server.tls.keyFile", "")
	viper.SetDefault("db.dsn", "")
	viper.SetDefault("admin.passphrase", "")
	viper.SetDefault("admin.session_lifetime", 12)
	viper.SetDefault("assets.endpoint", "")
	viper.SetDefault("assets.token", "")
	viper.SetDefault("assets.bucket", "stravigo-storage")
	viper.SetDefault("cache.file_path", "stravigo-cache.db")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")

	// Set up viper to read from config file
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("/etc/stravigo-admin/")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return nil, err
		}
		// Config file not found; proceed with defaults and env vars
	}

	// Set up viper to read from environment variables
	viper.SetEnvPrefix("STRAVIGO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Unmarshal the config into the Config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
