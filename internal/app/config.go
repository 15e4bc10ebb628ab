package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"sigvault/internal/crypto"
	"sigvault/internal/store"
)

// Environment variables that override the config file.
const (
	EnvListen           = "SIGVAULT_LISTEN"
	EnvLogLevel         = "SIGVAULT_LOG_LEVEL"
	EnvServer           = "SIGVAULT_SERVER"
	EnvStorageDriver    = "SIGVAULT_STORAGE_DRIVER"
	EnvStoragePath      = "SIGVAULT_STORAGE_PATH"
	EnvMasterSecret     = "SIGVAULT_MASTER_SECRET"
	EnvMasterSecretFile = "SIGVAULT_MASTER_SECRET_FILE"
	EnvRateLimitRPS     = "SIGVAULT_RATE_LIMIT_RPS"
	EnvRateLimitBurst   = "SIGVAULT_RATE_LIMIT_BURST"
)

// Config holds runtime wiring options.
type Config struct {
	Listen    string          `yaml:"listen"`
	LogLevel  string          `yaml:"log_level"`
	Server    string          `yaml:"server"` // remote base URL; empty means local wiring
	Storage   StorageConfig   `yaml:"storage"`
	Vault     VaultConfig     `yaml:"vault"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Driver string `yaml:"driver"` // sqlite | file | memory
	Path   string `yaml:"path"`   // database file (sqlite) or directory (file)
}

// VaultConfig supplies the master secret, inline or from a file.
type VaultConfig struct {
	MasterSecret     string `yaml:"master_secret"`
	MasterSecretFile string `yaml:"master_secret_file"`
}

// RateLimitConfig sizes the per-client token bucket of the HTTP server.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// Home returns the default sigvault directory, $HOME/.sigvault.
func Home() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".sigvault")
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	return filepath.Join(Home(), "config.yaml")
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Listen:    ":8080",
		LogLevel:  "info",
		Storage:   StorageConfig{Driver: store.DriverSQLite},
		RateLimit: RateLimitConfig{RPS: 20, Burst: 40},
	}
}

// LoadConfig reads the YAML file at path over the defaults, then applies
// .env and environment overrides. A missing file yields the defaults; an
// empty path means DefaultConfigPath.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	cfg.Storage.Path = expandHome(cfg.Storage.Path)
	cfg.Vault.MasterSecretFile = expandHome(cfg.Vault.MasterSecretFile)
	return cfg, nil
}

// StoragePath returns the configured storage path, or the driver's default
// under Home: sigvault.db for sqlite, data/ for file.
func (c Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	if c.Storage.Driver == store.DriverFile {
		return filepath.Join(Home(), "data")
	}
	return filepath.Join(Home(), "sigvault.db")
}

// MasterKey resolves the configured master secret into a key. The inline
// secret wins over the secret file.
func (c Config) MasterKey() (crypto.MasterKey, error) {
	secret := c.Vault.MasterSecret
	if strings.TrimSpace(secret) == "" && c.Vault.MasterSecretFile != "" {
		b, err := os.ReadFile(c.Vault.MasterSecretFile)
		if err != nil {
			return crypto.MasterKey{}, fmt.Errorf("read master secret file: %w", err)
		}
		secret = string(b)
	}
	return crypto.ParseMasterSecret(secret)
}

func (c *Config) applyEnv() error {
	setString := func(dst *string, env string) {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*dst = v
		}
	}
	setString(&c.Listen, EnvListen)
	setString(&c.LogLevel, EnvLogLevel)
	setString(&c.Server, EnvServer)
	setString(&c.Storage.Driver, EnvStorageDriver)
	setString(&c.Storage.Path, EnvStoragePath)
	setString(&c.Vault.MasterSecret, EnvMasterSecret)
	setString(&c.Vault.MasterSecretFile, EnvMasterSecretFile)

	if raw := strings.TrimSpace(os.Getenv(EnvRateLimitRPS)); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRateLimitRPS, err)
		}
		c.RateLimit.RPS = v
	}
	if raw := strings.TrimSpace(os.Getenv(EnvRateLimitBurst)); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRateLimitBurst, err)
		}
		c.RateLimit.Burst = v
	}
	return nil
}

// loadDotEnv loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
