package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"fastwrite/internal/llm/client"
)

const EnvPrefix = "FASTWRITE_"

// Session backends.
const (
	BackendDatabase = "database"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
)

// Config represents the application configuration
type Config struct {
	API struct {
		Endpoint string        `koanf:"endpoint"`
		Timeout  time.Duration `koanf:"timeout"`
	} `koanf:"api"`

	Database struct {
		Path string `koanf:"path"`
	} `koanf:"database"`

	Session struct {
		Backend  string        `koanf:"backend"`
		TTL      time.Duration `koanf:"ttl"`
		RedisURL string        `koanf:"redis_url"`
	} `koanf:"session"`

	Keyring struct {
		Backend      string `koanf:"backend"`
		Service      string `koanf:"service"`
		FileDir      string `koanf:"file_dir"`
		FilePassword string `koanf:"file_password"`
	} `koanf:"keyring"`

	Log struct {
		Level  string `koanf:"level"`
		Pretty bool   `koanf:"pretty"`
	} `koanf:"log"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"api.endpoint":      client.DefaultEndpoint,
		"api.timeout":       "30s",
		"database.path":     "",
		"session.backend":   BackendDatabase,
		"session.ttl":       "12h",
		"session.redis_url": "redis://localhost:6379/0",
		"keyring.backend":   "",
		"keyring.service":   "fastwrite",
		"keyring.file_dir":  "",
		"log.level":         "info",
		"log.pretty":        true,
	}
}

// DefaultPaths are tried in order when no config file is given.
var DefaultPaths = []string{"./fastwrite.toml", "$HOME/.fastwrite.toml"}

// LoadConfig loads defaults, then the TOML file, then FASTWRITE_* environment variables.
func LoadConfig(configPath string) (*Config, error) {
	var k = koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("error loading defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	} else {
		for _, path := range DefaultPaths {
			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err == nil {
					break
				}
			}
		}
	}

	// FASTWRITE_SESSION_REDIS_URL -> session.redis_url
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("error loading environment: %w", err)
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &config, nil
}

// envKey maps FASTWRITE_SECTION_KEY to section.key. Variables without a section,
// such as FASTWRITE_SESSION or FASTWRITE_CONFIG, belong to the CLI and are skipped.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, key, ok := strings.Cut(s, "_")
	if !ok || section == "" || key == "" {
		return ""
	}
	return section + "." + key
}

// Validate validates the configuration
func Validate(config *Config) error {
	if strings.TrimSpace(config.API.Endpoint) == "" {
		return fmt.Errorf("api endpoint is required")
	}
	if config.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be positive")
	}

	switch config.Session.Backend {
	case BackendDatabase, BackendMemory:
	case BackendRedis:
		if strings.TrimSpace(config.Session.RedisURL) == "" {
			return fmt.Errorf("session redis_url is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown session backend %q", config.Session.Backend)
	}
	if config.Session.TTL <= 0 {
		return fmt.Errorf("session ttl must be positive")
	}

	return nil
}

// InitConfig initializes a new configuration file
func InitConfig(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists at %s", configPath)
	}

	sampleConfig := `# FastWrite Configuration

[api]
endpoint = "` + client.DefaultEndpoint + `"
timeout = "30s"

[database]
# Empty uses the default location.
path = ""

[session]
# database, memory or redis
backend = "database"
ttl = "12h"
redis_url = "redis://localhost:6379/0"

[keyring]
# Empty picks the platform keyring. "file" stores encrypted files in file_dir.
backend = ""
service = "fastwrite"
file_dir = ""

[log]
level = "info"
pretty = true
`

	return os.WriteFile(configPath, []byte(sampleConfig), 0644)
}
