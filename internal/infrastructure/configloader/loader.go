package configloader

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/pkg/utils"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// TokenEnvVar overrides oneSource.token.
	TokenEnvVar = "BP_TOKEN"

	DefaultEndpoint = "https://api.onesource.io/v1/ethereum/graphql"
	DefaultContract = "0xc9041f80dce73721a5f6a779672ec57ef255d27c"
	DefaultTokenID  = "29"
)

// ServerConfig holds server-specific configurations.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`  // seconds
	WriteTimeout int    `yaml:"writeTimeout"` // seconds
	IdleTimeout  int    `yaml:"idleTimeout"`  // seconds
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// OneSourceConfig holds OneSource GraphQL API specific configurations.
type OneSourceConfig struct {
	Endpoint             string  `yaml:"endpoint"`
	Token                string  `yaml:"token"`
	RequestTimeoutMillis int64   `yaml:"requestTimeoutMillis"`
	RateLimit            float64 `yaml:"rateLimit"` // requests per second, 0 = unlimited
	BurstLimit           int     `yaml:"burstLimit"`
}

// DisplayConfig holds what the index page shows and how.
type DisplayConfig struct {
	Contract         string   `yaml:"contract"`
	TokenID          string   `yaml:"tokenID"`
	Owner            string   `yaml:"owner"`
	BalancesPageSize int      `yaml:"balancesPageSize"`
	IPFSGateway      string   `yaml:"ipfsGateway"`
	DateLayout       string   `yaml:"dateLayout"`
	ImageHosts       []string `yaml:"imageHosts"`
}

// CacheConfig holds configuration for the view cache.
type CacheConfig struct {
	ViewTTLSeconds         int `yaml:"viewTTLSeconds"` // 0 = cache disabled
	CleanupIntervalMinutes int `yaml:"cleanupIntervalMinutes"`
}

// CORSConfig holds configuration for the JSON API CORS middleware.
type CORSConfig struct {
	AllowOrigins []string `yaml:"allowOrigins"`
}

// SwaggerConfig holds configuration for Swagger UI.
type SwaggerConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Path     string `yaml:"path"`
	SpecFile string `yaml:"specFile"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	OneSource OneSourceConfig `yaml:"oneSource"`
	Display   DisplayConfig   `yaml:"display"`
	Cache     CacheConfig     `yaml:"cache"`
	CORS      CORSConfig      `yaml:"cors"`
	Swagger   SwaggerConfig   `yaml:"swagger"`
}

// Load reads the YAML configuration file from the given path, applies .env and
// environment overrides and fills defaults. A missing file is not an error:
// everything can come from defaults and BP_TOKEN.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using process environment only")
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
		}
		logrus.Infof("Loaded configuration from %s", path)
	case errors.Is(err, os.ErrNotExist):
		logrus.Warnf("Config file %s not found, using defaults", path)
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if token := strings.TrimSpace(os.Getenv(TokenEnvVar)); token != "" {
		cfg.OneSource.Token = token
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = 30
	}
	if cfg.Server.IdleTimeout <= 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if cfg.OneSource.Endpoint == "" {
		cfg.OneSource.Endpoint = DefaultEndpoint
		logrus.Infof("oneSource.endpoint not set, defaulting to %s", cfg.OneSource.Endpoint)
	}
	if cfg.OneSource.RequestTimeoutMillis <= 0 {
		cfg.OneSource.RequestTimeoutMillis = 10000 // 10 секунд
		logrus.Infof("oneSource.requestTimeoutMillis not set, defaulting to %d ms", cfg.OneSource.RequestTimeoutMillis)
	}
	if cfg.OneSource.RateLimit > 0 && cfg.OneSource.BurstLimit <= 0 {
		cfg.OneSource.BurstLimit = 2 // токен и балансы уходят одновременно
	}

	if cfg.Display.Contract == "" {
		cfg.Display.Contract = DefaultContract
	}
	if cfg.Display.TokenID == "" {
		cfg.Display.TokenID = DefaultTokenID
	}
	if cfg.Display.BalancesPageSize <= 0 {
		cfg.Display.BalancesPageSize = 10
	}
	if cfg.Display.IPFSGateway == "" {
		cfg.Display.IPFSGateway = utils.DefaultIPFSGateway
	}
	if cfg.Display.DateLayout == "" {
		cfg.Display.DateLayout = utils.DefaultDateLayout
	}
	if len(cfg.Display.ImageHosts) == 0 {
		cfg.Display.ImageHosts = append([]string(nil), utils.DefaultImageHosts...)
	}

	if cfg.Cache.CleanupIntervalMinutes <= 0 {
		cfg.Cache.CleanupIntervalMinutes = 10
	}
	if len(cfg.CORS.AllowOrigins) == 0 {
		cfg.CORS.AllowOrigins = []string{"*"}
	}
	if cfg.Swagger.Path == "" {
		cfg.Swagger.Path = "/swagger"
	}
	if cfg.Swagger.SpecFile == "" {
		cfg.Swagger.SpecFile = "./docs/swagger.yaml"
	}
}

// Validate checks the values the service cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OneSource.Token) == "" {
		return fmt.Errorf("oneSource.token is empty (set it in the config file or via %s)", TokenEnvVar)
	}
	if !common.IsHexAddress(c.Display.Contract) {
		return fmt.Errorf("display.contract %q is not a valid address", c.Display.Contract)
	}
	if c.Display.Owner != "" && !common.IsHexAddress(c.Display.Owner) {
		return fmt.Errorf("display.owner %q is not a valid address", c.Display.Owner)
	}
	if id, ok := new(big.Int).SetString(c.Display.TokenID, 10); !ok || id.Sign() < 0 {
		return fmt.Errorf("display.tokenID %q is not a non-negative integer", c.Display.TokenID)
	}
	if c.Display.BalancesPageSize > 100 {
		return fmt.Errorf("display.balancesPageSize %d exceeds 100", c.Display.BalancesPageSize)
	}
	return nil
}
