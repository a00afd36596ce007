package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// StorageDriver selects the persistence backend for the document store.
type StorageDriver string

const (
	DriverMemory   StorageDriver = "memory"
	DriverFile     StorageDriver = "file"
	DriverSQLite   StorageDriver = "sqlite3"
	DriverPostgres StorageDriver = "postgres"
	DriverRedis    StorageDriver = "redis"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Redis   RedisConfig
	Gemini  GeminiConfig
	Logger  LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// StorageConfig configures the document store. Path is used by the file
// driver, DSN by the sql drivers; the redis driver reuses the Redis section.
type StorageConfig struct {
	Driver StorageDriver
	Path   string
	DSN    string
	// Latency is the artificial per-call delay simulating a remote API.
	Latency time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	// AnalyticsTTL bounds how long a computed analytics summary stays cached.
	AnalyticsTTL time.Duration
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

func LoadConfig() (*Config, error) {
	// A local .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("storage.driver", string(DriverFile))
	viper.SetDefault("storage.path", "surveyforge.db.json")
	viper.SetDefault("storage.latency_ms", 0)
	viper.SetDefault("redis.analytics_ttl", 60)
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.timeout", 30)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional; defaults plus environment variables
		// are enough to run.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Storage: StorageConfig{
			Driver:  StorageDriver(viper.GetString("storage.driver")),
			Path:    viper.GetString("storage.path"),
			DSN:     viper.GetString("storage.dsn"),
			Latency: viper.GetDuration("storage.latency_ms") * time.Millisecond,
		},
		Redis: RedisConfig{
			Address:      viper.GetString("redis.address"),
			Password:     viper.GetString("redis.password"),
			DB:           viper.GetInt("redis.db"),
			AnalyticsTTL: viper.GetDuration("redis.analytics_ttl") * time.Second,
		},
		Gemini: GeminiConfig{
			APIKey:  viper.GetString("gemini.api_key"),
			Model:   viper.GetString("gemini.model"),
			Timeout: viper.GetDuration("gemini.timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	// Environment variables override file values.
	if v := viper.GetString("STORAGE_DRIVER"); v != "" {
		config.Storage.Driver = StorageDriver(v)
	}
	if v := viper.GetString("STORAGE_PATH"); v != "" {
		config.Storage.Path = v
	}
	if v := viper.GetString("STORAGE_DSN"); v != "" {
		config.Storage.DSN = v
	}
	if v := viper.GetString("REDIS_ADDRESS"); v != "" {
		config.Redis.Address = v
	}
	if v := viper.GetString("REDIS_PASSWORD"); v != "" {
		config.Redis.Password = v
	}
	if v := viper.GetString("GEMINI_API_KEY"); v != "" {
		config.Gemini.APIKey = v
	}
	if v := viper.GetString("GEMINI_MODEL"); v != "" {
		config.Gemini.Model = v
	}
	if v := viper.GetInt("SERVER_PORT"); v != 0 {
		config.Server.Port = v
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverFile, DriverSQLite, DriverPostgres, DriverRedis:
	default:
		return fmt.Errorf("unsupported storage driver: %s", c.Storage.Driver)
	}
	if c.Storage.Driver == DriverRedis && c.Redis.Address == "" {
		return fmt.Errorf("redis storage driver requires redis.address")
	}
	if (c.Storage.Driver == DriverSQLite || c.Storage.Driver == DriverPostgres) && c.Storage.DSN == "" {
		return fmt.Errorf("%s storage driver requires storage.dsn", c.Storage.Driver)
	}
	return nil
}
