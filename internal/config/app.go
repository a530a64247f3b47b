package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type Store struct {
	Table       string `mapstructure:"table"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type ObjectStore struct {
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	OfflineEndpoint string `mapstructure:"offline_endpoint"`
	OfflineKey      string `mapstructure:"offline_key"`
	OfflineSecret   string `mapstructure:"offline_secret"`
}

type Mindicador struct {
	BaseURL           string  `mapstructure:"base_url"`
	TimeoutSeconds    int     `mapstructure:"timeout_seconds"`
	RetryCount        int     `mapstructure:"retry_count"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	CacheTTLSeconds   int     `mapstructure:"cache_ttl_seconds"`
}

type Scheduler struct {
	Enabled   bool   `mapstructure:"enabled"`
	UFCron    string `mapstructure:"uf_cron"`
	DolarCron string `mapstructure:"dolar_cron"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	// Offline points the record store and the object store at local emulators.
	// Any non-empty IS_OFFLINE that is not a false boolean enables it.
	Offline     bool        `mapstructure:"-"`
	Timezone    string      `mapstructure:"timezone"`
	HTTPServer  HTTPServer  `mapstructure:"http_server"`
	DbServer    DbServer    `mapstructure:"db_server"`
	Store       Store       `mapstructure:"store"`
	ObjectStore ObjectStore `mapstructure:"object_store"`
	Mindicador  Mindicador  `mapstructure:"mindicador"`
	Scheduler   Scheduler   `mapstructure:"scheduler"`
	Logging     Logging     `mapstructure:"logging"`
}

// Init reads the optional .env and config.yaml files, then environment
// variables, which take precedence.
func Init() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return load(v)
}

func load(v *viper.Viper) (*AppConfig, error) {
	setDefaults(v)
	bindEnv(v)

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	cfg.Offline = parseOffline(v.GetString("offline"))

	if cfg.Offline {
		applyOffline(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("offline", false)
	v.SetDefault("timezone", "America/Santiago")

	v.SetDefault("http_server.port", "8080")

	v.SetDefault("db_server.host", "")
	v.SetDefault("db_server.port", "5432")
	v.SetDefault("db_server.user", "")
	v.SetDefault("db_server.pass", "")
	v.SetDefault("db_server.name", "indicators")
	v.SetDefault("db_server.max_conns", 10)

	v.SetDefault("store.table", "indicators")
	v.SetDefault("store.auto_migrate", true)

	v.SetDefault("object_store.bucket", "indicators-archive")
	v.SetDefault("object_store.region", "us-east-1")
	v.SetDefault("object_store.offline_endpoint", "http://localhost:4569")
	v.SetDefault("object_store.offline_key", "S3RVER")
	v.SetDefault("object_store.offline_secret", "S3RVER")

	v.SetDefault("mindicador.base_url", "https://mindicador.cl/api")
	v.SetDefault("mindicador.timeout_seconds", 10)
	v.SetDefault("mindicador.retry_count", 2)
	v.SetDefault("mindicador.requests_per_second", 2)
	v.SetDefault("mindicador.cache_ttl_seconds", 300)

	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.uf_cron", "0 9 * * *")
	v.SetDefault("scheduler.dolar_cron", "0 9 * * 1-5")

	v.SetDefault("logging.level", "info")
}

func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("offline", "IS_OFFLINE")
	_ = v.BindEnv("timezone", "APP_TIMEZONE")

	_ = v.BindEnv("http_server.port", "HTTP_PORT")

	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	_ = v.BindEnv("store.table", "INDICATORS_TABLE")
	_ = v.BindEnv("store.auto_migrate", "STORE_AUTO_MIGRATE")

	_ = v.BindEnv("object_store.bucket", "S3_BUCKET")
	_ = v.BindEnv("object_store.region", "AWS_REGION")
	_ = v.BindEnv("object_store.offline_endpoint", "S3_OFFLINE_ENDPOINT")

	_ = v.BindEnv("mindicador.base_url", "MINDICADOR_BASE_URL")
	_ = v.BindEnv("mindicador.timeout_seconds", "MINDICADOR_TIMEOUT_SECONDS")
	_ = v.BindEnv("mindicador.retry_count", "MINDICADOR_RETRY_COUNT")
	_ = v.BindEnv("mindicador.requests_per_second", "MINDICADOR_REQUESTS_PER_SECOND")
	_ = v.BindEnv("mindicador.cache_ttl_seconds", "MINDICADOR_CACHE_TTL_SECONDS")

	_ = v.BindEnv("scheduler.enabled", "SCHEDULER_ENABLED")
	_ = v.BindEnv("scheduler.uf_cron", "SCHEDULER_UF_CRON")
	_ = v.BindEnv("scheduler.dolar_cron", "SCHEDULER_DOLAR_CRON")

	_ = v.BindEnv("logging.level", "LOG_LEVEL")
}

func parseOffline(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return true
}

// applyOffline fills in local emulator settings the user did not set explicitly.
func applyOffline(cfg *AppConfig) {
	if cfg.DbServer.Host == "" {
		cfg.DbServer.Host = "localhost"
	}
	if cfg.DbServer.User == "" {
		cfg.DbServer.User = "postgres"
	}
	if cfg.DbServer.Pass == "" {
		cfg.DbServer.Pass = "postgres"
	}
}

func (cfg *AppConfig) validate() error {
	var missing []string
	if cfg.DbServer.Host == "" {
		missing = append(missing, "DB_HOST")
	}
	if strings.TrimSpace(cfg.Store.Table) == "" {
		missing = append(missing, "INDICATORS_TABLE")
	}
	if strings.TrimSpace(cfg.ObjectStore.Bucket) == "" {
		missing = append(missing, "S3_BUCKET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
