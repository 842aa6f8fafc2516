package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config корневая конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Redis    RedisConfig    `toml:"redis"`
	Minio    MinioConfig    `toml:"minio"`
	Admin    AdminConfig    `toml:"admin"`
	CORS     CORSConfig     `toml:"cors"`
	Salon    SalonConfig    `toml:"salon"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type RedisConfig struct {
	Enabled     bool   `toml:"enabled"`
	Addr        string `toml:"addr"`
	Password    string `toml:"password"`
	DB          int    `toml:"db"`
	SlotsTTLSec int    `toml:"slots_ttl"` // секунды
}

// SlotsTTL время жизни кэша слотов
func (r RedisConfig) SlotsTTL() time.Duration {
	return time.Duration(r.SlotsTTLSec) * time.Second
}

type MinioConfig struct {
	Enabled       bool   `toml:"enabled"`
	Endpoint      string `toml:"endpoint"`
	AccessKey     string `toml:"access_key"`
	SecretKey     string `toml:"secret_key"`
	UseSSL        bool   `toml:"use_ssl"`
	Bucket        string `toml:"bucket"`
	PublicBaseURL string `toml:"public_base_url"`
	MaxUploadMB   int    `toml:"max_upload_mb"`
}

// MaxUploadBytes лимит размера изображения в байтах
func (m MinioConfig) MaxUploadBytes() int64 {
	return int64(m.MaxUploadMB) << 20
}

type AdminConfig struct {
	Password     string `toml:"password"`
	PasswordHash string `toml:"password_hash"` // bcrypt, приоритетнее plain пароля
	JWTSecret    string `toml:"jwt_secret"`
	TokenTTLMin  int    `toml:"token_ttl"` // минуты
	LoginRPM     int    `toml:"login_rpm"` // попыток входа в минуту с одного IP
}

// TokenTTL время жизни токена администратора
func (a AdminConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLMin) * time.Minute
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

type SalonConfig struct {
	Timezone string `toml:"timezone"`
}

// Location часовой пояс салона
func (s SalonConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// Load читает TOML файл, применяет значения по умолчанию,
// переопределения из окружения (.env подхватывается, если есть) и валидирует результат
func Load(path string) (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "nailstudio",
		},
		Redis: RedisConfig{
			Addr:        "localhost:6379",
			SlotsTTLSec: 3600,
		},
		Minio: MinioConfig{
			Bucket:      "portfolio-images",
			MaxUploadMB: 10,
		},
		Admin: AdminConfig{
			TokenTTLMin: 720,
			LoginRPM:    10,
		},
		Salon: SalonConfig{
			Timezone: "America/Argentina/Buenos_Aires",
		},
	}
}

// applyEnv секреты из окружения переопределяют файл
func applyEnv(cfg *Config) {
	overrides := map[string]*string{
		"ADMIN_PASSWORD":      &cfg.Admin.Password,
		"ADMIN_PASSWORD_HASH": &cfg.Admin.PasswordHash,
		"JWT_SECRET":          &cfg.Admin.JWTSecret,
		"DB_PASSWORD":         &cfg.Database.Password,
		"MINIO_SECRET_KEY":    &cfg.Minio.SecretKey,
		"REDIS_PASSWORD":      &cfg.Redis.Password,
	}
	for key, target := range overrides {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*target = v
		}
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}
	if c.Database.DBName == "" {
		problems = append(problems, "database.dbname is required")
	}
	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		problems = append(problems, "admin.password or admin.password_hash is required")
	}
	if c.Admin.JWTSecret == "" {
		problems = append(problems, "admin.jwt_secret is required")
	}
	if c.Admin.TokenTTLMin <= 0 {
		problems = append(problems, "admin.token_ttl must be positive")
	}
	if c.Redis.Enabled && c.Redis.SlotsTTLSec <= 0 {
		problems = append(problems, "redis.slots_ttl must be positive")
	}
	if c.Minio.Enabled && (c.Minio.Endpoint == "" || c.Minio.Bucket == "") {
		problems = append(problems, "minio.endpoint and minio.bucket are required when minio is enabled")
	}
	if _, err := c.Salon.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("salon.timezone: %v", err))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
