package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Политики повторной сдачи активности
const (
	ResubmissionAppend    = "append"
	ResubmissionOverwrite = "overwrite"
)

// Config хранит все настройки приложения
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Upload    UploadConfig    `mapstructure:"upload"`
	Attempt   AttemptConfig   `mapstructure:"attempt"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Mail      MailConfig      `mapstructure:"mail"`
	Log       LogConfig       `mapstructure:"log"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string `mapstructure:"port"`
	Mode         string `mapstructure:"mode"` // debug | release | test
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

// DatabaseConfig содержит настройки подключения к PostgreSQL.
// Если задан URL, остальные поля подключения игнорируются.
type DatabaseConfig struct {
	URL            string `mapstructure:"url"`
	Host           string `mapstructure:"host"`
	Port           string `mapstructure:"port"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	DBName         string `mapstructure:"dbname"`
	SSLMode        string `mapstructure:"sslmode"`
	MigrationsPath string `mapstructure:"migrations_path"`
}

// RedisConfig содержит унифицированные настройки подключения к Redis
// Поддерживает режимы: single, sentinel, cluster
type RedisConfig struct {
	Mode       string   `mapstructure:"mode"`
	Addrs      []string `mapstructure:"addrs"`
	Addr       string   `mapstructure:"addr"`
	Password   string   `mapstructure:"password"`
	DB         int      `mapstructure:"db"`
	MasterName string   `mapstructure:"master_name"`
}

// AuthConfig содержит настройки сессий
type AuthConfig struct {
	SecretKey       string `mapstructure:"secret_key"`
	SessionTTLHours int    `mapstructure:"session_ttl_hours"`
	CookieName      string `mapstructure:"cookie_name"`
	SecureCookie    bool   `mapstructure:"secure_cookie"`
}

// UploadConfig описывает ограничения на размер запроса и допустимые расширения файлов
type UploadConfig struct {
	MaxContentLength  int64    `mapstructure:"max_content_length"`
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
}

// AttemptConfig задает поведение при прохождении активностей
type AttemptConfig struct {
	ResubmissionPolicy string `mapstructure:"resubmission_policy"`
	StartTTLHours      int    `mapstructure:"start_ttl_hours"` // 0 хранит время начала без срока
}

// RateLimitConfig ограничивает частоту запросов на вход и регистрацию
type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowSeconds int `mapstructure:"window_seconds"`
}

// MailConfig содержит настройки отправки писем через Resend.
// Пустой ключ отключает отправку.
type MailConfig struct {
	ResendAPIKey string `mapstructure:"resend_api_key"`
	From         string `mapstructure:"from"`
}

// LogConfig содержит настройки логирования
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// CORSConfig содержит список разрешенных источников
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// IsAllowedFile сообщает, допустимо ли расширение файла для загрузки
func (u *UploadConfig) IsAllowedFile(filename string) bool {
	dot := strings.LastIndex(filename, ".")
	if dot < 0 || dot == len(filename)-1 {
		return false
	}
	ext := strings.ToLower(filename[dot+1:])
	for _, allowed := range u.AllowedExtensions {
		if strings.ToLower(allowed) == ext {
			return true
		}
	}
	return false
}

func setDefaults(vip *viper.Viper) {
	vip.SetDefault("server.port", "8080")
	vip.SetDefault("server.mode", "debug")
	vip.SetDefault("server.read_timeout", 10)
	vip.SetDefault("server.write_timeout", 10)

	vip.SetDefault("database.port", "5432")
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("database.migrations_path", "migrations")

	vip.SetDefault("redis.mode", "single")
	vip.SetDefault("redis.addr", "localhost:6379")

	vip.SetDefault("auth.session_ttl_hours", 24)
	vip.SetDefault("auth.cookie_name", "eduquiz_session")

	vip.SetDefault("upload.max_content_length", 16*1024*1024)
	vip.SetDefault("upload.allowed_extensions", []string{"pdf", "txt", "doc", "docx"})

	vip.SetDefault("attempt.resubmission_policy", ResubmissionAppend)
	vip.SetDefault("attempt.start_ttl_hours", 0)

	vip.SetDefault("rate_limit.max_requests", 10)
	vip.SetDefault("rate_limit.window_seconds", 60)

	vip.SetDefault("mail.from", "EduQuiz <no-reply@eduquiz.local>")

	vip.SetDefault("log.level", "info")
	vip.SetDefault("log.file", "logs/app.log")
	vip.SetDefault("log.max_size_mb", 100)
	vip.SetDefault("log.max_backups", 5)
	vip.SetDefault("log.max_age_days", 30)

	vip.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
}

func bindEnv(vip *viper.Viper) {
	bindings := map[string]string{
		"server.port": "SERVER_PORT",
		"server.mode": "GIN_MODE",

		"database.url":             "DATABASE_URL",
		"database.host":            "DATABASE_HOST",
		"database.port":            "DATABASE_PORT",
		"database.user":            "DATABASE_USER",
		"database.password":        "DATABASE_PASSWORD",
		"database.dbname":          "DATABASE_DBNAME",
		"database.sslmode":         "DATABASE_SSLMODE",
		"database.migrations_path": "DATABASE_MIGRATIONS_PATH",

		"redis.mode":        "REDIS_MODE",
		"redis.addrs":       "REDIS_ADDRS",
		"redis.addr":        "REDIS_ADDR",
		"redis.password":    "REDIS_PASSWORD",
		"redis.db":          "REDIS_DB",
		"redis.master_name": "REDIS_MASTER_NAME",

		"auth.secret_key":        "SECRET_KEY",
		"auth.session_ttl_hours": "AUTH_SESSION_TTL_HOURS",
		"auth.secure_cookie":     "AUTH_SECURE_COOKIE",

		"upload.max_content_length": "UPLOAD_MAX_CONTENT_LENGTH",
		"upload.allowed_extensions": "UPLOAD_ALLOWED_EXTENSIONS",

		"attempt.resubmission_policy": "ATTEMPT_RESUBMISSION_POLICY",
		"attempt.start_ttl_hours":     "ATTEMPT_START_TTL_HOURS",

		"mail.resend_api_key": "MAIL_RESEND_API_KEY",
		"mail.from":           "MAIL_FROM",

		"log.level": "LOG_LEVEL",
		"log.file":  "LOG_FILE",

		"cors.allowed_origins": "CORS_ALLOWED_ORIGINS",
	}
	for key, env := range bindings {
		_ = vip.BindEnv(key, env)
	}
}

// Load загружает конфигурацию из файла и переменных окружения.
// Пустой configPath означает: только переменные окружения и значения по умолчанию.
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Новый экземпляр, без глобального состояния

	setDefaults(vip)
	bindEnv(vip)

	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.SecretKey == "" {
		return fmt.Errorf("secret key is required (check SECRET_KEY env var)")
	}
	if c.Database.URL == "" && (c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "") {
		return fmt.Errorf("database configuration (url, or host, dbname, user) is incomplete (check DATABASE_URL or DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
	}
	switch c.Attempt.ResubmissionPolicy {
	case ResubmissionAppend, ResubmissionOverwrite:
	default:
		return fmt.Errorf("unsupported attempt resubmission policy %q (expected %q or %q)",
			c.Attempt.ResubmissionPolicy, ResubmissionAppend, ResubmissionOverwrite)
	}
	if c.Attempt.StartTTLHours < 0 {
		return fmt.Errorf("attempt start ttl must not be negative (0 disables expiry)")
	}
	if c.Upload.MaxContentLength <= 0 {
		return fmt.Errorf("upload max content length must be positive")
	}
	return nil
}
