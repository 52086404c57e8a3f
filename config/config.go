package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/techmaster-vietnam/goerrorkit"
)

// Cache drivers
const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
	CacheDriverNone   = "none"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Admin    AdminConfig
	Mail     MailConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         string        `env:"PORT" envDefault:"3000"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	CORSOrigins  string        `env:"CORS_ORIGINS" envDefault:"*"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	Name     string `env:"DB_NAME" envDefault:"portfolio"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	// Reset xóa toàn bộ bảng trước khi migrate, chỉ dùng cho development
	Reset bool `env:"RESET_DB" envDefault:"false"`
	Seed  bool `env:"SEED_DB" envDefault:"false"`
}

// DSN builds the connection string cho gorm postgres driver
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

// CacheConfig holds read-path cache configuration
// Prefix là namespace chung cho mọi cache key, phải giống nhau giữa read path và invalidator
type CacheConfig struct {
	Driver        string        `env:"CACHE_DRIVER" envDefault:"memory"`
	Prefix        string        `env:"CACHE_PREFIX" envDefault:"portfolio:"`
	TTL           time.Duration `env:"CACHE_TTL" envDefault:"60m"`
	MaxCostMB     int64         `env:"CACHE_MAX_COST_MB" envDefault:"64"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	// RedisTimeout giới hạn dial/read/write của mỗi lệnh Redis
	RedisTimeout time.Duration `env:"REDIS_TIMEOUT" envDefault:"500ms"`
}

// AdminConfig holds credentials for the single site-owner account
type AdminConfig struct {
	Email        string        `env:"ADMIN_EMAIL" envDefault:"admin@example.com"`
	PasswordHash string        `env:"ADMIN_PASSWORD_HASH"` // bcrypt hash
	JWTSecret    string        `env:"JWT_SECRET" envDefault:"your-secret-key-change-in-production"`
	JWTExpiry    time.Duration `env:"JWT_EXPIRATION" envDefault:"24h"`
}

// MailConfig holds SMTP settings used by the contact form
type MailConfig struct {
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	From         string `env:"MAIL_FROM" envDefault:"no-reply@example.com"`
	OwnerEmail   string `env:"OWNER_EMAIL" envDefault:"admin@example.com"`
	OutboxFile   string `env:"MAIL_OUTBOX_FILE"` // development: ghi form liên hệ ra file JSON
}

// Enabled reports whether SMTP delivery is configured
func (m MailConfig) Enabled() bool {
	return m.SMTPHost != ""
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Không đọc được cấu hình từ biến môi trường")
	}
	cfg.Cache.Driver = strings.ToLower(strings.TrimSpace(cfg.Cache.Driver))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate kiểm tra các tổ hợp cấu hình bắt buộc
func (c *Config) Validate() error {
	switch c.Cache.Driver {
	case CacheDriverMemory:
		if c.Cache.MaxCostMB <= 0 {
			return goerrorkit.NewValidationError("CACHE_MAX_COST_MB phải lớn hơn 0", map[string]interface{}{
				"field":    "CACHE_MAX_COST_MB",
				"received": c.Cache.MaxCostMB,
			})
		}
	case CacheDriverRedis:
		if c.Cache.RedisAddr == "" {
			return goerrorkit.NewValidationError("REDIS_ADDR là bắt buộc khi CACHE_DRIVER=redis", map[string]interface{}{
				"field": "REDIS_ADDR",
			})
		}
		if c.Cache.RedisTimeout <= 0 {
			return goerrorkit.NewValidationError("REDIS_TIMEOUT phải lớn hơn 0", map[string]interface{}{
				"field": "REDIS_TIMEOUT",
			})
		}
	case CacheDriverNone:
	default:
		return goerrorkit.NewValidationError("CACHE_DRIVER phải là memory, redis hoặc none", map[string]interface{}{
			"field":    "CACHE_DRIVER",
			"received": c.Cache.Driver,
			"allowed":  []string{CacheDriverMemory, CacheDriverRedis, CacheDriverNone},
		})
	}

	if c.Cache.TTL <= 0 {
		return goerrorkit.NewValidationError("CACHE_TTL phải lớn hơn 0", map[string]interface{}{
			"field": "CACHE_TTL",
		})
	}

	if c.Admin.JWTSecret == "" {
		return goerrorkit.NewValidationError("JWT_SECRET là bắt buộc", map[string]interface{}{
			"field": "JWT_SECRET",
		})
	}

	return nil
}
