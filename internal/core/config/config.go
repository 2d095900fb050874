package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const DefaultPath = "./configs/config.local.yaml"

type HTTP struct {
	Host               string
	Port               int
	ReadTimeoutSec     int
	WriteTimeoutSec    int
	IdleTimeoutSec     int
	ShutdownTimeoutSec int // 优雅关闭等待时间
}

type App struct {
	Name        string
	Env         string
	HTTP        HTTP
	Swagger     bool
	CORSOrigins []string `mapstructure:"cors_origins"` // 空表示全部
}

type LogFile struct {
	Filename   string
	MaxSizeMB  int `mapstructure:"max_size_mb"`
	MaxBackups int `mapstructure:"max_backups"`
	MaxAgeDays int `mapstructure:"max_age_days"`
	Compress   bool
}

type Log struct {
	Level string
	JSON  bool
	File  LogFile
}

// Auth 开启后 POST/PUT/DELETE 需要 admin token
type Auth struct {
	Enabled           bool
	Secret            string
	Issuer            string
	AccessTokenTTLMin int    `mapstructure:"access_token_ttl_min"`
	AdminPasswordHash string `mapstructure:"admin_password_hash"`
}

func (a Auth) TTL() time.Duration { return time.Duration(a.AccessTokenTTLMin) * time.Minute }

type DB struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int    `mapstructure:"max_open_conns"`
	MaxIdleConns       int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeMin int    `mapstructure:"conn_max_lifetime_min"`
	AutoMigrate        bool   `mapstructure:"auto_migrate"`
	LogLevel           string `mapstructure:"log_level"`
}

type Limits struct {
	RPS         float64
	Burst       int
	PerIPRPS    float64 `mapstructure:"per_ip_rps"`
	PerIPBurst  int     `mapstructure:"per_ip_burst"`
	Concurrency int64
	BodyBytes   int64 `mapstructure:"body_bytes"`
	TimeoutSec  int   `mapstructure:"timeout_sec"`
}

func (l Limits) Timeout() time.Duration { return time.Duration(l.TimeoutSec) * time.Second }

type Config struct {
	App    App
	Log    Log
	DB     DB
	Auth   Auth
	Limits Limits
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "superheroes")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 8080)
	v.SetDefault("app.http.readtimeoutsec", 5)
	v.SetDefault("app.http.writetimeoutsec", 10)
	v.SetDefault("app.http.idletimeoutsec", 60)
	v.SetDefault("app.http.shutdowntimeoutsec", 10)
	v.SetDefault("app.swagger", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file.max_size_mb", 100)
	v.SetDefault("log.file.max_backups", 7)
	v.SetDefault("log.file.max_age_days", 30)

	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime_min", 30)
	v.SetDefault("db.auto_migrate", true)
	v.SetDefault("db.log_level", "warn")

	v.SetDefault("auth.issuer", "superheroes")
	v.SetDefault("auth.access_token_ttl_min", 60)

	v.SetDefault("limits.rps", 200)
	v.SetDefault("limits.burst", 400)
	v.SetDefault("limits.per_ip_rps", 20)
	v.SetDefault("limits.per_ip_burst", 40)
	v.SetDefault("limits.concurrency", 300)
	v.SetDefault("limits.body_bytes", 1<<20)
	v.SetDefault("limits.timeout_sec", 10)
}

// Load 读取 YAML；path 为空时依次取 CONFIG_PATH、DefaultPath。APP_DB_DSN 之类的环境变量覆盖文件
func Load(path string) (*Config, error) {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = DefaultPath
		}
	}
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func MustLoad(path string) *Config {
	c, err := Load(path)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return c
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("db.driver must be postgres or mysql, got %q", c.DB.Driver)
	}
	if c.DB.DSN == "" {
		return fmt.Errorf("db.dsn is required")
	}
	if c.Auth.Enabled && c.Auth.Secret == "" {
		return fmt.Errorf("auth.secret is required when auth.enabled")
	}
	return nil
}
