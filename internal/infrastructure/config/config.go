package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 儲存 HTTP API 及外部相依的執行設定。
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	DB       DBConfig       `yaml:"db"`
	Auth     AuthConfig     `yaml:"auth"`
	Notifier NotifierConfig `yaml:"notifier"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

type DBConfig struct {
	DSN          string        `yaml:"dsn"`
	MaxOpenConns int           `yaml:"max_open_conns"`
	MaxIdleConns int           `yaml:"max_idle_conns"`
	MaxIdleTime  time.Duration `yaml:"max_idle_time"`
}

type AuthConfig struct {
	TokenTTL   time.Duration `yaml:"token_ttl"`
	RefreshTTL time.Duration `yaml:"refresh_ttl"`
	Secret     string        `yaml:"secret"`
}

type NotifierConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig 控制每日績效摘要推播。
type TelegramConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Token     string        `yaml:"token"`
	ChatID    int64         `yaml:"chat_id"`
	AccountID string        `yaml:"account_id"`
	Interval  time.Duration `yaml:"interval"`
}

// LoadFromFile 從 YAML 組態檔載入設定。
func LoadFromFile(path string) (Config, error) {
	// 嘗試載入 .env 檔案（如果存在）
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg = applyDefaults(cfg)
	cfg = applyEnv(cfg)
	return cfg, nil
}

func applyDefaults(cfg Config) Config {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.DB.MaxOpenConns == 0 {
		cfg.DB.MaxOpenConns = 5
	}
	if cfg.DB.MaxIdleConns == 0 {
		cfg.DB.MaxIdleConns = 2
	}
	if cfg.DB.MaxIdleTime == 0 {
		cfg.DB.MaxIdleTime = 15 * time.Minute
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 30 * time.Minute
	}
	if cfg.Auth.RefreshTTL == 0 {
		cfg.Auth.RefreshTTL = 24 * time.Hour * 30
	}
	if cfg.Auth.Secret == "" {
		cfg.Auth.Secret = "dev-secret-change-me"
	}
	if cfg.Notifier.Telegram.Interval == 0 {
		cfg.Notifier.Telegram.Interval = 24 * time.Hour
	}
	return cfg
}

func applyEnv(cfg Config) Config {
	if val := os.Getenv("HTTP_ADDR"); val != "" {
		cfg.HTTP.Addr = val
	}
	if val := os.Getenv("PORT"); val != "" {
		cfg.HTTP.Addr = ":" + val
	}
	if val := os.Getenv("DB_DSN"); val != "" {
		cfg.DB.DSN = val
	}
	if val := os.Getenv("AUTH_SECRET"); val != "" {
		cfg.Auth.Secret = val
	}
	if val := os.Getenv("TELEGRAM_TOKEN"); val != "" {
		cfg.Notifier.Telegram.Token = val
	}
	if val := os.Getenv("TELEGRAM_CHAT_ID"); val != "" {
		if id, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Notifier.Telegram.ChatID = id
		}
	}
	if val := os.Getenv("TELEGRAM_ACCOUNT_ID"); val != "" {
		cfg.Notifier.Telegram.AccountID = val
	}
	if val := os.Getenv("TELEGRAM_ENABLED"); val != "" {
		cfg.Notifier.Telegram.Enabled = (val == "true")
	}
	return cfg
}
