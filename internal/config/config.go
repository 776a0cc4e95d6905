package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server         Server         `toml:"server"`
	Database       Database       `toml:"database"`
	Logs           Logs           `toml:"logs"`
	Metrics        Metrics        `toml:"metrics"`
	Availability   Availability   `toml:"availability"`
	GoogleCalendar GoogleCalendar `toml:"google_calendar"`
	ICS            ICS            `toml:"ics"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	Environment     string `toml:"environment"` // "production" или "development"
}

// IsProduction возвращает true для production окружения
func (s Server) IsProduction() bool {
	return s.Environment == "production"
}

// Database настройки подключения к Postgres
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к Postgres
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки prometheus-метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Availability настройки расчёта доступности
type Availability struct {
	Timezone string `toml:"timezone"` // таймзона показов, например "Europe/Moscow"
}

// GoogleCalendar настройки адаптера Google Calendar
type GoogleCalendar struct {
	CredentialsFile string `toml:"credentials_file"`
}

// ICS настройки адаптера ICS-фидов
type ICS struct {
	FetchTimeout int `toml:"fetch_timeout"` // секунды
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		return nil, fmt.Errorf("config: server.http_port is required")
	}
	if cfg.Availability.Timezone == "" {
		cfg.Availability.Timezone = "UTC"
	}
	if cfg.ICS.FetchTimeout == 0 {
		cfg.ICS.FetchTimeout = 10
	}

	return &cfg, nil
}
