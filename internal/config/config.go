package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Переменные окружения, переопределяющие значения из файла
const (
	EnvHTTPPort       = "BOARD_HTTP_PORT"
	EnvLogLevel       = "BOARD_LOG_LEVEL"
	EnvLogFile        = "BOARD_LOG_FILE"
	EnvMetricsEnabled = "BOARD_METRICS_ENABLED"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Facility FacilityConfig `toml:"facility"`
	Seed     SeedConfig     `toml:"seed"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// FacilityConfig операционное окно, сетка и операционные
type FacilityConfig struct {
	StartHour               int          `toml:"start_hour"`
	EndHour                 int          `toml:"end_hour"`
	SlotStepMinutes         int          `toml:"slot_step_minutes"`
	SnapMinutes             int          `toml:"snap_minutes"`
	PixelsPerHour           float64      `toml:"pixels_per_hour"`
	DefaultDurationMinutes  int          `toml:"default_duration_minutes"`
	DefaultCleanTimeMinutes int          `toml:"default_clean_time_minutes"`
	Rooms                   []RoomConfig `toml:"rooms"`
}

// RoomConfig описание операционной
type RoomConfig struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// SeedConfig демонстрационные данные при старте
type SeedConfig struct {
	Demo bool `toml:"demo"`
}

// Default возвращает конфигурацию по умолчанию (эталонная конфигурация учреждения)
func Default() *Config {
	rooms := make([]RoomConfig, len(domain.DefaultRooms))
	for i, r := range domain.DefaultRooms {
		rooms[i] = RoomConfig{ID: string(r.ID), Name: r.Name}
	}

	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "surgery_board",
		},
		Facility: FacilityConfig{
			StartHour:               domain.DefaultStartHour,
			EndHour:                 domain.DefaultEndHour,
			SlotStepMinutes:         domain.DefaultStepMinutes,
			SnapMinutes:             domain.DefaultSnapMinutes,
			PixelsPerHour:           domain.DefaultPixelsPerHour,
			DefaultDurationMinutes:  domain.DefaultDurationMinutes,
			DefaultCleanTimeMinutes: domain.DefaultCleanTimeMinutes,
			Rooms:                   rooms,
		},
	}
}

// Load загружает конфигурацию из TOML файла поверх значений по умолчанию
// Перед разбором подгружается .env (если есть), затем применяются переменные окружения
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv переопределяет значения конфигурации переменными окружения
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvHTTPPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvHTTPPort, v)
		}
		c.Server.HTTPPort = port
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Logs.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		c.Logs.File = v
	}
	if v, ok := os.LookupEnv(EnvMetricsEnabled); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvMetricsEnabled, v)
		}
		c.Metrics.Enabled = enabled
	}
	return nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: http_port must be in 1..65535", ErrInvalidConfig)
	}

	f := c.Facility
	if f.StartHour < 0 || f.StartHour >= f.EndHour || f.EndHour > 24 {
		return fmt.Errorf("%w: operating window must satisfy 0 <= start_hour < end_hour <= 24", ErrInvalidConfig)
	}
	if !dividesHour(f.SlotStepMinutes) {
		return fmt.Errorf("%w: slot_step_minutes must divide 60", ErrInvalidConfig)
	}
	if !dividesHour(f.SnapMinutes) {
		return fmt.Errorf("%w: snap_minutes must divide 60", ErrInvalidConfig)
	}
	if f.PixelsPerHour <= 0 {
		return fmt.Errorf("%w: pixels_per_hour must be positive", ErrInvalidConfig)
	}
	if f.DefaultDurationMinutes <= 0 {
		return fmt.Errorf("%w: default_duration_minutes must be positive", ErrInvalidConfig)
	}
	if f.DefaultCleanTimeMinutes < 0 {
		return fmt.Errorf("%w: default_clean_time_minutes must be non-negative", ErrInvalidConfig)
	}
	if len(f.Rooms) == 0 {
		return fmt.Errorf("%w: at least one room is required", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(f.Rooms))
	for _, r := range f.Rooms {
		if r.ID == "" {
			return fmt.Errorf("%w: room id is required", ErrInvalidConfig)
		}
		if _, ok := seen[r.ID]; ok {
			return fmt.Errorf("%w: duplicate room id %q", ErrInvalidConfig, r.ID)
		}
		seen[r.ID] = struct{}{}
	}

	return nil
}

// ToFacility конвертирует конфигурацию в доменную модель учреждения
func (c *Config) ToFacility() *domain.Facility {
	rooms := make([]domain.Room, len(c.Facility.Rooms))
	for i, r := range c.Facility.Rooms {
		name := r.Name
		if name == "" {
			name = r.ID
		}
		rooms[i] = domain.Room{ID: domain.RoomID(r.ID), Name: name}
	}

	return &domain.Facility{
		StartHour:               c.Facility.StartHour,
		EndHour:                 c.Facility.EndHour,
		StepMinutes:             c.Facility.SlotStepMinutes,
		SnapMinutes:             c.Facility.SnapMinutes,
		PixelsPerHour:           c.Facility.PixelsPerHour,
		Rooms:                   rooms,
		DefaultDurationMinutes:  c.Facility.DefaultDurationMinutes,
		DefaultCleanTimeMinutes: c.Facility.DefaultCleanTimeMinutes,
	}
}

func dividesHour(minutes int) bool {
	return minutes > 0 && minutes <= 60 && 60%minutes == 0
}
