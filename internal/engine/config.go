package engine

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config хранит параметры запуска симуляции
type Config struct {
	// Seed — мастер-зерно. От него зависят спавн муравьев и все
	// случайные ходы; фиксированный сид дает воспроизводимый прогон.
	Seed int64 `yaml:"seed"`

	// Workers — размер пула воркеров фазы движения.
	// По умолчанию равен количеству доступных CPU.
	Workers int `yaml:"workers"`

	// MaxTicks — жесткий потолок итераций цикла.
	MaxTicks int `yaml:"max_ticks"`

	// MapPath — путь к файлу карты мира.
	MapPath string `yaml:"map_path"`
}

const (
	DefaultMaxTicks = 10_000
	DefaultMapPath  = "./data/hiveum_map_small.txt"
)

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:     time.Now().UnixNano(),
		Workers:  runtime.NumCPU(),
		MaxTicks: DefaultMaxTicks,
		MapPath:  DefaultMapPath,
	}
}

// Load накладывает YAML-файл поверх дефолтов.
// Пустой путь — это не ошибка, возвращаются дефолты.
func Load(path string) (Config, error) {
	cfg := NewConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("sim config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("sim config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if c.MaxTicks < 1 {
		return fmt.Errorf("max_ticks must be >= 1, got %d", c.MaxTicks)
	}
	if strings.TrimSpace(c.MapPath) == "" {
		return fmt.Errorf("map_path is empty")
	}
	return nil
}
