package config

import (
	"io/ioutil"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Search  SearchConfig  `yaml:"search"`
	Cache   CacheConfig   `yaml:"cache"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// WorldConfig описывает сохранение мира и параметры генерации
type WorldConfig struct {
	Path string `yaml:"path"`
	// Seed переопределяет сид из level.dat; nil — читать из сохранения
	Seed *int64 `yaml:"seed"`
}

// SearchConfig задаёт параметры поиска ближайших биомов
type SearchConfig struct {
	AnchorX int `yaml:"anchor_x"`
	AnchorZ int `yaml:"anchor_z"`
	// Biomes — канонические имена отслеживаемых биомов.
	// Пустой список означает набор Adventuring Time по умолчанию.
	Biomes  []string `yaml:"biomes"`
	Workers int      `yaml:"workers"`
}

// CacheConfig настраивает кэш предсказаний оракула
type CacheConfig struct {
	// Path — каталог BadgerDB; пустая строка отключает кэш
	Path string `yaml:"path"`
}

// MetricsConfig настраивает Prometheus-эндпоинт
type MetricsConfig struct {
	// Addr — адрес /metrics (например ":2112"); пустая строка отключает
	Addr string `yaml:"addr"`
}

// GetWorkers возвращает число воркеров с приоритетом: config -> env -> default
func (s *SearchConfig) GetWorkers() int {
	if s.Workers > 0 {
		return s.Workers
	}

	if envVal := os.Getenv("SCOUT_WORKERS"); envVal != "" {
		if n, err := strconv.Atoi(envVal); err == nil && n > 0 {
			return n
		}
	}

	return 8
}

// GetMetricsAddr возвращает адрес метрик с поддержкой fallback из окружения
func (m *MetricsConfig) GetMetricsAddr() string {
	if m.Addr != "" {
		return m.Addr
	}
	return os.Getenv("SCOUT_METRICS_ADDR")
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV SCOUT_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("SCOUT_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
