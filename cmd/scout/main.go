package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/annel0/biome-scout/internal/biome"
	"github.com/annel0/biome-scout/internal/config"
	"github.com/annel0/biome-scout/internal/logging"
	"github.com/annel0/biome-scout/internal/search"
	"github.com/annel0/biome-scout/internal/vec"
	"github.com/annel0/biome-scout/internal/world"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации")
	worldPath := flag.String("world", "", "путь к сохранению мира (переопределяет конфиг)")
	anchorX := flag.Int("x", 0, "X координата якоря (переопределяет конфиг)")
	anchorZ := flag.Int("z", 0, "Z координата якоря (переопределяет конфиг)")
	flag.Parse()

	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("scout"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	runID := uuid.New().String()
	logging.Info("🧭 Запуск поиска ближайших биомов (run %s)...", runID)

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("❌ Ошибка загрузки конфигурации: %v", err)
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	if *worldPath != "" {
		cfg.World.Path = *worldPath
	}
	if cfg.World.Path == "" {
		log.Fatal("❌ Путь к сохранению мира не задан (флаг -world или world.path в конфиге)")
	}

	anchor := vec.Vec2{X: cfg.Search.AnchorX, Z: cfg.Search.AnchorZ}
	if isFlagSet("x") {
		anchor.X = *anchorX
	}
	if isFlagSet("z") {
		anchor.Z = *anchorZ
	}

	tracked, err := trackedBiomes(cfg.Search.Biomes)
	if err != nil {
		logging.Error("❌ Некорректный список биомов: %v", err)
		log.Fatalf("❌ Некорректный список биомов: %v", err)
	}

	logging.Info("📡 Мир: %s, якорь: %d/%d, биомов: %d, воркеров: %d",
		cfg.World.Path, anchor.X, anchor.Z, len(tracked), cfg.Search.GetWorkers())

	// Prometheus-эндпоинт на время сканирования (опционально)
	if addr := cfg.Metrics.GetMetricsAddr(); addr != "" {
		go func() {
			logging.Info("📈 Prometheus /metrics доступен по адресу %s", addr)
			if err := http.ListenAndServe(addr, promhttp.Handler()); err != nil {
				logging.Error("Ошибка Prometheus HTTP сервера: %v", err)
			}
		}()
	}

	// === ОТКРЫТИЕ МИРА ===
	w, err := world.Open(cfg.World.Path, world.Options{
		SeedOverride: cfg.World.Seed,
		CachePath:    cfg.Cache.Path,
	})
	if err != nil {
		logging.Error("❌ Ошибка открытия мира: %v", err)
		log.Fatalf("❌ Ошибка открытия мира: %v", err)
	}
	defer w.Close()

	// === ПОИСК ===
	controller := search.NewController(w.Regions, w.Oracle, anchor, tracked, cfg.Search.GetWorkers())
	results, err := controller.Run(context.Background())
	if err != nil {
		logging.Error("❌ Поиск прерван: %v", err)
		log.Fatalf("❌ Поиск прерван: %v", err)
	}

	for _, res := range results {
		logging.Info("📍 Ближайший %s: %d/%d (расстояние: %d м)",
			res.Biome, res.Pos.X, res.Pos.Z, res.Distance)
	}
	logging.Info("🏁 Поиск завершён: найдено %d биомов", len(results))
}

// trackedBiomes преобразует имена из конфигурации в набор биомов.
// Пустой список означает набор Adventuring Time по умолчанию.
func trackedBiomes(names []string) ([]biome.Biome, error) {
	if len(names) == 0 {
		return biome.AdventuringTime(), nil
	}
	out := make([]biome.Biome, 0, len(names))
	for _, name := range names {
		b, err := biome.Parse(name)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
