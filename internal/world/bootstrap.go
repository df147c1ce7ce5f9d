package world

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"

	"github.com/annel0/biome-scout/internal/logging"
	"github.com/annel0/biome-scout/internal/oracle"
	"github.com/annel0/biome-scout/internal/region"
	"github.com/annel0/biome-scout/internal/storage"
)

// World — открытое сохранение: читатель region-файлов и оракул предсказаний
// за последовательным шлюзом. Мир только читается и предсказывается,
// никакие данные сохранения не изменяются.
type World struct {
	Regions *region.Reader
	Oracle  *oracle.Gated
	Seed    int64

	store *storage.PredictionStore
}

// Options настраивает открытие мира
type Options struct {
	// SeedOverride заменяет сид из level.dat; nil — читать из сохранения
	SeedOverride *int64
	// CachePath — каталог кэша предсказаний; пустая строка отключает кэш
	CachePath string
}

// Open открывает сохранение мира по указанному пути и собирает оракул
// предсказаний. Все ошибки конфигурации (нет каталога, нет level.dat)
// всплывают здесь, до начала сканирования колец.
func Open(path string, opts Options) (*World, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("сохранение мира недоступно: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("путь сохранения %s не является каталогом", path)
	}

	regionDir := filepath.Join(path, "region")
	if info, err := os.Stat(regionDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("каталог регионов %s не найден", regionDir)
	}

	var seed int64
	if opts.SeedOverride != nil {
		seed = *opts.SeedOverride
		logging.Debug("Сид мира переопределён конфигурацией: %d", seed)
	} else {
		seed, err = readSeed(filepath.Join(path, "level.dat"))
		if err != nil {
			return nil, err
		}
		logging.Debug("Сид мира из level.dat: %d", seed)
	}

	var base oracle.Oracle = oracle.NewSeedOracle(seed)
	var store *storage.PredictionStore
	if opts.CachePath != "" {
		store, err = storage.NewPredictionStore(opts.CachePath)
		if err != nil {
			return nil, err
		}
		base = oracle.NewCached(base, store)
		logging.Debug("Кэш предсказаний включён: %s", opts.CachePath)
	}

	return &World{
		Regions: region.NewReader(regionDir),
		Oracle:  oracle.NewGated(base),
		Seed:    seed,
		store:   store,
	}, nil
}

// Close освобождает ресурсы мира
func (w *World) Close() error {
	if w.store != nil {
		return w.store.Close()
	}
	return nil
}

// levelRoot — корневой NBT-тег level.dat
type levelRoot struct {
	Data levelData `nbt:"Data"`
}

type levelData struct {
	RandomSeed       int64 `nbt:"RandomSeed"`
	WorldGenSettings struct {
		Seed int64 `nbt:"seed"`
	} `nbt:"WorldGenSettings"`
}

// readSeed извлекает сид генерации из level.dat (gzip NBT).
// В новых сохранениях сид лежит в Data.WorldGenSettings.seed,
// в старых — в Data.RandomSeed.
func readSeed(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("level.dat недоступен: %w", err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return 0, fmt.Errorf("level.dat повреждён: %w", err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return 0, fmt.Errorf("ошибка чтения level.dat: %w", err)
	}

	var root levelRoot
	if err := nbt.Unmarshal(data, &root); err != nil {
		return 0, fmt.Errorf("ошибка разбора level.dat: %w", err)
	}

	if root.Data.WorldGenSettings.Seed != 0 {
		return root.Data.WorldGenSettings.Seed, nil
	}
	return root.Data.RandomSeed, nil
}
