package oracle

import (
	"github.com/annel0/biome-scout/internal/biome"
	"github.com/annel0/biome-scout/internal/storage"
	"github.com/annel0/biome-scout/internal/vec"
)

// Cached — оракул с кэшем в PredictionStore. Попадание в кэш не трогает
// внутренний оракул; промах делегируется и записывается насквозь.
// Ошибки кэша фатальны наравне с ошибками самого оракула.
type Cached struct {
	inner Oracle
	store *storage.PredictionStore
}

// NewCached оборачивает оракул в кэш предсказаний
func NewCached(inner Oracle, store *storage.PredictionStore) *Cached {
	return &Cached{inner: inner, store: store}
}

// BiomeNameAt возвращает имя биома из кэша либо от внутреннего оракула
func (c *Cached) BiomeNameAt(x, z int) (string, error) {
	pos := vec.Vec2{X: x, Z: z}

	if b, ok, err := c.store.Get(pos); err != nil {
		return "", err
	} else if ok {
		cacheHitsTotal.Inc()
		return b.String(), nil
	}

	name, err := c.inner.BiomeNameAt(x, z)
	if err != nil {
		return "", err
	}

	b, err := biome.Parse(name)
	if err != nil {
		// Неопознанное имя перехватит Gated; в кэш его не пишем
		return name, nil
	}
	if err := c.store.Put(pos, b); err != nil {
		return "", err
	}
	return name, nil
}
