package oracle

import (
	"fmt"
	"sync"

	"github.com/annel0/biome-scout/internal/biome"
	"github.com/annel0/biome-scout/internal/vec"
)

// Gated — адаптер оракула с сериализацией доступа. Нижележащая способность
// предсказания небезопасна при конкурентных вызовах, поэтому все обращения
// проходят через один мьютекс, хотя окружающий поиск параллелен.
//
// Любая ошибка оракула фатальна и не повторяется: сбой означает сломанный
// контекст генерации, а не временную нагрузку.
type Gated struct {
	mu    sync.Mutex
	inner Oracle
}

// NewGated оборачивает оракул в последовательный шлюз
func NewGated(inner Oracle) *Gated {
	return &Gated{inner: inner}
}

// Predict возвращает биом в указанной колонке блоков.
// Неопознанное имя биома от оракула — фатальная ошибка.
func (g *Gated) Predict(pos vec.Vec2) (biome.Biome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	predictionsTotal.Inc()

	name, err := g.inner.BiomeNameAt(pos.X, pos.Z)
	if err != nil {
		return 0, fmt.Errorf("оракул не смог предсказать биом в %d/%d: %w", pos.X, pos.Z, err)
	}

	b, err := biome.Parse(name)
	if err != nil {
		return 0, fmt.Errorf("оракул вернул неопознанный биом в %d/%d: %w", pos.X, pos.Z, err)
	}
	return b, nil
}
