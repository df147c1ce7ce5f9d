package storage

import (
	"testing"

	"github.com/annel0/biome-scout/internal/biome"
	"github.com/annel0/biome-scout/internal/vec"
)

// TestPredictionStore тестирует хранилище предсказаний
func TestPredictionStore(t *testing.T) {
	store, err := NewPredictionStore(t.TempDir())
	if err != nil {
		t.Fatalf("Ошибка открытия хранилища: %v", err)
	}
	defer store.Close()

	t.Run("Put and Get", func(t *testing.T) {
		pos := vec.Vec2{X: 3386, Z: 3096}

		if err := store.Put(pos, biome.Swamp); err != nil {
			t.Fatalf("Ошибка сохранения предсказания: %v", err)
		}

		b, found, err := store.Get(pos)
		if err != nil {
			t.Fatalf("Ошибка загрузки предсказания: %v", err)
		}
		if !found {
			t.Fatal("Предсказание не найдено")
		}
		if b != biome.Swamp {
			t.Errorf("Неверный биом: ожидался %v, получен %v", biome.Swamp, b)
		}
	})

	t.Run("Get Missing", func(t *testing.T) {
		_, found, err := store.Get(vec.Vec2{X: -1, Z: -1})
		if err != nil {
			t.Fatalf("Ошибка при загрузке отсутствующего предсказания: %v", err)
		}
		if found {
			t.Error("Предсказание найдено для незаписанной колонки")
		}
	})

	t.Run("Negative Coordinates", func(t *testing.T) {
		pos := vec.Vec2{X: -512, Z: -1}

		if err := store.Put(pos, biome.FrozenRiver); err != nil {
			t.Fatalf("Ошибка сохранения предсказания: %v", err)
		}

		b, found, err := store.Get(pos)
		if err != nil || !found {
			t.Fatalf("Предсказание для отрицательных координат не найдено: %v", err)
		}
		if b != biome.FrozenRiver {
			t.Errorf("Неверный биом: ожидался %v, получен %v", biome.FrozenRiver, b)
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		pos := vec.Vec2{X: 7, Z: 7}

		if err := store.Put(pos, biome.Plains); err != nil {
			t.Fatalf("Ошибка сохранения: %v", err)
		}
		if err := store.Put(pos, biome.Desert); err != nil {
			t.Fatalf("Ошибка перезаписи: %v", err)
		}

		b, found, err := store.Get(pos)
		if err != nil || !found {
			t.Fatalf("Перезаписанное предсказание не найдено: %v", err)
		}
		if b != biome.Desert {
			t.Errorf("Неверный биом после перезаписи: %v", b)
		}
	})
}
