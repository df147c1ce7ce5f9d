package search

import (
	"errors"
	"testing"

	"github.com/annel0/biome-scout/internal/biome"
	"github.com/annel0/biome-scout/internal/region"
	"github.com/annel0/biome-scout/internal/vec"
)

// countingPredictor считает вызовы предсказания по координатам
type countingPredictor struct {
	calls map[vec.Vec2]int
	b     biome.Biome
}

func newCountingPredictor(b biome.Biome) *countingPredictor {
	return &countingPredictor{calls: make(map[vec.Vec2]int), b: b}
}

func (p *countingPredictor) Predict(pos vec.Vec2) (biome.Biome, error) {
	p.calls[pos]++
	return p.b, nil
}

// failingPredictor всегда возвращает ошибку
type failingPredictor struct{}

func (failingPredictor) Predict(pos vec.Vec2) (biome.Biome, error) {
	return 0, errors.New("контекст генерации сломан")
}

// fillChunk создаёт чанк, целиком заполненный одним биомом
func fillChunk(b biome.Biome) *region.ChunkBiomes {
	chunk := &region.ChunkBiomes{}
	for bz := 0; bz < 16; bz++ {
		for bx := 0; bx < 16; bx++ {
			chunk[bz][bx] = b
		}
	}
	return chunk
}

func TestStitcher_DiskDataNeverPredicted(t *testing.T) {
	grid := &region.Grid{}
	grid[3][5] = fillChunk(biome.Desert) // чанк (cx=5, cz=3) есть на диске

	oracle := newCountingPredictor(biome.Plains)
	dense, err := NewStitcher(oracle).Stitch(vec.Vec2{X: 0, Z: 0}, grid)
	if err != nil {
		t.Fatalf("ошибка сшивки: %v", err)
	}

	// Для колонок чанка с данными на диске оракул не вызывается
	for bz := 0; bz < 16; bz++ {
		for bx := 0; bx < 16; bx++ {
			pos := vec.Vec2{X: 5<<4 + bx, Z: 3<<4 + bz}
			if n := oracle.calls[pos]; n != 0 {
				t.Fatalf("оракул вызван %d раз для колонки %v с данными на диске", n, pos)
			}
		}
	}

	// Каждая колонка каждого отсутствующего чанка предсказана ровно один раз
	want := 1023 * 256
	if len(oracle.calls) != want {
		t.Fatalf("ожидалось %d предсказанных колонок, получено %d", want, len(oracle.calls))
	}
	for pos, n := range oracle.calls {
		if n != 1 {
			t.Fatalf("колонка %v предсказана %d раз", pos, n)
		}
	}

	// Дисковые данные скопированы дословно, предсказания легли в пропуски
	if dense[3][5][0][0] != biome.Desert {
		t.Errorf("дисковый чанк не скопирован: %v", dense[3][5][0][0])
	}
	if dense[0][0][0][0] != biome.Plains {
		t.Errorf("пропуск не заполнен предсказанием: %v", dense[0][0][0][0])
	}
}

// TestStitcher_NegativeRegion тестирует точность координат для отрицательных регионов
func TestStitcher_NegativeRegion(t *testing.T) {
	oracle := newCountingPredictor(biome.Plains)
	if _, err := NewStitcher(oracle).Stitch(vec.Vec2{X: -1, Z: -1}, &region.Grid{}); err != nil {
		t.Fatalf("ошибка сшивки: %v", err)
	}

	if len(oracle.calls) != 1024*256 {
		t.Fatalf("ожидалось %d колонок, получено %d", 1024*256, len(oracle.calls))
	}

	// Регион (-1,-1) покрывает блоки [-512..-1] по обеим осям
	corners := []vec.Vec2{{X: -512, Z: -512}, {X: -1, Z: -1}, {X: -512, Z: -1}, {X: -1, Z: -512}}
	for _, pos := range corners {
		if oracle.calls[pos] != 1 {
			t.Errorf("угловая колонка %v не предсказана", pos)
		}
	}
	for pos := range oracle.calls {
		if pos.X < -512 || pos.X > -1 || pos.Z < -512 || pos.Z > -1 {
			t.Fatalf("предсказание за пределами региона: %v", pos)
		}
	}
}

func TestStitcher_OracleFailureFatal(t *testing.T) {
	_, err := NewStitcher(failingPredictor{}).Stitch(vec.Vec2{X: 0, Z: 0}, &region.Grid{})
	if err == nil {
		t.Fatal("ошибка оракула должна прерывать сшивку")
	}
}
