package search

import (
	"github.com/annel0/biome-scout/internal/biome"
	"github.com/annel0/biome-scout/internal/region"
	"github.com/annel0/biome-scout/internal/vec"
)

// Predictor предсказывает биом в колонке блоков.
// Реализуется адаптером oracle.Gated; тесты подставляют заглушки.
type Predictor interface {
	Predict(pos vec.Vec2) (biome.Biome, error)
}

// DenseGrid — плотная сетка биомов региона: [cz][cx][bz][bx], без пропусков
type DenseGrid [32][32]region.ChunkBiomes

// Stitcher сшивает разреженную сетку региона с предсказаниями оракула
// в плотную сетку биомов
type Stitcher struct {
	oracle Predictor
}

// NewStitcher создаёт сшиватель поверх указанного предсказателя
func NewStitcher(oracle Predictor) *Stitcher {
	return &Stitcher{oracle: oracle}
}

// Stitch заполняет плотную сетку региона rc: присутствующие чанки копируются
// дословно, для каждого отсутствующего чанка оракул вызывается ровно один раз
// на каждую из его 256 колонок. Для колонки с данными на диске оракул не
// вызывается никогда — его вызовы являются доминирующей статьёй расходов.
func (s *Stitcher) Stitch(rc vec.Vec2, grid *region.Grid) (*DenseGrid, error) {
	dense := &DenseGrid{}

	for cz := 0; cz < 32; cz++ {
		for cx := 0; cx < 32; cx++ {
			if chunk := grid[cz][cx]; chunk != nil {
				dense[cz][cx] = *chunk
				chunksOnDisk.Inc()
				continue
			}

			for bz := 0; bz < 16; bz++ {
				for bx := 0; bx < 16; bx++ {
					pos := vec.Vec2{
						X: rc.X<<9 + cx<<4 + bx,
						Z: rc.Z<<9 + cz<<4 + bz,
					}
					b, err := s.oracle.Predict(pos)
					if err != nil {
						return nil, err
					}
					dense[cz][cx][bz][bx] = b
				}
			}
			chunksPredicted.Inc()
		}
	}

	return dense, nil
}
