package search

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/annel0/biome-scout/internal/biome"
	"github.com/annel0/biome-scout/internal/logging"
	"github.com/annel0/biome-scout/internal/region"
	"github.com/annel0/biome-scout/internal/vec"
)

// RegionSource загружает разреженную сетку биомов региона.
// Реализуется region.Reader; тесты подставляют синтетические миры.
type RegionSource interface {
	Load(rc vec.Vec2) (*region.Grid, error)
}

// convergenceRings — число дополнительных колец после нахождения всех биомов.
// Поиск расширяется кольцами с гранулярностью регионов, а расстояние меряется
// в блоках, поэтому биом, найденный на кольце d, может иметь строго более
// близкий экземпляр на кольцах d+1 и d+2. Унаследованная эвристика: два
// кольца ограничивают этот риск без неограниченной стоимости, но
// доказательства глобальной минимальности для всех случаев нет.
const convergenceRings = 2

// Result — итоговая запись поиска: биом, его ближайшая позиция и
// манхэттенское расстояние до якоря в блоках
type Result struct {
	Biome    biome.Biome
	Pos      vec.Vec2
	Distance int
}

// Controller управляет кольцевым расширением поиска ближайших биомов
type Controller struct {
	regions  RegionSource
	stitcher *Stitcher
	anchor   vec.Vec2
	tracked  []biome.Biome
	workers  int
}

// NewController создаёт контроллер поиска.
// workers ограничивает число конкурентных конвейеров регионов в кольце.
func NewController(regions RegionSource, oracle Predictor, anchor vec.Vec2, tracked []biome.Biome, workers int) *Controller {
	if workers < 1 {
		workers = 1
	}
	return &Controller{
		regions:  regions,
		stitcher: NewStitcher(oracle),
		anchor:   anchor,
		tracked:  tracked,
		workers:  workers,
	}
}

// Run выполняет поиск до сходимости и возвращает отсортированные результаты.
//
// Кольцо 0 — регион якоря; кольца d >= 1 обрабатываются с параллельным
// разветвлением по регионам, но строго последовательно между собой: решение
// об остановке зависит от полностью слитого состояния кольца. Первая же
// фатальная ошибка прерывает весь поиск без частичного результата.
func (c *Controller) Run(ctx context.Context) ([]Result, error) {
	tracker := NewTracker(c.anchor, c.tracked)
	center := c.anchor.ToRegionCoords()

	// Кольцо 0: единственный регион, содержащий якорь
	partial, err := c.scanRegion(center)
	if err != nil {
		return nil, err
	}
	tracker.Merge(partial)
	scanned := 1
	c.logProgress(tracker, scanned, false)

	// Пустой отслеживаемый набор вырождается в немедленный успех
	if len(c.tracked) == 0 {
		return c.results(tracker), nil
	}

	converging := tracker.AllFound()
	remaining := convergenceRings
	if converging {
		c.announceConvergence(scanned, center, 0)
	}

	for distance := 1; !(converging && remaining == 0); distance++ {
		ring := vec.Ring(center, distance)
		partials, err := c.scanRing(ctx, ring)
		if err != nil {
			return nil, err
		}
		for _, p := range partials {
			tracker.Merge(p)
		}
		scanned += len(ring)
		c.logProgress(tracker, scanned, converging)

		if converging {
			remaining--
		} else if tracker.AllFound() {
			converging = true
			c.announceConvergence(scanned, center, distance)
		}
	}

	return c.results(tracker), nil
}

// scanRing обрабатывает все регионы кольца конкурентно и возвращает
// частичные карты ближайших позиций. Порядок внутри кольца не важен:
// слияние трекера коммутативно.
func (c *Controller) scanRing(ctx context.Context, ring []vec.Vec2) ([]NearestMap, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	partials := make([]NearestMap, len(ring))
	for i, rc := range ring {
		i, rc := i, rc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			partial, err := c.scanRegion(rc)
			if err != nil {
				return err
			}
			partials[i] = partial
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return partials, nil
}

// scanRegion выполняет конвейер одного региона: загрузка с диска, сшивка
// с предсказаниями, свёртка в частичную карту ближайших позиций
func (c *Controller) scanRegion(rc vec.Vec2) (NearestMap, error) {
	grid, err := c.regions.Load(rc)
	if err != nil {
		return nil, err
	}

	dense, err := c.stitcher.Stitch(rc, grid)
	if err != nil {
		return nil, err
	}

	local := NewTracker(c.anchor, c.tracked)
	for cz := 0; cz < 32; cz++ {
		for cx := 0; cx < 32; cx++ {
			for bz := 0; bz < 16; bz++ {
				for bx := 0; bx < 16; bx++ {
					pos := vec.Vec2{
						X: rc.X<<9 + cx<<4 + bx,
						Z: rc.Z<<9 + cz<<4 + bz,
					}
					local.Update(pos, dense[cz][cx][bz][bx])
				}
			}
		}
	}

	regionsScanned.Inc()
	return local.Best(), nil
}

// results формирует детерминированный итог: сортировка по расстоянию,
// затем по Z, затем по X, затем по имени биома
func (c *Controller) results(tracker *Tracker) []Result {
	best := tracker.Best()
	out := make([]Result, 0, len(best))
	for b, pos := range best {
		out = append(out, Result{
			Biome:    b,
			Pos:      pos,
			Distance: vec.TaxicabDistance(c.anchor, pos),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		if out[i].Pos.Z != out[j].Pos.Z {
			return out[i].Pos.Z < out[j].Pos.Z
		}
		if out[i].Pos.X != out[j].Pos.X {
			return out[i].Pos.X < out[j].Pos.X
		}
		return out[i].Biome.String() < out[j].Biome.String()
	})
	return out
}

func (c *Controller) logProgress(tracker *Tracker, scanned int, converging bool) {
	if converging {
		logging.Info("🔄 Сходимость: %d регионов обработано", scanned)
		return
	}
	logging.Info("🔍 Обработано регионов: %d, найдено биомов: %d/%d",
		scanned, tracker.FoundCount(), tracker.TrackedCount())
}

func (c *Controller) announceConvergence(scanned int, center vec.Vec2, distance int) {
	// Объявляем общий объём работы: уже обработанные регионы плюс
	// два кольца сходимости
	total := scanned + len(vec.Ring(center, distance+1)) + len(vec.Ring(center, distance+2))
	logging.Info("✅ Все %d биомов найдены, ещё %d колец для минимальности расстояний (всего %d регионов)",
		len(c.tracked), convergenceRings, total)
}
