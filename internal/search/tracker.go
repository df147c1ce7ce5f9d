package search

import (
	"github.com/annel0/biome-scout/internal/biome"
	"github.com/annel0/biome-scout/internal/vec"
)

// NearestMap хранит лучшую (ближайшую к якорю) найденную позицию каждого
// отслеживаемого биома
type NearestMap map[biome.Biome]vec.Vec2

// Tracker накапливает ближайшие позиции отслеживаемых биомов.
// Инвариант: расстояние до якоря для каждого биома с записью монотонно
// не возрастает на протяжении всего поиска. Обновление не зависит от
// порядка обхода, поэтому частичные карты, посчитанные конкурентно,
// сливаются простым покоординатным сравнением расстояний.
type Tracker struct {
	anchor  vec.Vec2
	tracked map[biome.Biome]struct{}
	best    NearestMap
}

// NewTracker создаёт пустой трекер для указанного якоря и набора биомов
func NewTracker(anchor vec.Vec2, tracked []biome.Biome) *Tracker {
	set := make(map[biome.Biome]struct{}, len(tracked))
	for _, b := range tracked {
		set[b] = struct{}{}
	}
	return &Tracker{
		anchor:  anchor,
		tracked: set,
		best:    make(NearestMap),
	}
}

// Update учитывает наблюдение биома b в позиции pos.
// Неотслеживаемые биомы игнорируются; запись заменяется только строго
// более близкой позицией (при равенстве остаётся прежняя).
func (t *Tracker) Update(pos vec.Vec2, b biome.Biome) {
	if _, ok := t.tracked[b]; !ok {
		return
	}
	cur, ok := t.best[b]
	if !ok || vec.TaxicabDistance(t.anchor, pos) < vec.TaxicabDistance(t.anchor, cur) {
		t.best[b] = pos
	}
}

// Merge вливает частичную карту в трекер. Операция коммутативна и
// ассоциативна по итоговым расстояниям: порядок и группировка слияний
// не влияют на результат.
func (t *Tracker) Merge(partial NearestMap) {
	for b, pos := range partial {
		t.Update(pos, b)
	}
}

// Best возвращает копию текущей карты ближайших позиций
func (t *Tracker) Best() NearestMap {
	out := make(NearestMap, len(t.best))
	for b, pos := range t.best {
		out[b] = pos
	}
	return out
}

// AllFound сообщает, найдена ли хотя бы одна позиция каждого
// отслеживаемого биома
func (t *Tracker) AllFound() bool {
	return len(t.best) >= len(t.tracked)
}

// FoundCount возвращает число биомов, для которых уже есть запись
func (t *Tracker) FoundCount() int {
	return len(t.best)
}

// TrackedCount возвращает размер отслеживаемого набора
func (t *Tracker) TrackedCount() int {
	return len(t.tracked)
}
