package biome

import "fmt"

// Biome представляет тип биома мира. Набор закрыт: все известные биомы
// перечислены ниже, открытой диспетчеризации нет.
type Biome int

const (
	Ocean Biome = iota
	Plains
	Desert
	Mountains
	Forest
	Taiga
	Swamp
	River
	NetherWastes
	TheEnd
	FrozenOcean
	FrozenRiver
	SnowyTundra
	SnowyMountains
	MushroomFields
	MushroomFieldShore
	Beach
	DesertHills
	WoodedHills
	TaigaHills
	MountainEdge
	Jungle
	JungleHills
	JungleEdge
	DeepOcean
	StoneShore
	SnowyBeach
	BirchForest
	BirchForestHills
	DarkForest
	SnowyTaiga
	SnowyTaigaHills
	GiantTreeTaiga
	GiantTreeTaigaHills
	WoodedMountains
	Savanna
	SavannaPlateau
	Badlands
	WoodedBadlandsPlateau
	BadlandsPlateau
	SmallEndIslands
	EndMidlands
	EndHighlands
	EndBarrens
	WarmOcean
	LukewarmOcean
	ColdOcean
	DeepWarmOcean
	DeepLukewarmOcean
	DeepColdOcean
	DeepFrozenOcean
	TheVoid
	SunflowerPlains
	DesertLakes
	GravellyMountains
	FlowerForest
	TaigaMountains
	SwampHills
	IceSpikes
	ModifiedJungle
	ModifiedJungleEdge
	TallBirchForest
	TallBirchHills
	DarkForestHills
	SnowyTaigaMountains
	GiantSpruceTaiga
	GiantSpruceTaigaHills
	ModifiedGravellyMountains
	ShatteredSavanna
	ShatteredSavannaPlateau
	ErodedBadlands
	ModifiedWoodedBadlandsPlateau
	ModifiedBadlandsPlateau
	BambooJungle
	BambooJungleHills
	SoulSandValley
	CrimsonForest
	WarpedForest
	BasaltDeltas
)

// RegenerateSentinel — значение в массиве биомов чанка, означающее
// "биом недействителен, чанк подлежит перегенерации". Не ошибка: такой
// чанк обрабатывается как отсутствующий.
const RegenerateSentinel int32 = -127

// biomeEntry связывает биом с его числовым ID сохранения и каноническим
// текстовым именем (имя используется на границе с оракулом предсказаний)
type biomeEntry struct {
	biome Biome
	id    int32
	name  string
}

var biomeTable = []biomeEntry{
	{Ocean, 0, "Ocean"},
	{Plains, 1, "Plains"},
	{Desert, 2, "Desert"},
	{Mountains, 3, "Mountains"},
	{Forest, 4, "Forest"},
	{Taiga, 5, "Taiga"},
	{Swamp, 6, "Swamp"},
	{River, 7, "River"},
	{NetherWastes, 8, "Nether Wastes"},
	{TheEnd, 9, "The End"},
	{FrozenOcean, 10, "Frozen Ocean"},
	{FrozenRiver, 11, "Frozen River"},
	{SnowyTundra, 12, "Snowy Tundra"},
	{SnowyMountains, 13, "Snowy Mountains"},
	{MushroomFields, 14, "Mushroom Fields"},
	{MushroomFieldShore, 15, "Mushroom Field Shore"},
	{Beach, 16, "Beach"},
	{DesertHills, 17, "Desert Hills"},
	{WoodedHills, 18, "Wooded Hills"},
	{TaigaHills, 19, "Taiga Hills"},
	{MountainEdge, 20, "Mountain Edge"},
	{Jungle, 21, "Jungle"},
	{JungleHills, 22, "Jungle Hills"},
	{JungleEdge, 23, "Jungle Edge"},
	{DeepOcean, 24, "Deep Ocean"},
	{StoneShore, 25, "Stone Shore"},
	{SnowyBeach, 26, "Snowy Beach"},
	{BirchForest, 27, "Birch Forest"},
	{BirchForestHills, 28, "Birch Forest Hills"},
	{DarkForest, 29, "Dark Forest"},
	{SnowyTaiga, 30, "Snowy Taiga"},
	{SnowyTaigaHills, 31, "Snowy Taiga Hills"},
	{GiantTreeTaiga, 32, "Giant Tree Taiga"},
	{GiantTreeTaigaHills, 33, "Giant Tree Taiga Hills"},
	{WoodedMountains, 34, "Wooded Mountains"},
	{Savanna, 35, "Savanna"},
	{SavannaPlateau, 36, "Savanna Plateau"},
	{Badlands, 37, "Badlands"},
	{WoodedBadlandsPlateau, 38, "Wooded Badlands Plateau"},
	{BadlandsPlateau, 39, "Badlands Plateau"},
	{SmallEndIslands, 40, "Small End Islands"},
	{EndMidlands, 41, "End Midlands"},
	{EndHighlands, 42, "End Highlands"},
	{EndBarrens, 43, "End Barrens"},
	{WarmOcean, 44, "Warm Ocean"},
	{LukewarmOcean, 45, "Lukewarm Ocean"},
	{ColdOcean, 46, "Cold Ocean"},
	{DeepWarmOcean, 47, "Deep Warm Ocean"},
	{DeepLukewarmOcean, 48, "Deep Lukewarm Ocean"},
	{DeepColdOcean, 49, "Deep Cold Ocean"},
	{DeepFrozenOcean, 50, "Deep Frozen Ocean"},
	{TheVoid, 127, "The Void"},
	{SunflowerPlains, 129, "Sunflower Plains"},
	{DesertLakes, 130, "Desert Lakes"},
	{GravellyMountains, 131, "Gravelly Mountains"},
	{FlowerForest, 132, "Flower Forest"},
	{TaigaMountains, 133, "Taiga Mountains"},
	{SwampHills, 134, "Swamp Hills"},
	{IceSpikes, 140, "Ice Spikes"},
	{ModifiedJungle, 149, "Modified Jungle"},
	{ModifiedJungleEdge, 151, "Modified Jungle Edge"},
	{TallBirchForest, 155, "Tall Birch Forest"},
	{TallBirchHills, 156, "Tall Birch Hills"},
	{DarkForestHills, 157, "Dark Forest Hills"},
	{SnowyTaigaMountains, 158, "Snowy Taiga Mountains"},
	{GiantSpruceTaiga, 160, "Giant Spruce Taiga"},
	{GiantSpruceTaigaHills, 161, "Giant Spruce Taiga Hills"},
	{ModifiedGravellyMountains, 162, "Modified Gravelly Mountains"},
	{ShatteredSavanna, 163, "Shattered Savanna"},
	{ShatteredSavannaPlateau, 164, "Shattered Savanna Plateau"},
	{ErodedBadlands, 165, "Eroded Badlands"},
	{ModifiedWoodedBadlandsPlateau, 166, "Modified Wooded Badlands Plateau"},
	{ModifiedBadlandsPlateau, 167, "Modified Badlands Plateau"},
	{BambooJungle, 168, "Bamboo Jungle"},
	{BambooJungleHills, 169, "Bamboo Jungle Hills"},
	{SoulSandValley, 170, "Soul Sand Valley"},
	{CrimsonForest, 171, "Crimson Forest"},
	{WarpedForest, 172, "Warped Forest"},
	{BasaltDeltas, 173, "Basalt Deltas"},
}

var (
	byID   = make(map[int32]Biome, len(biomeTable))
	byName = make(map[string]Biome, len(biomeTable))
	ids    = make(map[Biome]int32, len(biomeTable))
	names  = make(map[Biome]string, len(biomeTable))
)

func init() {
	for _, e := range biomeTable {
		byID[e.id] = e.biome
		byName[e.name] = e.biome
		ids[e.biome] = e.id
		names[e.biome] = e.name
	}
}

// String возвращает каноническое текстовое имя биома
func (b Biome) String() string {
	if name, ok := names[b]; ok {
		return name
	}
	return fmt.Sprintf("Biome(%d)", int(b))
}

// ID возвращает числовой идентификатор биома в формате сохранения
func (b Biome) ID() int32 {
	return ids[b]
}

// Parse преобразует каноническое текстовое имя в биом.
// Неизвестное имя — ошибка: оно означает рассинхронизацию с оракулом.
func Parse(name string) (Biome, error) {
	b, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("неизвестное имя биома %q", name)
	}
	return b, nil
}

// FromID преобразует числовой идентификатор сохранения в биом.
// Неизвестный ID — ошибка: сохранение записано несовместимой версией.
func FromID(id int32) (Biome, error) {
	b, ok := byID[id]
	if !ok {
		return 0, fmt.Errorf("неизвестный ID биома %d", id)
	}
	return b, nil
}

// AdventuringTime возвращает набор биомов достижения Adventuring Time —
// отслеживаемый набор по умолчанию, если в конфигурации не задан другой
func AdventuringTime() []Biome {
	return []Biome{
		Badlands,
		BadlandsPlateau,
		BambooJungle,
		BambooJungleHills,
		Beach,
		BirchForest,
		BirchForestHills,
		ColdOcean,
		DarkForest,
		DeepColdOcean,
		DeepFrozenOcean,
		DeepLukewarmOcean,
		Desert,
		DesertHills,
		Forest,
		FrozenRiver,
		GiantTreeTaiga,
		GiantTreeTaigaHills,
		Jungle,
		JungleEdge,
		JungleHills,
		LukewarmOcean,
		Mountains,
		MushroomFieldShore,
		MushroomFields,
		Plains,
		River,
		Savanna,
		SavannaPlateau,
		SnowyBeach,
		SnowyMountains,
		SnowyTaiga,
		SnowyTaigaHills,
		SnowyTundra,
		StoneShore,
		Swamp,
		Taiga,
		TaigaHills,
		WarmOcean,
		WoodedBadlandsPlateau,
		WoodedHills,
		WoodedMountains,
	}
}
