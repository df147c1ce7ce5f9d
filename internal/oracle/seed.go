package oracle

import (
	"github.com/aquilax/go-perlin"

	"github.com/annel0/biome-scout/internal/biome"
)

// Параметры шума Перлина
const (
	noiseAlpha   = 2.0  // Сглаживание шума
	noiseBeta    = 2.0  // Частота шума
	noiseOctaves = 3    // Количество октав
	heightScale  = 0.01 // Масштаб шума высоты
	climateScale = 0.004
)

// Пороги высот для классификации биомов
const (
	deepOceanMax  = 0.18 // Ниже — глубокий океан
	oceanMax      = 0.30 // Ниже — океан
	beachMax      = 0.34 // Ниже — побережье
	mountainStart = 0.78 // Выше — горы
)

// SeedOracle — детерминированный предсказатель биомов для фиксированного сида.
// Два поля шума (высота рельефа и климат) классифицируются по таблице порогов.
type SeedOracle struct {
	height  *perlin.Perlin
	climate *perlin.Perlin
}

// NewSeedOracle создаёт оракул предсказаний для указанного сида мира
func NewSeedOracle(seed int64) *SeedOracle {
	return &SeedOracle{
		height:  perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
		climate: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed+42),
	}
}

// BiomeNameAt возвращает каноническое имя биома в колонке (x, z)
func (o *SeedOracle) BiomeNameAt(x, z int) (string, error) {
	// Шум в диапазоне [-1, 1] приводится к [0, 1]
	h := (o.height.Noise2D(float64(x)*heightScale, float64(z)*heightScale) + 1.0) / 2.0
	c := (o.climate.Noise2D(float64(x)*climateScale, float64(z)*climateScale) + 1.0) / 2.0

	return o.classify(h, c).String(), nil
}

// classify определяет биом по значениям шума высоты и климата
func (o *SeedOracle) classify(height, climate float64) biome.Biome {
	// Водные биомы в низинах, температура по климатическому полю
	if height < deepOceanMax {
		switch {
		case climate < 0.2:
			return biome.DeepFrozenOcean
		case climate < 0.4:
			return biome.DeepColdOcean
		case climate < 0.6:
			return biome.DeepOcean
		case climate < 0.8:
			return biome.DeepLukewarmOcean
		default:
			return biome.DeepWarmOcean
		}
	}
	if height < oceanMax {
		switch {
		case climate < 0.2:
			return biome.FrozenOcean
		case climate < 0.4:
			return biome.ColdOcean
		case climate < 0.6:
			return biome.Ocean
		case climate < 0.8:
			return biome.LukewarmOcean
		default:
			return biome.WarmOcean
		}
	}
	if height < beachMax {
		if climate < 0.25 {
			return biome.SnowyBeach
		}
		return biome.Beach
	}

	// Горные биомы на возвышенностях
	if height > mountainStart {
		switch {
		case climate < 0.25:
			return biome.SnowyMountains
		case climate < 0.5:
			return biome.Mountains
		default:
			return biome.WoodedMountains
		}
	}

	// Средние высоты — по климату
	switch {
	case climate < 0.12:
		return biome.SnowyTundra
	case climate < 0.22:
		return biome.SnowyTaiga
	case climate < 0.32:
		return biome.Taiga
	case climate < 0.45:
		return biome.Forest
	case climate < 0.5:
		return biome.BirchForest
	case climate < 0.58:
		return biome.Plains
	case climate < 0.65:
		return biome.DarkForest
	case climate < 0.72:
		return biome.Swamp
	case climate < 0.8:
		return biome.Savanna
	case climate < 0.88:
		return biome.Jungle
	case climate < 0.94:
		return biome.Desert
	default:
		return biome.Badlands
	}
}
