package vec

// Vec2 представляет целочисленные 2D координаты мира (X — восток, Z — юг)
type Vec2 struct {
	X, Z int
}

// ToChunkCoords преобразует глобальные координаты блока в координаты чанка
func (v Vec2) ToChunkCoords() Vec2 {
	return Vec2{X: v.X >> 4, Z: v.Z >> 4} // Деление на 16
}

// ToRegionCoords преобразует глобальные координаты блока в координаты региона
func (v Vec2) ToRegionCoords() Vec2 {
	return Vec2{X: v.X >> 9, Z: v.Z >> 9} // Деление на 512 (16*32)
}

// LocalInChunk возвращает локальные координаты внутри чанка
func (v Vec2) LocalInChunk() Vec2 {
	return Vec2{X: v.X & 0xF, Z: v.Z & 0xF} // Модуль 16
}

// ChunkInRegion возвращает индекс чанка блока внутри его региона (0..31 по каждой оси)
func (v Vec2) ChunkInRegion() Vec2 {
	return Vec2{X: (v.X >> 4) & 0x1F, Z: (v.Z >> 4) & 0x1F}
}

// TaxicabDistance вычисляет манхэттенское расстояние между двумя точками.
// Симметрично, равно нулю только при совпадении точек, удовлетворяет
// неравенству треугольника.
func TaxicabDistance(a, b Vec2) int {
	return abs(b.X-a.X) + abs(b.Z-a.Z)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
