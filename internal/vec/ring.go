package vec

// Ring возвращает все координаты решётки на указанном манхэттенском расстоянии
// от центра: ромбовидный периметр из ровно 4*distance точек, без дубликатов и
// пропусков. Обход идёт по четырём диагональным рёбрам ромба, по distance точек
// на каждом, в фиксированном порядке.
//
// distance должен быть не меньше 1; кольцо нулевого радиуса — это сам центр,
// и вызывающая сторона обрабатывает его отдельно.
func Ring(center Vec2, distance int) []Vec2 {
	if distance < 1 {
		panic("vec: Ring требует distance >= 1")
	}

	coords := make([]Vec2, 0, 4*distance)
	for d := 0; d < distance; d++ {
		coords = append(coords, Vec2{X: center.X + d, Z: center.Z - distance + d})
	}
	for d := 0; d < distance; d++ {
		coords = append(coords, Vec2{X: center.X + distance - d, Z: center.Z + d})
	}
	for d := 0; d < distance; d++ {
		coords = append(coords, Vec2{X: center.X - d, Z: center.Z + distance - d})
	}
	for d := 0; d < distance; d++ {
		coords = append(coords, Vec2{X: center.X - distance + d, Z: center.Z - d})
	}
	return coords
}
