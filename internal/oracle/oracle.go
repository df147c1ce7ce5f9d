package oracle

// Oracle предсказывает, какой биом детерминированная генерация мира
// присвоила бы колонке блоков, будь она сгенерирована сейчас.
// Для фиксированной конфигурации мира это чистая функция координат.
//
// Граница текстовая: оракул возвращает каноническое имя биома, сопоставление
// с внутренним типом выполняет адаптер Gated.
type Oracle interface {
	BiomeNameAt(x, z int) (string, error)
}
