package region

import "github.com/annel0/biome-scout/internal/biome"

// ChunkBiomes — биомы одного чанка: 16x16 колонок блоков, индексация [bz][bx]
type ChunkBiomes [16][16]biome.Biome

// Grid — разреженная сетка биомов региона: 32x32 чанков, индексация [cz][cx].
// nil означает, что чанк ещё не сгенерирован до стадии записи биомов
// (или помечен на перегенерацию) — такую область нужно предсказывать.
type Grid [32][32]*ChunkBiomes
