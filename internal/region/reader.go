package region

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/annel0/biome-scout/internal/biome"
	"github.com/annel0/biome-scout/internal/vec"
)

const (
	sectorSize    = 4096
	headerSectors = 2 // таблица смещений + таблица временных меток

	compressionGzip = 1
	compressionZlib = 2
	compressionNone = 3
)

// Reader загружает биомы регионов из каталога region сохранения мира
type Reader struct {
	dir string
}

// NewReader создаёт читатель region-файлов в указанном каталоге
func NewReader(dir string) *Reader {
	return &Reader{dir: dir}
}

// chunkRoot — корневой NBT-тег чанка в формате region-файла
type chunkRoot struct {
	Level chunkLevel `nbt:"Level"`
}

type chunkLevel struct {
	XPos   int32   `nbt:"xPos"`
	ZPos   int32   `nbt:"zPos"`
	Biomes []int32 `nbt:"Biomes"`
}

// Load читает сетку биомов региона rc с диска.
//
// Отсутствующий файл региона — не ошибка: весь регион не исследован,
// возвращается полностью разреженная сетка. Чанк без данных биомов и чанк
// с маркером перегенерации тоже не ошибки — соответствующие слоты остаются
// nil. Любая другая аномалия декодирования (неизвестный ID биома, битая
// структура) фатальна: она означает несовместимость версии сохранения.
func (r *Reader) Load(rc vec.Vec2) (*Grid, error) {
	grid := &Grid{}

	path := filepath.Join(r.dir, fmt.Sprintf("r.%d.%d.mca", rc.X, rc.Z))
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return grid, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла региона %d/%d: %w", rc.X, rc.Z, err)
	}
	if len(data) < headerSectors*sectorSize {
		return nil, fmt.Errorf("файл региона %d/%d повреждён: обрезан заголовок (%d байт)", rc.X, rc.Z, len(data))
	}

	for slot := 0; slot < 1024; slot++ {
		loc := binary.BigEndian.Uint32(data[slot*4 : slot*4+4])
		offset := int(loc >> 8)
		count := int(loc & 0xFF)
		if offset == 0 || count == 0 {
			continue // слот пуст — чанк никогда не записывался
		}

		raw, err := readChunkPayload(data, offset)
		if err != nil {
			return nil, fmt.Errorf("ошибка декодирования чанка в регионе %d/%d (слот %d): %w", rc.X, rc.Z, slot, err)
		}

		var root chunkRoot
		if err := nbt.Unmarshal(raw, &root); err != nil {
			return nil, fmt.Errorf("ошибка разбора NBT чанка в регионе %d/%d (слот %d): %w", rc.X, rc.Z, slot, err)
		}

		chunk, err := chunkBiomes(&root.Level)
		if err != nil {
			return nil, fmt.Errorf("регион %d/%d: %w", rc.X, rc.Z, err)
		}
		if chunk == nil {
			continue // биомы ещё не сгенерированы или помечены на перегенерацию
		}

		// Позиция в сетке — по собственным координатам чанка, не по слоту
		cx := int(root.Level.XPos) & 0x1F
		cz := int(root.Level.ZPos) & 0x1F
		grid[cz][cx] = chunk
	}

	return grid, nil
}

// readChunkPayload извлекает и распаковывает данные чанка по смещению в секторах
func readChunkPayload(data []byte, offset int) ([]byte, error) {
	start := offset * sectorSize
	if start+5 > len(data) {
		return nil, fmt.Errorf("смещение сектора %d выходит за пределы файла", offset)
	}

	payloadLen := int(binary.BigEndian.Uint32(data[start : start+4]))
	if payloadLen < 1 || start+4+payloadLen > len(data) {
		return nil, fmt.Errorf("некорректная длина данных чанка %d", payloadLen)
	}

	compression := data[start+4]
	compressed := data[start+5 : start+4+payloadLen]

	switch compression {
	case compressionGzip:
		zr, err := gzip.NewReader(bytes.NewReader(compressed))
		if err != nil {
			return nil, fmt.Errorf("ошибка gzip: %w", err)
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case compressionZlib:
		zr, err := zlib.NewReader(bytes.NewReader(compressed))
		if err != nil {
			return nil, fmt.Errorf("ошибка zlib: %w", err)
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case compressionNone:
		return compressed, nil
	default:
		return nil, fmt.Errorf("неизвестная схема сжатия %d", compression)
	}
}

// chunkBiomes преобразует массив биомов чанка в сетку 16x16.
// Возвращает nil без ошибки для доброкачественных пропусков: пустой массив
// (биомы ещё не сгенерированы) и маркер RegenerateSentinel.
func chunkBiomes(lvl *chunkLevel) (*ChunkBiomes, error) {
	if len(lvl.Biomes) == 0 {
		return nil, nil
	}
	for _, id := range lvl.Biomes {
		if id == biome.RegenerateSentinel {
			return nil, nil
		}
	}

	chunk := &ChunkBiomes{}
	switch len(lvl.Biomes) {
	case 256:
		// До 1.15: по одному значению на колонку, индексация z*16+x
		for bz := 0; bz < 16; bz++ {
			for bx := 0; bx < 16; bx++ {
				b, err := biome.FromID(lvl.Biomes[bz*16+bx])
				if err != nil {
					return nil, fmt.Errorf("чанк %d/%d: %w", lvl.XPos, lvl.ZPos, err)
				}
				chunk[bz][bx] = b
			}
		}
	case 1024:
		// 1.15+: ячейки 4x4x4, берём нижний вертикальный срез и
		// растягиваем каждую ячейку 4x4 на её колонки
		for bz := 0; bz < 16; bz++ {
			for bx := 0; bx < 16; bx++ {
				b, err := biome.FromID(lvl.Biomes[(bz>>2)*4+(bx>>2)])
				if err != nil {
					return nil, fmt.Errorf("чанк %d/%d: %w", lvl.XPos, lvl.ZPos, err)
				}
				chunk[bz][bx] = b
			}
		}
	default:
		return nil, fmt.Errorf("чанк %d/%d: неожиданная длина массива биомов %d", lvl.XPos, lvl.ZPos, len(lvl.Biomes))
	}

	return chunk, nil
}
