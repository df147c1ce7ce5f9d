package region

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/zlib"

	"github.com/annel0/biome-scout/internal/biome"
	"github.com/annel0/biome-scout/internal/vec"
)

// chunkSpec описывает один чанк тестового region-файла
type chunkSpec struct {
	x, z        int32
	biomes      []int32
	compression byte
}

// writeRegionFile собирает файл r.<rx>.<rz>.mca из описаний чанков:
// два сектора заголовков, затем данные чанков с выравниванием по секторам
func writeRegionFile(t *testing.T, dir string, rx, rz int, chunks []chunkSpec) {
	t.Helper()

	locations := make([]byte, sectorSize)
	timestamps := make([]byte, sectorSize)
	var dataBuf bytes.Buffer
	currentSector := uint32(headerSectors)

	for _, spec := range chunks {
		raw, err := nbt.Marshal(chunkRoot{Level: chunkLevel{
			XPos:   spec.x,
			ZPos:   spec.z,
			Biomes: spec.biomes,
		}})
		if err != nil {
			t.Fatalf("ошибка сборки NBT чанка: %v", err)
		}

		compression := spec.compression
		if compression == 0 {
			compression = compressionZlib
		}
		payload := raw
		if compression == compressionZlib {
			var cbuf bytes.Buffer
			zw := zlib.NewWriter(&cbuf)
			if _, err := zw.Write(raw); err != nil {
				t.Fatalf("ошибка сжатия чанка: %v", err)
			}
			if err := zw.Close(); err != nil {
				t.Fatalf("ошибка закрытия zlib: %v", err)
			}
			payload = cbuf.Bytes()
		}

		payloadLen := uint32(len(payload)) + 1 // +1 байт схемы сжатия
		totalLen := 4 + payloadLen
		sectorCount := (totalLen + sectorSize - 1) / sectorSize

		idx := (int(spec.x) & 31) + (int(spec.z)&31)*32
		off := idx * 4
		binary.BigEndian.PutUint32(locations[off:off+4], (currentSector<<8)|uint32(sectorCount&0xFF))

		var header [5]byte
		binary.BigEndian.PutUint32(header[0:4], payloadLen)
		header[4] = compression
		dataBuf.Write(header[:])
		dataBuf.Write(payload)

		if pad := int(sectorCount)*sectorSize - int(totalLen); pad > 0 {
			dataBuf.Write(make([]byte, pad))
		}
		currentSector += sectorCount
	}

	var file bytes.Buffer
	file.Write(locations)
	file.Write(timestamps)
	file.Write(dataBuf.Bytes())

	path := filepath.Join(dir, fmt.Sprintf("r.%d.%d.mca", rx, rz))
	if err := os.WriteFile(path, file.Bytes(), 0666); err != nil {
		t.Fatalf("ошибка записи тестового региона: %v", err)
	}
}

// uniformBiomes возвращает массив из n одинаковых ID
func uniformBiomes(n int, id int32) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = id
	}
	return out
}

func TestReader_MissingFile(t *testing.T) {
	r := NewReader(t.TempDir())

	grid, err := r.Load(vec.Vec2{X: 7, Z: -3})
	if err != nil {
		t.Fatalf("отсутствующий файл региона не должен быть ошибкой: %v", err)
	}
	for cz := 0; cz < 32; cz++ {
		for cx := 0; cx < 32; cx++ {
			if grid[cz][cx] != nil {
				t.Fatalf("регион без файла должен быть полностью разреженным (чанк %d/%d)", cx, cz)
			}
		}
	}
}

func TestReader_LegacyBiomeArray(t *testing.T) {
	dir := t.TempDir()

	// 256 значений: колонка (0,0) — Desert, остальные Plains
	biomes := uniformBiomes(256, biome.Desert.ID())
	for i := 1; i < 256; i++ {
		biomes[i] = biome.Plains.ID()
	}
	writeRegionFile(t, dir, 0, 0, []chunkSpec{{x: 0, z: 0, biomes: biomes}})

	grid, err := NewReader(dir).Load(vec.Vec2{X: 0, Z: 0})
	if err != nil {
		t.Fatalf("ошибка загрузки региона: %v", err)
	}

	chunk := grid[0][0]
	if chunk == nil {
		t.Fatal("чанк 0/0 должен присутствовать")
	}
	if chunk[0][0] != biome.Desert {
		t.Errorf("колонка (0,0): ожидался Desert, получен %v", chunk[0][0])
	}
	if chunk[0][1] != biome.Plains || chunk[15][15] != biome.Plains {
		t.Error("остальные колонки должны быть Plains")
	}
	if grid[0][1] != nil {
		t.Error("не записанные чанки должны отсутствовать")
	}
}

func TestReader_ModernBiomeArray(t *testing.T) {
	dir := t.TempDir()

	// 1024 значения (ячейки 4x4x4): весь нижний срез — Forest
	writeRegionFile(t, dir, 0, 0, []chunkSpec{
		{x: 3, z: 5, biomes: uniformBiomes(1024, biome.Forest.ID())},
	})

	grid, err := NewReader(dir).Load(vec.Vec2{X: 0, Z: 0})
	if err != nil {
		t.Fatalf("ошибка загрузки региона: %v", err)
	}

	chunk := grid[5][3]
	if chunk == nil {
		t.Fatal("чанк 3/5 должен присутствовать")
	}
	for bz := 0; bz < 16; bz++ {
		for bx := 0; bx < 16; bx++ {
			if chunk[bz][bx] != biome.Forest {
				t.Fatalf("колонка (%d,%d): ожидался Forest, получен %v", bx, bz, chunk[bz][bx])
			}
		}
	}
}

func TestReader_NegativeRegionChunkPlacement(t *testing.T) {
	dir := t.TempDir()

	// Регион (-1,-1) содержит чанки [-32..-1]; чанк (-1,-1) занимает слот (31,31)
	writeRegionFile(t, dir, -1, -1, []chunkSpec{
		{x: -1, z: -1, biomes: uniformBiomes(256, biome.Taiga.ID())},
	})

	grid, err := NewReader(dir).Load(vec.Vec2{X: -1, Z: -1})
	if err != nil {
		t.Fatalf("ошибка загрузки региона: %v", err)
	}
	if grid[31][31] == nil {
		t.Fatal("чанк -1/-1 должен лежать в слоте (31,31)")
	}
	if grid[31][31][0][0] != biome.Taiga {
		t.Errorf("ожидался Taiga, получен %v", grid[31][31][0][0])
	}
}

func TestReader_BenignGaps(t *testing.T) {
	t.Run("маркер перегенерации", func(t *testing.T) {
		dir := t.TempDir()
		biomes := uniformBiomes(256, biome.Plains.ID())
		biomes[100] = biome.RegenerateSentinel
		writeRegionFile(t, dir, 0, 0, []chunkSpec{{x: 0, z: 0, biomes: biomes}})

		grid, err := NewReader(dir).Load(vec.Vec2{X: 0, Z: 0})
		if err != nil {
			t.Fatalf("маркер перегенерации не должен быть ошибкой: %v", err)
		}
		if grid[0][0] != nil {
			t.Error("чанк с маркером перегенерации должен считаться отсутствующим")
		}
	})

	t.Run("биомы ещё не сгенерированы", func(t *testing.T) {
		dir := t.TempDir()
		writeRegionFile(t, dir, 0, 0, []chunkSpec{{x: 0, z: 0, biomes: nil}})

		grid, err := NewReader(dir).Load(vec.Vec2{X: 0, Z: 0})
		if err != nil {
			t.Fatalf("чанк без биомов не должен быть ошибкой: %v", err)
		}
		if grid[0][0] != nil {
			t.Error("чанк без биомов должен считаться отсутствующим")
		}
	})
}

func TestReader_FatalAnomalies(t *testing.T) {
	t.Run("неизвестный ID биома", func(t *testing.T) {
		dir := t.TempDir()
		biomes := uniformBiomes(256, biome.Plains.ID())
		biomes[0] = 9999
		writeRegionFile(t, dir, 0, 0, []chunkSpec{{x: 4, z: 2, biomes: biomes}})

		_, err := NewReader(dir).Load(vec.Vec2{X: 0, Z: 0})
		if err == nil {
			t.Fatal("неизвестный ID биома должен быть фатальной ошибкой")
		}
		if !strings.Contains(err.Error(), "неизвестный ID биома") {
			t.Errorf("ошибка должна называть причину: %v", err)
		}
		if !strings.Contains(err.Error(), "4/2") {
			t.Errorf("ошибка должна содержать координаты чанка: %v", err)
		}
	})

	t.Run("неожиданная длина массива", func(t *testing.T) {
		dir := t.TempDir()
		writeRegionFile(t, dir, 0, 0, []chunkSpec{
			{x: 0, z: 0, biomes: uniformBiomes(77, biome.Plains.ID())},
		})

		if _, err := NewReader(dir).Load(vec.Vec2{X: 0, Z: 0}); err == nil {
			t.Fatal("некорректная длина массива биомов должна быть фатальной ошибкой")
		}
	})

	t.Run("обрезанный заголовок", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "r.0.0.mca")
		if err := os.WriteFile(path, make([]byte, 100), 0666); err != nil {
			t.Fatal(err)
		}

		if _, err := NewReader(dir).Load(vec.Vec2{X: 0, Z: 0}); err == nil {
			t.Fatal("обрезанный файл должен быть фатальной ошибкой")
		}
	})
}

func TestReader_UncompressedChunk(t *testing.T) {
	dir := t.TempDir()
	writeRegionFile(t, dir, 0, 0, []chunkSpec{
		{x: 1, z: 1, biomes: uniformBiomes(256, biome.River.ID()), compression: compressionNone},
	})

	grid, err := NewReader(dir).Load(vec.Vec2{X: 0, Z: 0})
	if err != nil {
		t.Fatalf("ошибка загрузки региона: %v", err)
	}
	if grid[1][1] == nil || grid[1][1][0][0] != biome.River {
		t.Error("несжатый чанк должен декодироваться")
	}
}
