package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"

	"github.com/annel0/biome-scout/internal/biome"
	"github.com/annel0/biome-scout/internal/vec"
)

// PredictionStore — постоянное хранилище предсказаний оракула.
// Предсказание — чистая функция координат для фиксированного сида, поэтому
// записанный однажды результат можно переиспользовать между запусками.
type PredictionStore struct {
	db     *badger.DB
	dbPath string
}

// NewPredictionStore открывает хранилище предсказаний в указанном каталоге
func NewPredictionStore(dataPath string) (*PredictionStore, error) {
	dbPath := filepath.Join(dataPath, "predictions")
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Отключаем логирование BadgerDB

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть BadgerDB: %w", err)
	}

	return &PredictionStore{db: db, dbPath: dbPath}, nil
}

// Get возвращает сохранённое предсказание для колонки, если оно есть
func (ps *PredictionStore) Get(pos vec.Vec2) (biome.Biome, bool, error) {
	var id int32
	err := ps.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(predictionKey(pos))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != 4 {
				return fmt.Errorf("некорректная запись предсказания для %d/%d", pos.X, pos.Z)
			}
			id = int32(binary.BigEndian.Uint32(val))
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("ошибка чтения предсказания %d/%d: %w", pos.X, pos.Z, err)
	}

	b, err := biome.FromID(id)
	if err != nil {
		return 0, false, fmt.Errorf("кэш предсказаний повреждён: %w", err)
	}
	return b, true, nil
}

// Put сохраняет предсказание для колонки
func (ps *PredictionStore) Put(pos vec.Vec2, b biome.Biome) error {
	var val [4]byte
	binary.BigEndian.PutUint32(val[:], uint32(b.ID()))

	err := ps.db.Update(func(txn *badger.Txn) error {
		return txn.Set(predictionKey(pos), val[:])
	})
	if err != nil {
		return fmt.Errorf("ошибка записи предсказания %d/%d: %w", pos.X, pos.Z, err)
	}
	return nil
}

// Close закрывает хранилище
func (ps *PredictionStore) Close() error {
	return ps.db.Close()
}

// predictionKey формирует ключ предсказания по координатам колонки
func predictionKey(pos vec.Vec2) []byte {
	return []byte(fmt.Sprintf("biome:%d:%d", pos.X, pos.Z))
}
