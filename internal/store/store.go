// Встроенное хранилище: таблицы в памяти плюс JSON-снимок на диске.
// Снимок целиком перезаписывается после каждой мутации; при старте
// загружается, если существует. Доступ сериализован одним мьютексом.
package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

type Store struct {
	mu       sync.Mutex
	path     string
	logger   *zap.Logger
	tables   map[Table][]Row
	counters map[Table]int64
}

// snapshot — формат файла-снимка: все таблицы плюс счётчики идентификаторов.
type snapshot struct {
	Users            []Row            `json:"users"`
	Points           []Row            `json:"points"`
	Shops            []Row            `json:"shops"`
	Tasks            []Row            `json:"tasks"`
	TaskTemplates    []Row            `json:"taskTemplates"`
	PurchaseRequests []Row            `json:"purchaseRequests"`
	WorkplacePhotos  []Row            `json:"workplacePhotos"`
	CourierLocations []Row            `json:"courierLocations"`
	Counters         map[string]int64 `json:"_counters"`
}

// Open загружает снимок по указанному пути либо начинает с пустой базы.
// Ошибки загрузки не фатальны: повреждённый или отсутствующий файл просто
// означает новую базу.
func Open(path string, logger *zap.Logger) *Store {
	s := &Store{
		path:     path,
		logger:   logger,
		tables:   make(map[Table][]Row, len(AllTables)),
		counters: make(map[Table]int64, len(AllTables)),
	}
	for _, t := range AllTables {
		s.tables[t] = []Row{}
		s.counters[t] = 0
	}
	s.load()
	return s
}

func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Info("Создаём новую базу данных...", zap.Error(err))
		}
		return
	}

	var snap snapshot
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&snap); err != nil {
		s.logger.Info("Создаём новую базу данных...", zap.Error(err))
		return
	}

	s.tables[TableUsers] = snap.Users
	s.tables[TablePoints] = snap.Points
	s.tables[TableShops] = snap.Shops
	s.tables[TableTasks] = snap.Tasks
	s.tables[TableTaskTemplates] = snap.TaskTemplates
	s.tables[TablePurchaseRequests] = snap.PurchaseRequests
	s.tables[TableWorkplacePhotos] = snap.WorkplacePhotos
	s.tables[TableCourierLocations] = snap.CourierLocations

	for _, t := range AllTables {
		if s.tables[t] == nil {
			s.tables[t] = []Row{}
		}
		for _, row := range s.tables[t] {
			normalizeRow(row)
		}
		s.counters[t] = snap.Counters[string(t)]
	}
}

// persist сбрасывает снимок на диск. Вызывается под мьютексом после каждой
// мутации. Ошибка записи логируется и проглатывается: состояние в памяти
// остаётся рабочим до конца процесса.
func (s *Store) persist() {
	snap := snapshot{
		Users:            s.tables[TableUsers],
		Points:           s.tables[TablePoints],
		Shops:            s.tables[TableShops],
		Tasks:            s.tables[TableTasks],
		TaskTemplates:    s.tables[TableTaskTemplates],
		PurchaseRequests: s.tables[TablePurchaseRequests],
		WorkplacePhotos:  s.tables[TableWorkplacePhotos],
		CourierLocations: s.tables[TableCourierLocations],
		Counters:         make(map[string]int64, len(AllTables)),
	}
	for _, t := range AllTables {
		snap.Counters[string(t)] = s.counters[t]
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		s.logger.Error("Ошибка сохранения БД", zap.Error(err))
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.logger.Error("Ошибка сохранения БД", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.logger.Error("Ошибка сохранения БД", zap.Error(err))
	}
}
