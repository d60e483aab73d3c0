package store

import (
	"maps"
	"sort"
	"time"
)

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// matches проверяет запись по фильтру: все равенства — нестрого, диапазонные
// условия — по своим полям. Запись без числового значения в диапазонном поле
// под диапазонное условие не попадает.
func matches(row Row, f Filter) bool {
	for field, want := range f.Eq {
		if !looseEqual(row[field], want) {
			return false
		}
	}
	if f.TimestampGt != nil {
		ts, ok := asNumber(row[fieldTimestamp])
		if !ok || ts <= float64(*f.TimestampGt) {
			return false
		}
	}
	if f.TakenAtGte != nil {
		ts, ok := asNumber(row[fieldTakenAt])
		if !ok || ts < float64(*f.TakenAtGte) {
			return false
		}
	}
	return true
}

func rowID(row Row) float64 {
	id, _ := asNumber(row["id"])
	return id
}

// Count возвращает число записей, удовлетворяющих фильтру.
func (s *Store) Count(table Table, f Filter) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, row := range s.tables[table] {
		if matches(row, f) {
			n++
		}
	}
	return n
}

// CountDistinct возвращает число уникальных значений поля среди записей,
// удовлетворяющих фильтру. nil — тоже значение, считается один раз.
func (s *Store) CountDistinct(table Table, field string, f Filter) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{})
	for _, row := range s.tables[table] {
		if matches(row, f) {
			seen[distinctKey(row[field])] = struct{}{}
		}
	}
	return int64(len(seen))
}

// Select возвращает копии записей, удовлетворяющих фильтру, с сортировкой по
// идентификатору и необязательным лимитом (NoLimit — без ограничения).
func (s *Store) Select(table Table, f Filter, order Order, limit int) []Row {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Row, 0)
	for _, row := range s.tables[table] {
		if matches(row, f) {
			items = append(items, maps.Clone(row))
		}
	}

	switch order {
	case OrderByIDAsc:
		sort.SliceStable(items, func(i, j int) bool { return rowID(items[i]) < rowID(items[j]) })
	case OrderByIDDesc:
		sort.SliceStable(items, func(i, j int) bool { return rowID(items[i]) > rowID(items[j]) })
	}

	if limit > NoLimit && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// SelectOne возвращает первую подходящую запись либо nil. Пустой результат —
// не ошибка.
func (s *Store) SelectOne(table Table, f Filter) Row {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.tables[table] {
		if matches(row, f) {
			return maps.Clone(row)
		}
	}
	return nil
}

// Insert добавляет запись: выделяет следующий идентификатор, присваивает
// значения полям в порядке перечисления, проставляет значения по умолчанию
// (createdAt/updatedAt — текущее время в миллисекундах, isActive — 1),
// сохраняет снимок и возвращает новый идентификатор. Идентификаторы строго
// возрастают и не переиспользуются после удаления.
func (s *Store) Insert(table Table, fields []string, values []any) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters[table]++
	row := Row{"id": s.counters[table]}

	for i, field := range fields {
		if i < len(values) {
			row[field] = Normalize(values[i])
		}
	}

	now := nowMillis()
	if v, ok := row["createdAt"]; !ok || v == nil {
		row["createdAt"] = now
	}
	if v, ok := row["updatedAt"]; !ok || v == nil {
		row["updatedAt"] = now
	}
	if _, ok := row["isActive"]; !ok {
		row["isActive"] = int64(1)
	}

	s.tables[table] = append(s.tables[table], row)
	s.persist()
	return row["id"].(int64)
}

// Update находит запись по идентификатору и перезаписывает перечисленные
// поля. Если записи нет — ничего не меняет и возвращает 0.
func (s *Store) Update(table Table, fields []string, values []any, id int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(table, id)
	if idx < 0 {
		return 0
	}

	row := s.tables[table][idx]
	for i, field := range fields {
		if i < len(values) {
			row[field] = Normalize(values[i])
		}
	}
	s.persist()
	return 1
}

// Delete удаляет запись по идентификатору. Повторное удаление возвращает 0.
func (s *Store) Delete(table Table, id int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(table, id)
	if idx < 0 {
		return 0
	}

	s.tables[table] = append(s.tables[table][:idx], s.tables[table][idx+1:]...)
	s.persist()
	return 1
}

func (s *Store) indexOf(table Table, id int64) int {
	for i, row := range s.tables[table] {
		if looseEqual(row["id"], id) {
			return i
		}
	}
	return -1
}
