package repositories

import (
	"encoding/json"

	"github.com/sAlyon228/youz-api/internal/store"
)

// Хелперы для разбора записей хранилища. Числа после перезагрузки снимка
// могут приходить как int64 или float64, поэтому читаем через switch.

func rowInt64(r store.Row, key string) int64 {
	switch v := r[key].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return 0
}

func rowInt64Ptr(r store.Row, key string) *int64 {
	if v, ok := r[key]; !ok || v == nil {
		return nil
	}
	v := rowInt64(r, key)
	return &v
}

func rowFloat64(r store.Row, key string) float64 {
	switch v := r[key].(type) {
	case int64:
		return float64(v)
	case float64:
		return v
	}
	return 0
}

func rowFloat64Ptr(r store.Row, key string) *float64 {
	if v, ok := r[key]; !ok || v == nil {
		return nil
	}
	v := rowFloat64(r, key)
	return &v
}

func rowString(r store.Row, key string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return ""
}

func rowStringPtr(r store.Row, key string) *string {
	if v, ok := r[key]; !ok || v == nil {
		return nil
	}
	s := rowString(r, key)
	return &s
}

func rowBool(r store.Row, key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case float64:
		return v != 0
	}
	return false
}

// optInt64 и optString переводят указатели в значения для вставки:
// nil так и остаётся nil (NULL в терминах старой схемы).

func optInt64(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func optString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func optFloat64(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// rowWorkDays разбирает сериализованный JSON-массив дней недели.
func rowWorkDays(r store.Row, key string) []string {
	raw := rowString(r, key)
	if raw == "" {
		return []string{}
	}
	var days []string
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		return []string{}
	}
	return days
}

func marshalWorkDays(days []string) string {
	if days == nil {
		days = []string{}
	}
	raw, _ := json.Marshal(days)
	return string(raw)
}
