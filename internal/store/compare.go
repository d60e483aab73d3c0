package store

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Normalize приводит значение к каноническому виду на границе хранилища:
// целые — к int64, дробные — к float64, bool — к 1/0 (как хранил исходный
// бэкенд), json.Number — к числу. Дальше сравнения работают уже только с
// каноническими типами.
func Normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case float32:
		return float64(x)
	case float64:
		return x
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		f, _ := x.Float64()
		return f
	case bool:
		if x {
			return int64(1)
		}
		return int64(0)
	default:
		return v
	}
}

func normalizeRow(r Row) {
	for k, v := range r {
		r[k] = Normalize(v)
	}
}

func asNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// looseEqual — нестрогое равенство: числа сравниваются численно, число и
// строка равны, если строка разбирается в то же число. nil равен только nil.
func looseEqual(a, b any) bool {
	a, b = Normalize(a), Normalize(b)

	if a == nil || b == nil {
		return a == nil && b == nil
	}

	af, aNum := asNumber(a)
	bf, bNum := asNumber(b)

	switch {
	case aNum && bNum:
		return af == bf
	case aNum:
		if parsed, err := strconv.ParseFloat(fmt.Sprint(b), 64); err == nil {
			return af == parsed
		}
		return false
	case bNum:
		if parsed, err := strconv.ParseFloat(fmt.Sprint(a), 64); err == nil {
			return bf == parsed
		}
		return false
	}

	as, aStr := a.(string)
	bs, bStr := b.(string)
	if aStr && bStr {
		return as == bs
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

// distinctKey — ключ уникальности значения для COUNT(DISTINCT ...).
// Числа схлопываются со своей строковой записью так же, как в looseEqual.
func distinctKey(v any) string {
	v = Normalize(v)
	if v == nil {
		return "null"
	}
	if f, ok := asNumber(v); ok {
		return "n:" + strconv.FormatFloat(f, 'g', -1, 64)
	}
	if s, ok := v.(string); ok {
		if parsed, err := strconv.ParseFloat(s, 64); err == nil {
			return "n:" + strconv.FormatFloat(parsed, 'g', -1, 64)
		}
		return "s:" + s
	}
	return "v:" + fmt.Sprint(v)
}
