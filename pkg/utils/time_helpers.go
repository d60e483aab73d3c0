package utils

import "time"

// NowMillis — текущее время в миллисекундах; все отметки времени в базе
// хранятся именно так.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// StartOfDayMillis — начало сегодняшних суток в миллисекундах.
func StartOfDayMillis(now time.Time) int64 {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).UnixMilli()
}
