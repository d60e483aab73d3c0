package utils

import (
	"regexp"
)

var nonDigitRegexp = regexp.MustCompile(`\D`)

// NormalizePhone убирает из номера всё, кроме цифр.
// Сравнение телефонов всегда идёт по нормализованной форме.
func NormalizePhone(phone string) string {
	return nonDigitRegexp.ReplaceAllString(phone, "")
}

func SamePhone(a, b string) bool {
	return NormalizePhone(a) == NormalizePhone(b)
}
