package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, int64(5), Normalize(5))
	assert.Equal(t, int64(5), Normalize(int32(5)))
	assert.Equal(t, float64(5.5), Normalize(float32(5.5)).(float64))
	assert.Equal(t, int64(1), Normalize(true))
	assert.Equal(t, int64(0), Normalize(false))
	assert.Nil(t, Normalize(nil))
	assert.Equal(t, "текст", Normalize("текст"))

	// json.Number из снимка: целое остаётся целым.
	assert.Equal(t, int64(42), Normalize(json.Number("42")))
	assert.Equal(t, 4.2, Normalize(json.Number("4.2")))
}

func TestLooseEqual(t *testing.T) {
	assert.True(t, looseEqual(int64(5), int64(5)))
	assert.True(t, looseEqual(int64(5), float64(5)))
	assert.True(t, looseEqual(int64(5), "5"))
	assert.True(t, looseEqual("5", int64(5)))
	assert.True(t, looseEqual("abc", "abc"))
	assert.True(t, looseEqual(nil, nil))

	assert.False(t, looseEqual(int64(5), "6"))
	assert.False(t, looseEqual(nil, int64(0)))
	assert.False(t, looseEqual("", nil))
	assert.False(t, looseEqual("abc", "abd"))
}

func TestDistinctKey(t *testing.T) {
	// Число и его строковая запись складываются в одно значение.
	assert.Equal(t, distinctKey(int64(2)), distinctKey("2"))
	assert.Equal(t, distinctKey(int64(2)), distinctKey(float64(2)))

	assert.NotEqual(t, distinctKey(int64(2)), distinctKey(int64(3)))
	assert.NotEqual(t, distinctKey("abc"), distinctKey(int64(2)))
	assert.NotEqual(t, distinctKey(nil), distinctKey(int64(0)))

	// Все nil — одно значение.
	assert.Equal(t, distinctKey(nil), distinctKey(nil))
}
