package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapContains(t *testing.T) {
	m := map[string]int{"orders": 1}

	assert.True(t, MapContains(m, "orders"))
	assert.False(t, MapContains(m, "ghost"))
}

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(map[string]bool{"b": true, "a": true, "c": false})
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestNormalizeName(t *testing.T) {
	name, ok := NormalizeName("  orders \n")
	assert.True(t, ok)
	assert.Equal(t, "orders", name)

	_, ok = NormalizeName("   ")
	assert.False(t, ok)

	_, ok = NormalizeName("bad\x00name")
	assert.False(t, ok)
}
