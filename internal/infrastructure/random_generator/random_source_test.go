package randomgenerator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomSource_InRange(t *testing.T) {
	src := NewRandomSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(3)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3)
	}
}

func TestSeededRandomSource_Reproducible(t *testing.T) {
	a := NewSeededRandomSource(42)
	b := NewSeededRandomSource(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(10), b.Intn(10))
	}
}

func TestRandomSource_CoversAllIndexes(t *testing.T) {
	src := NewSeededRandomSource(7)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		seen[src.Intn(3)] = true
	}
	assert.Len(t, seen, 3)
}

func TestRandomSource_PanicsOnEmptyRange(t *testing.T) {
	assert.Panics(t, func() { NewRandomSource().Intn(0) })
}
