package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAt(t *testing.T) {
	s := []string{"a", "b"}

	v, ok := At(s, 1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	v, ok = At(s, 2)
	assert.False(t, ok)
	assert.Empty(t, v)

	_, ok = At(s, -1)
	assert.False(t, ok)

	_, ok = At([]int(nil), 0)
	assert.False(t, ok)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty([]int{}))
	assert.True(t, IsEmpty([]int(nil)))
	assert.False(t, IsEmpty([]int{1}))
}
