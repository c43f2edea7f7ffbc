package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRGB(t *testing.T) {
	t.Run("white means no color", func(t *testing.T) {
		_, ok := FromRGB(0xFFFFFF)
		assert.False(t, ok)
	})

	t.Run("exact palette hit", func(t *testing.T) {
		name, ok := FromRGB(0x0070F3)
		assert.True(t, ok)
		assert.Equal(t, "blue", name)
	})

	t.Run("nearest match", func(t *testing.T) {
		name, ok := FromRGB(0x10B800) // close to green (16,185,129) in r/g, far in b
		assert.True(t, ok)
		assert.Equal(t, "green", name)
	})

	t.Run("black is nearest to ink", func(t *testing.T) {
		name, ok := FromRGB(0x000000)
		assert.True(t, ok)
		assert.Equal(t, "ink", name)
	})
}
