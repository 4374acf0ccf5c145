package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy(t *testing.T) {
	var zero Policy
	assert.False(t, zero.IsEnabled(), "zero value is disabled")

	s, ok := Disabled().Strength()
	assert.False(t, ok)
	assert.Zero(t, s)
	assert.Equal(t, "Disabled", Disabled().String())

	s, ok = Enabled(0.5).Strength()
	assert.True(t, ok)
	assert.Equal(t, float32(0.5), s)
	assert.Equal(t, "Enabled(0.5)", Enabled(0.5).String())
}
