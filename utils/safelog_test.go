package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskSecretAlwaysMasks(t *testing.T) {
	assert.Equal(t, "", MaskSecret(""))
	assert.Equal(t, "****", MaskSecret("abc"))
	assert.Equal(t, "****", MaskSecret("abcd"))
	assert.Equal(t, "sk****89", MaskSecret("sk_live_123456789"))
}

func TestMaskStringPassthroughInDevelopment(t *testing.T) {
	if IsProduction {
		t.Skip("development-only behavior")
	}

	input := "user@example.com logged in with token abcdefghijklmnopqrstuvwxyz123456"
	assert.Equal(t, input, MaskString(input))
}
