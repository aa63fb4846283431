package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandByteArray(t *testing.T) {
	size := 16
	data1 := GenerateRandByteArray(size)
	data2 := GenerateRandByteArray(size)
	assert.Len(t, data1, size)
	assert.Len(t, data2, size)
	assert.NotEqual(t, data1, data2)
}

func TestWipeByteArray(t *testing.T) {
	b := []byte("secret")
	WipeByteArray(b)
	for i := range b {
		assert.Zero(t, b[i])
	}

	// nil must not panic
	WipeByteArray(nil)
}
