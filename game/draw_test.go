package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlashAlpha(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint8(160), flashAlpha(0))
	assert.Equal(uint8(80), flashAlpha(crashFlashUpdates/2))
	assert.Equal(uint8(0), flashAlpha(crashFlashUpdates))
	assert.Equal(uint8(0), flashAlpha(1000))

	prev := flashAlpha(0)
	for i := uint64(1); i <= crashFlashUpdates; i++ {
		alpha := flashAlpha(i)
		assert.Less(alpha, prev, "the flash fades every update")
		prev = alpha
	}
}
