package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandCodeShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := RandCode(4)
		require.Len(t, code, 4)
		assert.NotEqual(t, byte('0'), code[0], "no leading zero")
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9')
		}
	}
}

func TestRandStringShape(t *testing.T) {
	s := RandString(16)
	require.Len(t, s, 16)
	for _, c := range s {
		assert.True(t, (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'))
	}
}

func TestHostAddress(t *testing.T) {
	assert.Equal(t, "poly-1234-host", HostAddress("1234"))
}
