package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "simple password", raw: "admin"},
		{name: "long password", raw: "very-long-password-with-digits-1234567890"},
		{name: "cyrillic password", raw: "пароль-абонента"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := Hash(tt.raw)
			require.NoError(t, err)
			assert.NotEqual(t, tt.raw, hash)

			assert.NoError(t, Verify(hash, tt.raw))
			assert.Error(t, Verify(hash, tt.raw+"x"))
		})
	}
}

func TestHash_ProducesDistinctHashes(t *testing.T) {
	first, err := Hash("admin")
	require.NoError(t, err)
	second, err := Hash("admin")
	require.NoError(t, err)

	// bcrypt использует случайную соль, хэши не должны совпадать
	assert.NotEqual(t, first, second)
}
