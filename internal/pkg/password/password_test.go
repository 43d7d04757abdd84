package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_HashAndVerify(t *testing.T) {
	hash, err := Hash("correct-horse-battery")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct-horse-battery", hash)

	assert.True(t, Verify("correct-horse-battery", hash))
	assert.False(t, Verify("wrong-password", hash))
}

func Test_HashToken_Deterministic(t *testing.T) {
	a := HashToken("some-refresh-token")
	b := HashToken("some-refresh-token")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // hex sha256
	assert.NotEqual(t, a, HashToken("another-token"))
}

func Test_Validate(t *testing.T) {
	assert.False(t, Validate("short"))
	assert.True(t, Validate("longenough"))
}
