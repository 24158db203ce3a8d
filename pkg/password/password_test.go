package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := HashWithCost("s3cret-pass", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, Compare(hash, "s3cret-pass"))
	assert.ErrorIs(t, Compare(hash, "wrong"), ErrMismatch)
}

func TestCompare_MalformedHash(t *testing.T) {
	err := Compare("not-a-bcrypt-hash", "whatever")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMismatch)
}
