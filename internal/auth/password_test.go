package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	require.NoError(t, ComparePassword(hash, "s3cret"))
	require.Error(t, ComparePassword(hash, "wrong"))
}

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	// each hash carries its own salt
	require.NotEqual(t, first, second)
	require.NoError(t, ComparePassword(first, "s3cret"))
	require.NoError(t, ComparePassword(second, "s3cret"))
}
