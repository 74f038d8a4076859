package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainCodec(t *testing.T) {
	codec := NewPlainCodec()

	stored, err := codec.Encode("s3cret")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", stored)

	assert.True(t, codec.Verify("s3cret", "s3cret"))
	assert.False(t, codec.Verify("s3cret", "S3CRET"))
	// An unset credential never matches, not even an empty submission.
	assert.False(t, codec.Verify("", ""))
}

func TestBcryptCodec(t *testing.T) {
	codec := NewBcryptCodec(4)

	stored, err := codec.Encode("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", stored)

	assert.True(t, codec.Verify(stored, "s3cret"))
	assert.False(t, codec.Verify(stored, "wrong"))
	assert.False(t, codec.Verify("", "s3cret"))
}
