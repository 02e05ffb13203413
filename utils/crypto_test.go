package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEncryptionKey = "0123456789abcdef0123456789abcdef"

func TestEncryptDecryptRoundTrip(t *testing.T) {
	t.Setenv("DATA_ENCRYPTION_KEY", testEncryptionKey)

	plaintext := "sk_live_abc123_very_secret"

	ciphertext, err := EncryptSecret(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	decrypted, err := DecryptSecret(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestEncryptEmptyStringRoundTrips(t *testing.T) {
	t.Setenv("DATA_ENCRYPTION_KEY", testEncryptionKey)

	ciphertext, err := EncryptSecret("")
	require.NoError(t, err)
	assert.Equal(t, "", ciphertext)

	decrypted, err := DecryptSecret("")
	require.NoError(t, err)
	assert.Equal(t, "", decrypted)
}

func TestEncryptRequiresValidKey(t *testing.T) {
	t.Setenv("DATA_ENCRYPTION_KEY", "too-short")

	_, err := EncryptSecret("secret")
	assert.Error(t, err)
}

func TestDecryptRejectsGarbage(t *testing.T) {
	t.Setenv("DATA_ENCRYPTION_KEY", testEncryptionKey)

	_, err := DecryptSecret("not-base64!!!")
	assert.Error(t, err)

	_, err = DecryptSecret("c2hvcnQ=") // valid base64, too short for a nonce
	assert.Error(t, err)
}

func TestEncryptIsNondeterministic(t *testing.T) {
	t.Setenv("DATA_ENCRYPTION_KEY", testEncryptionKey)

	first, err := EncryptSecret("same input")
	require.NoError(t, err)
	second, err := EncryptSecret("same input")
	require.NoError(t, err)

	// Fresh nonce per call.
	assert.NotEqual(t, first, second)
}
