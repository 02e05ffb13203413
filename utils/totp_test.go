package utils

import (
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTOTPSecret(t *testing.T) {
	secret, url, err := GenerateTOTPSecret("user@example.com")
	require.NoError(t, err)

	assert.NotEmpty(t, secret)
	assert.Contains(t, url, "otpauth://totp/")
	assert.Contains(t, url, "AffilAI")
}

func TestVerifyTOTP(t *testing.T) {
	secret, _, err := GenerateTOTPSecret("user@example.com")
	require.NoError(t, err)

	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)

	assert.True(t, VerifyTOTP(secret, code))
	assert.False(t, VerifyTOTP(secret, "000000"))
}
