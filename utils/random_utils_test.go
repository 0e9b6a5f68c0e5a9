package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomOTP(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		otp := RandomOTP(6)
		assert.Len(t, otp, 6)
		assert.NotEqual(t, byte('0'), otp[0])
		for _, ch := range otp {
			assert.True(t, ch >= '0' && ch <= '9')
		}
		seen[otp] = true
	}
	// 50 draws from a million-value space should not all collide
	assert.Greater(t, len(seen), 1)
}

func TestRandomOTPCoversAllDigits(t *testing.T) {
	trailing := make(map[byte]int)
	leading := make(map[byte]int)
	for i := 0; i < 400; i++ {
		otp := RandomOTP(6)
		leading[otp[0]]++
		for j := 1; j < len(otp); j++ {
			trailing[otp[j]]++
		}
	}
	// 2000 trailing samples make a missing digit vanishingly unlikely
	for d := byte('0'); d <= '9'; d++ {
		assert.Positive(t, trailing[d], "digit %c never drawn in trailing positions", d)
	}
	for d := byte('1'); d <= '9'; d++ {
		assert.Positive(t, leading[d], "digit %c never drawn in the leading position", d)
	}
	assert.Zero(t, leading['0'])
}

func TestIsBcryptHash(t *testing.T) {
	hash, err := HashPassword("secret123")
	assert.NoError(t, err)
	assert.True(t, IsBcryptHash(hash))
	assert.False(t, IsBcryptHash("secret123"))
	// 64 plain characters must not be mistaken for a hash
	assert.False(t, IsBcryptHash("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
