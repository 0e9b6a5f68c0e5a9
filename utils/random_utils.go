package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// RandomInt32 generates a secure random 32-bit integer
func RandomInt32() int32 {
	var num int32
	err := binary.Read(rand.Reader, binary.BigEndian, &num)
	if err != nil {
		panic("generate random int32 failed")
	}

	return num
}

// RandomOTP generates a numeric one-time code of the given length
func RandomOTP(digits int) string {
	otp := make([]byte, digits)
	for i := range otp {
		if i == 0 {
			// Leading digit must not be zero so the code keeps its full length
			otp[i] = '1' + randomBelow(9)
		} else {
			otp[i] = '0' + randomBelow(10)
		}
	}
	return string(otp)
}

// randomBelow returns a uniform value in [0, n). Bytes past the largest
// multiple of n are rejected to keep the modulo unbiased.
func randomBelow(n int) byte {
	limit := 256 - 256%n
	for {
		var b [1]byte
		if _, err := rand.Read(b[:]); err != nil {
			panic(fmt.Sprintf("generate random OTP failed: %v", err))
		}
		if int(b[0]) < limit {
			return b[0] % byte(n)
		}
	}
}
