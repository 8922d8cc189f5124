package authentication

import (
	"math/rand"
	"time"
)

var otpRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateOTP
func GenerateOTP(length int) string {
	characters := "0123456789"
	// Create a byte slice to hold the OTP of the specified length.
	otp := make([]byte, length)

	for i := range otp {
		otp[i] = characters[otpRand.Intn(len(characters))]
	}
	return string(otp)
}

// ValidateOTP
func ValidateOTP(otp, doctorOTP string) bool {
	return otp == doctorOTP
}
