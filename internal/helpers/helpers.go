package helpers

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const OtpLength = 6

// HashPassword produces a salted bcrypt hash. The salt is generated fresh on
// every call and embedded in the output, so identical inputs yield different
// hashes.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %v", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether password matches the stored hash. Malformed
// hashes count as a verification failure, not an error.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateOtp returns a random fixed-length numeric code.
func GenerateOtp() string {
	max := big.NewInt(1)
	for i := 0; i < OtpLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(fmt.Sprintf("otp generation failed: %v", err))
	}
	return fmt.Sprintf("%0*d", OtpLength, n)
}

// GenerateToken returns a fresh opaque bearer token. It carries no claims and
// is not verifiable; it is just a globally unique identifier.
func GenerateToken() string {
	return uuid.New().String()
}
