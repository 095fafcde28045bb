package utils

import "math/rand"

const digits = "0123456789"

// GenerateNumericCode returns a string of n decimal digits, each drawn
// independently. math/rand keeps parity with the legacy reset codes; these
// codes are short-lived but NOT cryptographically strong.
func GenerateNumericCode(n int) string {
	if n <= 0 {
		n = 6
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = digits[rand.Intn(len(digits))]
	}
	return string(b)
}
