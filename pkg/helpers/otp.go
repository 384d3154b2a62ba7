package helpers

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	DefaultOTPDigits = 6
	// MaxOTPDigits matches the width of otp_codes.code.
	MaxOTPDigits = 8
)

// OTPGenerator draws fixed-width numeric codes uniformly from crypto/rand.
type OTPGenerator struct {
	Digits int
}

func NewOTPGenerator(digits int) OTPGenerator {
	if digits < 4 || digits > MaxOTPDigits {
		digits = DefaultOTPDigits
	}
	return OTPGenerator{Digits: digits}
}

// Generate returns a zero-padded code, e.g. "004271" for six digits.
func (g OTPGenerator) Generate() (string, error) {
	digits := g.Digits
	if digits == 0 {
		digits = DefaultOTPDigits
	}
	space := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n, err := rand.Int(rand.Reader, space)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", digits, n.Int64()), nil
}
