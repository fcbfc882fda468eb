package domain

import (
	"crypto/rand"
	"fmt"
)

// codeAlphabet excludes visually ambiguous characters (I, O, 0, 1) so a
// confirmation number survives being read over the phone.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 6

// NewConfirmationCode returns a random 6-character confirmation number
// such as "A3X7K9". Uniqueness is enforced by the store; the repository
// retries on collision.
func NewConfirmationCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("confirmation code: %w", err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}
