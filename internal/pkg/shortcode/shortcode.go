// Package shortcode generates the short human-shareable codes used for
// joining a queue without knowing its internal id.
package shortcode

import (
	"crypto/rand"
)

const (
	// URL-safe, no confusable pairs stripped; codes are copy-pasted or
	// scanned, not read aloud.
	alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	DefaultLength = 9
)

func Generate() (string, error) {
	return GenerateN(DefaultLength)
}

func GenerateN(length int) (string, error) {
	code := make([]byte, length)

	if _, err := rand.Read(code); err != nil {
		return "", err
	}

	for i := 0; i < length; i++ {
		code[i] = alphabet[int(code[i])%len(alphabet)]
	}

	return string(code), nil
}
