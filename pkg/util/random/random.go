// Package random abstracts the randomness source used for key generation.
package random

import (
	"crypto/rand"
	"io"
)

// Source fills byte slices with random data. io.Reader keeps the system
// CSPRNG and deterministic test sources interchangeable.
type Source = io.Reader

// System is the operating system CSPRNG.
var System Source = rand.Reader

// Bytes returns n bytes from the system source.
func Bytes(n int) []byte {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return b
}
