// Package symkey holds raw symmetric key material in locked memory
// together with its declared bit length.
package symkey

import (
	"github.com/awnumar/memguard"
	"github.com/pkg/errors"
)

// Key is a symmetric key: raw bytes plus a declared bit length. DES keys
// may be declared with or without the per-byte parity bit counted, so both
// accountings of the same material are accepted (56/64 bits for 8 bytes,
// 112/128 for 16, 168/192 for 24).
type Key struct {
	bits int
	buf  *memguard.LockedBuffer
}

// New returns an empty key declared at the given bit length.
func New(bits int) *Key {
	return &Key{bits: bits}
}

// BitLen reports the declared bit length, not the stored byte count.
func (k *Key) BitLen() int { return k.bits }

// ByteLen returns the number of raw key bytes the declared bit length
// requires, or 0 when the declaration is not a DES key size.
func ByteLen(bits int) int {
	switch bits {
	case 56, 64:
		return 8
	case 112, 128:
		return 16
	case 168, 192:
		return 24
	}
	return 0
}

// SetKeyBits stores a copy of b as the key material. It fails when the
// length of b does not match the declared bit length.
func (k *Key) SetKeyBits(b []byte) error {
	want := ByteLen(k.bits)
	if want == 0 {
		return errors.Errorf("symkey: no DES key size declares %d bits", k.bits)
	}
	if len(b) != want {
		return errors.Errorf("symkey: got %d key bytes, %d-bit key needs %d", len(b), k.bits, want)
	}
	if k.buf != nil {
		k.buf.Destroy()
	}
	k.buf = memguard.NewBufferFromBytes(append([]byte(nil), b...))
	return nil
}

// KeyBits returns the raw key material. The slice aliases locked memory
// and becomes invalid after Destroy. Returns nil when no material is set.
func (k *Key) KeyBits() []byte {
	if k.buf == nil {
		return nil
	}
	return k.buf.Bytes()
}

// Destroy wipes the key material.
func (k *Key) Destroy() {
	if k.buf != nil {
		k.buf.Destroy()
		k.buf = nil
	}
}
