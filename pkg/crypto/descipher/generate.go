package descipher

import (
	"io"

	"github.com/pkg/errors"

	"github.com/hanhsuan/SoftHSMv2/pkg/crypto/symkey"
	"github.com/hanhsuan/SoftHSMv2/pkg/util/random"
)

// GenerateKey fills key with fresh random material from rng and forces odd
// parity on every byte. The key declares its own target bit length; one bit
// per byte is reserved for parity, so a 168-bit key draws 24 random bytes.
func (c *Cipher) GenerateKey(key *symkey.Key, rng random.Source) error {
	if rng == nil {
		return errors.New("descipher: no randomness source")
	}
	if key == nil || key.BitLen() == 0 {
		return errors.New("descipher: key bit length is zero")
	}
	buf := make([]byte, key.BitLen()/7)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return errors.Wrap(err, "descipher: drawing key material")
	}
	for i := range buf {
		buf[i] = oddParity[buf[i]]
	}
	return key.SetKeyBits(buf)
}
