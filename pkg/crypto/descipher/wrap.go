package descipher

import (
	"github.com/pkg/errors"

	"github.com/hanhsuan/SoftHSMv2/pkg/crypto/symkey"
)

// WrapKey encrypts key material under key in the given wrap mode. Padding
// is never applied: the input must already be a whole number of blocks.
func (c *Cipher) WrapKey(key *symkey.Key, mode WrapMode, in []byte) ([]byte, error) {
	if err := checkLength(len(in), BlockSize, "wrap"); err != nil {
		return nil, err
	}
	return c.wrapUnwrap(key, mode, in, dirEncrypt)
}

// UnwrapKey reverses WrapKey with the same key and mode.
func (c *Cipher) UnwrapKey(key *symkey.Key, mode WrapMode, in []byte) ([]byte, error) {
	if err := checkLength(len(in), BlockSize, "unwrap"); err != nil {
		return nil, err
	}
	return c.wrapUnwrap(key, mode, in, dirDecrypt)
}

func checkLength(insize, minsize int, op string) error {
	if insize < minsize {
		return errors.Errorf("descipher: key data to %s too small", op)
	}
	if insize%BlockSize != 0 {
		return errors.Errorf("descipher: key data to %s not aligned", op)
	}
	return nil
}

func (c *Cipher) wrapUnwrap(key *symkey.Key, mode WrapMode, in []byte, dir direction) ([]byte, error) {
	s, err := c.wrapSuiteFor(key, mode)
	if err != nil {
		return nil, err
	}
	ctx, err := newContext(s, key.KeyBits(), nil, dir, false)
	if err != nil {
		return nil, err
	}
	// One input byte can expand to at most two blocks of output.
	out := make([]byte, 0, len(in)+2*BlockSize)
	chunk, err := ctx.Update(in)
	if err != nil {
		return nil, err
	}
	out = append(out, chunk...)
	tail, err := ctx.Final()
	if err != nil {
		return nil, err
	}
	return append(out, tail...), nil
}
