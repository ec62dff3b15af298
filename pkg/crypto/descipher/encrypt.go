package descipher

import (
	"github.com/hanhsuan/SoftHSMv2/pkg/crypto/symkey"
)

// EncryptInit opens a streaming encryption context for key and mode. The IV
// must be one block for CBC/OFB/CFB and absent for ECB. With pad set, the
// block modes apply PKCS#7 at Final.
func (c *Cipher) EncryptInit(key *symkey.Key, mode Mode, iv []byte, pad bool) (*Context, error) {
	s, err := c.suiteFor(key, mode)
	if err != nil {
		return nil, err
	}
	return newContext(s, key.KeyBits(), iv, dirEncrypt, pad)
}

// DecryptInit opens a streaming decryption context, mirroring EncryptInit.
func (c *Cipher) DecryptInit(key *symkey.Key, mode Mode, iv []byte, pad bool) (*Context, error) {
	s, err := c.suiteFor(key, mode)
	if err != nil {
		return nil, err
	}
	return newContext(s, key.KeyBits(), iv, dirDecrypt, pad)
}

// Encrypt is the single-shot form of EncryptInit/Update/Final.
func (c *Cipher) Encrypt(key *symkey.Key, mode Mode, iv, plaintext []byte, pad bool) ([]byte, error) {
	ctx, err := c.EncryptInit(key, mode, iv, pad)
	if err != nil {
		return nil, err
	}
	return runContext(ctx, plaintext)
}

// Decrypt is the single-shot form of DecryptInit/Update/Final.
func (c *Cipher) Decrypt(key *symkey.Key, mode Mode, iv, ciphertext []byte, pad bool) ([]byte, error) {
	ctx, err := c.DecryptInit(key, mode, iv, pad)
	if err != nil {
		return nil, err
	}
	return runContext(ctx, ciphertext)
}

func runContext(ctx *Context, in []byte) ([]byte, error) {
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
