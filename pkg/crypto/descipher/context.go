package descipher

import (
	"crypto/cipher"

	"github.com/andreburgaud/crypt2go/ecb"
	"github.com/andreburgaud/crypt2go/padding"
	"github.com/pkg/errors"
)

type direction int

const (
	dirEncrypt direction = iota
	dirDecrypt
)

// Context streams bytes through one keyed engine in one direction. It is
// single-use: configure at creation, feed with Update, close out with
// Final. Each Context owns its engine state, so distinct Contexts never
// share mutable state.
type Context struct {
	mode   Mode
	dir    direction
	blocks cipher.BlockMode // ECB and CBC
	stream cipher.Stream    // OFB and CFB
	pad    bool
	carry  []byte
	done   bool
}

// newContext keys the engine for the suite and direction. A nil IV means
// the zero IV; chaining modes other than ECB take exactly one block of IV.
func newContext(s suite, raw, iv []byte, dir direction, pad bool) (*Context, error) {
	block, err := s.newBlock(raw)
	if err != nil {
		return nil, errors.Wrap(err, "descipher: keying engine")
	}
	if s.mode != ModeECB {
		if iv == nil {
			iv = make([]byte, BlockSize)
		} else if len(iv) != BlockSize {
			return nil, errors.Errorf("descipher: IV must be %d bytes, got %d", BlockSize, len(iv))
		}
	} else if len(iv) != 0 {
		return nil, errors.New("descipher: ECB takes no IV")
	}
	ctx := &Context{mode: s.mode, dir: dir, pad: pad}
	switch s.mode {
	case ModeECB:
		if dir == dirEncrypt {
			ctx.blocks = ecb.NewECBEncrypter(block)
		} else {
			ctx.blocks = ecb.NewECBDecrypter(block)
		}
	case ModeCBC:
		if dir == dirEncrypt {
			ctx.blocks = cipher.NewCBCEncrypter(block, iv)
		} else {
			ctx.blocks = cipher.NewCBCDecrypter(block, iv)
		}
	case ModeOFB:
		ctx.stream = cipher.NewOFB(block, iv)
	case ModeCFB:
		if dir == dirEncrypt {
			ctx.stream = cipher.NewCFBEncrypter(block, iv)
		} else {
			ctx.stream = cipher.NewCFBDecrypter(block, iv)
		}
	default:
		return nil, errors.Errorf("descipher: invalid DES cipher mode %s", s.mode)
	}
	if pad && ctx.stream != nil {
		return nil, errors.Errorf("descipher: %s is a stream mode, padding does not apply", s.mode)
	}
	return ctx, nil
}

// Update feeds in through the engine and returns whatever whole blocks it
// produced. Block modes buffer an incomplete tail; when padding is on and
// the direction is decrypt, the last whole block is also held back until
// Final so its padding can be stripped.
func (ctx *Context) Update(in []byte) ([]byte, error) {
	if ctx.done {
		return nil, errors.New("descipher: context already finalized")
	}
	if ctx.stream != nil {
		out := make([]byte, len(in))
		ctx.stream.XORKeyStream(out, in)
		return out, nil
	}
	ctx.carry = append(ctx.carry, in...)
	n := len(ctx.carry) - len(ctx.carry)%BlockSize
	if ctx.pad && ctx.dir == dirDecrypt && n == len(ctx.carry) && n > 0 {
		n -= BlockSize
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]byte, n)
	ctx.blocks.CryptBlocks(out, ctx.carry[:n])
	ctx.carry = ctx.carry[n:]
	return out, nil
}

// Final flushes the engine and returns the remaining output. For padded
// encryption it emits the padding block; for padded decryption it strips
// the padding from the held-back block. Without padding any buffered tail
// is an alignment error.
func (ctx *Context) Final() ([]byte, error) {
	if ctx.done {
		return nil, errors.New("descipher: context already finalized")
	}
	ctx.done = true
	if ctx.stream != nil {
		return nil, nil
	}
	padder := padding.NewPkcs7Padding(BlockSize)
	switch {
	case !ctx.pad:
		if len(ctx.carry) != 0 {
			return nil, errors.Errorf("descipher: %d trailing bytes, input not a multiple of the block size", len(ctx.carry))
		}
		return nil, nil
	case ctx.dir == dirEncrypt:
		full, err := padder.Pad(ctx.carry)
		if err != nil {
			return nil, errors.Wrap(err, "descipher: pad")
		}
		out := make([]byte, len(full))
		ctx.blocks.CryptBlocks(out, full)
		return out, nil
	default:
		if len(ctx.carry) != BlockSize {
			return nil, errors.New("descipher: ciphertext not a multiple of the block size")
		}
		out := make([]byte, BlockSize)
		ctx.blocks.CryptBlocks(out, ctx.carry)
		out, err := padder.Unpad(out)
		if err != nil {
			return nil, errors.Wrap(err, "descipher: unpad")
		}
		return out, nil
	}
}
