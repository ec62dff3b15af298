// Package descipher adapts DES and Triple-DES to a single keyed interface.
// It picks the cipher variant from the key bit length, the chaining mode
// from an explicit lookup table, and hands the actual block transforms to
// crypto/des and the chaining-mode engines. No cipher internals live here.
package descipher

import (
	"crypto/cipher"
	"crypto/des"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/hanhsuan/SoftHSMv2/pkg/crypto/symkey"
)

// BlockSize is 8 bytes for single DES and every Triple-DES variant.
const BlockSize = 8

// Mode selects the chaining mode for bulk encryption.
type Mode int

const (
	ModeECB Mode = iota
	ModeCBC
	ModeOFB
	ModeCFB
)

func (m Mode) String() string {
	switch m {
	case ModeECB:
		return "ecb"
	case ModeCBC:
		return "cbc"
	case ModeOFB:
		return "ofb"
	case ModeCFB:
		return "cfb"
	}
	return "unknown"
}

// ParseMode maps a mode name to its Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "ecb":
		return ModeECB, nil
	case "cbc":
		return ModeCBC, nil
	case "ofb":
		return ModeOFB, nil
	case "cfb":
		return ModeCFB, nil
	}
	return 0, errors.Errorf("descipher: unknown cipher mode %q", s)
}

// WrapMode selects the key-wrapping construction.
type WrapMode int

const (
	// KeyWrap is the plain DES key wrap: ECB over the wrapped material.
	KeyWrap WrapMode = iota
	// KeyWrapCBC chains the wrapped material in CBC with a zero IV.
	KeyWrapCBC
)

func (m WrapMode) String() string {
	switch m {
	case KeyWrap:
		return "des-keywrap"
	case KeyWrapCBC:
		return "des-cbc-keywrap"
	}
	return "unknown"
}

// ParseWrapMode maps a wrap-mode name to its WrapMode.
func ParseWrapMode(s string) (WrapMode, error) {
	switch s {
	case "des-keywrap":
		return KeyWrap, nil
	case "des-cbc-keywrap":
		return KeyWrapCBC, nil
	}
	return 0, errors.Errorf("descipher: unknown key wrap mode %q", s)
}

// Config carries adapter policy. Restricted refuses 56-bit single-DES keys,
// replacing the compile-time validated-build toggle of the original design
// with a runtime flag.
type Config struct {
	Restricted bool
	Logger     *slog.Logger
}

// Cipher is the DES/3DES adapter. Operations are synchronous and allocate
// a fresh engine context per call, so a Cipher is safe for concurrent use
// on distinct keys and buffers.
type Cipher struct {
	restricted bool
	log        *slog.Logger
}

// New returns an adapter with the given policy.
func New(cfg Config) *Cipher {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Cipher{restricted: cfg.Restricted, log: log}
}

// BlockSize reports the cipher block size, 64 bits for every key variant.
func (c *Cipher) BlockSize() int { return BlockSize }

// variant identifies which keyed primitive a suite uses.
type variant int

const (
	desSingle variant = iota // 8-byte key
	desEDE2                  // 16-byte key, expanded K1||K2||K1
	desEDE3                  // 24-byte key
)

// suite is a resolved (variant, chaining mode) pair.
type suite struct {
	variant variant
	mode    Mode
}

type suiteKey struct {
	mode Mode
	bits int
}

// bulkSuites is the supported matrix for bulk encryption. Bit lengths here
// exclude parity bits (56/112/168).
var bulkSuites = map[suiteKey]variant{
	{ModeECB, 56}: desSingle, {ModeECB, 112}: desEDE2, {ModeECB, 168}: desEDE3,
	{ModeCBC, 56}: desSingle, {ModeCBC, 112}: desEDE2, {ModeCBC, 168}: desEDE3,
	{ModeOFB, 56}: desSingle, {ModeOFB, 112}: desEDE2, {ModeOFB, 168}: desEDE3,
	{ModeCFB, 56}: desSingle, {ModeCFB, 112}: desEDE2, {ModeCFB, 168}: desEDE3,
}

type wrapSuiteKey struct {
	mode WrapMode
	bits int
}

// wrapSuites is the supported matrix for key wrapping. Wrap callers declare
// key sizes with parity bits included (64/128/192).
var wrapSuites = map[wrapSuiteKey]suite{
	{KeyWrap, 64}:     {desSingle, ModeECB},
	{KeyWrap, 128}:    {desEDE2, ModeECB},
	{KeyWrap, 192}:    {desEDE3, ModeECB},
	{KeyWrapCBC, 64}:  {desSingle, ModeCBC},
	{KeyWrapCBC, 128}: {desEDE2, ModeCBC},
	{KeyWrapCBC, 192}: {desEDE3, ModeCBC},
}

// suiteFor resolves the bulk-cipher suite for a key and mode, enforcing the
// single-DES policy and warning on 56-bit use.
func (c *Cipher) suiteFor(key *symkey.Key, mode Mode) (suite, error) {
	if key == nil {
		return suite{}, errors.New("descipher: no key")
	}
	bits := key.BitLen()
	if bits != 56 && bits != 112 && bits != 168 {
		return suite{}, errors.Errorf("descipher: invalid DES key length (%d bits)", bits)
	}
	if bits == 56 {
		if c.restricted {
			return suite{}, errors.New("descipher: 56-bit DES keys are disabled by policy")
		}
		c.log.Warn("use of 56-bit DES keys is not recommended")
	}
	v, ok := bulkSuites[suiteKey{mode, bits}]
	if !ok {
		return suite{}, errors.Errorf("descipher: invalid DES cipher mode %s", mode)
	}
	return suite{v, mode}, nil
}

// wrapSuiteFor resolves the key-wrap suite for a key and wrap mode.
func (c *Cipher) wrapSuiteFor(key *symkey.Key, mode WrapMode) (suite, error) {
	if key == nil {
		return suite{}, errors.New("descipher: no key")
	}
	s, ok := wrapSuites[wrapSuiteKey{mode, key.BitLen()}]
	if !ok {
		return suite{}, errors.Errorf("descipher: no %s primitive for a %d-bit key", mode, key.BitLen())
	}
	return s, nil
}

// newBlock builds the keyed block engine for the suite's variant. A 2-key
// Triple-DES key is fed to the engine as K1||K2||K1.
func (s suite) newBlock(raw []byte) (cipher.Block, error) {
	switch s.variant {
	case desSingle:
		return des.NewCipher(raw)
	case desEDE2:
		k := make([]byte, 24)
		copy(k, raw)
		copy(k[16:], raw[:8])
		return des.NewTripleDESCipher(k)
	case desEDE3:
		return des.NewTripleDESCipher(raw)
	}
	return nil, errors.Errorf("descipher: unknown cipher variant %d", s.variant)
}
