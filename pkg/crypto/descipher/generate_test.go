package descipher

import (
	"bytes"
	"math/bits"
	"testing"

	"github.com/pkg/errors"

	"github.com/hanhsuan/SoftHSMv2/pkg/crypto/symkey"
	"github.com/hanhsuan/SoftHSMv2/pkg/util/random"
)

type failingSource struct{}

func (failingSource) Read([]byte) (int, error) { return 0, errors.New("rng down") }

func TestGenerateKeySizesAndParity(t *testing.T) {
	c := New(Config{})
	for _, tt := range []struct {
		bits  int
		bytes int
	}{
		{56, 8}, {112, 16}, {168, 24},
	} {
		key := symkey.New(tt.bits)
		if err := c.GenerateKey(key, random.System); err != nil {
			t.Fatalf("GenerateKey(%d): %v", tt.bits, err)
		}
		if key.BitLen() != tt.bits {
			t.Fatalf("BitLen = %d, want %d", key.BitLen(), tt.bits)
		}
		raw := key.KeyBits()
		if len(raw) != tt.bytes {
			t.Fatalf("generated %d bytes, want %d", len(raw), tt.bytes)
		}
		for i, b := range raw {
			if bits.OnesCount8(b)%2 != 1 {
				t.Fatalf("byte %d = %#02x has even parity", i, b)
			}
		}
	}
}

func TestGenerateKeyDeterministic(t *testing.T) {
	c := New(Config{})
	key := symkey.New(56)
	src := bytes.NewReader([]byte{0x00, 0x01, 0x02, 0x03, 0xfc, 0xfd, 0xfe, 0xff})
	if err := c.GenerateKey(key, src); err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	want := []byte{0x01, 0x01, 0x02, 0x02, 0xfd, 0xfd, 0xfe, 0xfe}
	if !bytes.Equal(key.KeyBits(), want) {
		t.Fatalf("key = %x, want %x", key.KeyBits(), want)
	}
}

func TestGenerateKeyFailures(t *testing.T) {
	c := New(Config{})
	if err := c.GenerateKey(symkey.New(168), nil); err == nil {
		t.Fatal("GenerateKey accepted a nil randomness source")
	}
	if err := c.GenerateKey(symkey.New(0), random.System); err == nil {
		t.Fatal("GenerateKey accepted a zero bit length")
	}
	if err := c.GenerateKey(nil, random.System); err == nil {
		t.Fatal("GenerateKey accepted a nil key")
	}
	if err := c.GenerateKey(symkey.New(168), failingSource{}); err == nil {
		t.Fatal("GenerateKey ignored a failing randomness source")
	}
	// 200 bits draws 28 bytes, which no DES key size accepts.
	if err := c.GenerateKey(symkey.New(200), random.System); err == nil {
		t.Fatal("GenerateKey accepted 200 bits")
	}
}

func TestParityTableIsOddEverywhere(t *testing.T) {
	for i, v := range oddParity {
		if bits.OnesCount8(v)%2 != 1 {
			t.Fatalf("oddParity[%d] = %#02x has even parity", i, v)
		}
		if v|1 != byte(i)|1 {
			t.Fatalf("oddParity[%d] = %#02x changed more than the parity bit", i, v)
		}
	}
}
