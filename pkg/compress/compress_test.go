package compress

import (
	"bytes"
	"testing"
)

func TestCodecRoundTrips(t *testing.T) {
	payload := bytes.Repeat([]byte("des key material is highly redundant "), 64)
	for _, name := range []string{"none", "zip", "zlib", "bzip2"} {
		t.Run(name, func(t *testing.T) {
			c, err := Get(name)
			if err != nil {
				t.Fatalf("Get(%q): %v", name, err)
			}
			packed, err := c.Compress(payload)
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}
			if name != "none" && len(packed) >= len(payload) {
				t.Fatalf("%s did not shrink %d bytes", name, len(payload))
			}
			got, err := c.Decompress(packed)
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if !bytes.Equal(got, payload) {
				t.Fatal("round trip mismatch")
			}
		})
	}
}

func TestGetUnknownCodec(t *testing.T) {
	if _, err := Get("lzma"); err == nil {
		t.Fatal("Get accepted an unknown codec")
	}
}
