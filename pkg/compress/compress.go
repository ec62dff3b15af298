// Package compress provides the plaintext codecs the CLI can run ahead of
// encryption. DES-era payloads are often highly redundant key blobs or
// text, so shrinking them first is cheap.
package compress

import (
	"bytes"
	"compress/flate"
	"compress/zlib"
	"io"

	dbz2 "github.com/dsnet/compress/bzip2"
	"github.com/pkg/errors"
)

// Codec compresses and decompresses whole buffers.
type Codec interface {
	Compress([]byte) ([]byte, error)
	Decompress([]byte) ([]byte, error)
}

// Get resolves a codec by name: none, zip (deflate), zlib, or bzip2.
func Get(name string) (Codec, error) {
	switch name {
	case "none", "":
		return noop{}, nil
	case "zip":
		return deflateCodec{}, nil
	case "zlib":
		return zlibCodec{}, nil
	case "bzip2":
		return bzip2Codec{}, nil
	}
	return nil, errors.Errorf("compress: unknown codec %q", name)
}

type noop struct{}

func (noop) Compress(b []byte) ([]byte, error)   { return b, nil }
func (noop) Decompress(b []byte) ([]byte, error) { return b, nil }

type deflateCodec struct{}

func (deflateCodec) Compress(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, _ := flate.NewWriter(&buf, flate.BestCompression)
	if _, err := w.Write(b); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (deflateCodec) Decompress(b []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(b))
	defer r.Close()
	return io.ReadAll(r)
}

type zlibCodec struct{}

func (zlibCodec) Compress(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, _ := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if _, err := w.Write(b); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (zlibCodec) Decompress(b []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

type bzip2Codec struct{}

func (bzip2Codec) Compress(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := dbz2.NewWriter(&buf, &dbz2.WriterConfig{Level: dbz2.BestCompression})
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(b); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (bzip2Codec) Decompress(b []byte) ([]byte, error) {
	// The stdlib bzip2 package has no writer, dsnet has both ends.
	r, err := dbz2.NewReader(bytes.NewReader(b), &dbz2.ReaderConfig{})
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
