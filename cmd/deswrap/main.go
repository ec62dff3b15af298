package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hanhsuan/SoftHSMv2/pkg/compress"
	"github.com/hanhsuan/SoftHSMv2/pkg/crypto/descipher"
	"github.com/hanhsuan/SoftHSMv2/pkg/crypto/symkey"
	"github.com/hanhsuan/SoftHSMv2/pkg/util/perm"
	"github.com/hanhsuan/SoftHSMv2/pkg/util/random"
)

var outPath string

func writeOut(b []byte) error {
	if outPath == "" {
		_, err := os.Stdout.Write(b)
		return err
	}
	f, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(b)
	return err
}

func fatalIf(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
func fatalf(format string, a ...interface{}) { fmt.Fprintf(os.Stderr, format+"\n", a...); os.Exit(1) }

func main() {
	if len(os.Args) < 2 {
		fatalf("usage: deswrap keygen|wrap|unwrap|encrypt|decrypt [flags] [file]")
	}
	switch os.Args[1] {
	case "keygen":
		keygen(os.Args[2:])
	case "wrap":
		wrapUnwrap(os.Args[2:], true)
	case "unwrap":
		wrapUnwrap(os.Args[2:], false)
	case "encrypt":
		encryptDecrypt(os.Args[2:], true)
	case "decrypt":
		encryptDecrypt(os.Args[2:], false)
	default:
		fatalf("unknown command %q", os.Args[1])
	}
}

// readIn reads the positional input file, or stdin when absent or "-".
func readIn(fs *flag.FlagSet) []byte {
	if rest := fs.Args(); len(rest) > 0 && rest[0] != "-" {
		data, err := os.ReadFile(rest[0])
		fatalIf(err)
		return data
	}
	data, err := io.ReadAll(os.Stdin)
	fatalIf(err)
	return data
}

// loadKey resolves key material from an inline base64 flag or a 0600 key
// file holding the same encoding, and declares its bit length. Bulk ciphers
// count bits without parity (56/112/168), key wrapping with parity
// (64/128/192).
func loadKey(keyB64, keyFile string, wrap bool) *symkey.Key {
	switch {
	case keyB64 != "" && keyFile != "":
		fatalf("-key and -keyfile are mutually exclusive")
	case keyB64 == "" && keyFile == "":
		fatalf("missing -key or -keyfile")
	case keyFile != "":
		fatalIf(perm.Check0600(keyFile))
		data, err := os.ReadFile(keyFile)
		fatalIf(err)
		keyB64 = strings.TrimSpace(string(data))
	}
	raw, err := base64.StdEncoding.DecodeString(keyB64)
	fatalIf(err)
	var bits int
	switch len(raw) {
	case 8:
		bits = 56
	case 16:
		bits = 112
	case 24:
		bits = 168
	default:
		fatalf("key must be 8, 16 or 24 bytes, got %d", len(raw))
	}
	if wrap {
		bits = len(raw) * 8
	}
	k := symkey.New(bits)
	fatalIf(k.SetKeyBits(raw))
	return k
}

func keygen(args []string) {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	var bits int
	var restricted bool
	fs.IntVar(&bits, "bits", 168, "key size: 56|112|168 (parity excluded)")
	fs.BoolVar(&restricted, "restricted", false, "refuse 56-bit single-DES keys")
	fs.StringVar(&outPath, "out", "", "output file (default: stdout)")
	fatalIf(fs.Parse(args))

	if restricted && bits == 56 {
		fatalf("56-bit DES keys are disabled by policy")
	}
	c := descipher.New(descipher.Config{Restricted: restricted, Logger: slog.Default()})
	key := symkey.New(bits)
	fatalIf(c.GenerateKey(key, random.System))
	defer key.Destroy()
	fatalIf(writeOut([]byte(base64.StdEncoding.EncodeToString(key.KeyBits()) + "\n")))
}

func wrapUnwrap(args []string, wrapping bool) {
	name := "wrap"
	if !wrapping {
		name = "unwrap"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	var keyB64, keyFile, modeName string
	var restricted bool
	fs.StringVar(&keyB64, "key", "", "wrapping key, base64")
	fs.StringVar(&keyFile, "keyfile", "", "wrapping key file (must be 0600)")
	fs.StringVar(&modeName, "mode", "des-keywrap", "wrap mode: des-keywrap|des-cbc-keywrap")
	fs.BoolVar(&restricted, "restricted", false, "refuse 56-bit single-DES keys")
	fs.StringVar(&outPath, "out", "", "output file (default: stdout)")
	fatalIf(fs.Parse(args))

	mode, err := descipher.ParseWrapMode(modeName)
	fatalIf(err)

	c := descipher.New(descipher.Config{Restricted: restricted, Logger: slog.Default()})
	key := loadKey(keyB64, keyFile, true)
	defer key.Destroy()

	in := readIn(fs)
	var out []byte
	if wrapping {
		out, err = c.WrapKey(key, mode, in)
	} else {
		out, err = c.UnwrapKey(key, mode, in)
	}
	fatalIf(err)
	fatalIf(writeOut(out))
}

func encryptDecrypt(args []string, encrypting bool) {
	name := "encrypt"
	if !encrypting {
		name = "decrypt"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	var keyB64, keyFile, modeName, codecName string
	var noPad, restricted bool
	fs.StringVar(&keyB64, "key", "", "cipher key, base64")
	fs.StringVar(&keyFile, "keyfile", "", "cipher key file (must be 0600)")
	fs.StringVar(&modeName, "mode", "cbc", "cipher mode: ecb|cbc|ofb|cfb")
	fs.StringVar(&codecName, "compress", "none", "compress plaintext first: none|zip|zlib|bzip2")
	fs.BoolVar(&noPad, "nopad", false, "disable PKCS#7 padding (block modes)")
	fs.BoolVar(&restricted, "restricted", false, "refuse 56-bit single-DES keys")
	fs.StringVar(&outPath, "out", "", "output file (default: stdout)")
	fatalIf(fs.Parse(args))

	mode, err := descipher.ParseMode(modeName)
	fatalIf(err)
	codec, err := compress.Get(codecName)
	fatalIf(err)

	c := descipher.New(descipher.Config{Restricted: restricted, Logger: slog.Default()})
	key := loadKey(keyB64, keyFile, false)
	defer key.Destroy()

	in := readIn(fs)
	// Padding only means anything for the block modes.
	pad := !noPad && (mode == descipher.ModeECB || mode == descipher.ModeCBC)
	if encrypting {
		in, err = codec.Compress(in)
		fatalIf(err)
		// Fresh IV ahead of the ciphertext; ECB has none.
		var iv []byte
		if mode != descipher.ModeECB {
			iv = random.Bytes(descipher.BlockSize)
		}
		ct, err := c.Encrypt(key, mode, iv, in, pad)
		fatalIf(err)
		fatalIf(writeOut(append(iv, ct...)))
		return
	}
	var iv []byte
	if mode != descipher.ModeECB {
		if len(in) < descipher.BlockSize {
			fatalf("ciphertext shorter than its IV")
		}
		iv, in = in[:descipher.BlockSize], in[descipher.BlockSize:]
	}
	pt, err := c.Decrypt(key, mode, iv, in, pad)
	fatalIf(err)
	pt, err = codec.Decompress(pt)
	fatalIf(err)
	fatalIf(writeOut(pt))
}
