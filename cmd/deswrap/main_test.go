package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func buildCLIBinary(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	bin := filepath.Join(tmp, "deswrap")
	if runtime.GOOS == "windows" {
		bin += ".exe"
	}
	cmd := exec.Command("go", "build", "-o", bin)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	cmd.Dir = wd
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("go build failed: %v\n%s", err, out)
	}
	return bin
}

func runCLI(t *testing.T, bin string, stdin []byte, args ...string) []byte {
	t.Helper()
	cmd := exec.Command(bin, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("%s failed: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func TestCLIEncryptDecryptRoundTrip(t *testing.T) {
	bin := buildCLIBinary(t)
	dir := t.TempDir()

	keyB64 := strings.TrimSpace(string(runCLI(t, bin, nil, "keygen", "-bits=168")))
	if keyB64 == "" {
		t.Fatal("keygen produced no key")
	}

	plain := []byte("the quick brown fox jumps over the lazy dog")
	plainPath := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(plainPath, plain, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	for _, mode := range []string{"ecb", "cbc", "ofb", "cfb"} {
		t.Run(mode, func(t *testing.T) {
			cipherPath := filepath.Join(dir, mode+".bin")
			runCLI(t, bin, nil, "encrypt", "-key", keyB64, "-mode", mode, "-compress=zlib", "-out", cipherPath, plainPath)

			got := runCLI(t, bin, nil, "decrypt", "-key", keyB64, "-mode", mode, "-compress=zlib", cipherPath)
			if !bytes.Equal(got, plain) {
				t.Fatalf("decrypt output %q, want %q", got, plain)
			}
		})
	}
}

func TestCLIKeyFile(t *testing.T) {
	bin := buildCLIBinary(t)
	dir := t.TempDir()

	keyPath := filepath.Join(dir, "kek.key")
	runCLI(t, bin, nil, "keygen", "-bits=168", "-out", keyPath)

	plain := []byte("keyfile payload")
	ct := runCLI(t, bin, plain, "encrypt", "-keyfile", keyPath)
	got := runCLI(t, bin, ct, "decrypt", "-keyfile", keyPath)
	if !bytes.Equal(got, plain) {
		t.Fatalf("decrypt output %q, want %q", got, plain)
	}

	// Group-readable key files are refused.
	if err := os.Chmod(keyPath, 0o640); err != nil {
		t.Fatalf("Chmod: %v", err)
	}
	cmd := exec.Command(bin, "encrypt", "-keyfile", keyPath)
	cmd.Stdin = bytes.NewReader(plain)
	if out, err := cmd.CombinedOutput(); err == nil {
		t.Fatalf("encrypt accepted a 0640 key file: %s", out)
	}
}

func TestCLIWrapUnwrapRoundTrip(t *testing.T) {
	bin := buildCLIBinary(t)

	kekB64 := strings.TrimSpace(string(runCLI(t, bin, nil, "keygen", "-bits=112")))
	material := bytes.Repeat([]byte{0xa5}, 24)

	for _, mode := range []string{"des-keywrap", "des-cbc-keywrap"} {
		t.Run(mode, func(t *testing.T) {
			wrapped := runCLI(t, bin, material, "wrap", "-key", kekB64, "-mode", mode)
			if len(wrapped) < len(material) {
				t.Fatalf("wrapped %d bytes into %d", len(material), len(wrapped))
			}
			got := runCLI(t, bin, wrapped, "unwrap", "-key", kekB64, "-mode", mode)
			if !bytes.Equal(got, material) {
				t.Fatalf("unwrap output %x, want %x", got, material)
			}
		})
	}
}
