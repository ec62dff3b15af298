// Package perm checks filesystem permissions on key material files.
package perm

import (
	"os"

	"github.com/pkg/errors"
)

// Check0600 verifies file permissions are -rw-------
func Check0600(path string) error {
	st, err := os.Stat(path)
	if err != nil {
		return err
	}
	mode := st.Mode().Perm()
	if mode != 0o600 {
		return errors.Errorf("key file %s permissions %o (want 0600)", path, mode)
	}
	return nil
}
