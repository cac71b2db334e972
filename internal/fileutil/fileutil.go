// Package fileutil provides the file and path helpers of the site builder.
package fileutil

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrUnsafeDirectory        = errors.New("refusing to remove directory")
)

// ValidateExtension checks that extension, without its dot, is safe to
// append to a file name.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// ChangeExtension replaces the extension of path with extension (no dot).
func ChangeExtension(path, extension string) (string, error) {
	if err := ValidateExtension(extension); err != nil {
		return "", err
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + extension, nil
}

// HasExtension reports whether path ends in .extension, ignoring case.
func HasExtension(path, extension string) bool {
	return strings.EqualFold(filepath.Ext(path), "."+extension)
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a
// name: "./custom.css" and "sub/dir" are paths, "my-style" is a name.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// ResetDir removes dir and everything below it, then recreates it empty.
// The filesystem root, the working directory and the home directory are
// refused.
func ResetDir(dir string) error {
	if err := checkRemovable(dir); err != nil {
		return err
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}

func checkRemovable(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsafeDirectory, err)
	}
	if abs == filepath.Dir(abs) {
		return fmt.Errorf("%w: %s is a filesystem root", ErrUnsafeDirectory, abs)
	}
	if wd, err := os.Getwd(); err == nil && abs == wd {
		return fmt.Errorf("%w: %s is the working directory", ErrUnsafeDirectory, abs)
	}
	if home, err := os.UserHomeDir(); err == nil && abs == filepath.Clean(home) {
		return fmt.Errorf("%w: %s is the home directory", ErrUnsafeDirectory, abs)
	}
	return nil
}

// CopyStats counts what CopyTree copied.
type CopyStats struct {
	Files int
	Bytes int64
}

// CopyTree copies the regular files below src into dst, keeping their
// relative paths. A missing src copies nothing. Symlinks are skipped.
func CopyTree(src, dst string) (CopyStats, error) {
	var stats CopyStats

	if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
		return stats, nil
	}

	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			return os.MkdirAll(target, 0o750)
		case !d.Type().IsRegular():
			return nil
		}

		n, err := copyFile(path, target)
		if err != nil {
			return err
		}
		stats.Files++
		stats.Bytes += n
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return stats, nil
}

func copyFile(src, dst string) (n int64, err error) {
	in, err := os.Open(src) // #nosec G304 -- walked from the static directory
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst) // #nosec G304 -- below the public directory
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	return io.Copy(out, in)
}

// Fingerprint returns the hex BLAKE3-256 digest of data.
func Fingerprint(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// WriteFileIfChanged writes data to path unless the file already holds the
// same bytes, creating parent directories as needed. It reports whether it
// wrote.
func WriteFileIfChanged(path string, data []byte, perm fs.FileMode) (bool, error) {
	existing, err := os.ReadFile(path) // #nosec G304 -- output path built by the caller
	if err == nil && len(existing) == len(data) && sameDigest(existing, data) {
		return false, nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return false, fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

func sameDigest(a, b []byte) bool {
	da, db := blake3.Sum256(a), blake3.Sum256(b)
	return bytes.Equal(da[:], db[:])
}
