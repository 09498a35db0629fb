package ioutils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/comics/output")
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// Finish disposes of the staging directory once a run is over.
//
// With remove set, the directory and everything below it is deleted and
// removed reports whether anything was there to delete. A directory that
// is already gone is not an error, so Finish can be called twice.
//
// Without remove, the directory is left alone and removed is false; the
// caller is expected to tell the user where the files are.
//
// Example:
//
//	removed, err := Finish(stagingDir, settings.DeleteTempFolder)
//	if err == nil && !removed {
//	    fmt.Printf("temporary files kept in %s\n", stagingDir)
//	}
func Finish(stagingDir string, remove bool) (bool, error) {
	if !remove {
		return false, nil
	}

	if _, err := os.Stat(stagingDir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	if err := os.RemoveAll(stagingDir); err != nil {
		return false, fmt.Errorf("remove staging directory %s: %w", stagingDir, err)
	}
	return true, nil
}
