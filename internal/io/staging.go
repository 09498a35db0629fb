package ioutils

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"
)

// StagingTimeLayout is the timestamp part of a staging directory name.
const StagingTimeLayout = "20060102150405"

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Namer produces staging directory names of the form
// {YYYYMMDDHHMMSS}_{5 ASCII letters}.
//
// Both sources can be replaced to make names predictable.
type Namer struct {
	// Now returns the local time used for the timestamp.
	Now func() time.Time

	// Letters returns n random ASCII letters.
	Letters func(n int) string
}

// NewNamer returns a Namer backed by the wall clock and math/rand/v2.
func NewNamer() Namer {
	return Namer{Now: time.Now, Letters: RandomLetters}
}

// Name returns a fresh staging directory name.
func (n Namer) Name() string {
	now, pick := n.Now, n.Letters
	if now == nil {
		now = time.Now
	}
	if pick == nil {
		pick = RandomLetters
	}
	return fmt.Sprintf("%s_%s", now().Format(StagingTimeLayout), pick(5))
}

// RandomLetters returns n letters drawn uniformly from a-z and A-Z.
func RandomLetters(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.IntN(len(letters))]
	}
	return string(b)
}

// CreateStaging creates a new staging directory inside dir and returns its
// path. It fails if a directory with the generated name already exists.
//
// Example:
//
//	staging, err := CreateStaging(".", NewNamer())
//	// staging = "20250811143005_QwErT"
func CreateStaging(dir string, namer Namer) (string, error) {
	path := filepath.Join(dir, namer.Name())
	if err := os.Mkdir(path, 0755); err != nil {
		return "", fmt.Errorf("create staging directory: %w", err)
	}
	return path, nil
}
