package guard

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/handiism/cbr-grabber/internal/archive"
)

// SweptExtensions are the file types the pre-flight sweep looks for. The
// sweep ignores the configured allowed types.
var SweptExtensions = []string{"jpeg", "png"}

// Status tells whether a run may proceed.
type Status int

const (
	// Clear means nothing in the working directory would be overwritten.
	Clear Status = iota
	// Collision means a numbered file or the archive already exists.
	Collision
)

func (s Status) String() string {
	switch s {
	case Clear:
		return "clear"
	case Collision:
		return "collision"
	default:
		return "unknown"
	}
}

// Result is the outcome of a pre-flight Check.
type Result struct {
	Status Status

	// Path is the existing file that blocks the run. Empty when Clear.
	Path string
}

// Blocked reports whether the run must stop.
func (r Result) Blocked() bool {
	return r.Status == Collision
}

// Check looks for files a run would collide with.
//
// The archive {archiveBase}.cbr is checked first. Then every regular file
// named i zero-padded to digits followed by .jpeg or .png, for i from 1 to
// 10^digits-1, counts as a collision. When several exist, the one with the
// lowest i wins, jpeg before png.
//
// Check never modifies the directory. A directory that cannot be read is
// treated as empty.
//
// Example:
//
//	res := guard.Check(".", "Pepper_and_Carrot", 3)
//	if res.Blocked() {
//	    fmt.Printf("%s already exists\n", res.Path)
//	}
func Check(dir, archiveBase string, digits int) Result {
	archiveName := archiveBase + archive.Extension
	if FileExists(dir, archiveName) {
		return Result{Status: Collision, Path: filepath.Join(dir, archiveName)}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Result{Status: Clear}
	}

	best, bestRank := "", -1
	for _, entry := range entries {
		rank, ok := sweepRank(entry.Name(), digits)
		if !ok || !FileExists(dir, entry.Name()) {
			continue
		}
		if bestRank < 0 || rank < bestRank {
			best, bestRank = entry.Name(), rank
		}
	}

	if bestRank < 0 {
		return Result{Status: Clear}
	}
	return Result{Status: Collision, Path: filepath.Join(dir, best)}
}

// FileExists reports whether dir/name is an existing regular file.
func FileExists(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// sweepRank returns the ordering position of a numbered file name, or false
// when the name is not one the sweep looks for.
func sweepRank(name string, digits int) (int, bool) {
	stem, ext, found := strings.Cut(name, ".")
	if !found || len(stem) != digits {
		return 0, false
	}

	extRank := -1
	for i, swept := range SweptExtensions {
		if ext == swept {
			extRank = i
			break
		}
	}
	if extRank < 0 {
		return 0, false
	}

	for _, r := range stem {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(stem)
	if err != nil || n < 1 {
		return 0, false
	}

	return n*len(SweptExtensions) + extRank, true
}

// String renders the result for log output.
func (r Result) String() string {
	if r.Path == "" {
		return r.Status.String()
	}
	return fmt.Sprintf("%s: %s", r.Status, r.Path)
}
