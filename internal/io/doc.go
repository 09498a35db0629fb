// Package ioutils provides file system utilities for cbr-grabber.
//
// This package contains functions for:
//   - Directory creation
//   - Staging directory naming and creation
//   - Staging directory cleanup
//
// # Staging Directories
//
// Downloads land in a per-run directory named after the current time plus
// five random letters, so two runs never share one:
//
//	staging, err := ioutils.CreateStaging(workDir, ioutils.NewNamer())
//	// ... download into staging, pack the archive ...
//	removed, err := ioutils.Finish(staging, settings.DeleteTempFolder)
//
// Tests pin the name by replacing the sources:
//
//	namer := ioutils.Namer{
//	    Now:     func() time.Time { return time.Date(2025, 8, 11, 14, 30, 5, 0, time.Local) },
//	    Letters: func(n int) string { return strings.Repeat("a", n) },
//	}
//	// namer.Name() == "20250811143005_aaaaa"
package ioutils
