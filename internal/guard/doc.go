// Package guard implements the pre-flight check that keeps a run from
// overwriting earlier output.
//
// Before any network request the working directory is inspected for the
// target archive and for top-level numbered image files such as 001.png.
// If one is found the run stops and the caller reports the path.
package guard
