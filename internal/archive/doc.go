// Package archive packs a staging directory into a comic book archive.
//
// A .cbr file written here is a plain zip container; readers that open
// .cbz files handle it the same way.
package archive
