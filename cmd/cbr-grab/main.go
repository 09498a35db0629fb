// Package main provides the entry point for the cbr-grab CLI.
//
// cbr-grab fetches a directory listing page, keeps the links whose text
// matches the configured filters, downloads them as numbered files and
// packs them into a single .cbr archive.
//
// Usage:
//
//	cbr-grab                  # run with ./settings.ini
//	cbr-grab --dry-run        # list the numbered files only
//	cbr-grab init             # write a default settings.ini
//
// See --help for all available options.
package main

func main() {
	Execute()
}
