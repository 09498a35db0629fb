// Package http provides the HTTP client used for the listing page and the
// file downloads.
//
// The Client in this package handles:
//   - A fixed desktop-browser User-Agent header
//   - Listing retrieval that surfaces the status code
//   - File downloads streamed to disk
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	// Fetch the listing page
//	status, body, err := client.GetPage(ctx, "https://example.com/pages/")
//	if status != 200 {
//	    // report and stop
//	}
//
//	// Download one file
//	err = client.DownloadFile(ctx, "https://example.com/pages/1.png", "/stage/001.png")
package http
