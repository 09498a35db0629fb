// Package listing turns a directory listing page into numbered download
// tasks.
//
// The package handles three steps:
//
//  1. Fetching the listing page after a random courtesy delay (Fetcher)
//  2. Extracting every anchor's text and href (ParseAnchors)
//  3. Filtering anchors by text and numbering them (Select, AssignNumbers)
//
// # Example
//
//	f := listing.NewFetcher(client, settings.MaxSleepInterval, logger)
//	status, links, err := f.Fetch(ctx, settings.URL)
//	if err != nil || status != 200 {
//	    // handle
//	}
//
//	selected := listing.Select(links, settings.PositiveCheckText, settings.NegativeCheckText)
//	tasks := listing.AssignNumbers(selected, settings.URL, settings.NumDigits)
//	for _, task := range tasks {
//	    fmt.Println(task.FileName, task.URL) // "001.png https://.../1.png"
//	}
package listing
