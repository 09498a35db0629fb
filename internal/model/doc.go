// Package model defines the core data structures used throughout
// the cbr-grabber application.
//
// # Link
//
// Link is an anchor extracted from the listing page:
//
//	link := model.Link{Text: "en_page1", Href: "1.png"}
//
// # Task
//
// Task is a filtered link with its sequence number and target file name:
//
//	task := model.NewTask(1, link, "https://example.com/low-res/", 3)
//	fmt.Println(task.FileName) // "001.png"
//	fmt.Println(task.URL)      // "https://example.com/low-res/1.png"
//
// # Report and Summary
//
// Report carries the downloader's counters; Summary is what a whole run
// returns, including its Outcome.
package model
