package model

import (
	"fmt"
	"strings"
)

// Link is a single anchor taken from a listing page.
//
// Text is the anchor's visible text exactly as found in the document; it is
// trimmed only when compared against the inclusion and exclusion texts.
// Href is the raw href attribute, relative or absolute.
type Link struct {
	// Text is the visible text of the anchor element.
	Text string

	// Href is the value of the href attribute.
	Href string
}

// Task represents one filtered link paired with its sequence number.
//
// Every link that survives filtering receives a Task, including links whose
// file type is later rejected. A rejected task keeps its index, so the
// numbered files written to disk can have gaps while the indices never do.
//
// Example:
//
//	link := Link{Text: "en_page2", Href: "2.jpeg"}
//	task := NewTask(2, link, "https://example.com/pages/", 3)
//	// task.FileName  = "002.jpeg"
//	// task.URL       = "https://example.com/pages/2.jpeg"
//	// task.Extension = "jpeg"
type Task struct {
	// Link is the anchor this task was built from.
	Link Link

	// Index is the 1-based position of the link among the filtered links.
	Index int

	// FileName is the zero-padded index followed by "." and the extension
	// taken from the href, case preserved.
	FileName string

	// URL is the base URL concatenated with the href.
	URL string

	// Extension is the lowercased extension used for type checks.
	Extension string
}

// NewTask creates a Task with its file name and download URL computed.
//
// The URL is a plain concatenation of baseURL and the href; no URL
// resolution takes place. The extension is everything after the last "."
// in the href, or the whole href when it has no dot.
func NewTask(index int, link Link, baseURL string, digits int) *Task {
	ext := extensionOf(link.Href)

	return &Task{
		Link:      link,
		Index:     index,
		FileName:  NumberedFileName(index, digits, ext),
		URL:       baseURL + link.Href,
		Extension: strings.ToLower(ext),
	}
}

// NumberedFileName renders index left-zero-padded to digits, followed by
// "." and ext.
//
//	NumberedFileName(7, 3, "png")  // "007.png"
//	NumberedFileName(12, 2, "gif") // "12.gif"
func NumberedFileName(index, digits int, ext string) string {
	return fmt.Sprintf("%0*d.%s", digits, index, ext)
}

func extensionOf(href string) string {
	if i := strings.LastIndex(href, "."); i >= 0 {
		return href[i+1:]
	}
	return href
}
