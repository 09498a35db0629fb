package listing

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/handiism/cbr-grabber/internal/model"
)

// ParseAnchors extracts every anchor element from an HTML listing page.
//
// Links are returned in document order. Text is the anchor's full visible
// text (all descendant text nodes, untrimmed). Anchors without an href
// attribute are left out; an empty href="" is kept.
//
// Malformed markup is handled the way the HTML5 parser recovers from it, so
// an error is only returned if the body cannot be read at all.
//
// Example:
//
//	links, err := ParseAnchors([]byte(`<a href="1.png">en_page1</a>`))
//	// links = []model.Link{{Text: "en_page1", Href: "1.png"}}
func ParseAnchors(body []byte) ([]model.Link, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not parse listing page: %w", err)
	}

	links := make([]model.Link, 0)
	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		links = append(links, model.Link{Text: s.Text(), Href: href})
	})

	return links, nil
}
