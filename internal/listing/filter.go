package listing

import (
	"strings"

	"github.com/handiism/cbr-grabber/internal/model"
)

// Select keeps the links whose trimmed text contains include and does not
// contain exclude. An empty exclude never rejects a link. Order is
// preserved.
func Select(links []model.Link, include, exclude string) []model.Link {
	selected := make([]model.Link, 0, len(links))
	for _, link := range links {
		text := strings.TrimSpace(link.Text)
		if !strings.Contains(text, include) {
			continue
		}
		if exclude != "" && strings.Contains(text, exclude) {
			continue
		}
		selected = append(selected, link)
	}
	return selected
}

// AssignNumbers turns the selected links into tasks numbered 1..N in
// order, with file names zero-padded to digits.
//
// Numbering happens before any type check, so every link gets an index
// whether or not it is downloaded later.
func AssignNumbers(links []model.Link, baseURL string, digits int) []*model.Task {
	tasks := make([]*model.Task, 0, len(links))
	for i, link := range links {
		tasks = append(tasks, model.NewTask(i+1, link, baseURL, digits))
	}
	return tasks
}
