package listing

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/handiism/cbr-grabber/internal/model"
)

// PageGetter retrieves a page and reports its status code. The body is
// only meaningful for 200 OK.
type PageGetter interface {
	GetPage(ctx context.Context, url string) (int, []byte, error)
}

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Fetcher retrieves a listing page after a random courtesy delay and
// returns its anchors.
//
// Example:
//
//	f := NewFetcher(client, 20, logger)
//	status, links, err := f.Fetch(ctx, settings.URL)
//	if err != nil {
//	    return err
//	}
//	if status != 200 {
//	    // report the status, download nothing
//	}
type Fetcher struct {
	client   PageGetter
	maxDelay float64
	log      *slog.Logger

	// Rand returns a number in [0, 1). Defaults to math/rand/v2.
	Rand func() float64

	// Sleep waits between picking the delay and sending the request.
	Sleep Sleeper
}

// NewFetcher creates a Fetcher that waits between 1 and maxDelay seconds
// before each request. A nil logger discards diagnostics.
func NewFetcher(client PageGetter, maxDelay float64, log *slog.Logger) *Fetcher {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Fetcher{
		client:   client,
		maxDelay: maxDelay,
		log:      log,
		Rand:     rand.Float64,
		Sleep:    sleepContext,
	}
}

// Delay picks the wait before the next request, uniformly distributed
// between 1 and maxDelay seconds.
func (f *Fetcher) Delay() time.Duration {
	seconds := 1 + (f.maxDelay-1)*f.Rand()
	return time.Duration(seconds * float64(time.Second))
}

// Fetch waits a random delay, GETs url and extracts the page's anchors.
//
// A status other than 200 is returned with no links and no error. An error
// means the wait was interrupted or the request failed.
func (f *Fetcher) Fetch(ctx context.Context, url string) (int, []model.Link, error) {
	delay := f.Delay()
	f.log.Debug("waiting before listing request", slog.Duration("delay", delay), slog.String("url", url))
	if err := f.Sleep(ctx, delay); err != nil {
		return 0, nil, err
	}

	status, body, err := f.client.GetPage(ctx, url)
	if err != nil {
		return 0, nil, err
	}
	if status != http.StatusOK {
		f.log.Debug("listing request failed", slog.Int("status", status))
		return status, nil, nil
	}

	links, err := ParseAnchors(body)
	if err != nil {
		return status, nil, err
	}
	f.log.Debug("listing parsed", slog.Int("anchors", len(links)))

	return status, links, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
