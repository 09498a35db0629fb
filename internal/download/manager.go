package download

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/handiism/cbr-grabber/internal/archive"
	"github.com/handiism/cbr-grabber/internal/config"
	"github.com/handiism/cbr-grabber/internal/guard"
	grabhttp "github.com/handiism/cbr-grabber/internal/http"
	ioutils "github.com/handiism/cbr-grabber/internal/io"
	"github.com/handiism/cbr-grabber/internal/listing"
	"github.com/handiism/cbr-grabber/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a run progress update.
//
// Processed and Total are set by events emitted from the download loop and
// are zero otherwise.
type ProgressEvent struct {
	Message   string
	Level     ProgressLevel
	Processed int
	Total     int
}

// Client is what the Manager needs from the HTTP layer.
type Client interface {
	listing.PageGetter
	FileDownloader
}

// Option configures a Manager.
type Option func(*Manager)

// WithWorkDir sets the directory that receives the staging directory and
// the archive. Defaults to the current directory.
func WithWorkDir(dir string) Option {
	return func(m *Manager) {
		m.workDir = dir
	}
}

// WithDryRun stops the run after numbering: nothing is downloaded or
// written.
func WithDryRun(dryRun bool) Option {
	return func(m *Manager) {
		m.dryRun = dryRun
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// WithClient replaces the HTTP client.
func WithClient(c Client) Option {
	return func(m *Manager) {
		m.client = c
	}
}

// WithNamer replaces the staging directory namer.
func WithNamer(n ioutils.Namer) Option {
	return func(m *Manager) {
		m.namer = n
	}
}

// WithSleeper replaces the wait before the listing request.
func WithSleeper(s listing.Sleeper) Option {
	return func(m *Manager) {
		m.sleep = s
	}
}

// Manager coordinates a single run: pre-flight check, listing fetch,
// filtering, download, packing and cleanup.
type Manager struct {
	settings *config.Settings
	client   Client
	namer    ioutils.Namer
	sleep    listing.Sleeper
	log      *slog.Logger
	workDir  string
	dryRun   bool

	onProgress func(ProgressEvent)
}

// NewManager creates a new download Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent), opts ...Option) *Manager {
	m := &Manager{
		settings:   settings,
		client:     grabhttp.NewClient(),
		namer:      ioutils.NewNamer(),
		workDir:    ".",
		onProgress: onProgress,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = slog.New(slog.DiscardHandler)
	}
	return m
}

// Run performs the whole run and returns its summary.
//
// A pre-flight collision, a listing page that does not answer 200 OK and a
// numbered file appearing mid-run are not errors: they are reported through
// the progress callback and the summary's Outcome. An error is returned for
// transport and file system failures and for context cancellation; the
// staging directory, if created, is then left in place.
func (m *Manager) Run(ctx context.Context) (model.Summary, error) {
	s := m.settings
	summary := model.Summary{Outcome: model.OutcomeCompleted}

	res := guard.Check(m.workDir, s.ZipFileName, s.NumDigits)
	if res.Blocked() {
		m.log.Debug("pre-flight check failed", slog.String("path", res.Path))
		m.progress(ProgressEvent{Message: fmt.Sprintf("The file '%s' already exists. Exiting the program.", res.Path), Level: LevelWarning})
		summary.Outcome = model.OutcomeCollision
		summary.CollisionPath = res.Path
		return summary, nil
	}

	fetcher := listing.NewFetcher(m.client, s.MaxSleepInterval, m.log)
	if m.sleep != nil {
		fetcher.Sleep = m.sleep
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching %s", s.URL), Level: LevelVerbose})
	status, links, err := fetcher.Fetch(ctx, s.URL)
	summary.StatusCode = status
	if err != nil {
		return summary, fmt.Errorf("fetch listing: %w", err)
	}
	if status != http.StatusOK {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Unable to fetch the page. Status code: %d", status), Level: LevelError})
		summary.Outcome = model.OutcomeFetchFailed
		return summary, nil
	}

	selected := listing.Select(links, s.PositiveCheckText, s.NegativeCheckText)
	tasks := listing.AssignNumbers(selected, s.URL, s.NumDigits)
	summary.Matched = len(tasks)
	summary.Tasks = tasks
	m.log.Debug("links filtered", slog.Int("anchors", len(links)), slog.Int("matched", len(tasks)))

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Saving links with '%s' text and without '%s' text:", s.PositiveCheckText, s.NegativeCheckText),
		Level:   LevelInfo,
	})

	allowed := s.AllowedSet()

	if m.dryRun {
		for _, task := range tasks {
			level := LevelInfo
			note := ""
			if _, ok := allowed[task.Extension]; !ok {
				level = LevelWarning
				note = " (unsupported file type)"
				summary.Skipped++
			}
			m.progress(ProgressEvent{Message: fmt.Sprintf("%s <- %s%s", task.FileName, task.URL, note), Level: level})
		}
		summary.Outcome = model.OutcomeDryRun
		return summary, nil
	}

	if err := ioutils.EnsureDir(m.workDir); err != nil {
		return summary, err
	}
	staging, err := ioutils.CreateStaging(m.workDir, m.namer)
	if err != nil {
		return summary, err
	}
	summary.StagingDir = staging
	m.log.Debug("staging directory created", slog.String("path", staging))

	downloader := NewDownloader(m.client, m.log, m.onProgress)
	report, err := downloader.Run(ctx, tasks, allowed, m.workDir, staging)
	summary.Downloaded = report.Downloaded
	summary.Skipped = report.Skipped
	var collision *CollisionError
	if errors.As(err, &collision) {
		m.progress(ProgressEvent{Message: fmt.Sprintf("The file '%s' already exists. Exiting the program.", collision.Path), Level: LevelWarning})
		summary.Outcome = model.OutcomeAborted
		summary.CollisionPath = collision.Path
		return summary, nil
	}
	if err != nil {
		return summary, err
	}

	if report.Downloaded > 0 {
		dest := filepath.Join(m.workDir, s.ArchiveName())
		n, err := archive.Pack(staging, dest)
		if err != nil {
			return summary, err
		}
		summary.ArchivePath = dest
		m.log.Debug("archive written", slog.String("path", dest), slog.Int("entries", n))
		m.progress(ProgressEvent{Message: fmt.Sprintf("Zipped files into: %s", dest), Level: LevelSuccess})
	}

	removed, err := ioutils.Finish(staging, s.DeleteTempFolder)
	if err != nil {
		return summary, err
	}
	if removed {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Deleted temporary folder: %s", staging), Level: LevelInfo})
	} else if !s.DeleteTempFolder {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Temporary folder '%s' was not deleted. Please check its contents.", staging), Level: LevelWarning})
	}

	return summary, nil
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
