package download

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/handiism/cbr-grabber/internal/guard"
	"github.com/handiism/cbr-grabber/internal/model"
)

// ErrFileCollision is returned when a numbered file about to be downloaded
// already exists in the working directory.
var ErrFileCollision = errors.New("file already exists")

// CollisionError names the file that stopped a download pass. It matches
// ErrFileCollision with errors.Is.
type CollisionError struct {
	Path string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrFileCollision, e.Path)
}

func (e *CollisionError) Unwrap() error {
	return ErrFileCollision
}

// FileDownloader fetches a URL into a local file.
type FileDownloader interface {
	DownloadFile(ctx context.Context, url, destPath string) error
}

// Downloader walks the numbered tasks in order and saves the allowed ones
// into a staging directory.
//
// Downloads are strictly sequential. There is no retry: the first transport
// failure ends the pass and is returned to the caller, leaving whatever was
// already written in place.
type Downloader struct {
	client     FileDownloader
	log        *slog.Logger
	onProgress func(ProgressEvent)
}

// NewDownloader creates a Downloader. Both log and onProgress may be nil.
func NewDownloader(client FileDownloader, log *slog.Logger, onProgress func(ProgressEvent)) *Downloader {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Downloader{client: client, log: log, onProgress: onProgress}
}

// Run processes tasks in order and reports how many were downloaded and how
// many were skipped for their file type.
//
// For each task:
//   - an extension missing from allowed counts as skipped, with no request
//   - a file named task.FileName in workDir stops the pass with a
//     *CollisionError
//   - otherwise task.URL is saved as stagingDir/task.FileName
//
// The returned Report is valid even when an error is returned and holds the
// counts reached so far.
func (d *Downloader) Run(ctx context.Context, tasks []*model.Task, allowed map[string]struct{}, workDir, stagingDir string) (model.Report, error) {
	var report model.Report
	total := len(tasks)

	for i, task := range tasks {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if _, ok := allowed[task.Extension]; !ok {
			report.Skipped++
			d.progress(ProgressEvent{
				Message:   fmt.Sprintf("Skipping %s. Unsupported file type.", task.FileName),
				Level:     LevelWarning,
				Processed: i + 1,
				Total:     total,
			})
			continue
		}

		if guard.FileExists(workDir, task.FileName) {
			return report, &CollisionError{Path: filepath.Join(workDir, task.FileName)}
		}

		dest := filepath.Join(stagingDir, task.FileName)
		d.log.Debug("downloading", slog.Int("index", task.Index), slog.String("url", task.URL), slog.String("dest", dest))
		if err := d.client.DownloadFile(ctx, task.URL, dest); err != nil {
			return report, fmt.Errorf("download %s: %w", task.FileName, err)
		}

		report.Downloaded++
		d.progress(ProgressEvent{
			Message:   fmt.Sprintf("Saved: %s", task.FileName),
			Level:     LevelSuccess,
			Processed: i + 1,
			Total:     total,
		})
	}

	return report, nil
}

func (d *Downloader) progress(event ProgressEvent) {
	if d.onProgress != nil {
		d.onProgress(event)
	}
}
