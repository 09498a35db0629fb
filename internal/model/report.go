package model

// Report holds the counters produced by one pass of the downloader.
type Report struct {
	// Downloaded is the number of files written to the staging directory.
	Downloaded int

	// Skipped is the number of tasks rejected because of their file type.
	Skipped int
}

// Outcome tells how a run ended.
type Outcome int

const (
	// OutcomeCompleted means every task was processed. The archive exists
	// only if at least one file was downloaded.
	OutcomeCompleted Outcome = iota

	// OutcomeCollision means the pre-flight guard found an existing archive
	// or numbered file. Nothing was fetched or written.
	OutcomeCollision

	// OutcomeFetchFailed means the listing page did not answer 200 OK.
	OutcomeFetchFailed

	// OutcomeAborted means a numbered file appeared in the working directory
	// during the download loop. The staging directory is left as is.
	OutcomeAborted

	// OutcomeDryRun means tasks were computed but nothing was downloaded.
	OutcomeDryRun
)

// String returns a short lowercase name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeCollision:
		return "collision"
	case OutcomeFetchFailed:
		return "fetch failed"
	case OutcomeAborted:
		return "aborted"
	case OutcomeDryRun:
		return "dry run"
	default:
		return "unknown"
	}
}

// Summary is the result of a whole run, assembled by the download manager.
type Summary struct {
	Outcome Outcome

	// Matched is the number of links left after filtering, i.e. the number
	// of files to be downloaded.
	Matched int

	// Skipped and Downloaded mirror the downloader's Report.
	Skipped    int
	Downloaded int

	// StatusCode is the HTTP status of the listing page, 0 if never fetched.
	StatusCode int

	// CollisionPath names the file that stopped the run, if any.
	CollisionPath string

	// StagingDir is the staging directory of this run, if one was created.
	StagingDir string

	// ArchivePath is the path of the written archive, empty if none.
	ArchivePath string

	// Tasks lists every numbered task in order.
	Tasks []*Task
}
