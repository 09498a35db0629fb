// Package download provides the run orchestration for cbr-grabber.
//
// # Manager
//
// The Manager coordinates the entire run:
//
//  1. Check the working directory for an existing archive or numbered files
//  2. Wait a random delay and fetch the listing page
//  3. Filter anchors by text and number them
//  4. Download allowed files into a fresh staging directory
//  5. Pack the staging directory into {zip_filename}.cbr
//  6. Remove the staging directory (optional)
//
// # Basic Usage
//
//	manager := download.NewManager(settings, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	}, download.WithWorkDir("."))
//
//	summary, err := manager.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(summary.Matched, summary.Skipped, summary.Downloaded)
//
// # Concurrency
//
// Everything runs sequentially on the calling goroutine. The only pause is
// the random delay before the listing request.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message   string
//	    Level     ProgressLevel // Info, Verbose, Warning, Error, Success
//	    Processed int           // tasks handled so far, download loop only
//	    Total     int
//	}
//
// # Failures
//
// There is no retry. A collision or a failed listing request ends the run
// with the matching model.Outcome; a transport error is returned as is.
package download
