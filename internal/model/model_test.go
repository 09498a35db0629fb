package model

import (
	"fmt"
	"testing"
)

func TestNumberedFileName(t *testing.T) {
	tests := []struct {
		index  int
		digits int
		ext    string
		want   string
	}{
		{1, 3, "png", "001.png"},
		{42, 3, "png", "042.png"},
		{12, 2, "jpeg", "12.jpeg"},
		{7, 1, "gif", "7.gif"},
		{1234, 3, "png", "1234.png"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := NumberedFileName(tt.index, tt.digits, tt.ext); got != tt.want {
				t.Errorf("NumberedFileName(%d, %d, %q) = %q, want %q", tt.index, tt.digits, tt.ext, got, tt.want)
			}
		})
	}
}

func TestNewTask(t *testing.T) {
	tests := []struct {
		name     string
		href     string
		wantFile string
		wantExt  string
		wantURL  string
	}{
		{"simple png", "1.png", "003.png", "png", "https://example.com/dir/1.png"},
		{"upper case extension", "Cover.JPEG", "003.JPEG", "jpeg", "https://example.com/dir/Cover.JPEG"},
		{"several dots", "en_Pepper.and.Carrot.png", "003.png", "png", "https://example.com/dir/en_Pepper.and.Carrot.png"},
		{"no dot", "readme", "003.readme", "readme", "https://example.com/dir/readme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := NewTask(3, Link{Text: "x", Href: tt.href}, "https://example.com/dir/", 3)

			if task.Index != 3 {
				t.Errorf("Index = %d, want 3", task.Index)
			}
			if task.FileName != tt.wantFile {
				t.Errorf("FileName = %q, want %q", task.FileName, tt.wantFile)
			}
			if task.Extension != tt.wantExt {
				t.Errorf("Extension = %q, want %q", task.Extension, tt.wantExt)
			}
			if task.URL != tt.wantURL {
				t.Errorf("URL = %q, want %q", task.URL, tt.wantURL)
			}
		})
	}
}

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeCompleted, "completed"},
		{OutcomeCollision, "collision"},
		{OutcomeFetchFailed, "fetch failed"},
		{OutcomeAborted, "aborted"},
		{OutcomeDryRun, "dry run"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(int(tt.outcome)), func(t *testing.T) {
			if got := tt.outcome.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
