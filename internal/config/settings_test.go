package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validINI = `[Settings]
url = https://example.com/pages/
positive_check_text = en_
negative_check_text = draft
num_digits = 2
zip_filename = Comic
allowed_file_types = JPEG ,png, webp
max_sleep_interval = 2.5
delete_temp_folder = false
`

func TestParse_Valid(t *testing.T) {
	s, err := Parse([]byte(validINI))
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/pages/", s.URL)
	assert.Equal(t, "en_", s.PositiveCheckText)
	assert.Equal(t, "draft", s.NegativeCheckText)
	assert.Equal(t, 2, s.NumDigits)
	assert.Equal(t, "Comic", s.ZipFileName)
	assert.Equal(t, []string{"jpeg", "png", "webp"}, s.AllowedFileTypes)
	assert.InDelta(t, 2.5, s.MaxSleepInterval, 1e-9)
	assert.False(t, s.DeleteTempFolder)
	assert.Equal(t, "Comic.cbr", s.ArchiveName())
}

func TestParse_Booleans(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"True", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{"1", true},
		{"False", false},
		{"no", false},
		{"Off", false},
		{"0", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			data := withValue(t, KeyDeleteTempFolder, tt.value)
			s, err := Parse(data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.DeleteTempFolder)
		})
	}
}

func TestParse_FormatErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		key  string
	}{
		{"num_digits not a number", withValue(t, KeyNumDigits, "three"), KeyNumDigits},
		{"max_sleep_interval not a number", withValue(t, KeyMaxSleepInterval, "soon"), KeyMaxSleepInterval},
		{"delete_temp_folder not a boolean", withValue(t, KeyDeleteTempFolder, "maybe"), KeyDeleteTempFolder},
		{"missing key", []byte("[Settings]\nurl = https://example.com/\n"), KeyPositiveCheckText},
		{"missing section", []byte("[Other]\nurl = https://example.com/\n"), "[Settings]"},
		{"line without delimiter", []byte("[Settings]\ngarbage line\n"), "[Settings]"},
		{"unclosed section header", []byte("[Settings\nurl = x"), "[Settings]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			require.Error(t, err)

			var fe *FormatError
			require.True(t, errors.As(err, &fe), "expected *FormatError, got %T", err)
			assert.Equal(t, tt.key, fe.Key)
		})
	}
}

func TestParse_MalformedMessage(t *testing.T) {
	_, err := Parse([]byte("[Settings]\ngarbage line\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed file")
	assert.NotErrorIs(t, err, ErrMissingKey)
}

func TestParse_KeepsSurroundingQuotes(t *testing.T) {
	tests := []struct {
		key   string
		value string
		get   func(*Settings) string
	}{
		{KeyURL, `"http://a/"`, func(s *Settings) string { return s.URL }},
		{KeyPositiveCheckText, `"en_"`, func(s *Settings) string { return s.PositiveCheckText }},
		{KeyNegativeCheckText, `'draft'`, func(s *Settings) string { return s.NegativeCheckText }},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			s, err := Parse(withValue(t, tt.key, tt.value))
			require.NoError(t, err)
			assert.Equal(t, tt.value, tt.get(s))
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), DefaultFileName))
	assert.ErrorIs(t, err, ErrConfigMissing)
}

func TestLoadOrCreate_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	s, created, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, DefaultSettings(), s)

	_, err = os.Stat(path)
	require.NoError(t, err, "defaults should be persisted")

	// Second call reads the file written by the first.
	s, created, err = LoadOrCreate(path)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadOrCreate_KeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(validINI), 0o644))

	s, created, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Comic", s.ZipFileName)
}

func TestLoadOrCreate_FormatErrorSurfaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, withValue(t, KeyNumDigits, "x"), 0o644))

	_, _, err := LoadOrCreate(path)
	var fe *FormatError
	assert.ErrorAs(t, err, &fe)
}

func TestSettings_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.ini")
	want := &Settings{
		URL:               "https://example.com/a/",
		PositiveCheckText: "fr_",
		NegativeCheckText: "thumb",
		NumDigits:         4,
		ZipFileName:       "Other",
		AllowedFileTypes:  []string{"png"},
		MaxSleepInterval:  1.5,
		DeleteTempFolder:  false,
	}
	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettings_AllowedSet(t *testing.T) {
	set := DefaultSettings().AllowedSet()
	assert.Len(t, set, 2)
	assert.Contains(t, set, "jpeg")
	assert.Contains(t, set, "png")
}

// withValue returns a complete settings file with key set to value.
func withValue(t *testing.T, key, value string) []byte {
	t.Helper()

	values := map[string]string{
		KeyURL:               "https://example.com/pages/",
		KeyPositiveCheckText: "en_",
		KeyNegativeCheckText: "",
		KeyNumDigits:         "3",
		KeyZipFileName:       "Comic",
		KeyAllowedFileTypes:  "jpeg, png",
		KeyMaxSleepInterval:  "20",
		KeyDeleteTempFolder:  "True",
	}
	require.Contains(t, values, key)
	values[key] = value

	var b strings.Builder
	b.WriteString("[Settings]\n")
	for k, v := range values {
		fmt.Fprintf(&b, "%s = %s\n", k, v)
	}
	return []byte(b.String())
}
