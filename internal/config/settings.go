package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/handiism/cbr-grabber/internal/archive"
	"gopkg.in/ini.v1"
)

// DefaultFileName is the settings file looked up in the working directory.
const DefaultFileName = "settings.ini"

// SectionName is the INI section holding every key.
const SectionName = "Settings"

// Keys of the Settings section.
const (
	KeyURL               = "url"
	KeyPositiveCheckText = "positive_check_text"
	KeyNegativeCheckText = "negative_check_text"
	KeyNumDigits         = "num_digits"
	KeyZipFileName       = "zip_filename"
	KeyAllowedFileTypes  = "allowed_file_types"
	KeyMaxSleepInterval  = "max_sleep_interval"
	KeyDeleteTempFolder  = "delete_temp_folder"
)

// Settings holds all configuration options.
type Settings struct {
	// URL is the listing page. Hrefs are appended to it verbatim, so it
	// normally ends with a slash.
	URL string

	// PositiveCheckText must appear in a link's text for it to be kept.
	PositiveCheckText string

	// NegativeCheckText must not appear in a link's text. Empty disables
	// the check.
	NegativeCheckText string

	// NumDigits is the zero-padded width of numbered file names.
	NumDigits int

	// ZipFileName is the archive base name; ".cbr" is appended.
	ZipFileName string

	// AllowedFileTypes lists lowercase extensions without the leading dot.
	AllowedFileTypes []string

	// MaxSleepInterval is the upper bound, in seconds, of the random delay
	// before the listing page is fetched.
	MaxSleepInterval float64

	// DeleteTempFolder removes the staging directory after archiving.
	DeleteTempFolder bool
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		URL:               "https://www.peppercarrot.com/0_sources/ep01_Potion-of-Flight/low-res/",
		PositiveCheckText: "en_",
		NegativeCheckText: "",
		NumDigits:         3,
		ZipFileName:       "Pepper_and_Carrot",
		AllowedFileTypes:  []string{"jpeg", "png"},
		MaxSleepInterval:  20,
		DeleteTempFolder:  true,
	}
}

// ArchiveName returns the archive file name, ZipFileName plus archive.Extension.
func (s *Settings) ArchiveName() string {
	return s.ZipFileName + archive.Extension
}

// AllowedSet returns AllowedFileTypes as a lookup set.
func (s *Settings) AllowedSet() map[string]struct{} {
	set := make(map[string]struct{}, len(s.AllowedFileTypes))
	for _, ext := range s.AllowedFileTypes {
		set[strings.ToLower(ext)] = struct{}{}
	}
	return set
}

var loadOptions = ini.LoadOptions{
	InsensitiveKeys:         true,
	IgnoreInlineComment:     true,
	PreserveSurroundedQuote: true,
}

// Load reads settings from an INI file.
//
// Returns ErrConfigMissing if the file does not exist and a *FormatError
// if a key is missing or holds a value of the wrong type.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigMissing
		}
		return nil, err
	}

	return Parse(data)
}

// Parse reads settings from INI content.
func Parse(data []byte) (*Settings, error) {
	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, &FormatError{Key: "[" + SectionName + "]", Err: err}
	}

	sec, err := file.GetSection(SectionName)
	if err != nil {
		return nil, &FormatError{Key: "[" + SectionName + "]", Err: ErrMissingKey}
	}

	r := sectionReader{sec: sec}
	s := &Settings{
		URL:               r.str(KeyURL),
		PositiveCheckText: r.str(KeyPositiveCheckText),
		NegativeCheckText: r.str(KeyNegativeCheckText),
		NumDigits:         r.integer(KeyNumDigits),
		ZipFileName:       r.str(KeyZipFileName),
		AllowedFileTypes:  r.list(KeyAllowedFileTypes),
		MaxSleepInterval:  r.float(KeyMaxSleepInterval),
		DeleteTempFolder:  r.boolean(KeyDeleteTempFolder),
	}
	if r.err != nil {
		return nil, r.err
	}

	return s, nil
}

// LoadOrCreate loads settings from path, writing the defaults first if the
// file does not exist. The returned bool reports whether defaults were
// written.
func LoadOrCreate(path string) (*Settings, bool, error) {
	s, err := Load(path)
	if err == nil {
		return s, false, nil
	}
	if !errors.Is(err, ErrConfigMissing) {
		return nil, false, err
	}

	if err := WriteDefaults(path); err != nil {
		return nil, false, err
	}

	s, err = Load(path)
	if err != nil {
		return nil, true, err
	}
	return s, true, nil
}

// WriteDefaults writes DefaultSettings to path.
func WriteDefaults(path string) error {
	return DefaultSettings().Save(path)
}

// Save writes settings to an INI file, replacing any existing file.
func (s *Settings) Save(path string) error {
	file := ini.Empty(loadOptions)
	sec, err := file.NewSection(SectionName)
	if err != nil {
		return err
	}

	values := []struct{ key, value string }{
		{KeyURL, s.URL},
		{KeyPositiveCheckText, s.PositiveCheckText},
		{KeyNegativeCheckText, s.NegativeCheckText},
		{KeyNumDigits, strconv.Itoa(s.NumDigits)},
		{KeyZipFileName, s.ZipFileName},
		{KeyAllowedFileTypes, strings.Join(s.AllowedFileTypes, ", ")},
		{KeyMaxSleepInterval, strconv.FormatFloat(s.MaxSleepInterval, 'f', -1, 64)},
		{KeyDeleteTempFolder, formatBool(s.DeleteTempFolder)},
	}
	for _, v := range values {
		if _, err := sec.NewKey(v.key, v.value); err != nil {
			return err
		}
	}

	return file.SaveTo(path)
}

// sectionReader converts keys of one section and keeps the first error.
type sectionReader struct {
	sec *ini.Section
	err error
}

func (r *sectionReader) str(key string) string {
	if r.err != nil {
		return ""
	}
	if !r.sec.HasKey(key) {
		r.err = &FormatError{Key: key, Err: ErrMissingKey}
		return ""
	}
	return r.sec.Key(key).String()
}

func (r *sectionReader) integer(key string) int {
	raw := r.str(key)
	if r.err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		r.err = &FormatError{Key: key, Value: raw, Err: err}
	}
	return n
}

func (r *sectionReader) float(key string) float64 {
	raw := r.str(key)
	if r.err != nil {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		r.err = &FormatError{Key: key, Value: raw, Err: err}
	}
	return f
}

func (r *sectionReader) boolean(key string) bool {
	raw := r.str(key)
	if r.err != nil {
		return false
	}
	b, err := parseBool(raw)
	if err != nil {
		r.err = &FormatError{Key: key, Value: raw, Err: err}
	}
	return b
}

// list splits a comma-separated value, trimming and lowercasing each
// element.
func (r *sectionReader) list(key string) []string {
	raw := r.str(key)
	if r.err != nil {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.ToLower(strings.TrimSpace(p)))
	}
	return out
}

// parseBool accepts the usual INI boolean literals, case-insensitively.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "yes", "true", "on":
		return true, nil
	case "0", "no", "false", "off":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
