package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"quiet hides debug", false, false},
		{"verbose shows debug", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(&buf, tt.verbose)

			log.Debug("waiting")
			log.Info("fetched")

			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("waiting")))
			assert.Contains(t, buf.String(), "INFO: fetched")
		})
	}
}

func TestLogger_Attrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, false).With(slog.String("run", "abc"))

	log.Warn("collision", slog.String("path", "001.png"))

	out := buf.String()
	assert.Contains(t, out, "WARN: collision")
	assert.Contains(t, out, `"path":"001.png"`)
	assert.Contains(t, out, `"run":"abc"`)
}
