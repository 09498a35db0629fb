// Package tui provides a Bubble Tea terminal user interface for cbr-grabber.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/cbr-grabber/internal/config"
	"github.com/handiism/cbr-grabber/internal/download"
	"github.com/handiism/cbr-grabber/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// maxLogs is the number of log lines kept on screen.
const maxLogs = 10

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateRunning
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   download.ProgressLevel
}

// RunFunc starts a run with the given settings and options. Progress is
// delivered through onProgress from the goroutine executing the run.
type RunFunc func(ctx context.Context, settings *config.Settings, onProgress func(download.ProgressEvent), opts ...download.Option) (model.Summary, error)

// bridge lets the run goroutine reach the program once it exists.
type bridge struct {
	send func(tea.Msg)
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	workDir   string
	logs      []LogEntry
	summary   model.Summary
	err       error

	// Run context
	ctx    context.Context
	cancel context.CancelFunc

	run    RunFunc
	bridge *bridge

	// Download progress
	processed int
	total     int

	// Options
	verbose bool
	dryRun  bool

	width  int
	height int
}

// NewModel creates a new TUI model. The URL field is pre-filled from
// settings; runs write into workDir.
func NewModel(settings *config.Settings, workDir string) Model {
	ti := textinput.New()
	ti.Placeholder = "https://example.com/comic/pages/"
	ti.SetValue(settings.URL)
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		workDir:   workDir,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
		run:       runManager,
		bridge:    &bridge{},
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent for every progress event of the run.
	ProgressMsg struct {
		Event download.ProgressEvent
	}

	// RunDoneMsg is sent when the run returns.
	RunDoneMsg struct {
		Summary model.Summary
		Err     error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateRunning {
				m.cancel()
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				m.state = StateRunning
				m.textInput.Blur()
				return m, tea.Batch(m.startRun(), m.spinner.Tick)
			}

		case "ctrl+o":
			if m.state == StateInput {
				m.verbose = !m.verbose
				return m, nil
			}

		case "ctrl+r":
			if m.state == StateInput {
				m.dryRun = !m.dryRun
				return m, nil
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.state = StateInput
				m.logs = nil
				m.err = nil
				m.summary = model.Summary{}
				m.processed = 0
				m.total = 0
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.Focus()
				return m, textinput.Blink
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		if msg.Event.Total > 0 {
			m.processed = msg.Event.Processed
			m.total = msg.Event.Total
		}
		// Filter verbose messages if not in verbose mode
		if msg.Event.Level != download.LevelVerbose || m.verbose {
			m.logs = append(m.logs, LogEntry{
				Message: msg.Event.Message,
				Level:   msg.Event.Level,
			})
			if len(m.logs) > maxLogs {
				m.logs = m.logs[len(m.logs)-maxLogs:]
			}
		}

	case RunDoneMsg:
		m.summary = msg.Summary
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("cbr-grab"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Pack a listing of pages into a .cbr archive"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateRunning:
		b.WriteString(m.viewRunning())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Listing URL:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[x]"
	}
	dryRunCheck := "[ ]"
	if m.dryRun {
		dryRunCheck = "[x]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+o)\n", verboseCheck))
	b.WriteString(fmt.Sprintf("  %s Dry run (ctrl+r)\n", dryRunCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"Filter: '%s' without '%s' | Types: %s | Archive: %s",
		m.settings.PositiveCheckText,
		m.settings.NegativeCheckText,
		strings.Join(m.settings.AllowedFileTypes, ", "),
		m.settings.ArchiveName(),
	)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewRunning() string {
	var b strings.Builder

	if m.total == 0 {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Fetching listing..."))
		b.WriteString("\n\n")
	} else {
		b.WriteString(m.progress.ViewAs(float64(m.processed) / float64(m.total)))
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d", m.processed, m.total)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	s := m.summary
	lines := []string{
		fmt.Sprintf("Run %s", s.Outcome),
		"",
		fmt.Sprintf("To be downloaded: %d", s.Matched),
		fmt.Sprintf("Skipped:          %d", s.Skipped),
		fmt.Sprintf("Downloaded:       %d", s.Downloaded),
	}
	switch {
	case s.ArchivePath != "":
		lines = append(lines, "", "Archive: "+s.ArchivePath)
	case s.CollisionPath != "":
		lines = append(lines, "", "Existing file: "+s.CollisionPath)
	case s.Outcome == model.OutcomeFetchFailed:
		lines = append(lines, "", fmt.Sprintf("Status code: %d", s.StatusCode))
	}

	b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	if m.summary.StagingDir != "" {
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("Temporary files kept in " + m.summary.StagingDir))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case download.LevelError:
			style = errorStyle
			prefix = "✗"
		case download.LevelWarning:
			style = warningStyle
			prefix = "!"
		case download.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case download.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • ctrl+o: verbose • ctrl+r: dry run • esc: quit"
	case StateRunning:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// startRun copies the settings with the entered URL and runs the manager in
// the background.
func (m Model) startRun() tea.Cmd {
	settings := *m.settings
	settings.URL = strings.TrimSpace(m.textInput.Value())
	ctx, run, b := m.ctx, m.run, m.bridge
	opts := []download.Option{
		download.WithWorkDir(m.workDir),
		download.WithDryRun(m.dryRun),
	}

	return func() tea.Msg {
		summary, err := run(ctx, &settings, func(event download.ProgressEvent) {
			if b.send != nil {
				b.send(ProgressMsg{Event: event})
			}
		}, opts...)
		return RunDoneMsg{Summary: summary, Err: err}
	}
}

func runManager(ctx context.Context, settings *config.Settings, onProgress func(download.ProgressEvent), opts ...download.Option) (model.Summary, error) {
	return download.NewManager(settings, onProgress, opts...).Run(ctx)
}

// Run starts the TUI application.
func Run(settings *config.Settings, workDir string) error {
	m := NewModel(settings, workDir)
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.bridge.send = p.Send
	_, err := p.Run()
	return err
}
