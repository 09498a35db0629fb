package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/cbr-grabber/internal/config"
	"github.com/handiism/cbr-grabber/internal/download"
	"github.com/handiism/cbr-grabber/internal/logger"
	"github.com/handiism/cbr-grabber/internal/model"
	"github.com/spf13/cobra"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A8DADC"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4"))
)

// errInterrupted is returned when the run is stopped by a signal.
var errInterrupted = errors.New("interrupted")

// NewRootCmd creates the root command for cbr-grab.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cbr-grab",
		Short: "Download the pages of a listing into a .cbr archive",
		Long: `cbr-grab fetches a directory listing page, keeps the links whose text
contains positive_check_text and not negative_check_text, downloads the
allowed file types as zero-padded numbered files and packs them into
{zip_filename}.cbr.

Settings are read from settings.ini in the current directory. A default
file is written on first use; see "cbr-grab init".

The run stops without touching anything if the archive or a numbered
image file already exists in the output directory.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runGrabCmd,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Show verbose output and debug logs")
	cmd.Flags().StringP("config", "c", config.DefaultFileName, "Path to the settings file")
	cmd.Flags().StringP("dir", "d", ".", "Directory receiving the staging folder and the archive")
	cmd.Flags().BoolP("dry-run", "n", false, "Fetch and filter the listing without downloading")

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		if errors.Is(err, errInterrupted) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}

func runGrabCmd(cmd *cobra.Command, _ []string) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	settings, created, err := config.LoadOrCreate(configPath)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(out, "%s not found. Creating default %s.\n", configPath, filepath.Base(configPath))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := &printer{out: out, verbose: verbose}
	manager := download.NewManager(settings, p.print,
		download.WithWorkDir(dir),
		download.WithDryRun(dryRun),
		download.WithLogger(logger.NewWithWriter(cmd.ErrOrStderr(), verbose)),
	)

	fmt.Fprintln(out, titleStyle.Render("cbr-grab"))
	fmt.Fprintln(out, dimStyle.Render(settings.URL))
	fmt.Fprintln(out)

	summary, err := manager.Run(ctx)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return fmt.Errorf("%w: %v", errInterrupted, err)
		}
		return err
	}

	switch summary.Outcome {
	case model.OutcomeCollision, model.OutcomeAborted:
		return nil
	case model.OutcomeDryRun:
		fmt.Fprintln(out)
		fmt.Fprintln(out, dimStyle.Render("[Dry run - nothing downloaded]"))
	}

	printSummary(out, summary)
	return nil
}

// printer renders progress events as prefixed, colored lines.
type printer struct {
	out     io.Writer
	verbose bool
}

func (p *printer) print(event download.ProgressEvent) {
	if event.Level == download.LevelVerbose && !p.verbose {
		return
	}

	var style lipgloss.Style
	prefix := " "
	switch event.Level {
	case download.LevelError:
		style, prefix = errorStyle, "✗"
	case download.LevelWarning:
		style, prefix = warningStyle, "!"
	case download.LevelSuccess:
		style, prefix = successStyle, "✓"
	case download.LevelInfo:
		style, prefix = infoStyle, "›"
	default:
		style = dimStyle
	}

	fmt.Fprintln(p.out, style.Render(prefix+" "+event.Message))
}

func printSummary(out io.Writer, s model.Summary) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Operation Summary:")
	fmt.Fprintf(out, "Number of files to be downloaded: %d\n", s.Matched)
	fmt.Fprintf(out, "Number of files skipped: %d\n", s.Skipped)
	fmt.Fprintf(out, "Number of files successfully downloaded: %d\n", s.Downloaded)
}
