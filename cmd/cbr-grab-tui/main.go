package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/cbr-grabber/internal/config"
	"github.com/handiism/cbr-grabber/internal/tui"
)

func main() {
	var (
		configFlag = flag.String("config", config.DefaultFileName, "Path to the settings file")
		dirFlag    = flag.String("dir", ".", "Directory receiving the staging folder and the archive")
	)
	flag.Parse()

	settings, created, err := config.LoadOrCreate(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if created {
		fmt.Printf("%s not found. Created it with default settings.\n", *configFlag)
	}

	if err := tui.Run(settings, *dirFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
