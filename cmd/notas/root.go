package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notas"
	"github.com/aretw0/notas/pkg/core"
)

// DirEnv overrides the stored notes directory; the --dir flag overrides both.
const DirEnv = "NOTAS_DIR"

var (
	verbose      bool
	dirFlag      string
	settingsFlag string
	versioning   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notas",
	Short: "Plain Markdown notes with a small header, kept in one directory",
	Long: `notas stores each note as a Markdown file with a title, timestamps,
tags and a color hint in its header. The files are the source of truth:
edit them with any tool and notas picks the changes up on the next scan.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "d", "", "Notes directory (default: $"+DirEnv+" or the stored preference)")
	rootCmd.PersistentFlags().StringVar(&settingsFlag, "settings", "", "Settings file (default: "+notas.DefaultSettingsPath()+")")
	rootCmd.PersistentFlags().BoolVar(&versioning, "git", false, "Commit every change when the notes directory is a git work tree")
}

// serviceOptions builds the options shared by every command.
func serviceOptions() []notas.Option {
	opts := []notas.Option{
		notas.WithLogger(slog.Default()),
		notas.WithVersioning(versioning),
	}
	if settingsFlag != "" {
		opts = append(opts, notas.WithSettingsFile(settingsFlag))
	}

	dir := dirFlag
	if dir == "" {
		dir = os.Getenv(DirEnv)
	}
	if dir != "" {
		opts = append(opts, notas.WithDirectory(dir))
	}
	return opts
}

// openService creates the service and scans the active directory so that
// every note on disk is addressable by id.
func openService(ctx context.Context) (*core.Service, []core.Note) {
	service, err := notas.New(serviceOptions()...)
	if err != nil {
		fatal("Failed to initialize notas", err)
	}

	notes, err := service.ListNotes(ctx, "")
	if err != nil {
		fatal("Failed to scan notes directory", err)
	}
	return service, notes
}
