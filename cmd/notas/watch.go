package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/notas/pkg/adapters/lifecycle"
	"github.com/aretw0/notas/pkg/core"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print changes made to the notes directory until interrupted",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		service, _ := openService(ctx)

		events, err := service.Watch(ctx, "")
		if err != nil {
			fatal("Failed to watch notes directory", err)
		}

		// Re-scan so the index reflects the change before reading it.
		resolve := func(ctx context.Context, id string) (core.Note, error) {
			if _, err := service.ListNotes(ctx, ""); err != nil {
				return core.Note{}, err
			}
			return service.GetNote(ctx, id)
		}
		opts := []lifecycle.SourceOption{lifecycle.WithResolver(resolve)}
		if watchPinned {
			opts = append(opts, lifecycle.WithFilter(func(id string) bool {
				return slices.Contains(service.Pinned(), id)
			}))
		}

		src := lifecycle.NewSource(events, opts...)
		if err := src.Start(ctx); err != nil {
			fatal("Failed to start event source", err)
		}

		fmt.Printf("Watching %s (Ctrl+C to stop)\n", service.Directory())
		for e := range src.Events() {
			ev, ok := e.(lifecycle.NoteEvent)
			if !ok {
				continue
			}
			fmt.Printf("%s  %-6s %s  %s\n", time.Unix(ev.Timestamp, 0).Format("15:04:05"), ev.Type, ev.ID, ev.Note.Title)
		}
	},
}

var watchPinned bool

func init() {
	watchCmd.Flags().BoolVar(&watchPinned, "pinned", false, "Only report changes to pinned notes")
	rootCmd.AddCommand(watchCmd)
}
