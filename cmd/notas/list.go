package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notas/pkg/core"
)

var (
	listJSON  bool
	filterTag string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the notes in the notes directory, newest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, notes := openService(context.Background())

		var filtered []core.Note
		for _, note := range notes {
			if filterTag != "" && !note.HasTag(filterTag) {
				continue
			}
			filtered = append(filtered, note)
		}

		if listJSON {
			if filtered == nil {
				filtered = []core.Note{}
			}
			if err := writeJSON(os.Stdout, filtered); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		if len(filtered) == 0 {
			fmt.Println("No notes.")
			return
		}
		writeListing(os.Stdout, filtered, service.Pinned())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&filterTag, "tag", "", "Filter notes by tag")
}
