package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/notas/pkg/core"
)

var (
	searchFuzzy bool
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Find notes by title, body or tag",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		service, _ := openService(ctx)
		query := strings.Join(args, " ")

		var (
			found []core.Note
			err   error
		)
		if searchFuzzy {
			found, err = service.SearchFuzzy(ctx, query)
		} else {
			found, err = service.Search(ctx, query)
		}
		if err != nil {
			fatal("Search failed", err)
		}

		if searchJSON {
			if found == nil {
				found = []core.Note{}
			}
			if err := writeJSON(os.Stdout, found); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}
		if len(found) == 0 {
			fmt.Println("No matches.")
			return
		}
		writeListing(os.Stdout, found, service.Pinned())
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVar(&searchFuzzy, "fuzzy", false, "Rank titles by fuzzy match instead of substring search")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
}
