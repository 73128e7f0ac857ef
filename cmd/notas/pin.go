package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var unpin bool

var pinCmd = &cobra.Command{
	Use:   "pin [id]",
	Short: "Pin a note to the top of listings, or list pinned notes",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		service, _ := openService(ctx)

		if len(args) == 0 {
			for _, id := range service.Pinned() {
				fmt.Println(id)
			}
			return
		}

		id := args[0]
		if unpin {
			if err := service.Unpin(id); err != nil {
				fatal("Failed to unpin note", err)
			}
			fmt.Printf("Note '%s' unpinned.\n", id)
			return
		}

		if err := service.Pin(ctx, id); err != nil {
			fatal("Failed to pin note", err)
		}
		fmt.Printf("Note '%s' pinned.\n", id)
	},
}

func init() {
	rootCmd.AddCommand(pinCmd)
	pinCmd.Flags().BoolVarP(&unpin, "remove", "r", false, "Unpin the note")
}
