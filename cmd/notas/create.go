package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create [title...]",
	Short: "Create an empty note and print its id",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		service, _ := openService(ctx)

		note, err := service.CreateNote(ctx, "", strings.Join(args, " "))
		if err != nil {
			fatal("Failed to create note", err)
		}
		fmt.Println(note.ID)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
