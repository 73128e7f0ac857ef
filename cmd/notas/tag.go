package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

var (
	tagAdd    bool
	tagRemove bool
)

var tagCmd = &cobra.Command{
	Use:   "tag <id> [tags...]",
	Short: "Replace, add or remove the tags of a note",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		service, _ := openService(ctx)
		id, given := args[0], args[1:]

		current, err := service.GetNote(ctx, id)
		if err != nil {
			fatal("Failed to read note", err)
		}

		tags := given
		switch {
		case tagAdd:
			tags = slices.Clone(current.Tags)
			for _, t := range given {
				if !slices.Contains(tags, t) {
					tags = append(tags, t)
				}
			}
		case tagRemove:
			tags = slices.DeleteFunc(slices.Clone(current.Tags), func(t string) bool {
				return slices.Contains(given, t)
			})
		}

		note, err := service.SetTags(ctx, id, tags)
		if err != nil {
			fatal("Failed to set tags", err)
		}
		fmt.Printf("%s: [%s]\n", note.ID, strings.Join(note.Tags, ", "))
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)
	tagCmd.Flags().BoolVarP(&tagAdd, "add", "a", false, "Add the given tags instead of replacing")
	tagCmd.Flags().BoolVarP(&tagRemove, "remove", "r", false, "Remove the given tags")
	tagCmd.MarkFlagsMutuallyExclusive("add", "remove")
}
