package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var colorCmd = &cobra.Command{
	Use:   "color <id> [color]",
	Short: "Set or clear the color hint of a note",
	Long: `Set the color hint of a note. The color is a palette position (1-6)
or any value the terminal understands (e.g. "#ffcc00", "5").
Without a color, the hint is removed.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		service, _ := openService(ctx)

		color := ""
		if len(args) == 2 {
			color = resolveColor(args[1])
		}

		note, err := service.SetColor(ctx, args[0], color)
		if err != nil {
			fatal("Failed to set color", err)
		}
		fmt.Printf("%s %s\n", colorDot(note.Color), note.ID)
	},
}

func init() {
	rootCmd.AddCommand(colorCmd)
}
