package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var (
	showJSON bool
	showYAML bool
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		service, _ := openService(ctx)

		note, err := service.GetNote(ctx, args[0])
		if err != nil {
			fatal("Failed to read note", err)
		}

		switch {
		case showJSON:
			err = writeJSON(os.Stdout, note)
		case showYAML:
			err = writeYAML(os.Stdout, note)
		default:
			writeNote(os.Stdout, note)
		}
		if err != nil {
			fatal("Error encoding note", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	showCmd.Flags().BoolVar(&showYAML, "yaml", false, "Output in YAML format")
	showCmd.MarkFlagsMutuallyExclusive("json", "yaml")
}
