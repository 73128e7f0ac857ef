package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notas"
)

var dirCmd = &cobra.Command{
	Use:   "dir [path]",
	Short: "Show or store the notes directory",
	Long: `Without arguments, print the active notes directory.
With a path, store it as the default notes directory.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, err := notas.New(serviceOptions()...)
		if err != nil {
			fatal("Failed to initialize notas", err)
		}

		if len(args) == 0 {
			if dir := service.Directory(); dir != "" {
				fmt.Println(dir)
				return
			}
			fmt.Println("No notes directory configured.")
			return
		}

		dir, err := notas.ResolveDirectory(args[0])
		if err != nil {
			fatal("Invalid directory", err)
		}
		if err := service.SetDirectory(dir); err != nil {
			fatal("Failed to store directory", err)
		}
		fmt.Printf("Notes directory set to %s\n", dir)
	},
}

func init() {
	rootCmd.AddCommand(dirCmd)
}
