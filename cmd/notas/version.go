package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/notas"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notas",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("notas version %s\n", strings.TrimSpace(notas.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
