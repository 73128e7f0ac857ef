package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var saveContent string

var saveCmd = &cobra.Command{
	Use:   "save <id>",
	Short: "Replace the body of a note",
	Long: `Replace the body of a note with --content, or with standard input when
it is piped (e.g. "cat draft.md | notas save <id>").`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content, err := readContent(cmd)
		if err != nil {
			fatal("Failed to read content", err)
		}

		ctx := context.Background()
		service, _ := openService(ctx)

		note, err := service.SaveNote(ctx, args[0], content)
		if err != nil {
			fatal("Failed to save note", err)
		}
		fmt.Printf("Note '%s' saved.\n", note.ID)
	},
}

// readContent prefers the --content flag and falls back to a piped stdin.
func readContent(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("content") {
		return saveContent, nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("provide --content or pipe the body on stdin")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func init() {
	rootCmd.AddCommand(saveCmd)
	saveCmd.Flags().StringVarP(&saveContent, "content", "c", "", "New body of the note")
}
