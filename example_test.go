package notas_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/notas"
)

// Example_basic demonstrates how to open a notes directory, create a note and list it back.
func Example_basic() {
	dir, err := os.MkdirTemp("", "notas-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	svc, err := notas.New(
		notas.WithDirectory(dir),
		notas.WithSettingsFile(""),
	)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	note, err := svc.CreateNote(ctx, "", "Hello World")
	if err != nil {
		log.Fatal(err)
	}
	if _, err := svc.SaveNote(ctx, note.ID, "My first note."); err != nil {
		log.Fatal(err)
	}

	notes, err := svc.ListNotes(ctx, "")
	if err != nil {
		log.Fatal(err)
	}

	for _, n := range notes {
		fmt.Printf("%s: %s\n", n.Title, n.Content)
	}
	// Output:
	// Hello World: My first note.
}

// Example_search demonstrates tag-aware search over indexed notes.
func Example_search() {
	dir, err := os.MkdirTemp("", "notas-search-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	svc, err := notas.New(notas.WithDirectory(dir), notas.WithSettingsFile(""))
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()

	groceries, _ := svc.CreateNote(ctx, "", "Groceries")
	_, _ = svc.SetTags(ctx, groceries.ID, []string{"home"})
	_, _ = svc.CreateNote(ctx, "", "Standup")

	found, err := svc.Search(ctx, "HOME")
	if err != nil {
		log.Fatal(err)
	}
	for _, n := range found {
		fmt.Println(n.Title)
	}
	// Output:
	// Groceries
}
