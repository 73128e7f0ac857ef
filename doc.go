// Package notas is the Composition Root of the notas note store.
//
// It connects the domain (pkg/core) with the filesystem adapter
// (pkg/adapters/fs) and exposes the wiring as functional options.
//
// Each note is a Markdown file with a small header:
//
//	---
//	title: Groceries
//	created: 2024-06-01T12:00:00.000000000Z
//	modified: 2024-06-01T12:05:00.000000000Z
//	tags: [home]
//	color: #ffcc00
//	---
//
//	- milk
//
// The files are the source of truth. The Service keeps an in-memory index of
// the notes it has scanned, and every mutation writes the file before the
// index is updated.
//
// Usage:
//
//	svc, err := notas.New(
//		notas.WithDirectory("~/Notes"),
//		notas.WithLogger(logger),
//	)
//
//	notes, err := svc.ListNotes(ctx, "")
//	note, err := svc.CreateNote(ctx, "", "Groceries")
//	note, err = svc.SaveNote(ctx, note.ID, "- milk")
package notas
