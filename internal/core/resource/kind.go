// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package resource implements the parent-validated CRUD pattern shared by every
entity of the script hierarchy.

One [Service] and one [Handler] are instantiated per entity type. A [Kind]
carries the per-type configuration:

  - Name: the route segment and the label used in messages ("Issue").
  - Parent: for child kinds, the parent label, its route segment in the
    list-children path, the JSON field holding the reference, and a setter.

Root kinds (Comic) have no parent: they are listed as a whole and created
without an existence check.
*/
package resource

import "strings"

// Kind describes one entity type.
type Kind[T any] struct {
	// Name is the entity route segment, e.g. "Issue".
	Name string

	// ParentName labels the parent in errors, e.g. "Comic". Empty for root kinds.
	ParentName string
	// ParentRoute is the path segment of the list-children route, e.g. "comic".
	ParentRoute string
	// ParentField is the JSON field of the parent reference, e.g. "comicId".
	ParentField string
	// SetParent overwrites the parent reference of a document.
	SetParent func(doc *T, parentID string)
}

// IsRoot reports whether the kind has no parent.
func (kind Kind[T]) IsRoot() bool {
	return kind.ParentName == ""
}

// Location returns the read-one path of a document.
func (kind Kind[T]) Location(prefix, id string) string {
	return prefix + "/" + kind.Name + "/" + id
}

// event builds a snake_case log event name, e.g. "issue_created".
func (kind Kind[T]) event(action string) string {
	return strings.ToLower(kind.Name) + "_" + action
}

// action names a store operation for error context, e.g. "issue.find".
func (kind Kind[T]) action(operation string) string {
	return strings.ToLower(kind.Name) + "." + operation
}
