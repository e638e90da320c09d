// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns created by the embedded
// migrations, so SQL builders never spell them by hand.
package schema

// DocumentsTable represents the 'documents' table. Every collection shares it,
// keyed by (collection, id).
type DocumentsTable struct {
	Table      string
	Collection string
	ID         string
	Body       string
	CreatedAt  string
	UpdatedAt  string
}

// Documents is the schema definition for documents
var Documents = DocumentsTable{
	Table:      "documents",
	Collection: "collection",
	ID:         "id",
	Body:       "body",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}

// Columns lists the columns written on insert.
func (t DocumentsTable) Columns() []string {
	return []string{t.Collection, t.ID, t.Body}
}
