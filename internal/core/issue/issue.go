// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package issue defines the numbered instalments of a comic.
package issue

import (
	"log/slog"
	"time"

	"github.com/taibuivan/scriptwriter/internal/core/resource"
	"github.com/taibuivan/scriptwriter/internal/docstore"
	"github.com/taibuivan/scriptwriter/pkg/pointer"
)

// Issue belongs to a comic through ComicID.
type Issue struct {
	ID          *string   `json:"id,omitempty"`
	ComicID     *string   `json:"comicId,omitempty"`
	IssueNumber int       `json:"issueNumber"`
	Title       string    `json:"title"`
	CreatedDate time.Time `json:"createdDate"`
}

func (i *Issue) DocumentID() string      { return pointer.Val(i.ID) }
func (i *Issue) SetDocumentID(id string) { i.ID = pointer.To(id) }

// FieldComicID is the JSON name of the parent reference.
const FieldComicID = "comicId"

// Kind serves /api/Issue; children of a comic are listed at /api/Issue/comic/{id}.
var Kind = resource.Kind[Issue]{
	Name:        "Issue",
	ParentName:  "Comic",
	ParentRoute: "comic",
	ParentField: FieldComicID,
	SetParent:   func(i *Issue, comicID string) { i.ComicID = pointer.To(comicID) },
}

type (
	Service = resource.Service[Issue, *Issue]
	Handler = resource.Handler[Issue, *Issue]
)

func NewService(collection docstore.Collection[Issue], logger *slog.Logger) *Service {
	return resource.NewService[Issue](Kind, collection, logger)
}

// NewHandler needs the comic service to verify the parent on create.
func NewHandler(service *Service, comics resource.ParentLookup) *Handler {
	return resource.NewHandler(service, comics)
}
