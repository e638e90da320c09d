// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package actor defines the cast of a comic.
package actor

import (
	"log/slog"

	"github.com/taibuivan/scriptwriter/internal/core/resource"
	"github.com/taibuivan/scriptwriter/internal/docstore"
	"github.com/taibuivan/scriptwriter/pkg/pointer"
)

// Actor is a character that can speak dialogue lines.
type Actor struct {
	ID          *string `json:"id,omitempty"`
	ComicID     *string `json:"comicId,omitempty"`
	DisplayName string  `json:"displayName"`
}

func (a *Actor) DocumentID() string      { return pointer.Val(a.ID) }
func (a *Actor) SetDocumentID(id string) { a.ID = pointer.To(id) }

// FieldComicID is the JSON name of the parent reference.
const FieldComicID = "comicId"

var Kind = resource.Kind[Actor]{
	Name:        "Actor",
	ParentName:  "Comic",
	ParentRoute: "comic",
	ParentField: FieldComicID,
	SetParent:   func(a *Actor, comicID string) { a.ComicID = pointer.To(comicID) },
}

type (
	Service = resource.Service[Actor, *Actor]
	Handler = resource.Handler[Actor, *Actor]
)

func NewService(collection docstore.Collection[Actor], logger *slog.Logger) *Service {
	return resource.NewService[Actor](Kind, collection, logger)
}

func NewHandler(service *Service, comics resource.ParentLookup) *Handler {
	return resource.NewHandler(service, comics)
}
