// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package comic defines the root of the script hierarchy.

A comic owns issues and actors. It is the only entity that is listed as a
whole and created without a parent check.
*/
package comic

import (
	"log/slog"

	"github.com/taibuivan/scriptwriter/internal/core/resource"
	"github.com/taibuivan/scriptwriter/internal/docstore"
	"github.com/taibuivan/scriptwriter/pkg/pointer"
)

// Comic is a published series.
type Comic struct {
	ID        *string `json:"id,omitempty"`
	Title     string  `json:"title"`
	CreatedBy string  `json:"createdBy"`
}

func (c *Comic) DocumentID() string      { return pointer.Val(c.ID) }
func (c *Comic) SetDocumentID(id string) { c.ID = pointer.To(id) }

// Kind registers Comic as a root entity under /api/Comic.
var Kind = resource.Kind[Comic]{Name: "Comic"}

type (
	Service = resource.Service[Comic, *Comic]
	Handler = resource.Handler[Comic, *Comic]
)

func NewService(collection docstore.Collection[Comic], logger *slog.Logger) *Service {
	return resource.NewService[Comic](Kind, collection, logger)
}

func NewHandler(service *Service) *Handler {
	return resource.NewHandler(service, nil)
}
