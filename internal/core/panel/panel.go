// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package panel defines the ordered panels of a page.
package panel

import (
	"log/slog"

	"github.com/taibuivan/scriptwriter/internal/core/resource"
	"github.com/taibuivan/scriptwriter/internal/docstore"
	"github.com/taibuivan/scriptwriter/pkg/pointer"
)

type Panel struct {
	ID               *string `json:"id,omitempty"`
	PageID           *string `json:"pageId,omitempty"`
	PanelDescription string  `json:"panelDescription"`
	// PanelOrder positions the panel on its page. Uniqueness is not enforced.
	PanelOrder int `json:"panelOrder"`
}

func (p *Panel) DocumentID() string      { return pointer.Val(p.ID) }
func (p *Panel) SetDocumentID(id string) { p.ID = pointer.To(id) }

// FieldPageID is the JSON name of the parent reference.
const FieldPageID = "pageId"

var Kind = resource.Kind[Panel]{
	Name:        "Panel",
	ParentName:  "Page",
	ParentRoute: "page",
	ParentField: FieldPageID,
	SetParent:   func(p *Panel, pageID string) { p.PageID = pointer.To(pageID) },
}

type (
	Service = resource.Service[Panel, *Panel]
	Handler = resource.Handler[Panel, *Panel]
)

func NewService(collection docstore.Collection[Panel], logger *slog.Logger) *Service {
	return resource.NewService[Panel](Kind, collection, logger)
}

func NewHandler(service *Service, pages resource.ParentLookup) *Handler {
	return resource.NewHandler(service, pages)
}
