// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package dialogue defines the spoken lines of a panel.

A line may name its speaker either by reference (ActorID) or free text
(ActorName). Neither is checked against the actor collection.
*/
package dialogue

import (
	"log/slog"

	"github.com/taibuivan/scriptwriter/internal/core/resource"
	"github.com/taibuivan/scriptwriter/internal/docstore"
	"github.com/taibuivan/scriptwriter/pkg/pointer"
)

// Dialogue is one line of a panel.
type Dialogue struct {
	ID        *string `json:"id,omitempty"`
	PanelID   *string `json:"panelId,omitempty"`
	ActorID   *string `json:"actorId"`
	ActorName *string `json:"actorName"`
	Order     int     `json:"order"`
	Line      string  `json:"line"`
}

func (d *Dialogue) DocumentID() string      { return pointer.Val(d.ID) }
func (d *Dialogue) SetDocumentID(id string) { d.ID = pointer.To(id) }

// FieldPanelID is the JSON name of the parent reference.
const FieldPanelID = "panelId"

// Kind serves /api/Dialogue; lines of a panel are listed at /api/Dialogue/panel/{id}.
var Kind = resource.Kind[Dialogue]{
	Name:        "Dialogue",
	ParentName:  "Panel",
	ParentRoute: "panel",
	ParentField: FieldPanelID,
	SetParent:   func(d *Dialogue, panelID string) { d.PanelID = pointer.To(panelID) },
}

type (
	Service = resource.Service[Dialogue, *Dialogue]
	Handler = resource.Handler[Dialogue, *Dialogue]
)

func NewService(collection docstore.Collection[Dialogue], logger *slog.Logger) *Service {
	return resource.NewService[Dialogue](Kind, collection, logger)
}

func NewHandler(service *Service, panels resource.ParentLookup) *Handler {
	return resource.NewHandler(service, panels)
}
