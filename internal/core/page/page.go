// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package page defines the pages of an issue.
package page

import (
	"log/slog"

	"github.com/taibuivan/scriptwriter/internal/core/resource"
	"github.com/taibuivan/scriptwriter/internal/docstore"
	"github.com/taibuivan/scriptwriter/pkg/pointer"
)

// Page is one page of an issue. Number and title are optional.
type Page struct {
	ID              *string `json:"id,omitempty"`
	IssueID         *string `json:"issueId,omitempty"`
	PageNumber      *int    `json:"pageNumber"`
	PageTitle       *string `json:"pageTitle"`
	PageDescription string  `json:"pageDescription"`
}

func (p *Page) DocumentID() string      { return pointer.Val(p.ID) }
func (p *Page) SetDocumentID(id string) { p.ID = pointer.To(id) }

// FieldIssueID is the JSON name of the parent reference.
const FieldIssueID = "issueId"

var Kind = resource.Kind[Page]{
	Name:        "Page",
	ParentName:  "Issue",
	ParentRoute: "issue",
	ParentField: FieldIssueID,
	SetParent:   func(p *Page, issueID string) { p.IssueID = pointer.To(issueID) },
}

type (
	Service = resource.Service[Page, *Page]
	Handler = resource.Handler[Page, *Page]
)

func NewService(collection docstore.Collection[Page], logger *slog.Logger) *Service {
	return resource.NewService[Page](Kind, collection, logger)
}

func NewHandler(service *Service, issues resource.ParentLookup) *Handler {
	return resource.NewHandler(service, issues)
}
