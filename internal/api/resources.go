// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/scriptwriter/internal/core/actor"
	"github.com/taibuivan/scriptwriter/internal/core/comic"
	"github.com/taibuivan/scriptwriter/internal/core/dialogue"
	"github.com/taibuivan/scriptwriter/internal/core/issue"
	"github.com/taibuivan/scriptwriter/internal/core/page"
	"github.com/taibuivan/scriptwriter/internal/core/panel"
	"github.com/taibuivan/scriptwriter/internal/docstore"
	"github.com/taibuivan/scriptwriter/internal/platform/config"
)

// NewResources opens one collection per entity and wires every service to the
// service of its parent.
func NewResources(context context.Context, backend *docstore.Backend, names config.Collections, logger *slog.Logger) ([]Resource, error) {
	comics, err := docstore.Open[comic.Comic](context, backend, names.Comic)
	if err != nil {
		return nil, openError(names.Comic, err)
	}
	issues, err := docstore.Open[issue.Issue](context, backend, names.Issue)
	if err != nil {
		return nil, openError(names.Issue, err)
	}
	pages, err := docstore.Open[page.Page](context, backend, names.Page)
	if err != nil {
		return nil, openError(names.Page, err)
	}
	panels, err := docstore.Open[panel.Panel](context, backend, names.Panel)
	if err != nil {
		return nil, openError(names.Panel, err)
	}
	dialogues, err := docstore.Open[dialogue.Dialogue](context, backend, names.Dialogue)
	if err != nil {
		return nil, openError(names.Dialogue, err)
	}
	actors, err := docstore.Open[actor.Actor](context, backend, names.Actor)
	if err != nil {
		return nil, openError(names.Actor, err)
	}

	comicService := comic.NewService(comics, logger)
	issueService := issue.NewService(issues, logger)
	pageService := page.NewService(pages, logger)
	panelService := panel.NewService(panels, logger)
	dialogueService := dialogue.NewService(dialogues, logger)
	actorService := actor.NewService(actors, logger)

	return []Resource{
		comic.NewHandler(comicService),
		issue.NewHandler(issueService, comicService),
		page.NewHandler(pageService, issueService),
		panel.NewHandler(panelService, pageService),
		dialogue.NewHandler(dialogueService, panelService),
		actor.NewHandler(actorService, comicService),
	}, nil
}

func openError(collection string, err error) error {
	return fmt.Errorf("api: open collection %s: %w", collection, err)
}
