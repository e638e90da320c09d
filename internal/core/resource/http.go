// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package resource

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/scriptwriter/internal/docstore"
	"github.com/taibuivan/scriptwriter/internal/platform/apperr"
	"github.com/taibuivan/scriptwriter/internal/platform/constants"
	requestutil "github.com/taibuivan/scriptwriter/internal/platform/request"
	"github.com/taibuivan/scriptwriter/internal/platform/respond"
)

// paramID is the single path parameter. On POST of a child kind it carries the
// parent id.
const paramID = "id"

// # Handler Definition

// Handler serves the HTTP routes of one kind.
//
// Path identifiers that are not well formed cannot name a stored document, so
// they are answered like absent ones.
type Handler[T any, P docstore.Document[T]] struct {
	service *Service[T, P]
	parent  ParentLookup
}

// NewHandler binds the HTTP routes of a kind to its service. parent must be
// set for child kinds and is ignored for root kinds.
func NewHandler[T any, P docstore.Document[T]](service *Service[T, P], parent ParentLookup) *Handler[T, P] {
	return &Handler[T, P]{service: service, parent: parent}
}

// Pattern is the mount point of the kind under the API prefix, e.g. "/Issue".
func (handler *Handler[T, P]) Pattern() string {
	return "/" + handler.service.Kind().Name
}

// RegisterRoutes mounts the kind's routes on router.
//
// Root kinds are listed and created at "/". Child kinds are listed at
// "/<parentRoute>/{id}" and created at "/{id}", where id is the parent's.
func (handler *Handler[T, P]) RegisterRoutes(router chi.Router) {
	kind := handler.service.Kind()

	if kind.IsRoot() {
		router.Get("/", handler.list)
		router.Post("/", handler.create)
	} else {
		router.Get("/"+kind.ParentRoute+"/{"+paramID+"}", handler.listForParent)
		router.Post("/{"+paramID+"}", handler.create)
	}

	router.Get("/{"+paramID+"}", handler.get)
	router.Put("/{"+paramID+"}", handler.update)
	router.Delete("/{"+paramID+"}", handler.delete)
}

// # Read Handlers

// list handles GET /<Kind> for root kinds.
func (handler *Handler[T, P]) list(writer http.ResponseWriter, request *http.Request) {
	docs, err := handler.service.GetAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, docs)
}

// listForParent handles GET /<Kind>/<parentRoute>/{id}. An unknown parent
// yields an empty list.
func (handler *Handler[T, P]) listForParent(writer http.ResponseWriter, request *http.Request) {
	parentID, ok := requestutil.ID(request, paramID)
	if !ok {
		respond.OK(writer, []*T{})
		return
	}

	docs, err := handler.service.GetAllForParent(request.Context(), parentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, docs)
}

// get handles GET /<Kind>/{id}.
func (handler *Handler[T, P]) get(writer http.ResponseWriter, request *http.Request) {
	id, ok := requestutil.ID(request, paramID)
	if !ok {
		respond.NotFound(writer)
		return
	}

	doc, err := handler.service.GetWithID(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if doc == nil {
		respond.NotFound(writer)
		return
	}
	respond.OK(writer, doc)
}

// # Write Handlers

// create handles POST /<Kind> for root kinds and POST /<Kind>/{id} for child
// kinds, where id must name an existing parent.
func (handler *Handler[T, P]) create(writer http.ResponseWriter, request *http.Request) {
	kind := handler.service.Kind()

	var input T
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if !kind.IsRoot() {
		parentID, ok := requestutil.ID(request, paramID)
		if !ok {
			respond.Error(writer, request, apperr.ParentNotFound(kind.ParentName))
			return
		}

		storedID, found, err := handler.parent.Lookup(request.Context(), parentID)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		if !found {
			respond.Error(writer, request, apperr.ParentNotFound(kind.ParentName))
			return
		}

		// The verified parent wins over whatever the body declared
		kind.SetParent(&input, storedID)
	}

	if err := handler.service.Create(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, kind.Location(constants.APIPrefix, P(&input).DocumentID()), &input)
}

// update handles PUT /<Kind>/{id}: a full replace of an existing document.
func (handler *Handler[T, P]) update(writer http.ResponseWriter, request *http.Request) {
	id, ok := requestutil.ID(request, paramID)
	if !ok {
		respond.NotFound(writer)
		return
	}

	var input T
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	storedID, found, err := handler.service.Lookup(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if !found {
		respond.NotFound(writer)
		return
	}

	P(&input).SetDocumentID(storedID)

	if err := handler.service.Update(request.Context(), storedID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// delete handles DELETE /<Kind>/{id}. Children of the document are kept.
func (handler *Handler[T, P]) delete(writer http.ResponseWriter, request *http.Request) {
	id, ok := requestutil.ID(request, paramID)
	if !ok {
		respond.NotFound(writer)
		return
	}

	storedID, found, err := handler.service.Lookup(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if !found {
		respond.NotFound(writer)
		return
	}

	if err := handler.service.Delete(request.Context(), storedID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
