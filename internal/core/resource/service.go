// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package resource

import (
	"context"
	"log/slog"

	"github.com/taibuivan/scriptwriter/internal/docstore"
	"github.com/taibuivan/scriptwriter/internal/platform/dberr"
)

// ParentLookup checks that a parent exists and returns its stored id.
type ParentLookup interface {
	Lookup(context context.Context, id string) (string, bool, error)
}

// Service gives access to one entity collection. Each method is a single
// store round trip; failures come back as apperr values.
type Service[T any, P docstore.Document[T]] struct {
	kind       Kind[T]
	collection docstore.Collection[T]
	logger     *slog.Logger
}

// NewService builds the service of kind over collection. Log entries carry
// the entity name.
func NewService[T any, P docstore.Document[T]](kind Kind[T], collection docstore.Collection[T], logger *slog.Logger) *Service[T, P] {
	return &Service[T, P]{
		kind:       kind,
		collection: collection,
		logger:     logger.With(slog.String("entity", kind.Name)),
	}
}

// Kind returns the entity description the service was built with.
func (service *Service[T, P]) Kind() Kind[T] {
	return service.kind
}

// # Read Operations

// GetWithID returns nil without error when the document does not exist.
func (service *Service[T, P]) GetWithID(context context.Context, id string) (*T, error) {
	doc, err := service.collection.FindByID(context, id)
	if err != nil {
		return nil, dberr.Wrap(err, service.kind.action("find"))
	}
	return doc, nil
}

// GetAll returns every document of the collection. Used by root kinds.
func (service *Service[T, P]) GetAll(context context.Context) ([]*T, error) {
	docs, err := service.collection.FindAll(context)
	if err != nil {
		return nil, dberr.Wrap(err, service.kind.action("list"))
	}
	return docs, nil
}

// GetAllForParent returns the documents whose parent reference equals
// parentID, or an empty slice.
func (service *Service[T, P]) GetAllForParent(context context.Context, parentID string) ([]*T, error) {
	docs, err := service.collection.FindBy(context, service.kind.ParentField, parentID)
	if err != nil {
		return nil, dberr.Wrap(err, service.kind.action("list_for_parent"))
	}
	if docs == nil {
		docs = []*T{}
	}
	return docs, nil
}

// # Write Operations

// Create inserts doc; the assigned id is written into it.
func (service *Service[T, P]) Create(context context.Context, doc *T) error {
	if err := service.collection.InsertOne(context, doc); err != nil {
		return dberr.Wrap(err, service.kind.action("insert"))
	}

	service.logger.Info(service.kind.event("created"), slog.String("id", P(doc).DocumentID()))
	return nil
}

// Update fully replaces the document. Absent ids are left absent.
func (service *Service[T, P]) Update(context context.Context, id string, doc *T) error {
	if err := service.collection.ReplaceOne(context, id, doc); err != nil {
		return dberr.Wrap(err, service.kind.action("replace"))
	}

	service.logger.Info(service.kind.event("updated"), slog.String("id", id))
	return nil
}

// Delete removes the document. Absent ids and children are left untouched.
func (service *Service[T, P]) Delete(context context.Context, id string) error {
	if err := service.collection.DeleteOne(context, id); err != nil {
		return dberr.Wrap(err, service.kind.action("delete"))
	}

	service.logger.Warn(service.kind.event("deleted"), slog.String("id", id))
	return nil
}

// # Parent Lookup

// Lookup implements [ParentLookup].
func (service *Service[T, P]) Lookup(context context.Context, id string) (string, bool, error) {
	doc, err := service.GetWithID(context, id)
	if err != nil || doc == nil {
		return "", false, err
	}
	return P(doc).DocumentID(), true, nil
}
