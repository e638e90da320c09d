// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package docstore is the document store adapter used by every entity service.

It is split in two layers:

  - [Driver]: byte-level access to one named collection. One implementation per
    backend (SurrealDB, PostgreSQL JSONB, Redis hash, NATS KV, memory).
  - [Collection]: the typed view services consume. It assigns identifiers on
    insert and converts documents to and from JSON.

Every operation touches a single document or a single collection scan, so the
only atomicity guarantee is per document.
*/
package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/taibuivan/scriptwriter/pkg/uuid"
)

// Document is the constraint for entity models. P is the pointer type of T and
// exposes the identifier so the store can assign and normalize it.
type Document[T any] interface {
	*T
	DocumentID() string
	SetDocumentID(id string)
}

// Collection is the typed access to one collection of documents.
type Collection[T any] interface {
	// FindByID returns nil without error when no document has the id.
	FindByID(ctx context.Context, id string) (*T, error)
	FindAll(ctx context.Context) ([]*T, error)
	// FindBy returns documents whose top-level string field equals value.
	FindBy(ctx context.Context, field, value string) ([]*T, error)
	// InsertOne stores a new document and writes the assigned id into it.
	InsertOne(ctx context.Context, doc *T) error
	// ReplaceOne overwrites the stored document. It does nothing when absent.
	ReplaceOne(ctx context.Context, id string, doc *T) error
	// DeleteOne removes the document. It does nothing when absent.
	DeleteOne(ctx context.Context, id string) error
}

// Driver is the backend contract for a single collection. Bodies are JSON
// objects that include the "id" field.
type Driver interface {
	// Name returns the collection name.
	Name() string
	// Get returns nil without error when the id is absent.
	Get(ctx context.Context, id string) ([]byte, error)
	List(ctx context.Context) ([][]byte, error)
	ListBy(ctx context.Context, field, value string) ([][]byte, error)
	Insert(ctx context.Context, id string, body []byte) error
	// Replace must not create the document when it is absent.
	Replace(ctx context.Context, id string, body []byte) error
	Delete(ctx context.Context, id string) error
}

// collection implements [Collection] over a [Driver].
type collection[T any, P Document[T]] struct {
	driver Driver
	newID  func() string
}

// NewCollection returns the typed view of driver. Identifiers are UUIDv7 strings.
func NewCollection[T any, P Document[T]](driver Driver) Collection[T] {
	return &collection[T, P]{driver: driver, newID: uuid.New}
}

func (c *collection[T, P]) FindByID(ctx context.Context, id string) (*T, error) {
	body, err := c.driver.Get(ctx, id)
	if err != nil || body == nil {
		return nil, err
	}
	return c.decode(body)
}

func (c *collection[T, P]) FindAll(ctx context.Context) ([]*T, error) {
	bodies, err := c.driver.List(ctx)
	if err != nil {
		return nil, err
	}
	return c.decodeAll(bodies)
}

func (c *collection[T, P]) FindBy(ctx context.Context, field, value string) ([]*T, error) {
	bodies, err := c.driver.ListBy(ctx, field, value)
	if err != nil {
		return nil, err
	}
	return c.decodeAll(bodies)
}

func (c *collection[T, P]) InsertOne(ctx context.Context, doc *T) error {
	id := c.newID()
	P(doc).SetDocumentID(id)

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("docstore: encode %s: %w", c.driver.Name(), err)
	}

	return c.driver.Insert(ctx, id, body)
}

func (c *collection[T, P]) ReplaceOne(ctx context.Context, id string, doc *T) error {
	P(doc).SetDocumentID(id)

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("docstore: encode %s: %w", c.driver.Name(), err)
	}

	return c.driver.Replace(ctx, id, body)
}

func (c *collection[T, P]) DeleteOne(ctx context.Context, id string) error {
	return c.driver.Delete(ctx, id)
}

func (c *collection[T, P]) decode(body []byte) (*T, error) {
	doc := new(T)
	if err := json.Unmarshal(body, doc); err != nil {
		return nil, fmt.Errorf("docstore: decode %s: %w", c.driver.Name(), err)
	}
	return doc, nil
}

func (c *collection[T, P]) decodeAll(bodies [][]byte) ([]*T, error) {
	docs := make([]*T, 0, len(bodies))
	for _, body := range bodies {
		doc, err := c.decode(body)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// matchField reports whether the top-level string field of body equals value.
// Backends without a native field filter scan with it.
func matchField(body []byte, field, value string) (bool, error) {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return false, fmt.Errorf("docstore: decode for filter: %w", err)
	}

	got, ok := fields[field].(string)
	return ok && got == value, nil
}

// filterBodies keeps the bodies whose field equals value.
func filterBodies(bodies [][]byte, field, value string) ([][]byte, error) {
	matched := make([][]byte, 0, len(bodies))
	for _, body := range bodies {
		ok, err := matchField(body, field, value)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, body)
		}
	}
	return matched, nil
}
