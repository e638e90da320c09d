// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package resource_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scriptwriter/internal/core/resource"
	"github.com/taibuivan/scriptwriter/internal/docstore"
	"github.com/taibuivan/scriptwriter/internal/platform/respond"
)

var discardLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// shelf is a root kind, book a child of shelf.
type shelf struct {
	ID    *string `json:"id,omitempty"`
	Label string  `json:"label"`
}

func (s *shelf) DocumentID() string      { return deref(s.ID) }
func (s *shelf) SetDocumentID(id string) { s.ID = &id }

type book struct {
	ID      *string `json:"id,omitempty"`
	ShelfID *string `json:"shelfId,omitempty"`
	Title   string  `json:"title"`
}

func (b *book) DocumentID() string      { return deref(b.ID) }
func (b *book) SetDocumentID(id string) { b.ID = &id }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var (
	shelfKind = resource.Kind[shelf]{Name: "Shelf"}
	bookKind  = resource.Kind[book]{
		Name:        "Book",
		ParentName:  "Shelf",
		ParentRoute: "shelf",
		ParentField: "shelfId",
		SetParent:   func(b *book, parentID string) { b.ShelfID = &parentID },
	}
)

type fixture struct {
	router  chi.Router
	shelves docstore.Collection[shelf]
	books   docstore.Collection[book]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		shelves: docstore.NewCollection[shelf](docstore.NewMemory("shelf")),
		books:   docstore.NewCollection[book](docstore.NewMemory("book")),
	}

	shelfService := resource.NewService[shelf](shelfKind, f.shelves, discardLogger)
	bookService := resource.NewService[book](bookKind, f.books, discardLogger)

	f.router = chi.NewRouter()
	f.router.Route("/api", func(api chi.Router) {
		for _, handler := range []interface {
			Pattern() string
			RegisterRoutes(chi.Router)
		}{
			resource.NewHandler(shelfService, nil),
			resource.NewHandler(bookService, shelfService),
		} {
			api.Route(handler.Pattern(), handler.RegisterRoutes)
		}
	})

	return f
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch payload := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(payload)
	default:
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, request)
	return recorder
}

// decodeData unwraps the success envelope into out.
func decodeData(t *testing.T, recorder *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) respond.ErrorEnvelope {
	t.Helper()

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope
}

func (f *fixture) seedShelf(t *testing.T, label string) string {
	t.Helper()

	s := &shelf{Label: label}
	require.NoError(t, f.shelves.InsertOne(context.Background(), s))
	return *s.ID
}

func (f *fixture) seedBook(t *testing.T, shelfID, title string) string {
	t.Helper()

	b := &book{ShelfID: &shelfID, Title: title}
	require.NoError(t, f.books.InsertOne(context.Background(), b))
	return *b.ID
}
