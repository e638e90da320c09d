// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scriptwriter/internal/docstore"
	"github.com/taibuivan/scriptwriter/internal/platform/constants"
	"github.com/taibuivan/scriptwriter/internal/platform/metrics"
)

type note struct {
	ID     *string `json:"id,omitempty"`
	BookID *string `json:"bookId,omitempty"`
	Text   string  `json:"text"`
	Rank   int     `json:"rank"`
}

func (n *note) DocumentID() string {
	if n.ID == nil {
		return ""
	}
	return *n.ID
}

func (n *note) SetDocumentID(id string) { n.ID = &id }

func strPtr(s string) *string { return &s }

func newNotes(t *testing.T) docstore.Collection[note] {
	t.Helper()
	return docstore.NewCollection[note](docstore.NewMemory("note"))
}

/*
TestCollection_InsertAssignsID verifies the store assigns distinct ids and
writes them back into the document.
*/
func TestCollection_InsertAssignsID(t *testing.T) {
	ctx := context.Background()
	notes := newNotes(t)

	first := &note{Text: "a"}
	second := &note{ID: strPtr("client-chosen"), Text: "b"}

	require.NoError(t, notes.InsertOne(ctx, first))
	require.NoError(t, notes.InsertOne(ctx, second))

	require.NotNil(t, first.ID)
	require.NotNil(t, second.ID)
	assert.NotEqual(t, *first.ID, *second.ID)
	assert.NotEqual(t, "client-chosen", *second.ID)

	stored, err := notes.FindByID(ctx, *first.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "a", stored.Text)
	assert.Equal(t, *first.ID, *stored.ID)
}

/*
TestCollection_FindByIDAbsent verifies an unknown id yields nil without error.
*/
func TestCollection_FindByIDAbsent(t *testing.T) {
	stored, err := newNotes(t).FindByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

/*
TestCollection_FindBy filters on a top-level string field.
*/
func TestCollection_FindBy(t *testing.T) {
	ctx := context.Background()
	notes := newNotes(t)

	for _, n := range []*note{
		{BookID: strPtr("b1"), Text: "one"},
		{BookID: strPtr("b2"), Text: "two"},
		{BookID: strPtr("b1"), Text: "three"},
		{Text: "orphan"},
	} {
		require.NoError(t, notes.InsertOne(ctx, n))
	}

	matched, err := notes.FindBy(ctx, "bookId", "b1")
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "one", matched[0].Text)
	assert.Equal(t, "three", matched[1].Text)

	none, err := notes.FindBy(ctx, "bookId", "b9")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	all, err := notes.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

/*
TestCollection_ReplaceOne verifies full replacement and the absent no-op.
*/
func TestCollection_ReplaceOne(t *testing.T) {
	ctx := context.Background()
	notes := newNotes(t)

	original := &note{Text: "draft", Rank: 1}
	require.NoError(t, notes.InsertOne(ctx, original))

	// 1. The stored id wins over the payload id
	replacement := &note{ID: strPtr("other"), Text: "final"}
	require.NoError(t, notes.ReplaceOne(ctx, *original.ID, replacement))
	assert.Equal(t, *original.ID, *replacement.ID)

	stored, err := notes.FindByID(ctx, *original.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", stored.Text)
	assert.Zero(t, stored.Rank)

	// 2. Absent ids are not created
	require.NoError(t, notes.ReplaceOne(ctx, "ghost", &note{Text: "x"}))
	ghost, err := notes.FindByID(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, ghost)
}

/*
TestCollection_DeleteOne verifies removal and the absent no-op.
*/
func TestCollection_DeleteOne(t *testing.T) {
	ctx := context.Background()
	notes := newNotes(t)

	doomed := &note{Text: "bye"}
	require.NoError(t, notes.InsertOne(ctx, doomed))

	require.NoError(t, notes.DeleteOne(ctx, *doomed.ID))
	require.NoError(t, notes.DeleteOne(ctx, *doomed.ID))
	require.NoError(t, notes.DeleteOne(ctx, "never-existed"))

	stored, err := notes.FindByID(ctx, *doomed.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	all, err := notes.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

/*
TestMemory_ReturnsCopies verifies callers cannot mutate stored bodies.
*/
func TestMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	memory := docstore.NewMemory("raw")

	body := []byte(`{"id":"a","text":"x"}`)
	require.NoError(t, memory.Insert(ctx, "a", body))
	body[0] = '!'

	stored, err := memory.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"a","text":"x"}`, string(stored))

	assert.Error(t, memory.Insert(ctx, "a", body))
}

/*
TestBackend_Open covers driver selection.
*/
func TestBackend_Open(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		backend := &docstore.Backend{Driver: constants.DriverMemory}
		driver, err := backend.Open(ctx, "comic")
		require.NoError(t, err)
		assert.Equal(t, "comic", driver.Name())
	})

	t.Run("missing_client", func(t *testing.T) {
		for _, name := range []string{constants.DriverSurrealDB, constants.DriverPostgres, constants.DriverRedis, constants.DriverNATS} {
			backend := &docstore.Backend{Driver: name}
			_, err := backend.Open(ctx, "comic")
			assert.Error(t, err, name)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		backend := &docstore.Backend{Driver: "mongo"}
		_, err := backend.Open(ctx, "comic")
		assert.ErrorContains(t, err, "unknown driver")
	})

	t.Run("typed", func(t *testing.T) {
		backend := &docstore.Backend{Driver: constants.DriverMemory}
		notes, err := docstore.Open[note](ctx, backend, "note")
		require.NoError(t, err)
		require.NoError(t, notes.InsertOne(ctx, &note{Text: "typed"}))
	})
}

/*
TestInstrument_CountsOperations verifies store calls are counted per collection
and operation.
*/
func TestInstrument_CountsOperations(t *testing.T) {
	ctx := context.Background()
	registry := metrics.NewRegistry()

	backend := &docstore.Backend{Driver: constants.DriverMemory, Metrics: registry}
	notes, err := docstore.Open[note](ctx, backend, "note")
	require.NoError(t, err)

	require.NoError(t, notes.InsertOne(ctx, &note{Text: "a"}))
	_, err = notes.FindByID(ctx, "missing")
	require.NoError(t, err)
	_, err = notes.FindByID(ctx, "missing")
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(registry.StoreOperations.WithLabelValues("note", "insert", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(registry.StoreOperations.WithLabelValues("note", "get", "ok")))
}
