// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

const selectByFieldQuery = "SELECT * FROM type::table($table) WHERE type::field($field) = $value"

// record is a document as SurrealDB returns it. Its "id" is a record id.
type record = map[string]any

// Surreal stores a collection as a SurrealDB table. The document id is the
// record key, so table:id addresses a document directly.
type Surreal struct {
	db   *surrealdb.DB
	name string
}

// NewSurreal binds the collection name to a SurrealDB session.
func NewSurreal(db *surrealdb.DB, name string) *Surreal {
	return &Surreal{db: db, name: name}
}

func (s *Surreal) Name() string { return s.name }

func (s *Surreal) recordID(id string) models.RecordID {
	return models.NewRecordID(s.name, id)
}

func (s *Surreal) Get(ctx context.Context, id string) ([]byte, error) {
	found, err := surrealdb.Select[record](ctx, s.db, s.recordID(id))
	if err != nil {
		return nil, err
	}
	if found == nil || (*found)["id"] == nil {
		return nil, nil
	}
	return fromRecord(*found)
}

func (s *Surreal) List(ctx context.Context) ([][]byte, error) {
	found, err := surrealdb.Select[[]record](ctx, s.db, models.Table(s.name))
	if err != nil {
		return nil, err
	}
	if found == nil {
		return [][]byte{}, nil
	}
	return fromRecords(*found)
}

func (s *Surreal) ListBy(ctx context.Context, field, value string) ([][]byte, error) {
	results, err := surrealdb.Query[[]record](ctx, s.db, selectByFieldQuery, map[string]any{
		"table": s.name,
		"field": field,
		"value": value,
	})
	if err != nil {
		return nil, err
	}
	if results == nil || len(*results) == 0 {
		return [][]byte{}, nil
	}
	return fromRecords((*results)[0].Result)
}

func (s *Surreal) Insert(ctx context.Context, id string, body []byte) error {
	content, err := toContent(body)
	if err != nil {
		return err
	}

	_, err = surrealdb.Create[record](ctx, s.db, s.recordID(id), content)
	return err
}

func (s *Surreal) Replace(ctx context.Context, id string, body []byte) error {
	content, err := toContent(body)
	if err != nil {
		return err
	}

	// UPDATE never creates a missing record
	_, err = surrealdb.Update[record](ctx, s.db, s.recordID(id), content)
	return err
}

func (s *Surreal) Delete(ctx context.Context, id string) error {
	_, err := surrealdb.Delete[record](ctx, s.db, s.recordID(id))
	return err
}

// toContent decodes body into record content without the "id" field, which
// SurrealDB takes from the record id.
func toContent(body []byte) (record, error) {
	var content record
	if err := json.Unmarshal(body, &content); err != nil {
		return nil, fmt.Errorf("docstore: decode content: %w", err)
	}
	delete(content, "id")
	return content, nil
}

// fromRecord flattens the record id back to its key and re-encodes as JSON.
func fromRecord(rec record) ([]byte, error) {
	rec["id"] = recordKey(rec["id"])

	body, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("docstore: encode record: %w", err)
	}
	return body, nil
}

func fromRecords(records []record) ([][]byte, error) {
	bodies := make([][]byte, 0, len(records))
	for _, rec := range records {
		body, err := fromRecord(rec)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, body)
	}
	return bodies, nil
}

func recordKey(value any) string {
	switch id := value.(type) {
	case models.RecordID:
		return fmt.Sprint(id.ID)
	case *models.RecordID:
		return fmt.Sprint(id.ID)
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}
