// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestPostgres_Statements pins the generated SQL.
*/
func TestPostgres_Statements(t *testing.T) {
	p := NewPostgres(nil, "issue")

	tests := []struct {
		name    string
		builder sq.Sqlizer
		sql     string
		args    []any
	}{
		{
			name:    "list_by",
			builder: p.selectBodies().Where(sq.Expr("body ->> ? = ?", "comicId", "c1")),
			sql:     "SELECT body FROM documents WHERE collection = $1 AND body ->> $2 = $3 ORDER BY created_at, id",
			args:    []any{"issue", "comicId", "c1"},
		},
		{
			name:    "delete",
			builder: psql.Delete("documents").Where(p.key("i1")),
			sql:     "DELETE FROM documents WHERE collection = $1 AND id = $2",
			args:    []any{"issue", "i1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.builder.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.sql, query)
			assert.Equal(t, tt.args, args)
		})
	}
}
