// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/scriptwriter/internal/platform/database/schema"
	"github.com/taibuivan/scriptwriter/internal/platform/dberr"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Postgres stores a collection as rows of the shared JSONB documents table.
type Postgres struct {
	pool *pgxpool.Pool
	name string
}

// NewPostgres binds the collection name to a pool.
func NewPostgres(pool *pgxpool.Pool, name string) *Postgres {
	return &Postgres{pool: pool, name: name}
}

func (p *Postgres) Name() string { return p.name }

func (p *Postgres) inCollection() sq.Eq {
	return sq.Eq{schema.Documents.Collection: p.name}
}

func (p *Postgres) key(id string) sq.Eq {
	return sq.Eq{schema.Documents.Collection: p.name, schema.Documents.ID: id}
}

func (p *Postgres) selectBodies() sq.SelectBuilder {
	return psql.Select(schema.Documents.Body).
		From(schema.Documents.Table).
		Where(p.inCollection()).
		OrderBy(schema.Documents.CreatedAt, schema.Documents.ID)
}

func (p *Postgres) Get(ctx context.Context, id string) ([]byte, error) {
	query, args, err := psql.Select(schema.Documents.Body).
		From(schema.Documents.Table).
		Where(p.key(id)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("docstore: build get: %w", err)
	}

	var body []byte
	if err := p.pool.QueryRow(ctx, query, args...).Scan(&body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, pgError(err)
	}
	return body, nil
}

func (p *Postgres) List(ctx context.Context) ([][]byte, error) {
	return p.query(ctx, p.selectBodies())
}

func (p *Postgres) ListBy(ctx context.Context, field, value string) ([][]byte, error) {
	return p.query(ctx, p.selectBodies().
		Where(sq.Expr(schema.Documents.Body+" ->> ? = ?", field, value)))
}

func (p *Postgres) Insert(ctx context.Context, id string, body []byte) error {
	return p.exec(ctx, psql.Insert(schema.Documents.Table).
		Columns(schema.Documents.Columns()...).
		Values(p.name, id, string(body)))
}

func (p *Postgres) Replace(ctx context.Context, id string, body []byte) error {
	return p.exec(ctx, psql.Update(schema.Documents.Table).
		Set(schema.Documents.Body, string(body)).
		Set(schema.Documents.UpdatedAt, sq.Expr("NOW()")).
		Where(p.key(id)))
}

func (p *Postgres) Delete(ctx context.Context, id string) error {
	return p.exec(ctx, psql.Delete(schema.Documents.Table).Where(p.key(id)))
}

func (p *Postgres) query(ctx context.Context, builder sq.SelectBuilder) ([][]byte, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("docstore: build list: %w", err)
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, pgError(err)
	}

	bodies, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, pgError(err)
	}
	return bodies, nil
}

func (p *Postgres) exec(ctx context.Context, builder sq.Sqlizer) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("docstore: build statement: %w", err)
	}

	if _, err := p.pool.Exec(ctx, query, args...); err != nil {
		return pgError(err)
	}
	return nil
}

// pgError marks connection-level failures as unavailable.
func pgError(err error) error {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %w", dberr.ErrUnavailable, err)
	}
	return err
}
