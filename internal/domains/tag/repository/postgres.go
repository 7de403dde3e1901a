package repository

import (
	"context"
	"errors"
	"fmt"

	"blog-backend/internal/domains/tag"
	"blog-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock satisfies
// it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) tag.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) FindByTitle(ctx context.Context, title string) (*tag.Tag, error) {
	// LIMIT 2 is enough to tell "exactly one" from "ambiguous".
	const query = `
		SELECT uid, title
		FROM tags
		WHERE title = $1
		LIMIT 2
	`

	rows, err := r.db.Query(ctx, query, title)
	if err != nil {
		logger.Error("FindByTitle: database error", err)
		return nil, fmt.Errorf("failed to find tag by title: %w", err)
	}
	defer rows.Close()

	var matches []tag.Tag
	for rows.Next() {
		var t tag.Tag
		if err := rows.Scan(&t.UID, &t.Title); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		matches = append(matches, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}

	if len(matches) != 1 {
		return nil, nil
	}

	return &matches[0], nil
}

func (r *postgresRepository) Find(ctx context.Context, uid string) (*tag.Tag, error) {
	const query = `
		SELECT uid, title
		FROM tags
		WHERE uid = $1
	`

	t := &tag.Tag{}
	err := r.db.QueryRow(ctx, query, uid).Scan(&t.UID, &t.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error("Find: database error", err)
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}

	return t, nil
}

func (r *postgresRepository) Exists(ctx context.Context, uid string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM tags WHERE uid = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, uid).Scan(&exists); err != nil {
		logger.Error("Exists: database error", err)
		return false, fmt.Errorf("failed to check tag uid: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) Save(ctx context.Context, t *tag.Tag) (*tag.Tag, error) {
	const query = `
		INSERT INTO tags (uid, title)
		VALUES ($1, $2)
		ON CONFLICT (uid) DO UPDATE SET title = EXCLUDED.title
		RETURNING uid, title
	`

	saved := &tag.Tag{}
	err := r.db.QueryRow(ctx, query, t.UID, t.Title).Scan(&saved.UID, &saved.Title)
	if err != nil {
		logger.Error("Save: database error", err)
		return nil, fmt.Errorf("failed to save tag: %w", err)
	}

	return saved, nil
}

func (r *postgresRepository) CountArticles(ctx context.Context, uid string) (int, error) {
	const query = `SELECT COUNT(*) FROM article_tags WHERE tag_uid = $1`

	var count int
	if err := r.db.QueryRow(ctx, query, uid).Scan(&count); err != nil {
		logger.Error("CountArticles: database error", err)
		return 0, fmt.Errorf("failed to count tag articles: %w", err)
	}

	return count, nil
}
