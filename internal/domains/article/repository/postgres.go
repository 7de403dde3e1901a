package repository

import (
	"context"
	"errors"
	"fmt"

	"blog-backend/internal/domains/article"
	"blog-backend/internal/domains/tag"
	"blog-backend/internal/shared/utils"
	"blog-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueURLConstraint = "uq_articles_url"

// orderColumns whitelists the admin-listing order keys against their
// storage columns. Keys outside this map never reach the SQL.
var orderColumns = map[string]string{
	article.OrderByTitle:              "title",
	article.OrderByPublishedTimestamp: "published_timestamp",
	article.OrderByViewsCnt:           "views_cnt",
	article.OrderByVisible:            "visible",
}

// DB is the subset of pgxpool.Pool the repository needs; pgxmock satisfies
// it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type postgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) article.Repository {
	return &postgresRepository{db: db}
}

const articleColumns = `id, title, url, content, published_timestamp, visible, views_cnt`

func scanArticle(row pgx.Row) (*article.Article, error) {
	a := &article.Article{}
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.URL,
		&a.Content,
		&a.PublishedTimestamp,
		&a.Visible,
		&a.ViewsCnt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *postgresRepository) Find(ctx context.Context, id uuid.UUID) (*article.Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM articles WHERE id = $1`, articleColumns)

	a, err := scanArticle(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, article.ErrArticleNotFound
		}
		logger.Error("Find: database error", err)
		return nil, fmt.Errorf("failed to find article: %w", err)
	}

	if err := r.loadTags(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (r *postgresRepository) loadTags(ctx context.Context, a *article.Article) error {
	const query = `
		SELECT t.uid, t.title
		FROM tags t
		INNER JOIN article_tags at ON at.tag_uid = t.uid
		WHERE at.article_id = $1
		ORDER BY t.title
	`

	rows, err := r.db.Query(ctx, query, a.ID)
	if err != nil {
		logger.Error("loadTags: database error", err)
		return fmt.Errorf("failed to load article tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t tag.Tag
		if err := rows.Scan(&t.UID, &t.Title); err != nil {
			return fmt.Errorf("failed to scan article tag: %w", err)
		}
		a.AddTag(t)
	}

	return rows.Err()
}

// URLExists re-normalizes the candidate through slug generation before the
// check; a caller-supplied url never probes the store raw.
func (r *postgresRepository) URLExists(ctx context.Context, candidate string, excludeID *uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM articles
			WHERE url = $1 AND ($2::uuid IS NULL OR id <> $2)
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, utils.GenerateSlug(candidate), excludeID).Scan(&exists)
	if err != nil {
		logger.Error("URLExists: database error", err)
		return false, fmt.Errorf("failed to check article url: %w", err)
	}

	return exists, nil
}

// Save writes the article row and rebinds its tag set in one transaction,
// assigning the ID on first save. The tags themselves were persisted
// earlier by the reconciler and are not part of this transaction.
func (r *postgresRepository) Save(ctx context.Context, a *article.Article) (*article.Article, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin article save: %w", err)
	}
	defer tx.Rollback(ctx)

	if a.ID == uuid.Nil {
		a.ID = uuid.New()

		const insert = `
			INSERT INTO articles (id, title, url, content, published_timestamp, visible, views_cnt)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		_, err = tx.Exec(ctx, insert,
			a.ID, a.Title, a.URL, a.Content, a.PublishedTimestamp, a.Visible, a.ViewsCnt)
	} else {
		const update = `
			UPDATE articles
			SET title = $2, url = $3, content = $4, published_timestamp = $5, visible = $6
			WHERE id = $1
		`
		_, err = tx.Exec(ctx, update,
			a.ID, a.Title, a.URL, a.Content, a.PublishedTimestamp, a.Visible)
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == uniqueURLConstraint {
			logger.Error("Save: duplicate url", err)
			return nil, article.ErrDuplicateURL
		}
		logger.Error("Save: database error", err)
		return nil, fmt.Errorf("failed to save article: %w", err)
	}

	// Full replace of the tag binding; the article owns this relation.
	if _, err := tx.Exec(ctx, `DELETE FROM article_tags WHERE article_id = $1`, a.ID); err != nil {
		logger.Error("Save: failed to clear tag bindings", err)
		return nil, fmt.Errorf("failed to clear article tags: %w", err)
	}
	for _, uid := range a.TagUIDs() {
		const bind = `
			INSERT INTO article_tags (article_id, tag_uid)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`
		if _, err := tx.Exec(ctx, bind, a.ID, uid); err != nil {
			logger.Error("Save: failed to bind tag", err)
			return nil, fmt.Errorf("failed to bind article tag: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit article save: %w", err)
	}

	return a, nil
}

const publishedFilter = `visible = true AND published_timestamp <= now()`

func (r *postgresRepository) ListPublished(ctx context.Context) ([]article.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM articles
		WHERE %s
		ORDER BY published_timestamp DESC
	`, articleColumns, publishedFilter)

	return r.queryArticles(ctx, query)
}

func (r *postgresRepository) ListPublishedPage(ctx context.Context, page, pageSize int) (*article.Page, error) {
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM articles WHERE %s`, publishedFilter)

	var total int
	if err := r.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		logger.Error("ListPublishedPage: count error", err)
		return nil, fmt.Errorf("failed to count published articles: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM articles
		WHERE %s
		ORDER BY published_timestamp DESC
		LIMIT $1 OFFSET $2
	`, articleColumns, publishedFilter)

	items, err := r.queryArticles(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	return &article.Page{Items: items, Page: page, PageSize: pageSize, Total: total}, nil
}

func (r *postgresRepository) FindPublishedByURL(ctx context.Context, url string) (*article.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM articles
		WHERE url = $1 AND %s
		LIMIT 1
	`, articleColumns, publishedFilter)

	a, err := scanArticle(r.db.QueryRow(ctx, query, url))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, article.ErrArticleNotFound
		}
		logger.Error("FindPublishedByURL: database error", err)
		return nil, fmt.Errorf("failed to find published article: %w", err)
	}

	if err := r.loadTags(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (r *postgresRepository) ListAll(ctx context.Context, page, pageSize int, orderBy, orderDir string) (*article.Page, error) {
	column, ok := orderColumns[orderBy]
	if !ok {
		column = orderColumns[article.OrderByPublishedTimestamp]
	}
	if orderDir != article.OrderDirAsc && orderDir != article.OrderDirDesc {
		orderDir = article.OrderDirDesc
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM articles`).Scan(&total); err != nil {
		logger.Error("ListAll: count error", err)
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM articles
		ORDER BY %s %s
		LIMIT $1 OFFSET $2
	`, articleColumns, column, orderDir)

	items, err := r.queryArticles(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	return &article.Page{Items: items, Page: page, PageSize: pageSize, Total: total}, nil
}

// IncrementViews bumps the counter in the store itself so concurrent
// readers cannot lose increments.
func (r *postgresRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE articles SET views_cnt = views_cnt + 1 WHERE id = $1`

	ct, err := r.db.Exec(ctx, query, id)
	if err != nil {
		logger.Error("IncrementViews: database error", err)
		return fmt.Errorf("failed to increment views: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return article.ErrArticleNotFound
	}

	return nil
}

func (r *postgresRepository) queryArticles(ctx context.Context, query string, args ...any) ([]article.Article, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error("queryArticles: database error", err)
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	items := make([]article.Article, 0)
	for rows.Next() {
		var a article.Article
		err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.URL,
			&a.Content,
			&a.PublishedTimestamp,
			&a.Visible,
			&a.ViewsCnt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read articles: %w", err)
	}

	return items, nil
}
