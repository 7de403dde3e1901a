package article

import (
	"context"

	"github.com/google/uuid"
)

// Page is one page of a listing plus the counters pagination needs.
type Page struct {
	Items    []Article
	Page     int
	PageSize int
	Total    int
}

// Repository is the article store contract. Uniqueness checks are
// read-then-write with no atomicity guarantee; a lost race surfaces as
// ErrDuplicateURL from Save and is the caller's to handle.
type Repository interface {
	// Find loads one article with its tags. ErrArticleNotFound on miss.
	Find(ctx context.Context, id uuid.UUID) (*Article, error)

	// URLExists reports whether a url is taken by another article. The
	// candidate is re-normalized through slug generation before the
	// check. excludeID skips the article being edited.
	URLExists(ctx context.Context, candidate string, excludeID *uuid.UUID) (bool, error)

	// Save inserts or updates the article and fully rebinds its tag
	// associations. Assigns the ID on first save.
	Save(ctx context.Context, a *Article) (*Article, error)

	// ListPublished returns every currently-public article, newest first.
	ListPublished(ctx context.Context) ([]Article, error)

	// ListPublishedPage pages the published listing, newest first.
	ListPublishedPage(ctx context.Context, page, pageSize int) (*Page, error)

	// FindPublishedByURL loads one currently-public article (with tags)
	// by url. ErrArticleNotFound when absent or not public.
	FindPublishedByURL(ctx context.Context, url string) (*Article, error)

	// ListAll pages every article for the admin listing. orderBy and
	// orderDir must already be normalized.
	ListAll(ctx context.Context, page, pageSize int, orderBy, orderDir string) (*Page, error)

	// IncrementViews bumps the view counter atomically in the store.
	IncrementViews(ctx context.Context, id uuid.UUID) error
}
