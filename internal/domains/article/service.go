package article

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SaveArticleInput carries one admin save. A nil ID creates, a set ID
// updates. Visible nil means "not submitted": creates default to visible,
// updates keep the stored flag.
type SaveArticleInput struct {
	ID                 *uuid.UUID
	Title              string
	URL                string
	Content            string
	PublishedTimestamp *time.Time
	Visible            *bool
	TagTitles          string
}

// Service is the article business logic: save orchestration for the admin
// side, visibility-gated reads for the public side.
type Service interface {
	// Save normalizes the article, backfills a blank url from the title
	// (unique among all other articles), reconciles tags from the csv
	// input and persists. Store errors propagate without retry.
	Save(ctx context.Context, in *SaveArticleInput) (*Article, error)

	// Get loads one article regardless of visibility (admin view).
	Get(ctx context.Context, id uuid.UUID) (*Article, error)

	// ListAdmin pages all articles; orderBy/orderDir are normalized
	// through NormalizeOrder before hitting the store.
	ListAdmin(ctx context.Context, page int, orderBy, orderDir string) (*Page, error)

	// ChangeVisibility flips the visible flag and saves.
	ChangeVisibility(ctx context.Context, id uuid.UUID, visible bool) (*Article, error)

	// ListPublic pages the published listing for the public site.
	ListPublic(ctx context.Context, page int) (*Page, error)

	// GetPublicByURL loads a public article by url and logs a view.
	GetPublicByURL(ctx context.Context, url string) (*Article, error)

	// FeedList returns all currently-public articles for the feed API.
	FeedList(ctx context.Context) ([]Article, error)

	// FeedGet loads one article for the feed API. ErrArticleNotFound when
	// absent, ErrArticleNotPublic when hidden or scheduled; a public hit
	// logs a view, the error cases do not. The returned snapshot carries
	// the count from before the logged view.
	FeedGet(ctx context.Context, id uuid.UUID) (*Article, error)
}
