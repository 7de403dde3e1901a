package service

import (
	"context"
	"fmt"
	"time"

	"blog-backend/internal/domains/article"
	"blog-backend/internal/domains/tag"
	"blog-backend/internal/shared/utils"
	"blog-backend/pkg/logger"

	"github.com/google/uuid"
)

type articleServiceImpl struct {
	repository     article.Repository
	tags           tag.Service
	publicPageSize int
	adminPageSize  int
}

func NewArticleService(repo article.Repository, tags tag.Service, publicPageSize, adminPageSize int) article.Service {
	return &articleServiceImpl{
		repository:     repo,
		tags:           tags,
		publicPageSize: publicPageSize,
		adminPageSize:  adminPageSize,
	}
}

// Save runs the whole save orchestration: load-or-new, normalize, backfill
// a blank url, reconcile tags, default the publish time, persist. Store
// errors such as a duplicate url from a lost race propagate untouched;
// there is no retry here.
func (s *articleServiceImpl) Save(ctx context.Context, in *article.SaveArticleInput) (*article.Article, error) {
	if in == nil {
		return nil, fmt.Errorf("save article: invalid request")
	}

	art := &article.Article{}
	if in.ID != nil {
		existing, err := s.repository.Find(ctx, *in.ID)
		if err != nil {
			return nil, err
		}
		art = existing
	}

	art.Title = in.Title
	art.URL = in.URL
	art.Content = in.Content
	if in.PublishedTimestamp != nil {
		art.PublishedTimestamp = in.PublishedTimestamp
	}
	switch {
	case in.Visible != nil:
		art.Visible = *in.Visible
	case in.ID == nil:
		// New articles default to visible, matching the admin form.
		art.Visible = true
	}

	art.Normalize()

	if err := s.ensureURL(ctx, art); err != nil {
		return nil, err
	}

	// Tag reconciliation persists new tags immediately. If the article
	// save below fails those tags stay behind; that side effect is
	// accepted rather than papered over with a transaction the store
	// contract does not define.
	resolved, err := s.tags.Reconcile(ctx, in.TagTitles)
	if err != nil {
		return nil, fmt.Errorf("reconcile tags: %w", err)
	}
	art.RemoveTags()
	for _, t := range resolved {
		art.AddTag(t)
	}

	if art.PublishedTimestamp == nil {
		now := time.Now()
		art.PublishedTimestamp = &now
	}

	saved, err := s.repository.Save(ctx, art)
	if err != nil {
		return nil, err
	}

	logger.Info("article saved", map[string]interface{}{
		"id":  saved.ID.String(),
		"url": saved.URL,
	})

	return saved, nil
}

// ensureURL backfills a blank url from the title, unique among all other
// articles. The article's own id is excluded so an edit keeps its url.
func (s *articleServiceImpl) ensureURL(ctx context.Context, art *article.Article) error {
	if art.URL != "" {
		return nil
	}

	var excludeID *uuid.UUID
	if art.ID != uuid.Nil {
		id := art.ID
		excludeID = &id
	}

	var existsErr error
	art.URL = utils.MakeUnique(utils.GenerateSlug(art.Title), func(candidate string) bool {
		if existsErr != nil {
			return false
		}
		taken, err := s.repository.URLExists(ctx, candidate, excludeID)
		if err != nil {
			existsErr = err
			return false
		}
		return taken
	})
	if existsErr != nil {
		return fmt.Errorf("resolve article url: %w", existsErr)
	}

	return nil
}

func (s *articleServiceImpl) Get(ctx context.Context, id uuid.UUID) (*article.Article, error) {
	return s.repository.Find(ctx, id)
}

func (s *articleServiceImpl) ListAdmin(ctx context.Context, page int, orderBy, orderDir string) (*article.Page, error) {
	if page < 1 {
		page = 1
	}

	orderBy, orderDir = article.NormalizeOrder(orderBy, orderDir)

	return s.repository.ListAll(ctx, page, s.adminPageSize, orderBy, orderDir)
}

func (s *articleServiceImpl) ChangeVisibility(ctx context.Context, id uuid.UUID, visible bool) (*article.Article, error) {
	art, err := s.repository.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	art.Visible = visible
	art.Normalize()

	if err := s.ensureURL(ctx, art); err != nil {
		return nil, err
	}

	return s.repository.Save(ctx, art)
}

func (s *articleServiceImpl) ListPublic(ctx context.Context, page int) (*article.Page, error) {
	if page < 1 {
		page = 1
	}

	return s.repository.ListPublishedPage(ctx, page, s.publicPageSize)
}

func (s *articleServiceImpl) GetPublicByURL(ctx context.Context, url string) (*article.Article, error) {
	art, err := s.repository.FindPublishedByURL(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := s.logView(ctx, art); err != nil {
		return nil, err
	}

	return art, nil
}

func (s *articleServiceImpl) FeedList(ctx context.Context) ([]article.Article, error) {
	return s.repository.ListPublished(ctx)
}

func (s *articleServiceImpl) FeedGet(ctx context.Context, id uuid.UUID) (*article.Article, error) {
	art, err := s.repository.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !art.IsPublic(time.Now()) {
		// No view is logged for a hidden or scheduled article.
		return nil, article.ErrArticleNotPublic
	}

	// The returned count predates this view; the increment lands in the
	// store only.
	if err := s.repository.IncrementViews(ctx, art.ID); err != nil {
		return nil, fmt.Errorf("log article view: %w", err)
	}

	return art, nil
}

func (s *articleServiceImpl) logView(ctx context.Context, art *article.Article) error {
	if err := s.repository.IncrementViews(ctx, art.ID); err != nil {
		return fmt.Errorf("log article view: %w", err)
	}

	art.IncreaseViewsCnt()
	return nil
}
