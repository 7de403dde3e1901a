package container

import (
	"context"
	"fmt"
	"time"

	"blog-backend/internal/config"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/pkg/logger"

	"blog-backend/internal/domains/article"
	articleHandler "blog-backend/internal/domains/article/handler"
	articleRepo "blog-backend/internal/domains/article/repository"
	articleService "blog-backend/internal/domains/article/service"
	"blog-backend/internal/domains/tag"
	tagRepo "blog-backend/internal/domains/tag/repository"
	tagService "blog-backend/internal/domains/tag/service"
)

// Container is the root of the dependency graph: infrastructure first,
// then repositories, services and handlers on top.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	ArticleRepo article.Repository
	TagRepo     tag.Repository

	TagService     tag.Service
	ArticleService article.Service

	AdminHandler  *articleHandler.AdminArticleHandler
	PublicHandler *articleHandler.PublicArticleHandler
	FeedHandler   *articleHandler.FeedHandler
}

// NewContainer initializes the whole dependency graph in order. A failure
// anywhere aborts startup.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	c.ArticleRepo = articleRepo.NewPostgresRepository(db.Pool)
	c.TagRepo = tagRepo.NewPostgresRepository(db.Pool)

	c.TagService = tagService.NewTagService(c.TagRepo)
	c.ArticleService = articleService.NewArticleService(
		c.ArticleRepo,
		c.TagService,
		cfg.Blog.PublicPageSize,
		cfg.Blog.AdminPageSize,
	)

	c.AdminHandler = articleHandler.NewAdminArticleHandler(c.ArticleService)
	c.PublicHandler = articleHandler.NewPublicArticleHandler(c.ArticleService)
	c.FeedHandler = articleHandler.NewFeedHandler(c.ArticleService, cfg.App.BaseURL)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
