package handler

import (
	"errors"
	"net/http"

	"blog-backend/internal/domains/article"
	"blog-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	feedErrNotFound  = "Article not found"
	feedErrNotPublic = "Article is not public"
)

// FeedHandler mirrors the public content as raw JSON for machine
// consumers. Domain outcomes are always HTTP 200; a miss or a non-public
// article comes back as an error-shaped body, never an HTTP error status.
// Infrastructure failures are the one exception and return 500.
type FeedHandler struct {
	service article.Service
	baseURL string
}

func NewFeedHandler(svc article.Service, baseURL string) *FeedHandler {
	return &FeedHandler{service: svc, baseURL: baseURL}
}

// List - GET /feed/articles
func (h *FeedHandler) List(c *gin.Context) {
	articles, err := h.service.FeedList(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	items := make([]*article.FeedArticleItem, 0, len(articles))
	for i := range articles {
		a := &articles[i]
		items = append(items, article.NewFeedArticleItem(a, h.articleLink(a)))
	}

	c.JSON(http.StatusOK, items)
}

// Get - GET /feed/articles/:id
func (h *FeedHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": feedErrNotFound})
		return
	}

	art, err := h.service.FeedGet(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, article.ErrArticleNotFound):
			c.JSON(http.StatusOK, gin.H{"error": feedErrNotFound})
		case errors.Is(err, article.ErrArticleNotPublic):
			c.JSON(http.StatusOK, gin.H{"error": feedErrNotPublic})
		default:
			response.InternalServerError(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, article.NewFeedArticleDetail(art, h.articleLink(art)))
}

func (h *FeedHandler) articleLink(a *article.Article) string {
	return h.baseURL + "/api/v1/articles/" + a.URL
}
