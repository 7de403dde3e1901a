package handler

import (
	"strings"

	"blog-backend/internal/domains/article"
	"blog-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// PublicArticleHandler serves the read-only public site: the published
// listing and the detail page. Detail views are logged as article views.
type PublicArticleHandler struct {
	service article.Service
}

func NewPublicArticleHandler(svc article.Service) *PublicArticleHandler {
	return &PublicArticleHandler{service: svc}
}

// List - GET /articles?page=1
func (h *PublicArticleHandler) List(c *gin.Context) {
	page := parsePage(c.DefaultQuery("page", "1"))

	result, err := h.service.ListPublic(c.Request.Context(), page)
	if err != nil {
		domainFailure(c, "LIST_FAILED", err)
		return
	}

	items := make([]*article.PublicArticleItem, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, article.NewPublicArticleItem(&result.Items[i]))
	}

	response.Paged(c, items, &response.Meta{
		Page:  result.Page,
		Limit: result.PageSize,
		Total: result.Total,
	})
}

// Detail - GET /articles/:url
func (h *PublicArticleHandler) Detail(c *gin.Context) {
	url := strings.TrimSpace(c.Param("url"))
	if url == "" {
		response.BadRequest(c, "article url is required")
		return
	}

	art, err := h.service.GetPublicByURL(c.Request.Context(), url)
	if err != nil {
		domainFailure(c, "DETAIL_FAILED", err)
		return
	}

	response.OK(c, article.NewPublicArticleDetail(art))
}
