package handler

import (
	"strconv"

	"blog-backend/internal/domains/article"
	"blog-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminArticleHandler serves the admin side: full listings regardless of
// visibility, create/update, and the visibility toggle. Authentication and
// the admin-role gate sit in front of these routes as middleware.
type AdminArticleHandler struct {
	service article.Service
}

func NewAdminArticleHandler(svc article.Service) *AdminArticleHandler {
	return &AdminArticleHandler{service: svc}
}

// List - GET /admin/articles?page=1&orderBy=title&orderDir=asc
func (h *AdminArticleHandler) List(c *gin.Context) {
	page := parsePage(c.DefaultQuery("page", "1"))

	result, err := h.service.ListAdmin(
		c.Request.Context(),
		page,
		c.Query("orderBy"),
		c.Query("orderDir"),
	)
	if err != nil {
		domainFailure(c, "LIST_FAILED", err)
		return
	}

	items := make([]*article.AdminArticleResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, article.NewAdminArticleResponse(&result.Items[i]))
	}

	response.Paged(c, items, &response.Meta{
		Page:  result.Page,
		Limit: result.PageSize,
		Total: result.Total,
	})
}

// Get - GET /admin/articles/:id
func (h *AdminArticleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	art, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		domainFailure(c, "GET_FAILED", err)
		return
	}

	response.OK(c, article.NewAdminArticleResponse(art))
}

// Create - POST /admin/articles
func (h *AdminArticleHandler) Create(c *gin.Context) {
	var req article.SaveArticleRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.Invalid(c, "invalid article", err)
		return
	}

	art, err := h.service.Save(c.Request.Context(), req.ToInput(nil))
	if err != nil {
		domainFailure(c, "SAVE_FAILED", err)
		return
	}

	response.Created(c, article.NewAdminArticleResponse(art))
}

// Update - PUT /admin/articles/:id
func (h *AdminArticleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	var req article.SaveArticleRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.Invalid(c, "invalid article", err)
		return
	}

	art, err := h.service.Save(c.Request.Context(), req.ToInput(&id))
	if err != nil {
		domainFailure(c, "SAVE_FAILED", err)
		return
	}

	response.OK(c, article.NewAdminArticleResponse(art))
}

// ChangeVisibility - PATCH /admin/articles/:id/visibility
func (h *AdminArticleHandler) ChangeVisibility(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	var req article.ChangeVisibilityRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.Invalid(c, "invalid request", err)
		return
	}

	art, err := h.service.ChangeVisibility(c.Request.Context(), id, *req.Visible)
	if err != nil {
		domainFailure(c, "SAVE_FAILED", err)
		return
	}

	response.OK(c, article.NewAdminArticleResponse(art))
}

// domainFailure maps a domain error onto the envelope, deriving the HTTP
// status from the sentinel.
func domainFailure(c *gin.Context, code string, err error) {
	response.Failure(c, article.GetHTTPStatusCode(err), code, err.Error())
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
