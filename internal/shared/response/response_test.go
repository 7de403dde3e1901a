package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(t *testing.T, write func(c *gin.Context)) (*httptest.ResponseRecorder, Body) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	write(c)

	var body Body
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestPagedCarriesMeta(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		Paged(c, []string{"a"}, &Meta{Page: 2, Limit: 5, Total: 11})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	require.NotNil(t, body.Meta)
	assert.Equal(t, 2, body.Meta.Page)
	assert.Equal(t, 5, body.Meta.Limit)
	assert.Equal(t, 11, body.Meta.Total)
}

func TestFailureShapesError(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		Failure(c, http.StatusConflict, "SAVE_FAILED", "article url already exists")
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "SAVE_FAILED", body.Error.Code)
	assert.Equal(t, "article url already exists", body.Error.Message)
	assert.Nil(t, body.Data)
}

func TestInvalidIncludesDetails(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		Invalid(c, "invalid article", map[string]string{"title": "title is required"})
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.NotNil(t, body.Error.Details)
}

func TestForbidden(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		Forbidden(c, "admin role required")
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "FORBIDDEN", body.Error.Code)
}
