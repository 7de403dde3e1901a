package article

import (
	"strings"
	"testing"
	"time"

	"blog-backend/internal/domains/tag"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveArticleRequestValidate(t *testing.T) {
	valid := SaveArticleRequest{Title: "My Post", Content: "body"}
	assert.NoError(t, valid.Validate())

	t.Run("title is required", func(t *testing.T) {
		req := valid
		req.Title = ""
		assert.Error(t, req.Validate())
	})

	t.Run("title capped at 150 characters", func(t *testing.T) {
		req := valid
		req.Title = strings.Repeat("a", 151)
		assert.Error(t, req.Validate())

		req.Title = strings.Repeat("a", 150)
		assert.NoError(t, req.Validate())
	})

	t.Run("content is required", func(t *testing.T) {
		req := valid
		req.Content = ""
		assert.Error(t, req.Validate())
	})

	t.Run("url and tags are optional", func(t *testing.T) {
		req := valid
		req.URL = ""
		req.TagTitles = ""
		assert.NoError(t, req.Validate())
	})
}

func TestChangeVisibilityRequestValidate(t *testing.T) {
	assert.Error(t, ChangeVisibilityRequest{}.Validate())

	visible := false
	assert.NoError(t, ChangeVisibilityRequest{Visible: &visible}.Validate())
}

func TestAdminArticleResponseTagTitles(t *testing.T) {
	ts := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	a := &Article{
		Title:              "My Post",
		URL:                "my-post",
		PublishedTimestamp: &ts,
		Tags:               []tag.Tag{{UID: "go", Title: "Go"}, {UID: "rust", Title: "rust"}},
	}

	resp := NewAdminArticleResponse(a)

	require.NotNil(t, resp)
	assert.Equal(t, "Go, rust", resp.TagTitles)
	assert.Equal(t, "2024-03-01 09:30:00", resp.PublishedTimestamp)
}
