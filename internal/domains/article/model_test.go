package article

import (
	"testing"
	"time"

	"blog-backend/internal/domains/tag"

	"github.com/stretchr/testify/assert"
)

func TestIsPublic(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name      string
		visible   bool
		published *time.Time
		want      bool
	}{
		{"visible and already published", true, &past, true},
		{"visible but scheduled for the future", true, &future, false},
		{"publish time exactly now is inclusive", true, &now, true},
		{"hidden despite being published", false, &past, false},
		{"visible but no publish time set", true, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Article{Visible: tt.visible, PublishedTimestamp: tt.published}
			assert.Equal(t, tt.want, a.IsPublic(now))
		})
	}
}

func TestIsPublicIsRecomputed(t *testing.T) {
	ts := time.Now()
	a := Article{Visible: true, PublishedTimestamp: &ts}

	assert.True(t, a.IsPublic(ts))
	assert.False(t, a.IsPublic(ts.Add(-time.Second)))
}

func TestAddTagIsIdempotent(t *testing.T) {
	a := Article{}

	a.AddTag(tag.Tag{UID: "go", Title: "Go"})
	a.AddTag(tag.Tag{UID: "rust", Title: "rust"})
	a.AddTag(tag.Tag{UID: "go", Title: "Go"})

	assert.Equal(t, []string{"go", "rust"}, a.TagUIDs())
}

func TestRemoveTags(t *testing.T) {
	a := Article{Tags: []tag.Tag{{UID: "go"}, {UID: "rust"}}}

	a.RemoveTags()

	assert.Empty(t, a.Tags)
}

func TestIncreaseViewsCnt(t *testing.T) {
	a := Article{ViewsCnt: 7}

	a.IncreaseViewsCnt()
	a.IncreaseViewsCnt()

	assert.Equal(t, 9, a.ViewsCnt)
}

func TestNormalizeTrims(t *testing.T) {
	a := Article{Title: "  My Post ", URL: " my-post ", Content: " body \n"}

	a.Normalize()

	assert.Equal(t, "My Post", a.Title)
	assert.Equal(t, "my-post", a.URL)
	assert.Equal(t, "body", a.Content)
}
