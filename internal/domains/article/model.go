package article

import (
	"strings"
	"time"

	"blog-backend/internal/domains/tag"

	"github.com/google/uuid"
)

const MaxTitleLength = 150

// Article is a blog entry. The store assigns the ID on first save. URL is
// globally unique among articles; a blank URL is backfilled from the title
// by the save orchestration before persisting. The article owns its tag
// relation as an explicit list of tag values.
type Article struct {
	ID                 uuid.UUID  `json:"id"`
	Title              string     `json:"title"`
	URL                string     `json:"url"`
	Content            string     `json:"content"`
	PublishedTimestamp *time.Time `json:"publishedTimestamp"`
	Visible            bool       `json:"visible"`
	ViewsCnt           int        `json:"viewsCnt"`
	Tags               []tag.Tag  `json:"tags,omitempty"`
}

// Normalize is the explicit pre-save step: surrounding whitespace never
// reaches the store.
func (a *Article) Normalize() {
	a.Title = strings.TrimSpace(a.Title)
	a.URL = strings.TrimSpace(a.URL)
	a.Content = strings.TrimSpace(a.Content)
}

// IsPublic reports whether the article is readable by the public: it must
// be marked visible and its publish time must have arrived (inclusive).
// Derived on every call, never stored.
func (a *Article) IsPublic(now time.Time) bool {
	return a.Visible &&
		a.PublishedTimestamp != nil &&
		!a.PublishedTimestamp.After(now)
}

func (a *Article) IncreaseViewsCnt() {
	a.ViewsCnt++
}

// RemoveTags clears all tag associations; the reconciler uses full-replace
// semantics.
func (a *Article) RemoveTags() {
	a.Tags = nil
}

// AddTag attaches a tag. Attaching an already-attached tag is a no-op.
func (a *Article) AddTag(t tag.Tag) {
	for _, attached := range a.Tags {
		if attached.UID == t.UID {
			return
		}
	}
	a.Tags = append(a.Tags, t)
}

func (a *Article) TagUIDs() []string {
	uids := make([]string, 0, len(a.Tags))
	for _, t := range a.Tags {
		uids = append(uids, t.UID)
	}
	return uids
}

func (a *Article) TagTitles() []string {
	titles := make([]string, 0, len(a.Tags))
	for _, t := range a.Tags {
		titles = append(titles, t.Title)
	}
	return titles
}
