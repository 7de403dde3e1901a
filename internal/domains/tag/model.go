package tag

import "strings"

// Tag is a free-text label attached to articles. The uid is the slug-derived
// identifier and is immutable once assigned; the title is the display label
// and carries no uniqueness guarantee of its own. Tags do not maintain an
// inverse article collection, back-references are computed by the store.
type Tag struct {
	UID   string `json:"uid"`
	Title string `json:"title"`
}

func New(title string) *Tag {
	return &Tag{Title: strings.TrimSpace(title)}
}
