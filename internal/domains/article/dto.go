package article

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// TimestampFormat is the wire format for publish timestamps, kept stable
// for feed consumers.
const TimestampFormat = "2006-01-02 15:04:05"

// SaveArticleRequest is the admin create/update body. URL is optional and
// auto-generated from the title when blank. TagTitles is the raw
// comma-separated tag input.
type SaveArticleRequest struct {
	Title              string     `json:"title"`
	URL                string     `json:"url"`
	Content            string     `json:"content"`
	PublishedTimestamp *time.Time `json:"publishedTimestamp"`
	Visible            *bool      `json:"visible"`
	TagTitles          string     `json:"tagTitles"`
}

func (r SaveArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(1, MaxTitleLength).Error("title should not be longer than 150 characters"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("article content should not be empty"),
		),
	)
}

func (r SaveArticleRequest) ToInput(id *uuid.UUID) *SaveArticleInput {
	return &SaveArticleInput{
		ID:                 id,
		Title:              r.Title,
		URL:                r.URL,
		Content:            r.Content,
		PublishedTimestamp: r.PublishedTimestamp,
		Visible:            r.Visible,
		TagTitles:          r.TagTitles,
	}
}

type ChangeVisibilityRequest struct {
	Visible *bool `json:"visible"`
}

func (r ChangeVisibilityRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Visible, validation.NotNil.Error("visible is required")),
	)
}

// AdminArticleResponse is the admin view of an article. TagTitles is the
// comma-separated form the edit form round-trips.
type AdminArticleResponse struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	URL                string `json:"url"`
	Content            string `json:"content"`
	PublishedTimestamp string `json:"publishedTimestamp"`
	Visible            bool   `json:"visible"`
	Public             bool   `json:"public"`
	ViewsCnt           int    `json:"viewsCnt"`
	TagTitles          string `json:"tagTitles"`
}

func NewAdminArticleResponse(a *Article) *AdminArticleResponse {
	return &AdminArticleResponse{
		ID:                 a.ID.String(),
		Title:              a.Title,
		URL:                a.URL,
		Content:            a.Content,
		PublishedTimestamp: formatTimestamp(a.PublishedTimestamp),
		Visible:            a.Visible,
		Public:             a.IsPublic(time.Now()),
		ViewsCnt:           a.ViewsCnt,
		TagTitles:          joinTitles(a.TagTitles()),
	}
}

// PublicArticleItem is one row of the public listing; no content.
type PublicArticleItem struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	URL                string `json:"url"`
	PublishedTimestamp string `json:"publishedTimestamp"`
	ViewsCnt           int    `json:"viewsCnt"`
}

func NewPublicArticleItem(a *Article) *PublicArticleItem {
	return &PublicArticleItem{
		ID:                 a.ID.String(),
		Title:              a.Title,
		URL:                a.URL,
		PublishedTimestamp: formatTimestamp(a.PublishedTimestamp),
		ViewsCnt:           a.ViewsCnt,
	}
}

type PublicArticleDetail struct {
	PublicArticleItem
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

func NewPublicArticleDetail(a *Article) *PublicArticleDetail {
	return &PublicArticleDetail{
		PublicArticleItem: *NewPublicArticleItem(a),
		Content:           a.Content,
		Tags:              a.TagTitles(),
	}
}

// FeedArticleItem is the raw feed-API list shape. Link is the absolute
// address of the public detail page. Visible is always true in feed
// output, the feed only serves public articles.
type FeedArticleItem struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	URL                string `json:"url"`
	PublishedTimestamp string `json:"publishedTimestamp"`
	Visible            bool   `json:"visible"`
	ViewsCnt           int    `json:"viewsCnt"`
}

func NewFeedArticleItem(a *Article, link string) *FeedArticleItem {
	return &FeedArticleItem{
		ID:                 a.ID.String(),
		Title:              a.Title,
		URL:                link,
		PublishedTimestamp: formatTimestamp(a.PublishedTimestamp),
		Visible:            a.Visible,
		ViewsCnt:           a.ViewsCnt,
	}
}

type FeedArticleDetail struct {
	FeedArticleItem
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

func NewFeedArticleDetail(a *Article, link string) *FeedArticleDetail {
	return &FeedArticleDetail{
		FeedArticleItem: *NewFeedArticleItem(a, link),
		Content:         a.Content,
		Tags:            a.TagTitles(),
	}
}

func formatTimestamp(ts *time.Time) string {
	if ts == nil {
		return ""
	}
	return ts.Format(TimestampFormat)
}

func joinTitles(titles []string) string {
	return strings.Join(titles, ", ")
}
