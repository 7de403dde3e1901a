package service

import (
	"context"
	"testing"

	"blog-backend/internal/domains/tag"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTagRepo is an in-memory tag store mirroring the postgres contract:
// FindByTitle resolves only an unambiguous single title match.
type fakeTagRepo struct {
	tags []tag.Tag
}

func (f *fakeTagRepo) FindByTitle(_ context.Context, title string) (*tag.Tag, error) {
	var matches []tag.Tag
	for _, t := range f.tags {
		if t.Title == title {
			matches = append(matches, t)
		}
	}
	if len(matches) != 1 {
		return nil, nil
	}
	return &matches[0], nil
}

func (f *fakeTagRepo) Find(_ context.Context, uid string) (*tag.Tag, error) {
	for _, t := range f.tags {
		if t.UID == uid {
			found := t
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeTagRepo) Exists(_ context.Context, uid string) (bool, error) {
	for _, t := range f.tags {
		if t.UID == uid {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTagRepo) Save(_ context.Context, t *tag.Tag) (*tag.Tag, error) {
	for i := range f.tags {
		if f.tags[i].UID == t.UID {
			f.tags[i].Title = t.Title
			return &f.tags[i], nil
		}
	}
	f.tags = append(f.tags, *t)
	return t, nil
}

func (f *fakeTagRepo) CountArticles(context.Context, string) (int, error) {
	return 0, nil
}

func TestReconcileTrimsAndSkipsEmptySegments(t *testing.T) {
	repo := &fakeTagRepo{}
	svc := NewTagService(repo)

	resolved, err := svc.Reconcile(context.Background(), " Go, rust ,, Go")
	require.NoError(t, err)

	// Repeated "Go" resolves to the same tag both times.
	require.Len(t, resolved, 3)
	assert.Equal(t, "Go", resolved[0].Title)
	assert.Equal(t, "rust", resolved[1].Title)
	assert.Equal(t, resolved[0].UID, resolved[2].UID)

	// Only two tags were actually created.
	assert.Len(t, repo.tags, 2)
}

func TestReconcileReusesExistingTagByTitle(t *testing.T) {
	repo := &fakeTagRepo{tags: []tag.Tag{{UID: "golang", Title: "Go"}}}
	svc := NewTagService(repo)

	resolved, err := svc.Reconcile(context.Background(), "Go")
	require.NoError(t, err)

	require.Len(t, resolved, 1)
	assert.Equal(t, "golang", resolved[0].UID)
	assert.Len(t, repo.tags, 1)
}

func TestReconcileFallsBackToUIDOnZeroTitleMatch(t *testing.T) {
	// Stored title differs in case, so the exact-title lookup misses and
	// the slug-derived uid lookup takes over.
	repo := &fakeTagRepo{tags: []tag.Tag{{UID: "go", Title: "GO"}}}
	svc := NewTagService(repo)

	resolved, err := svc.Reconcile(context.Background(), "Go")
	require.NoError(t, err)

	require.Len(t, resolved, 1)
	assert.Equal(t, "go", resolved[0].UID)
	assert.Equal(t, "GO", resolved[0].Title)
	assert.Len(t, repo.tags, 1)
}

func TestReconcileAmbiguousTitleFallsBackToUID(t *testing.T) {
	// Two tags share a title; the title lookup refuses to pick one and
	// the uid fallback resolves instead.
	repo := &fakeTagRepo{tags: []tag.Tag{
		{UID: "go", Title: "Go"},
		{UID: "go-2", Title: "Go"},
	}}
	svc := NewTagService(repo)

	resolved, err := svc.Reconcile(context.Background(), "Go")
	require.NoError(t, err)

	require.Len(t, resolved, 1)
	assert.Equal(t, "go", resolved[0].UID)
	assert.Len(t, repo.tags, 2)
}

func TestReconcileCreatesNewTag(t *testing.T) {
	// "go!" slugs to "go-", which neither lookup resolves, so a new tag
	// is created and persisted immediately.
	repo := &fakeTagRepo{tags: []tag.Tag{{UID: "go", Title: "Board game"}}}
	svc := NewTagService(repo)

	resolved, err := svc.Reconcile(context.Background(), "go!")
	require.NoError(t, err)

	require.Len(t, resolved, 1)
	assert.Equal(t, "go-", resolved[0].UID)
	assert.Equal(t, "go!", resolved[0].Title)
}

func TestReconcileUIDFallbackIgnoresTitleMismatch(t *testing.T) {
	// The uid fallback resolves by identifier alone; a tag whose title
	// differs entirely is still reused when the slugs collide. Preserved
	// source behavior, not a bug to fix here.
	repo := &fakeTagRepo{tags: []tag.Tag{{UID: "go", Title: "Board game"}}}
	svc := NewTagService(repo)

	resolved, err := svc.Reconcile(context.Background(), "GO")
	require.NoError(t, err)

	require.Len(t, resolved, 1)
	assert.Equal(t, "go", resolved[0].UID)
	assert.Equal(t, "Board game", resolved[0].Title)
	assert.Len(t, repo.tags, 1)
}

func TestReconcileEmptyInputYieldsNoTags(t *testing.T) {
	repo := &fakeTagRepo{}
	svc := NewTagService(repo)

	resolved, err := svc.Reconcile(context.Background(), " , ,, ")
	require.NoError(t, err)

	assert.Empty(t, resolved)
	assert.Empty(t, repo.tags)
}
