package service

import (
	"context"
	"fmt"
	"strings"

	"blog-backend/internal/domains/tag"
	"blog-backend/internal/shared/utils"
)

type tagServiceImpl struct {
	repository tag.Repository
}

func NewTagService(repo tag.Repository) tag.Service {
	return &tagServiceImpl{repository: repo}
}

func (s *tagServiceImpl) Reconcile(ctx context.Context, tagTitlesCsv string) ([]tag.Tag, error) {
	resolved := make([]tag.Tag, 0)

	for _, segment := range strings.Split(tagTitlesCsv, ",") {
		title := strings.TrimSpace(segment)
		if title == "" {
			continue
		}

		t, err := s.resolve(ctx, title)
		if err != nil {
			return nil, err
		}

		resolved = append(resolved, *t)
	}

	return resolved, nil
}

// resolve finds the tag for a title or creates it. The tie-break is
// deliberate: the uid fallback fires only when the title lookup resolves
// nothing, never to override an unambiguous title hit.
func (s *tagServiceImpl) resolve(ctx context.Context, title string) (*tag.Tag, error) {
	existing, err := s.repository.FindByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("find tag by title: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	uid := utils.GenerateSlug(title)

	byUID, err := s.repository.Find(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("find tag by uid: %w", err)
	}
	if byUID != nil {
		return byUID, nil
	}

	return s.create(ctx, title, uid)
}

// create persists a new tag immediately. There is no transactional tie to
// the article save that triggered the reconciliation; an aborted article
// save can leave the tag behind. That behavior is accepted, not a bug.
func (s *tagServiceImpl) create(ctx context.Context, title, baseUID string) (*tag.Tag, error) {
	var existsErr error
	uid := utils.MakeUnique(baseUID, func(candidate string) bool {
		if existsErr != nil {
			return false
		}
		taken, err := s.repository.Exists(ctx, candidate)
		if err != nil {
			existsErr = err
			return false
		}
		return taken
	})
	if existsErr != nil {
		return nil, fmt.Errorf("check tag uid: %w", existsErr)
	}

	created := tag.New(title)
	created.UID = uid

	saved, err := s.repository.Save(ctx, created)
	if err != nil {
		return nil, fmt.Errorf("save tag: %w", err)
	}

	return saved, nil
}
