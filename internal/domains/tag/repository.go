package tag

import "context"

// Repository is the tag store contract.
type Repository interface {
	// FindByTitle resolves a tag by exact title match. It returns nil
	// when the title matches zero tags OR more than one; only an
	// unambiguous single hit resolves.
	FindByTitle(ctx context.Context, title string) (*Tag, error)

	// Find looks a tag up by uid. Returns nil without error on a miss.
	Find(ctx context.Context, uid string) (*Tag, error)

	// Exists reports whether a uid is already taken. The candidate is
	// checked as-is, without re-normalization.
	Exists(ctx context.Context, uid string) (bool, error)

	// Save inserts the tag, or updates its title if the uid exists.
	Save(ctx context.Context, t *Tag) (*Tag, error)

	// CountArticles is the query-computed inverse of the article->tag
	// relation owned by the article store.
	CountArticles(ctx context.Context, uid string) (int, error)
}
