package tag

import "context"

// Service reconciles free-text tag input into persisted tags.
type Service interface {
	// Reconcile parses a comma-separated list of tag titles and resolves
	// each non-empty, trimmed segment to an existing tag or a newly
	// created one. New tags are persisted immediately, independently of
	// any enclosing article save. The returned slice follows input order
	// and may contain the same tag more than once when titles repeat;
	// attachment is the caller's (idempotent) concern.
	Reconcile(ctx context.Context, tagTitlesCsv string) ([]Tag, error)
}
