package article

import (
	"errors"
	"net/http"
)

var (
	ErrArticleNotFound  = errors.New("article not found")
	ErrArticleNotPublic = errors.New("article is not public")

	// ErrDuplicateURL surfaces the unique-constraint violation a lost
	// uniqueness race produces. It is never retried at this layer.
	ErrDuplicateURL = errors.New("article url already exists")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes for handlers
// that use HTTP-level error signaling. The feed API does not; it reports
// domain errors inside a 200 body.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrArticleNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrArticleNotPublic):
		return http.StatusForbidden
	case errors.Is(err, ErrDuplicateURL):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
