package article

import "strings"

// Admin listing order columns. The set is closed; anything else falls back
// to the default ordering.
const (
	OrderByTitle              = "title"
	OrderByPublishedTimestamp = "publishedTimestamp"
	OrderByViewsCnt           = "viewsCnt"
	OrderByVisible            = "visible"

	OrderDirAsc  = "asc"
	OrderDirDesc = "desc"
)

// NormalizeOrder applies the admin-listing defaults: an invalid or missing
// orderBy yields newest-first by publish time; a valid orderBy with an
// invalid or missing direction defaults to desc for the publish-time column
// and asc for every other column.
func NormalizeOrder(orderBy, orderDir string) (string, string) {
	orderBy = strings.TrimSpace(orderBy)
	orderDir = strings.TrimSpace(orderDir)

	switch orderBy {
	case OrderByTitle, OrderByPublishedTimestamp, OrderByViewsCnt, OrderByVisible:
	default:
		return OrderByPublishedTimestamp, OrderDirDesc
	}

	if orderDir != OrderDirAsc && orderDir != OrderDirDesc {
		if orderBy == OrderByPublishedTimestamp {
			return orderBy, OrderDirDesc
		}
		return orderBy, OrderDirAsc
	}

	return orderBy, orderDir
}
