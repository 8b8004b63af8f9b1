// Package query implements the pure filter/sort/paginate step shared by the
// entity services. It mirrors the parameter shape of a REST list endpoint
// (page, limit, search, orderBy, orderDir) so the services can later be
// swapped for a real network client without changing callers.
package query

import (
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Params describes one list request. Zero values mean "not set": page and
// limit fall back to their defaults, an empty search term filters nothing,
// and an empty or unknown OrderBy leaves the filtered order untouched.
type Params struct {
	Page     int
	Limit    int
	Search   string
	OrderBy  string
	OrderDir string
}

// Result is one page of a filtered and sorted collection. Total counts
// records after filtering but before pagination.
type Result[T any] struct {
	Data       []T
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// Schema describes how records of one entity kind are searched and sorted.
type Schema[T any] struct {
	// SearchText yields the single designated text field matched by the
	// case-insensitive substring search.
	SearchText func(T) string

	// SortFields maps an orderBy name to an ascending comparator.
	SortFields map[string]func(a, b T) int
}

// Run filters, sorts, and paginates items. It never mutates its input and
// holds no state between calls. Filters are exact-match predicates; a nil
// filter is skipped. Sorting is stable: records that compare equal keep
// their relative order from before the sort, in both directions.
func Run[T any](items []T, p Params, s Schema[T], filters ...func(T) bool) Result[T] {
	out := make([]T, 0, len(items))
	search := strings.ToLower(p.Search)

	for _, it := range items {
		if search != "" && s.SearchText != nil &&
			!strings.Contains(strings.ToLower(s.SearchText(it)), search) {
			continue
		}
		keep := true
		for _, f := range filters {
			if f != nil && !f(it) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, it)
		}
	}

	if cmp, ok := s.SortFields[p.OrderBy]; ok {
		desc := p.OrderDir == OrderDesc
		sort.SliceStable(out, func(i, j int) bool {
			c := cmp(out[i], out[j])
			if desc {
				return c > 0
			}
			return c < 0
		})
	}

	total := len(out)

	page := p.Page
	if page <= 0 {
		page = DefaultPage
	}
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Result[T]{
		Data:       out[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// The collator is not safe for concurrent use; comparisons take a lock.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.Und)
)

// CompareStrings orders strings with locale-aware collation.
func CompareStrings(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

// CompareBools orders booleans by numeric coercion: false before true.
func CompareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}

// CompareTimes orders timestamps chronologically.
func CompareTimes(a, b time.Time) int {
	return a.Compare(b)
}
