package pkg

import (
	"math"
	"regexp"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lokalku/lokalku/internal/crud"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// validFieldName matches only alphanumeric characters and underscores.
var validFieldName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ParseQuery extracts page, search, and sort parameters from the request
// query string. Missing or invalid values fall back to the defaults, so a
// bare list request always means "first page, no filter, no sort".
func ParseQuery(c *gin.Context) crud.Query {
	return crud.ParseValues(c.Request.URL.Query())
}

// Paginate returns a GORM scope that applies LIMIT and OFFSET for the query.
func Paginate(q crud.Query, perPage int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (q.Page - 1) * perPage
		return db.Offset(offset).Limit(perPage)
	}
}

// Sort returns a GORM scope that applies ORDER BY based on the query.
// Only field names present in the allowed list are accepted; anything else
// falls back to ordering by id so pages stay deterministic. Field names are
// validated against a strict pattern to prevent SQL injection.
func Sort(q crud.Query, allowed []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		field := strings.TrimSpace(q.SortField)
		direction := strings.TrimSpace(strings.ToLower(q.SortOrder))

		if field == "" ||
			(direction != crud.SortAsc && direction != crud.SortDesc) ||
			!validFieldName.MatchString(field) ||
			!slices.Contains(allowed, field) {
			return db.Order("id")
		}

		return db.Order(field + " " + direction)
	}
}

// Search returns a GORM scope that applies a LIKE match across the given
// searchable columns. An empty search term means no filter applied.
func Search(q crud.Query, fields []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term := strings.TrimSpace(q.Search)
		if term == "" || len(fields) == 0 {
			return db
		}

		pattern := "%" + term + "%"
		conditions := make([]string, 0, len(fields))
		args := make([]any, 0, len(fields))
		for _, f := range fields {
			if !validFieldName.MatchString(f) {
				continue
			}
			conditions = append(conditions, f+" LIKE ?")
			args = append(args, pattern)
		}
		if len(conditions) == 0 {
			return db
		}
		return db.Where(strings.Join(conditions, " OR "), args...)
	}
}

// NewPage creates a crud.Page with computed LastPage. LastPage is at least 1
// and CurrentPage is clamped into [1, LastPage] so the page invariant holds
// even for out-of-range requests.
func NewPage[T any](items []T, total int64, q crud.Query, perPage int) *crud.Page[T] {
	lastPage := 1
	if perPage > 0 {
		if computed := int(math.Ceil(float64(total) / float64(perPage))); computed > 1 {
			lastPage = computed
		}
	}

	current := q.Page
	if current < 1 {
		current = 1
	}
	if current > lastPage {
		current = lastPage
	}

	if items == nil {
		items = []T{}
	}

	return &crud.Page[T]{
		Data:        items,
		CurrentPage: current,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
	}
}
