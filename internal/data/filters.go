package data

import (
	"strings"

	"github.com/hafizmfadli/movie-catalog/internal/validator"
)

// MovieFilters narrows the movie list by foreign key. A nil field is not
// filtered on; when both are set a movie must match both.
type MovieFilters struct {
	DirectorID *int64
	GenreID    *int64
}

// where builds the WHERE clause (with a leading space) and its arguments, or
// an empty clause when no filter is set.
func (f MovieFilters) where() (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)

	if f.DirectorID != nil {
		conds = append(conds, "director_id = ?")
		args = append(args, *f.DirectorID)
	}
	if f.GenreID != nil {
		conds = append(conds, "genre_id = ?")
		args = append(args, *f.GenreID)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ValidateMovieFilters validate filters value to conform business rules.
func ValidateMovieFilters(v *validator.Validator, f MovieFilters) {
	validateReference(v, "director_id", f.DirectorID)
	validateReference(v, "genre_id", f.GenreID)
}
