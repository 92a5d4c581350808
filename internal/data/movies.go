package data

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hafizmfadli/movie-catalog/internal/validator"
	"github.com/jmoiron/sqlx"
)

type Movie struct {
	// Unique ID, assigned by the database
	ID int64 `json:"id" db:"id"`
	// Movie title
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	// Trailer URL
	Trailer string `json:"trailer" db:"trailer"`
	// Movie release year
	Year   int32   `json:"year" db:"year"`
	Rating float64 `json:"rating" db:"rating"`
	// Nullable references; null when the movie has no genre or director, or
	// when the referenced row was deleted.
	GenreID    *int64 `json:"genre_id" db:"genre_id"`
	DirectorID *int64 `json:"director_id" db:"director_id"`
}

// Reference is a foreign key field of an update body. Set records whether the
// key was present at all, so an explicit null clears the reference while an
// absent key leaves it alone.
type Reference struct {
	Set bool
	ID  *int64
}

func (r *Reference) UnmarshalJSON(b []byte) error {
	r.Set = true
	if string(b) == "null" {
		r.ID = nil
		return nil
	}

	var id int64
	if err := json.Unmarshal(b, &id); err != nil {
		return err
	}
	r.ID = &id
	return nil
}

// MovieUpdate holds the fields a PUT may change. Nil fields are left as they are.
type MovieUpdate struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Trailer     *string   `json:"trailer"`
	Year        *int32    `json:"year"`
	Rating      *float64  `json:"rating"`
	GenreID     Reference `json:"genre_id"`
	DirectorID  Reference `json:"director_id"`
}

func (u MovieUpdate) assignments() []assignment {
	var set []assignment
	if u.Title != nil {
		set = append(set, assignment{"title", *u.Title})
	}
	if u.Description != nil {
		set = append(set, assignment{"description", *u.Description})
	}
	if u.Trailer != nil {
		set = append(set, assignment{"trailer", *u.Trailer})
	}
	if u.Year != nil {
		set = append(set, assignment{"year", *u.Year})
	}
	if u.Rating != nil {
		set = append(set, assignment{"rating", *u.Rating})
	}
	if u.GenreID.Set {
		set = append(set, assignment{"genre_id", u.GenreID.ID})
	}
	if u.DirectorID.Set {
		set = append(set, assignment{"director_id", u.DirectorID.ID})
	}
	return set
}

const (
	maxTextBytes = 255
	minYear      = 1888
	maxYear      = 2100
	maxRating    = 10
)

func validateText(v *validator.Validator, key, value string) {
	v.Check(validator.MaxBytes(value, maxTextBytes), key, fmt.Sprintf("must not be more than %d bytes long", maxTextBytes))
}

// A zero year means "unknown" and is always accepted.
func validateYear(v *validator.Validator, year int32) {
	if year == 0 {
		return
	}
	v.Check(year >= minYear, "year", fmt.Sprintf("must be greater than or equal to %d", minYear))
	v.Check(year <= maxYear, "year", fmt.Sprintf("must not be greater than %d", maxYear))
}

func validateRating(v *validator.Validator, rating float64) {
	v.Check(rating >= 0, "rating", "must not be negative")
	v.Check(rating <= maxRating, "rating", fmt.Sprintf("must not be greater than %d", maxRating))
}

func validateReference(v *validator.Validator, key string, id *int64) {
	if id != nil {
		v.Check(*id > 0, key, "must be a positive integer")
	}
}

// ValidateMovie checks a movie that is about to be inserted.
func ValidateMovie(v *validator.Validator, movie *Movie) {
	validateText(v, "title", movie.Title)
	validateText(v, "description", movie.Description)
	validateText(v, "trailer", movie.Trailer)
	validateYear(v, movie.Year)
	validateRating(v, movie.Rating)
	validateReference(v, "genre_id", movie.GenreID)
	validateReference(v, "director_id", movie.DirectorID)
}

// ValidateMovieUpdate checks only the fields present in the update.
func ValidateMovieUpdate(v *validator.Validator, u MovieUpdate) {
	if u.Title != nil {
		validateText(v, "title", *u.Title)
	}
	if u.Description != nil {
		validateText(v, "description", *u.Description)
	}
	if u.Trailer != nil {
		validateText(v, "trailer", *u.Trailer)
	}
	if u.Year != nil {
		validateYear(v, *u.Year)
	}
	if u.Rating != nil {
		validateRating(v, *u.Rating)
	}
	validateReference(v, "genre_id", u.GenreID.ID)
	validateReference(v, "director_id", u.DirectorID.ID)
}

// MovieModel struct type which wraps a sqlx.DB connection pool.
type MovieModel struct {
	DB *sqlx.DB
}

const movieColumns = `id, title, description, trailer, year, rating, genre_id, director_id`

// Insert adds a movie and sets movie.ID to the id the database assigned.
func (m MovieModel) Insert(ctx context.Context, movie *Movie) error {
	query := `
		INSERT INTO movie (title, description, trailer, year, rating, genre_id, director_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	args := []interface{}{movie.Title, movie.Description, movie.Trailer, movie.Year, movie.Rating, movie.GenreID, movie.DirectorID}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := m.DB.QueryRowxContext(ctx, m.DB.Rebind(query), args...).Scan(&movie.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrInvalidReference
		}
		return fmt.Errorf("insert movie: %w", err)
	}
	return nil
}

func (m MovieModel) Get(ctx context.Context, id int64) (*Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movie WHERE id = ?`

	var movie Movie
	if err := getByID(ctx, m.DB, &movie, query, id); err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetAll returns every movie matching the filters, ordered by id. The result
// is never nil.
func (m MovieModel) GetAll(ctx context.Context, filters MovieFilters) ([]*Movie, error) {
	where, args := filters.where()
	query := `SELECT ` + movieColumns + ` FROM movie` + where + ` ORDER BY id`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	movies := []*Movie{}
	if err := m.DB.SelectContext(ctx, &movies, m.DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

func (m MovieModel) Update(ctx context.Context, id int64, update MovieUpdate) error {
	return updateByID(ctx, m.DB, "movie", id, update.assignments())
}

func (m MovieModel) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, m.DB, "movie", id)
}
