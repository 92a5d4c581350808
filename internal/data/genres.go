package data

import (
	"context"
	"fmt"

	"github.com/hafizmfadli/movie-catalog/internal/validator"
	"github.com/jmoiron/sqlx"
)

// Genre is a movie category such as "drama".
type Genre struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// GenreUpdate holds the fields a PUT may change. A nil Name is left as it is.
type GenreUpdate struct {
	Name *string `json:"name"`
}

func (u GenreUpdate) assignments() []assignment {
	if u.Name == nil {
		return nil
	}
	return []assignment{{"name", *u.Name}}
}

// ValidateGenre checks a genre that is about to be inserted.
func ValidateGenre(v *validator.Validator, genre *Genre) {
	v.Check(genre.Name != "", "name", "must be provided")
	validateText(v, "name", genre.Name)
}

// ValidateGenreUpdate checks the name only when the update carries one.
func ValidateGenreUpdate(v *validator.Validator, u GenreUpdate) {
	if u.Name != nil {
		v.Check(*u.Name != "", "name", "must not be empty")
		validateText(v, "name", *u.Name)
	}
}

// GenreModel struct type which wraps a sqlx.DB connection pool.
type GenreModel struct {
	DB *sqlx.DB
}

// Insert adds a genre and sets genre.ID to the id the database assigned.
func (m GenreModel) Insert(ctx context.Context, genre *Genre) error {
	query := `INSERT INTO genre (name) VALUES (?) RETURNING id`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := m.DB.QueryRowxContext(ctx, m.DB.Rebind(query), genre.Name).Scan(&genre.ID)
	if err != nil {
		return fmt.Errorf("insert genre: %w", err)
	}
	return nil
}

// Get returns the genre with the given id, or ErrRecordNotFound.
func (m GenreModel) Get(ctx context.Context, id int64) (*Genre, error) {
	var genre Genre
	if err := getByID(ctx, m.DB, &genre, `SELECT id, name FROM genre WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &genre, nil
}

// GetAll returns every genre ordered by id.
func (m GenreModel) GetAll(ctx context.Context) ([]*Genre, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	genres := []*Genre{}
	if err := m.DB.SelectContext(ctx, &genres, `SELECT id, name FROM genre ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return genres, nil
}

// Update applies the fields set in update. It returns ErrNotUpdated when no
// genre has the id.
func (m GenreModel) Update(ctx context.Context, id int64, update GenreUpdate) error {
	return updateByID(ctx, m.DB, "genre", id, update.assignments())
}

// Delete nulls genre_id on the genre's movies via ON DELETE SET NULL.
func (m GenreModel) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, m.DB, "genre", id)
}
