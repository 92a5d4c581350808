package data

import (
	"context"
	"fmt"

	"github.com/hafizmfadli/movie-catalog/internal/validator"
	"github.com/jmoiron/sqlx"
)

// Director is a row of the director table.
type Director struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// DirectorUpdate holds the fields a PUT may change. A nil Name is left as it is.
type DirectorUpdate struct {
	Name *string `json:"name"`
}

func (u DirectorUpdate) assignments() []assignment {
	if u.Name == nil {
		return nil
	}
	return []assignment{{"name", *u.Name}}
}

// ValidateDirector checks a director that is about to be inserted.
func ValidateDirector(v *validator.Validator, director *Director) {
	v.Check(director.Name != "", "name", "must be provided")
	validateText(v, "name", director.Name)
}

// ValidateDirectorUpdate checks the name only when the update carries one.
func ValidateDirectorUpdate(v *validator.Validator, u DirectorUpdate) {
	if u.Name != nil {
		v.Check(*u.Name != "", "name", "must not be empty")
		validateText(v, "name", *u.Name)
	}
}

// DirectorModel struct type which wraps a sqlx.DB connection pool.
type DirectorModel struct {
	DB *sqlx.DB
}

// Insert adds a director and sets director.ID to the id the database assigned.
func (m DirectorModel) Insert(ctx context.Context, director *Director) error {
	query := `INSERT INTO director (name) VALUES (?) RETURNING id`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := m.DB.QueryRowxContext(ctx, m.DB.Rebind(query), director.Name).Scan(&director.ID)
	if err != nil {
		return fmt.Errorf("insert director: %w", err)
	}
	return nil
}

// Get returns the director with the given id, or ErrRecordNotFound.
func (m DirectorModel) Get(ctx context.Context, id int64) (*Director, error) {
	var director Director
	if err := getByID(ctx, m.DB, &director, `SELECT id, name FROM director WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &director, nil
}

// GetAll returns every director ordered by id.
func (m DirectorModel) GetAll(ctx context.Context) ([]*Director, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	directors := []*Director{}
	if err := m.DB.SelectContext(ctx, &directors, `SELECT id, name FROM director ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list directors: %w", err)
	}
	return directors, nil
}

// Update applies the fields set in update. It returns ErrNotUpdated when no
// director has the id.
func (m DirectorModel) Update(ctx context.Context, id int64, update DirectorUpdate) error {
	return updateByID(ctx, m.DB, "director", id, update.assignments())
}

// Delete removes the director. Movies that referenced it are kept with a null
// director_id (ON DELETE SET NULL).
func (m DirectorModel) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, m.DB, "director", id)
}
