package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// queryTimeout bounds every statement a model runs.
const queryTimeout = 3 * time.Second

var (
	// ErrRecordNotFound is returned when looking up or deleting a row that
	// doesn't exist in our database.
	ErrRecordNotFound = errors.New("record not found")
	// ErrNotUpdated is returned when an update did not touch exactly one row.
	ErrNotUpdated = errors.New("not updated")
	// ErrInvalidReference is returned when a movie points at a director or
	// genre that doesn't exist.
	ErrInvalidReference = errors.New("invalid reference")
)

// Models is 'container' which can hold and respresent all your database models
type Models struct {
	Movies interface {
		Insert(ctx context.Context, movie *Movie) error
		Get(ctx context.Context, id int64) (*Movie, error)
		GetAll(ctx context.Context, filters MovieFilters) ([]*Movie, error)
		Update(ctx context.Context, id int64, update MovieUpdate) error
		Delete(ctx context.Context, id int64) error
	}
	Directors interface {
		Insert(ctx context.Context, director *Director) error
		Get(ctx context.Context, id int64) (*Director, error)
		GetAll(ctx context.Context) ([]*Director, error)
		Update(ctx context.Context, id int64, update DirectorUpdate) error
		Delete(ctx context.Context, id int64) error
	}
	Genres interface {
		Insert(ctx context.Context, genre *Genre) error
		Get(ctx context.Context, id int64) (*Genre, error)
		GetAll(ctx context.Context) ([]*Genre, error)
		Update(ctx context.Context, id int64, update GenreUpdate) error
		Delete(ctx context.Context, id int64) error
	}
}

// NewModels return a Models struct
func NewModels(db *sqlx.DB) Models {
	return Models{
		Movies:    MovieModel{DB: db},
		Directors: DirectorModel{DB: db},
		Genres:    GenreModel{DB: db},
	}
}

// assignment is one "column = value" pair of an UPDATE statement. Columns only
// ever come from the allow-listed fields of the *Update types.
type assignment struct {
	column string
	value  interface{}
}

// updateByID applies the assignments to the row with the given id and fails
// with ErrNotUpdated unless exactly one row was affected.
func updateByID(ctx context.Context, db *sqlx.DB, table string, id int64, set []assignment) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if len(set) == 0 {
		// Nothing to assign: the update succeeds iff the row exists.
		var exists bool
		query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE id = ?)`, table)
		if err := db.GetContext(ctx, &exists, db.Rebind(query), id); err != nil {
			return fmt.Errorf("check %s %d: %w", table, id, err)
		}
		if !exists {
			return ErrNotUpdated
		}
		return nil
	}

	clauses := make([]string, 0, len(set))
	args := make([]interface{}, 0, len(set)+1)
	for _, a := range set {
		clauses = append(clauses, a.column+" = ?")
		args = append(args, a.value)
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = ?`, table, strings.Join(clauses, ", "))

	result, err := db.ExecContext(ctx, db.Rebind(query), args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrInvalidReference
		}
		return fmt.Errorf("update %s %d: %w", table, id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows != 1 {
		return ErrNotUpdated
	}
	return nil
}

// deleteByID removes the row with the given id, returning ErrRecordNotFound if
// there was none.
func deleteByID(ctx context.Context, db *sqlx.DB, table string, id int64) error {
	if id < 1 {
		return ErrRecordNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table)

	result, err := db.ExecContext(ctx, db.Rebind(query), id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", table, id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// getByID scans the row with the given id into dest.
func getByID(ctx context.Context, db *sqlx.DB, dest interface{}, query string, id int64) error {
	if id < 1 {
		return ErrRecordNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := db.GetContext(ctx, dest, db.Rebind(query), id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}

// isForeignKeyViolation reports whether err is a foreign key constraint
// failure from either supported driver.
func isForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name() == "foreign_key_violation"
	}

	return false
}
