package data

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mohafarman/castlist/internal/validator"
)

type Movie struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	CreationDate Date   `json:"creationDate"`
	ActorID      int64  `json:"actorId"`
}

// MovieDetails is a movie joined with the name of the actor it references.
type MovieDetails struct {
	Movie
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type MovieModel struct {
	DB *sql.DB
}

/*
Insert checks the referenced actor and inserts the movie in one transaction.
The actor row is held FOR SHARE so a concurrent delete waits for the commit
and then fails on the foreign key instead of leaving an orphaned movie.
*/
func (m *MovieModel) Insert(ctx context.Context, movie *Movie) error {
	query := `
		INSERT INTO movies (title, creation_date, actor_id)
		VALUES ($1, $2, $3)
		RETURNING id`

	args := []any{movie.Title, movie.CreationDate, movie.ActorID}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := lockActor(ctx, tx, movie.ActorID); err != nil {
		return err
	}

	err = tx.QueryRowContext(ctx, query, args...).Scan(&movie.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrActorNotFound
		}
		return err
	}

	return tx.Commit()
}

func (m *MovieModel) Get(ctx context.Context, id int64) (*MovieDetails, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
		SELECT m.id, m.title, m.creation_date, m.actor_id, a.first_name, a.last_name
		FROM movies m
		JOIN actors a ON m.actor_id = a.id
		WHERE m.id = $1`

	var movie MovieDetails

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := m.DB.QueryRowContext(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.CreationDate,
		&movie.ActorID,
		&movie.FirstName,
		&movie.LastName)

	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &movie, nil
}

func (m *MovieModel) GetAll(ctx context.Context) ([]*MovieDetails, error) {
	query := `
		SELECT m.id, m.title, m.creation_date, m.actor_id, a.first_name, a.last_name
		FROM movies m
		JOIN actors a ON m.actor_id = a.id
		ORDER BY m.id`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*MovieDetails{}

	for rows.Next() {
		var movie MovieDetails

		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.CreationDate,
			&movie.ActorID,
			&movie.FirstName,
			&movie.LastName,
		)
		if err != nil {
			return nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

// Update replaces title, creation date and actor reference. A missing movie
// wins over a missing actor; the new actor is then checked the same way
// Insert checks it.
func (m *MovieModel) Update(ctx context.Context, movie *Movie) error {
	if movie.ID < 1 {
		return ErrRecordNotFound
	}

	query := `
		UPDATE movies
		SET title = $1, creation_date = $2, actor_id = $3
		WHERE id = $4
		RETURNING id, title, creation_date, actor_id`

	args := []any{
		movie.Title,
		movie.CreationDate,
		movie.ActorID,
		movie.ID}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := lockMovie(ctx, tx, movie.ID); err != nil {
		return err
	}

	if err := lockActor(ctx, tx, movie.ActorID); err != nil {
		return err
	}

	err = tx.QueryRowContext(ctx, query, args...).Scan(
		&movie.ID,
		&movie.Title,
		&movie.CreationDate,
		&movie.ActorID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrRecordNotFound
		case isForeignKeyViolation(err):
			return ErrActorNotFound
		default:
			return err
		}
	}

	return tx.Commit()
}

func (m *MovieModel) Delete(ctx context.Context, id int64) error {
	if id < 1 {
		return ErrRecordNotFound
	}

	query := `
		DELETE FROM movies
		WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := m.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	/* INFO: If no rows are affected that means nothing was deleted */
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func lockMovie(ctx context.Context, tx *sql.Tx, id int64) error {
	query := `
		SELECT id
		FROM movies
		WHERE id = $1
		FOR UPDATE`

	var found int64
	err := tx.QueryRowContext(ctx, query, id).Scan(&found)
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

func lockActor(ctx context.Context, tx *sql.Tx, actorID int64) error {
	if actorID < 1 {
		return ErrActorNotFound
	}

	query := `
		SELECT id
		FROM actors
		WHERE id = $1
		FOR SHARE`

	var id int64
	err := tx.QueryRowContext(ctx, query, actorID).Scan(&id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrActorNotFound
		default:
			return err
		}
	}

	return nil
}

func ValidateMovie(v *validator.Validator, movie *Movie) {
	v.CheckField(validator.NotBlank(movie.Title), "title", "must be provided")
	v.CheckField(!movie.CreationDate.IsZero(), "creationDate", "must be provided")
	// Any other id, negative included, is resolved against the actors table.
	v.CheckField(movie.ActorID != 0, "actorId", "must be provided")
}
