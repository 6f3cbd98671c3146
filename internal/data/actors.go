package data

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mohafarman/castlist/internal/validator"
)

type Actor struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth Date   `json:"dateOfBirth"`
}

type ActorModel struct {
	DB *sql.DB
}

func (m *ActorModel) Insert(ctx context.Context, actor *Actor) error {
	query := `
		INSERT INTO actors (first_name, last_name, date_of_birth)
		VALUES ($1, $2, $3)
		RETURNING id, first_name, last_name, date_of_birth`

	args := []any{actor.FirstName, actor.LastName, actor.DateOfBirth}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return m.DB.QueryRowContext(ctx, query, args...).Scan(
		&actor.ID,
		&actor.FirstName,
		&actor.LastName,
		&actor.DateOfBirth)
}

func (m *ActorModel) Get(ctx context.Context, id int64) (*Actor, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
		SELECT id, first_name, last_name, date_of_birth
		FROM actors
		WHERE id = $1`

	var actor Actor

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := m.DB.QueryRowContext(ctx, query, id).Scan(
		&actor.ID,
		&actor.FirstName,
		&actor.LastName,
		&actor.DateOfBirth)

	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &actor, nil
}

func (m *ActorModel) GetAll(ctx context.Context) ([]*Actor, error) {
	query := `
		SELECT id, first_name, last_name, date_of_birth
		FROM actors
		ORDER BY id`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actors := []*Actor{}

	for rows.Next() {
		var actor Actor

		err := rows.Scan(
			&actor.ID,
			&actor.FirstName,
			&actor.LastName,
			&actor.DateOfBirth,
		)
		if err != nil {
			return nil, err
		}

		actors = append(actors, &actor)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return actors, nil
}

// Update replaces every mutable field of the actor and reloads the row.
func (m *ActorModel) Update(ctx context.Context, actor *Actor) error {
	if actor.ID < 1 {
		return ErrRecordNotFound
	}

	query := `
		UPDATE actors
		SET first_name = $1, last_name = $2, date_of_birth = $3
		WHERE id = $4
		RETURNING id, first_name, last_name, date_of_birth`

	args := []any{
		actor.FirstName,
		actor.LastName,
		actor.DateOfBirth,
		actor.ID}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := m.DB.QueryRowContext(ctx, query, args...).Scan(
		&actor.ID,
		&actor.FirstName,
		&actor.LastName,
		&actor.DateOfBirth)
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

func (m *ActorModel) Delete(ctx context.Context, id int64) error {
	if id < 1 {
		return ErrRecordNotFound
	}

	query := `
		DELETE FROM actors
		WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := m.DB.ExecContext(ctx, query, id)
	if err != nil {
		/* movies.actor_id is ON DELETE RESTRICT */
		if isForeignKeyViolation(err) {
			return ErrActorInUse
		}
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func ValidateActor(v *validator.Validator, actor *Actor) {
	v.CheckField(validator.NotBlank(actor.FirstName), "firstName", "must be provided")
	v.CheckField(validator.NotBlank(actor.LastName), "lastName", "must be provided")
	v.CheckField(!actor.DateOfBirth.IsZero(), "dateOfBirth", "must be provided")
	v.CheckField(validator.NotFuture(actor.DateOfBirth.Time()), "dateOfBirth", "date of birth cannot be in the future")
}
