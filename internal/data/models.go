package data

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrActorNotFound  = errors.New("actor not found")
	ErrActorInUse     = errors.New("actor is referenced by existing movies")
)

// Every statement gets at most this long, on top of the request context.
const queryTimeout = 3 * time.Second

// SQLSTATE foreign_key_violation
const foreignKeyViolation = "23503"

type ActorStore interface {
	Insert(ctx context.Context, actor *Actor) error
	Get(ctx context.Context, id int64) (*Actor, error)
	GetAll(ctx context.Context) ([]*Actor, error)
	Update(ctx context.Context, actor *Actor) error
	Delete(ctx context.Context, id int64) error
}

type MovieStore interface {
	Insert(ctx context.Context, movie *Movie) error
	Get(ctx context.Context, id int64) (*MovieDetails, error)
	GetAll(ctx context.Context) ([]*MovieDetails, error)
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int64) error
}

// Models struct to wrap all other models.
// Handlers only see the interfaces so tests can swap in fakes.
type Models struct {
	Actors ActorStore
	Movies MovieStore
}

func NewModels(db *sql.DB) Models {
	return Models{
		Actors: &ActorModel{DB: db},
		Movies: &MovieModel{DB: db},
	}
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}
