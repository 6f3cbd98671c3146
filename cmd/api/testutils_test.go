package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mohafarman/castlist/internal/data"
	"github.com/mohafarman/castlist/internal/metrics"
)

var errStoreDown = errors.New("pq: connection refused")

// memoryStore backs both fake models so movie inserts can see actors and
// actor deletes can see movies.
type memoryStore struct {
	mu     sync.Mutex
	nextID int64
	actors map[int64]data.Actor
	movies map[int64]data.Movie
	err    error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		actors: make(map[int64]data.Actor),
		movies: make(map[int64]data.Movie),
	}
}

type fakeActors struct{ s *memoryStore }

func (f fakeActors) Insert(_ context.Context, actor *data.Actor) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	if f.s.err != nil {
		return f.s.err
	}

	f.s.nextID++
	actor.ID = f.s.nextID
	f.s.actors[actor.ID] = *actor
	return nil
}

func (f fakeActors) Get(_ context.Context, id int64) (*data.Actor, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	if f.s.err != nil {
		return nil, f.s.err
	}

	actor, ok := f.s.actors[id]
	if !ok {
		return nil, data.ErrRecordNotFound
	}
	return &actor, nil
}

func (f fakeActors) GetAll(_ context.Context) ([]*data.Actor, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	if f.s.err != nil {
		return nil, f.s.err
	}

	actors := []*data.Actor{}
	for _, actor := range f.s.actors {
		actors = append(actors, &actor)
	}
	slices.SortFunc(actors, func(a, b *data.Actor) int { return int(a.ID - b.ID) })
	return actors, nil
}

func (f fakeActors) Update(_ context.Context, actor *data.Actor) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	if f.s.err != nil {
		return f.s.err
	}

	if _, ok := f.s.actors[actor.ID]; !ok {
		return data.ErrRecordNotFound
	}
	f.s.actors[actor.ID] = *actor
	return nil
}

func (f fakeActors) Delete(_ context.Context, id int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	if f.s.err != nil {
		return f.s.err
	}

	if _, ok := f.s.actors[id]; !ok {
		return data.ErrRecordNotFound
	}
	for _, movie := range f.s.movies {
		if movie.ActorID == id {
			return data.ErrActorInUse
		}
	}
	delete(f.s.actors, id)
	return nil
}

type fakeMovies struct{ s *memoryStore }

func (f fakeMovies) Insert(_ context.Context, movie *data.Movie) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	if f.s.err != nil {
		return f.s.err
	}

	if _, ok := f.s.actors[movie.ActorID]; !ok {
		return data.ErrActorNotFound
	}

	f.s.nextID++
	movie.ID = f.s.nextID
	f.s.movies[movie.ID] = *movie
	return nil
}

func (f fakeMovies) details(movie data.Movie) *data.MovieDetails {
	actor := f.s.actors[movie.ActorID]
	return &data.MovieDetails{Movie: movie, FirstName: actor.FirstName, LastName: actor.LastName}
}

func (f fakeMovies) Get(_ context.Context, id int64) (*data.MovieDetails, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	if f.s.err != nil {
		return nil, f.s.err
	}

	movie, ok := f.s.movies[id]
	if !ok {
		return nil, data.ErrRecordNotFound
	}
	return f.details(movie), nil
}

func (f fakeMovies) GetAll(_ context.Context) ([]*data.MovieDetails, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	if f.s.err != nil {
		return nil, f.s.err
	}

	movies := []*data.MovieDetails{}
	for _, movie := range f.s.movies {
		movies = append(movies, f.details(movie))
	}
	slices.SortFunc(movies, func(a, b *data.MovieDetails) int { return int(a.ID - b.ID) })
	return movies, nil
}

func (f fakeMovies) Update(_ context.Context, movie *data.Movie) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	if f.s.err != nil {
		return f.s.err
	}

	if _, ok := f.s.movies[movie.ID]; !ok {
		return data.ErrRecordNotFound
	}
	if _, ok := f.s.actors[movie.ActorID]; !ok {
		return data.ErrActorNotFound
	}
	f.s.movies[movie.ID] = *movie
	return nil
}

func (f fakeMovies) Delete(_ context.Context, id int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	if f.s.err != nil {
		return f.s.err
	}

	if _, ok := f.s.movies[id]; !ok {
		return data.ErrRecordNotFound
	}
	delete(f.s.movies, id)
	return nil
}

func newTestApplication(t *testing.T) (*application, *memoryStore) {
	t.Helper()

	store := newMemoryStore()

	var cfg config
	cfg.env = "testing"

	app := &application{
		config: cfg,
		logger: zap.NewNop(),
		models: data.Models{
			Actors: fakeActors{s: store},
			Movies: fakeMovies{s: store},
		},
		metrics: metrics.New(prometheus.NewRegistry()),
	}

	return app, store
}

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	t.Helper()

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func (ts *testServer) do(t *testing.T, method, urlPath, body string) (int, http.Header, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, ts.URL+urlPath, reader)
	require.NoError(t, err)

	rs, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer rs.Body.Close()

	respBody, err := io.ReadAll(rs.Body)
	require.NoError(t, err)

	return rs.StatusCode, rs.Header, string(bytes.TrimSpace(respBody))
}
