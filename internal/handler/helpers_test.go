package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/identity"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/repository/memory"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/service"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/tmdb"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// fakeFetcher hace de TMDB.
type fakeFetcher struct {
	mu     sync.Mutex
	movies map[int]models.MovieInfo
	down   bool
	calls  int
}

func (f *fakeFetcher) GetMovie(_ context.Context, id int) (*models.MovieInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.down {
		return nil, fmt.Errorf("%w: connection refused", tmdb.ErrUnavailable)
	}
	m, ok := f.movies[id]
	if !ok {
		return nil, tmdb.ErrNotFound
	}
	return &m, nil
}

func (f *fakeFetcher) Popular(_ context.Context, page int) (*models.MoviePage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return nil, tmdb.ErrUnavailable
	}
	out := &models.MoviePage{Page: page, TotalPages: 1}
	for _, m := range f.movies {
		out.Results = append(out.Results, m)
	}
	out.TotalResults = len(out.Results)
	return out, nil
}

func (f *fakeFetcher) Search(_ context.Context, query string, page int) (*models.MoviePage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return nil, tmdb.ErrUnavailable
	}
	out := &models.MoviePage{Page: page, TotalPages: 1}
	for _, m := range f.movies {
		if strings.Contains(strings.ToLower(m.Title), strings.ToLower(query)) {
			out.Results = append(out.Results, m)
		}
	}
	out.TotalResults = len(out.Results)
	return out, nil
}

// fakeML hace de servicio de recomendaciones y de análisis temporal.
type fakeML struct {
	mu          sync.Mutex
	items       []models.RecItem
	err         error
	temporal    []byte
	temporalErr error
	limits      []int
	weights     []byte
	weightsErr  error
	subjects    []int
}

func (f *fakeML) Recommend(_ context.Context, _ string, subject, _ int) ([]models.RecItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subjects = append(f.subjects, subject)
	return f.items, f.err
}

func (f *fakeML) Temporal(_ context.Context, _ string, limit int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.limits = append(f.limits, limit)
	return f.temporal, f.temporalErr
}

func (f *fakeML) UserWeights(_ context.Context, userID int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subjects = append(f.subjects, userID)
	return f.weights, f.weightsErr
}

func (f *fakeML) lastSubject() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.subjects[len(f.subjects)-1]
}

type testEnv struct {
	router  http.Handler
	auth    *service.AuthService
	catalog *memory.CatalogRepository
	ratings *memory.RatingRepository
	fetcher *fakeFetcher
	ml      *fakeML
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithOptions(t, RouterOptions{JWTSecret: testSecret, CORSOrigins: []string{"http://localhost:3000"}})
}

func newTestEnvWithOptions(t *testing.T, opts RouterOptions) *testEnv {
	t.Helper()

	env := &testEnv{
		catalog: memory.NewCatalogRepository(),
		ratings: memory.NewRatingRepository(),
		fetcher: &fakeFetcher{movies: map[int]models.MovieInfo{
			42:  {TMDBID: 42, Title: "Life of Brian", Genres: []string{"Comedy"}},
			603: {TMDBID: 603, Title: "The Matrix", Genres: []string{"Action", "Science Fiction"}},
		}},
		ml: &fakeML{temporal: []byte(`{"months":[]}`)},
	}
	reconciler := identity.NewReconciler(identity.DefaultUserSpace)

	env.auth = service.NewAuthService(memory.NewUserRepository(), testSecret)
	movieSvc := service.NewMovieService(env.catalog, env.fetcher, time.Hour)
	ratingSvc := service.NewRatingService(env.ratings, movieSvc)
	recSvc := service.NewRecommendService(env.ml, memory.NewRecommendationRepository(), reconciler, time.Hour)
	analyticsSvc := service.NewAnalyticsService(env.ml, reconciler, t.TempDir(), 24*time.Hour)

	env.router = NewRouter(Handlers{
		Auth:      NewAuthHandler(env.auth),
		Movie:     NewMovieHandler(movieSvc, reconciler),
		Rating:    NewRatingHandler(ratingSvc),
		Recommend: NewRecommendHandler(recSvc),
		Analytics: NewAnalyticsHandler(analyticsSvc),
	}, opts)
	return env
}

func (e *testEnv) token(t *testing.T, accountID string) string {
	t.Helper()
	tok, err := e.auth.IssueToken(accountID)
	require.NoError(t, err)
	return tok
}

// do ejecuta la petición contra el router; token vacío = anónima.
func (e *testEnv) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, kind string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	body := decodeBody[errorResponse](t, rec)
	require.Equal(t, kind, body.Error)
	require.NotEmpty(t, body.Message)
}
