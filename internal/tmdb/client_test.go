package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	up := upstream.New(upstream.Config{Name: "tmdb-" + t.Name(), Timeout: time.Second})
	return NewClient(srv.URL+"/", "test-key", up)
}

func TestGetMovie(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))
		_, _ = w.Write([]byte(`{
			"id": 603,
			"title": "The Matrix",
			"overview": "Neo...",
			"poster_path": "/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg",
			"release_date": "1999-03-30",
			"vote_average": 8.2,
			"genres": [{"id": 28, "name": "Action"}, {"id": 878, "name": "Science Fiction"}]
		}`))
	})

	got, err := c.GetMovie(context.Background(), 603)
	require.NoError(t, err)
	assert.Equal(t, 603, got.TMDBID)
	assert.Equal(t, "The Matrix", got.Title)
	assert.Equal(t, "1999-03-30", got.ReleaseDate)
	assert.InDelta(t, 8.2, got.VoteAverage, 1e-9)
	assert.Equal(t, []string{"Action", "Science Fiction"}, got.Genres)
}

func TestGetMovie_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"status_code":34}`))
	})

	_, err := c.GetMovie(context.Background(), 999999999)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetMovie_UnavailableCases(t *testing.T) {
	tests := []struct {
		name string
		h    http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusBadGateway) }},
		{"invalid api key", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusUnauthorized) }},
		{"garbage body", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(`<html>`)) }},
		{"empty movie", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(`{}`)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.h)
			_, err := c.GetMovie(context.Background(), 1)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnavailable))
			assert.False(t, errors.Is(err, ErrNotFound))
		})
	}
}

func TestPopularAndSearch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/movie/popular":
			assert.Equal(t, "1", r.URL.Query().Get("page"))
		case "/search/movie":
			assert.Equal(t, "matrix", r.URL.Query().Get("query"))
			assert.Equal(t, "2", r.URL.Query().Get("page"))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"page": 1, "total_pages": 3, "total_results": 41,
			"results": [{"id": 603, "title": "The Matrix", "genre_ids": [28, 878]}]
		}`))
	})

	page, err := c.Popular(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 41, page.TotalResults)
	require.Len(t, page.Results, 1)
	assert.Equal(t, []string{"28", "878"}, page.Results[0].Genres)

	page, err = c.Search(context.Background(), "matrix", 2)
	require.NoError(t, err)
	assert.Equal(t, 603, page.Results[0].TMDBID)
}
