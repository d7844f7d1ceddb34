package mlclient

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
	return NewClient(srv.URL, upstream.New(upstream.Config{Name: "ml-" + t.Name(), Timeout: time.Second}))
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestRecommend_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recommend/hybrid/274", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"success": true, "data": {"user_id": 274, "recommendations": [
			{"movieId": 318, "title": "Shawshank Redemption, The (1994)", "genres": "Crime|Drama",
			 "hybrid_score": 0.91, "cb_contribution": 0.4, "cf_contribution": 0.6}
		]}}`))
	})

	items, err := c.Recommend(context.Background(), "hybrid", 274, 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 318, items[0].MovieID)
	assert.Equal(t, "Crime|Drama", items[0].Genres)
	require.NotNil(t, items[0].HybridScore)
	assert.InDelta(t, 0.91, *items[0].HybridScore, 1e-9)
	assert.Nil(t, items[0].PredictedRating)
}

func TestRecommend_EmptyListIsValid(t *testing.T) {
	c := newTestClient(t, respond(http.StatusOK, `{"success": true, "data": {"recommendations": []}}`))

	items, err := c.Recommend(context.Background(), "collaborative", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRecommend_Classification(t *testing.T) {
	tests := []struct {
		name string
		h    http.HandlerFunc
		want error
	}{
		{"explicit failure on 200", respond(http.StatusOK, `{"success": false, "error": "user not found"}`), ErrRejected},
		{"explicit failure on 500", respond(http.StatusInternalServerError, `{"success": false, "error": "boom"}`), ErrRejected},
		{"5xx without payload", respond(http.StatusServiceUnavailable, ``), ErrUnavailable},
		{"5xx with html", respond(http.StatusBadGateway, `<html>bad gateway</html>`), ErrUnavailable},
		{"4xx without payload", respond(http.StatusNotFound, `not found`), ErrRejected},
		{"2xx missing recommendations", respond(http.StatusOK, `{"success": true, "data": {"items": []}}`), ErrProtocol},
		{"2xx missing data", respond(http.StatusOK, `{"success": true}`), ErrProtocol},
		{"2xx unparsable", respond(http.StatusOK, `{"success": tr`), ErrProtocol},
		{"2xx wrong types", respond(http.StatusOK, `{"success": true, "data": {"recommendations": "nope"}}`), ErrProtocol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.h)
			_, err := c.Recommend(context.Background(), "content-based", 1, 10)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestRecommend_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := NewClient(base, upstream.New(upstream.Config{Name: "ml-unreachable", Timeout: time.Second}))
	_, err := c.Recommend(context.Background(), "hybrid", 1, 10)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestTemporal(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/temporal/seasonal", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true, "data": {"seasonal": [{"season": "Winter", "rating": 3.5}]}}`))
	})

	data, err := c.Temporal(context.Background(), "seasonal", 0)
	require.NoError(t, err)
	assert.JSONEq(t, `{"seasonal": [{"season": "Winter", "rating": 3.5}]}`, string(data))
}

func TestTemporal_ForwardsLimit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/temporal/popular", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"success": true, "data": {"popular": []}}`))
	})

	_, err := c.Temporal(context.Background(), "popular", 10)
	require.NoError(t, err)
}

func TestUserWeights(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/temporal/user-weights/274", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true, "data": {"user_id": 274, "time_weighted_avg": 3.9,
			"traditional_avg": 3.7, "adjustment": 0.2}}`))
	})

	data, err := c.UserWeights(context.Background(), 274)
	require.NoError(t, err)
	assert.JSONEq(t, `{"user_id": 274, "time_weighted_avg": 3.9, "traditional_avg": 3.7, "adjustment": 0.2}`, string(data))
}

func TestUserWeights_NoHistoryIsRejected(t *testing.T) {
	c := newTestClient(t, respond(http.StatusNotFound, `{"success": false, "error": "No rating history for this user"}`))

	_, err := c.UserWeights(context.Background(), 9)
	assert.True(t, errors.Is(err, ErrRejected))
	assert.Contains(t, err.Error(), "No rating history")
}
