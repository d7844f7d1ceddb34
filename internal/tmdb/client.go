// Package tmdb es el cliente del catálogo externo (The Movie Database, API v3).
package tmdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/upstream"

	"github.com/goccy/go-json"
)

var (
	// ErrNotFound: TMDB respondió 404, la película no existe.
	ErrNotFound = errors.New("tmdb: movie not found")
	// ErrUnavailable: cualquier otra cosa (red, 5xx, key inválida, respuesta rota).
	ErrUnavailable = errors.New("tmdb: unavailable")
)

const language = "en-US"

type Client struct {
	baseURL string
	apiKey  string
	http    *upstream.Client
}

func NewClient(baseURL, apiKey string, up *upstream.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    up,
	}
}

// ====== DTOs de TMDB ======

type genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type movieDTO struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	Genres      []genre `json:"genres"`
	GenreIDs    []int   `json:"genre_ids"`
}

type pageDTO struct {
	Page         int        `json:"page"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
	Results      []movieDTO `json:"results"`
}

func (d movieDTO) toInfo() models.MovieInfo {
	info := models.MovieInfo{
		TMDBID:      d.ID,
		Title:       d.Title,
		Overview:    d.Overview,
		PosterPath:  d.PosterPath,
		ReleaseDate: d.ReleaseDate,
		VoteAverage: d.VoteAverage,
	}
	// el detalle trae nombres, los listados solo ids
	for _, g := range d.Genres {
		info.Genres = append(info.Genres, g.Name)
	}
	if len(info.Genres) == 0 {
		for _, id := range d.GenreIDs {
			info.Genres = append(info.Genres, strconv.Itoa(id))
		}
	}
	return info
}

// ====== Endpoints ======

// GetMovie trae el detalle de una película por id de TMDB.
func (c *Client) GetMovie(ctx context.Context, id int) (*models.MovieInfo, error) {
	var dto movieDTO
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), nil, &dto); err != nil {
		return nil, err
	}
	if dto.ID == 0 || dto.Title == "" {
		return nil, fmt.Errorf("%w: incomplete movie payload for id %d", ErrUnavailable, id)
	}
	info := dto.toInfo()
	return &info, nil
}

func (c *Client) Popular(ctx context.Context, page int) (*models.MoviePage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(normalizePage(page)))
	return c.getPage(ctx, "/movie/popular", q)
}

func (c *Client) Search(ctx context.Context, query string, page int) (*models.MoviePage, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("page", strconv.Itoa(normalizePage(page)))
	return c.getPage(ctx, "/search/movie", q)
}

func (c *Client) getPage(ctx context.Context, path string, q url.Values) (*models.MoviePage, error) {
	var dto pageDTO
	if err := c.get(ctx, path, q, &dto); err != nil {
		return nil, err
	}
	out := &models.MoviePage{
		Page:         dto.Page,
		TotalPages:   dto.TotalPages,
		TotalResults: dto.TotalResults,
		Results:      make([]models.MovieInfo, 0, len(dto.Results)),
	}
	for _, m := range dto.Results {
		out.Results = append(out.Results, m.toInfo())
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, dest any) error {
	if q == nil {
		q = url.Values{}
	}
	q.Set("api_key", c.apiKey)
	q.Set("language", language)

	res, err := c.http.Get(ctx, c.baseURL+path+"?"+q.Encode())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch {
	case res.Status == http.StatusNotFound:
		return ErrNotFound
	case res.Status != http.StatusOK:
		return fmt.Errorf("%w: status %d", ErrUnavailable, res.Status)
	}

	if err := json.Unmarshal(res.Body, dest); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrUnavailable, path, err)
	}
	return nil
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	// TMDB no acepta páginas > 500
	if page > 500 {
		return 500
	}
	return page
}
