package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/apperr"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/cache"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/logging"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/metrics"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/repository"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/tmdb"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultMovieListLimit = 50
	MaxMovieListLimit     = 200

	// EnsureTimeout acota el get-or-create compartido entre llamadores.
	EnsureTimeout = 30 * time.Second
)

//go:generate mockgen -destination=mock_movie_fetcher_test.go -package=service github.com/Ferhan0/Movie-Recommendation-System/internal/service MovieFetcher

// MovieFetcher es el catálogo externo (TMDB).
type MovieFetcher interface {
	GetMovie(ctx context.Context, id int) (*models.MovieInfo, error)
	Popular(ctx context.Context, page int) (*models.MoviePage, error)
	Search(ctx context.Context, query string, page int) (*models.MoviePage, error)
}

type MovieService struct {
	movies   repository.CatalogStore
	fetcher  MovieFetcher
	cacheTTL time.Duration
	group    singleflight.Group
	now      func() time.Time
	logger   zerolog.Logger
}

func NewMovieService(movies repository.CatalogStore, fetcher MovieFetcher, cacheTTL time.Duration) *MovieService {
	return &MovieService{
		movies:   movies,
		fetcher:  fetcher,
		cacheTTL: cacheTTL,
		now:      time.Now,
		logger:   logging.WithComponent("movie-service"),
	}
}

// ====== Get-or-create de la entrada del catálogo ======

// EnsureCatalogEntry devuelve la entrada local para tmdbID, creándola desde
// TMDB si todavía no existe. Los pedidos concurrentes por el mismo id dentro
// del proceso comparten una sola ejecución; entre procesos arbitra el índice
// único de tmdbId.
func (s *MovieService) EnsureCatalogEntry(ctx context.Context, tmdbID int) (*models.MovieDoc, error) {
	const op = "movie.ensure"
	if tmdbID <= 0 {
		return nil, apperr.New(apperr.KindInvalidArgument, op, "movie id must be a positive integer")
	}

	// El trabajo compartido no hereda la cancelación de quien lo arrancó:
	// si ese cliente se va, los demás siguen esperando el mismo resultado.
	ch := s.group.DoChan(strconv.Itoa(tmdbID), func() (any, error) {
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), EnsureTimeout)
		defer cancel()
		return s.ensure(shared, tmdbID)
	})

	select {
	case <-ctx.Done():
		return nil, apperr.Wrap(apperr.KindUpstreamUnavailable, op, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		m := *res.Val.(*models.MovieDoc)
		return &m, nil
	}
}

func (s *MovieService) ensure(ctx context.Context, tmdbID int) (*models.MovieDoc, error) {
	const op = "movie.ensure"

	existing, err := s.movies.FindByExternalID(ctx, tmdbID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorageError, op, err)
	}
	if existing != nil {
		return existing, nil
	}

	info, err := s.lookup(ctx, tmdbID)
	if err != nil {
		return nil, err
	}

	doc := models.NewMovieDoc(info, s.now().UTC())
	doc.TMDBID = tmdbID

	err = s.movies.Create(ctx, doc)
	if err == nil {
		metrics.CatalogEntriesCreated.Inc()
		s.logger.Info().Int("tmdbId", tmdbID).Str("localId", doc.ID.Hex()).Msg("entrada de catálogo creada")
		return doc, nil
	}
	if !errors.Is(err, repository.ErrDuplicateKey) {
		return nil, apperr.Wrap(apperr.KindStorageError, op, err)
	}

	// otro proceso la creó primero: una sola relectura
	metrics.DuplicateKeyRecovered.WithLabelValues("movies").Inc()
	existing, err = s.movies.FindByExternalID(ctx, tmdbID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorageError, op, err)
	}
	if existing == nil {
		return nil, apperr.New(apperr.KindStorageError, op,
			fmt.Sprintf("catalog entry %d missing after duplicate key", tmdbID))
	}
	return existing, nil
}

// lookup consulta TMDB pasando por la caché Redis.
func (s *MovieService) lookup(ctx context.Context, tmdbID int) (*models.MovieInfo, error) {
	const op = "movie.lookup"
	key := fmt.Sprintf("tmdb:movie:%d", tmdbID)

	var cached models.MovieInfo
	if ok, err := cache.GetJSON(ctx, key, &cached); err != nil {
		metrics.CacheLookups.WithLabelValues("tmdb", "error").Inc()
		s.logger.Warn().Err(err).Str("key", key).Msg("error leyendo caché")
	} else if ok {
		metrics.CacheLookups.WithLabelValues("tmdb", "hit").Inc()
		return &cached, nil
	} else {
		metrics.CacheLookups.WithLabelValues("tmdb", "miss").Inc()
	}

	info, err := s.fetcher.GetMovie(ctx, tmdbID)
	if err != nil {
		return nil, mapFetchErr(op, err)
	}

	if err := cache.SetJSON(ctx, key, info, s.cacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("error cacheando película")
	}
	return info, nil
}

func mapFetchErr(op string, err error) error {
	if errors.Is(err, tmdb.ErrNotFound) {
		return apperr.Wrap(apperr.KindMovieNotFound, op, err)
	}
	return apperr.Wrap(apperr.KindUpstreamUnavailable, op, err)
}

// ====== Lecturas para la API ======

// Detail devuelve la entrada local si existe; si no, la ficha de TMDB sin
// guardarla (el catálogo solo crece con ratings).
func (s *MovieService) Detail(ctx context.Context, tmdbID int) (*models.MovieDetail, error) {
	const op = "movie.detail"
	if tmdbID <= 0 {
		return nil, apperr.New(apperr.KindInvalidArgument, op, "movie id must be a positive integer")
	}

	local, err := s.movies.FindByExternalID(ctx, tmdbID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorageError, op, err)
	}
	if local != nil {
		id := local.ID
		return &models.MovieDetail{MovieInfo: local.Info(), LocalID: &id, Source: "catalog"}, nil
	}

	info, err := s.lookup(ctx, tmdbID)
	if err != nil {
		return nil, err
	}
	return &models.MovieDetail{MovieInfo: *info, Source: "tmdb"}, nil
}

func (s *MovieService) List(ctx context.Context, limit, offset int) ([]models.MovieDoc, error) {
	if limit <= 0 {
		limit = DefaultMovieListLimit
	} else if limit > MaxMovieListLimit {
		limit = MaxMovieListLimit
	}
	if offset < 0 {
		offset = 0
	}
	out, err := s.movies.List(ctx, limit, offset)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorageError, "movie.list", err)
	}
	return out, nil
}

func (s *MovieService) Popular(ctx context.Context, page int) (*models.MoviePage, error) {
	const op = "movie.popular"
	if page < 1 {
		page = 1
	}
	key := fmt.Sprintf("tmdb:popular:%d", page)

	var cached models.MoviePage
	if ok, err := cache.GetJSON(ctx, key, &cached); err == nil && ok {
		metrics.CacheLookups.WithLabelValues("tmdb", "hit").Inc()
		return &cached, nil
	}

	res, err := s.fetcher.Popular(ctx, page)
	if err != nil {
		return nil, mapFetchErr(op, err)
	}
	if err := cache.SetJSON(ctx, key, res, s.cacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("error cacheando populares")
	}
	return res, nil
}

func (s *MovieService) Search(ctx context.Context, query string, page int) (*models.MoviePage, error) {
	const op = "movie.search"
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, op, "query is required")
	}
	if page < 1 {
		page = 1
	}

	res, err := s.fetcher.Search(ctx, query, page)
	if err != nil {
		// un 404 en búsqueda no tiene sentido para el cliente
		return nil, apperr.Wrap(apperr.KindUpstreamUnavailable, op, err)
	}
	return res, nil
}
