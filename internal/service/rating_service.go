package service

import (
	"context"
	"errors"
	"math"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/apperr"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/logging"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/metrics"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/repository"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultRatingListLimit = 100
	MaxRatingListLimit     = 500
)

// CatalogEnsurer resuelve (o crea) la entrada local de una película de TMDB.
type CatalogEnsurer interface {
	EnsureCatalogEntry(ctx context.Context, tmdbID int) (*models.MovieDoc, error)
}

type RatingService struct {
	ratings repository.RatingStore
	catalog CatalogEnsurer
	logger  zerolog.Logger
}

func NewRatingService(r repository.RatingStore, catalog CatalogEnsurer) *RatingService {
	return &RatingService{
		ratings: r,
		catalog: catalog,
		logger:  logging.WithComponent("rating-service"),
	}
}

// SubmitRating crea o reemplaza el rating de la cuenta para la película de
// TMDB tmdbID. Si la película no está en el catálogo local se crea antes.
// No hay escrituras si la validación o la consulta a TMDB fallan.
func (s *RatingService) SubmitRating(ctx context.Context, accountID string, tmdbID int, value float64) (*models.Rating, error) {
	const op = "rating.submit"

	// 1) Validaciones, antes de tocar cualquier store
	v, err := validateRatingValue(op, value)
	if err != nil {
		return nil, err
	}
	account, err := parseAccountID(op, accountID)
	if err != nil {
		return nil, err
	}
	if tmdbID <= 0 {
		return nil, apperr.New(apperr.KindInvalidArgument, op, "movie id must be a positive integer")
	}

	// 2) Entrada del catálogo (get-or-create)
	movie, err := s.catalog.EnsureCatalogEntry(ctx, tmdbID)
	if err != nil {
		return nil, err
	}

	// 3) Upsert del rating
	existing, err := s.ratings.FindByAccountAndMovie(ctx, account, movie.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorageError, op, err)
	}
	if existing != nil {
		return s.update(ctx, existing.ID, v)
	}

	rt := &models.Rating{
		AccountID: account,
		MovieID:   movie.ID,
		TMDBID:    movie.TMDBID,
		Rating:    v,
	}
	err = s.ratings.Create(ctx, rt)
	if err == nil {
		metrics.RatingsSubmitted.WithLabelValues("created").Inc()
		return rt, nil
	}
	if !errors.Is(err, repository.ErrDuplicateKey) {
		return nil, apperr.Wrap(apperr.KindStorageError, op, err)
	}

	// otro request creó el rating entre el find y el create: releer y actualizar una vez
	metrics.DuplicateKeyRecovered.WithLabelValues("ratings").Inc()
	s.logger.Debug().Str("accountId", accountID).Int("tmdbId", tmdbID).Msg("carrera en create de rating, reintentando como update")

	existing, err = s.ratings.FindByAccountAndMovie(ctx, account, movie.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorageError, op, err)
	}
	if existing == nil {
		return nil, apperr.New(apperr.KindStorageError, op, "rating missing after duplicate key")
	}
	return s.update(ctx, existing.ID, v)
}

func (s *RatingService) update(ctx context.Context, ratingID primitive.ObjectID, value int) (*models.Rating, error) {
	const op = "rating.update"
	rt, err := s.ratings.UpdateValue(ctx, ratingID, value)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorageError, op, err)
	}
	if rt == nil {
		return nil, apperr.New(apperr.KindStorageError, op, "rating disappeared during update")
	}
	metrics.RatingsSubmitted.WithLabelValues("updated").Inc()
	return rt, nil
}

// ListMine devuelve los ratings de la cuenta, el más reciente primero.
func (s *RatingService) ListMine(ctx context.Context, accountID string, limit, offset int) ([]models.Rating, error) {
	const op = "rating.list"
	account, err := parseAccountID(op, accountID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRatingListLimit
	} else if limit > MaxRatingListLimit {
		limit = MaxRatingListLimit
	}
	if offset < 0 {
		offset = 0
	}

	out, err := s.ratings.ListByAccount(ctx, account, limit, offset)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorageError, op, err)
	}
	return out, nil
}

// el valor tiene que ser entero en [1, 5]
func validateRatingValue(op string, value float64) (int, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return 0, apperr.New(apperr.KindInvalidArgument, op, "rating must be an integer between 1 and 5")
	}
	if value < models.MinRatingValue || value > models.MaxRatingValue {
		return 0, apperr.New(apperr.KindInvalidArgument, op, "rating must be an integer between 1 and 5")
	}
	return int(value), nil
}
