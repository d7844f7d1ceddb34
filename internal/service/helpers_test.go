package service

import (
	"context"
	"errors"
	"sync"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/repository"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/repository/memory"
)

var errDiskFull = errors.New("disk full")

func matrixInfo(id int) *models.MovieInfo {
	return &models.MovieInfo{TMDBID: id, Title: "The Matrix", Overview: "A hacker learns the truth.", Genres: []string{"Action"}}
}

// racingCatalog simula otro proceso que crea la misma entrada justo entre
// el find y el create.
type racingCatalog struct {
	*memory.CatalogRepository
	mu    sync.Mutex
	raced bool
}

func (r *racingCatalog) Create(ctx context.Context, m *models.MovieDoc) error {
	r.mu.Lock()
	first := !r.raced
	r.raced = true
	r.mu.Unlock()

	if first {
		winner := *m
		winner.Title = "winner"
		if err := r.CatalogRepository.Create(ctx, &winner); err != nil {
			return err
		}
		return repository.ErrDuplicateKey
	}
	return r.CatalogRepository.Create(ctx, m)
}

// vanishingCatalog devuelve duplicate key pero la relectura no encuentra nada.
type vanishingCatalog struct {
	*memory.CatalogRepository
}

func (vanishingCatalog) Create(context.Context, *models.MovieDoc) error {
	return repository.ErrDuplicateKey
}

type brokenCatalog struct {
	*memory.CatalogRepository
}

func (brokenCatalog) FindByExternalID(context.Context, int) (*models.MovieDoc, error) {
	return nil, errDiskFull
}

// racingRatings inserta un rating competidor antes del primer Create.
type racingRatings struct {
	*memory.RatingRepository
	raced bool
}

func (r *racingRatings) Create(ctx context.Context, rt *models.Rating) error {
	if !r.raced {
		r.raced = true
		other := *rt
		other.Rating = 1
		if err := r.RatingRepository.Create(ctx, &other); err != nil {
			return err
		}
		return repository.ErrDuplicateKey
	}
	return r.RatingRepository.Create(ctx, rt)
}

type vanishingRatings struct {
	*memory.RatingRepository
}

func (vanishingRatings) Create(context.Context, *models.Rating) error {
	return repository.ErrDuplicateKey
}

type brokenRatings struct {
	*memory.RatingRepository
}

func (brokenRatings) Create(context.Context, *models.Rating) error {
	return errDiskFull
}
