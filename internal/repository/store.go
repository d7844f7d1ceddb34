package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateKey indica que un Create chocó con un índice único. Los
// servicios lo resuelven releyendo; nunca sale de la capa de servicio.
var ErrDuplicateKey = errors.New("duplicate key")

// CatalogStore guarda las entradas del catálogo local, una por tmdbId.
type CatalogStore interface {
	FindByExternalID(ctx context.Context, tmdbID int) (*models.MovieDoc, error)
	Create(ctx context.Context, m *models.MovieDoc) error
	List(ctx context.Context, limit, offset int) ([]models.MovieDoc, error)
}

// RatingStore guarda un rating por (cuenta, película).
type RatingStore interface {
	FindByAccountAndMovie(ctx context.Context, accountID string, movieID primitive.ObjectID) (*models.Rating, error)
	Create(ctx context.Context, r *models.Rating) error
	UpdateValue(ctx context.Context, ratingID primitive.ObjectID, value int) (*models.Rating, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]models.Rating, error)
}

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.UserDoc, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.UserDoc, error)
	Insert(ctx context.Context, u *models.UserDoc) error
}

type RecommendationStore interface {
	Insert(ctx context.Context, rec *models.Recommendation) error
	FindByAccount(ctx context.Context, accountID string, limit int64) ([]models.Recommendation, error)
}

// mapWriteErr traduce la violación de índice único a ErrDuplicateKey.
func mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	return err
}
