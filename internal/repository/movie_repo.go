// internal/repository/movie_repo.go
package repository

import (
	"context"
	"errors"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/db"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MovieRepository struct {
	col *mongo.Collection
}

var _ CatalogStore = (*MovieRepository)(nil)

func NewMovieRepository(database *mongo.Database) *MovieRepository {
	return &MovieRepository{col: database.Collection(db.MoviesCollection)}
}

func (r *MovieRepository) FindByExternalID(ctx context.Context, tmdbID int) (*models.MovieDoc, error) {
	var m models.MovieDoc
	err := r.col.FindOne(ctx, bson.M{"tmdbId": tmdbID}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserta la entrada y le asigna el _id. Devuelve ErrDuplicateKey si
// otro request ya creó la misma película.
func (r *MovieRepository) Create(ctx context.Context, m *models.MovieDoc) error {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, m)
	return mapWriteErr(err)
}

func (r *MovieRepository) List(ctx context.Context, limit, offset int) ([]models.MovieDoc, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.MovieDoc{}
	for cur.Next(ctx) {
		var m models.MovieDoc
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}
