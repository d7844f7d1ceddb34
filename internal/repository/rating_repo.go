package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/db"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RatingRepository struct {
	col *mongo.Collection
	now func() time.Time
}

var _ RatingStore = (*RatingRepository)(nil)

func NewRatingRepository(database *mongo.Database) *RatingRepository {
	return &RatingRepository{col: database.Collection(db.RatingsCollection), now: time.Now}
}

func (r *RatingRepository) FindByAccountAndMovie(ctx context.Context, accountID string, movieID primitive.ObjectID) (*models.Rating, error) {
	var rt models.Rating
	err := r.col.FindOne(ctx, bson.M{"accountId": accountID, "movieId": movieID}).Decode(&rt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

// Create inserta un rating nuevo; ErrDuplicateKey si ya existe uno para el
// mismo (accountId, movieId).
func (r *RatingRepository) Create(ctx context.Context, rt *models.Rating) error {
	if rt.ID.IsZero() {
		rt.ID = primitive.NewObjectID()
	}
	now := r.now().UTC()
	if rt.CreatedAt.IsZero() {
		rt.CreatedAt = now
	}
	rt.UpdatedAt = now

	_, err := r.col.InsertOne(ctx, rt)
	return mapWriteErr(err)
}

// UpdateValue reemplaza el valor y devuelve el documento actualizado,
// o nil si el rating no existe.
func (r *RatingRepository) UpdateValue(ctx context.Context, ratingID primitive.ObjectID, value int) (*models.Rating, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var rt models.Rating
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": ratingID},
		bson.M{"$set": bson.M{
			"rating":    value,
			"updatedAt": r.now().UTC(),
		}},
		opts,
	).Decode(&rt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *RatingRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]models.Rating, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"accountId": accountID},
		options.Find().
			SetSort(bson.D{{Key: "updatedAt", Value: -1}}).
			SetLimit(int64(limit)).
			SetSkip(int64(offset)),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Rating{}
	for cur.Next(ctx) {
		var rt models.Rating
		if err := cur.Decode(&rt); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, cur.Err()
}
