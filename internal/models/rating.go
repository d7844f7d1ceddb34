package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

// Rating es la calificación de una cuenta sobre una entrada del catálogo.
// (accountId, movieId) es único.
type Rating struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	AccountID string             `json:"accountId" bson:"accountId"`
	MovieID   primitive.ObjectID `json:"movieId" bson:"movieId"`
	TMDBID    int                `json:"tmdbId" bson:"tmdbId"`
	Rating    int                `json:"rating" bson:"rating"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Payload de POST /movies/rating. movieId es el id de TMDB.
type RatingRequest struct {
	MovieID int     `json:"movieId" validate:"required,gt=0" example:"603"`
	Rating  float64 `json:"rating" validate:"required" example:"4"`
}

// MLIdentity es la respuesta de GET /movies/user/ml-id.
type MLIdentity struct {
	AccountID    string `json:"accountId"`
	ReconciledID int    `json:"reconciledId"`
	UserSpace    int    `json:"userSpace"`
}
