package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Modos de recomendación que entiende el servicio ML.
const (
	ModeContentBased  = "content-based"
	ModeCollaborative = "collaborative"
	ModeHybrid        = "hybrid"
)

// RecItem es una película recomendada por el servicio ML. Según el modo
// vienen unos scores u otros.
type RecItem struct {
	MovieID         int      `bson:"movieId" json:"movieId"`
	Title           string   `bson:"title,omitempty" json:"title,omitempty"`
	Genres          string   `bson:"genres,omitempty" json:"genres,omitempty"`
	SimilarityScore *float64 `bson:"similarityScore,omitempty" json:"similarity_score,omitempty"`
	PredictedRating *float64 `bson:"predictedRating,omitempty" json:"predicted_rating,omitempty"`
	HybridScore     *float64 `bson:"hybridScore,omitempty" json:"hybrid_score,omitempty"`
	CBContribution  *float64 `bson:"cbContribution,omitempty" json:"cb_contribution,omitempty"`
	CFContribution  *float64 `bson:"cfContribution,omitempty" json:"cf_contribution,omitempty"`
}

// RecommendationResult es la respuesta de la API de recomendaciones.
type RecommendationResult struct {
	Mode            string    `json:"mode"`
	Subject         int       `json:"subject"`
	Limit           int       `json:"limit"`
	Cached          bool      `json:"cached"`
	Recommendations []RecItem `json:"recommendations"`
}

// Recommendation es el historial que se guarda en Mongo. Subject es el id de
// película (content-based) o el id reconciliado; la cuenta local se guarda
// aparte y nunca se envía al servicio ML.
type Recommendation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"       json:"id"`
	AccountID string             `bson:"accountId,omitempty" json:"accountId,omitempty"`
	Mode      string             `bson:"mode"                json:"mode"`
	Subject   int                `bson:"subject"             json:"subject"`
	Limit     int                `bson:"limit"               json:"limit"`
	Items     []RecItem          `bson:"items"               json:"items"`
	CreatedAt time.Time          `bson:"createdAt"           json:"createdAt"`
}
