package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MovieDoc es la entrada del catálogo local. Se crea la primera vez que
// alguien califica una película de TMDB y nunca se sobrescribe.
type MovieDoc struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TMDBID      int                `json:"tmdbId" bson:"tmdbId"`
	Title       string             `json:"title" bson:"title"`
	Overview    string             `json:"overview,omitempty" bson:"overview,omitempty"`
	PosterPath  string             `json:"posterPath,omitempty" bson:"posterPath,omitempty"`
	ReleaseDate string             `json:"releaseDate,omitempty" bson:"releaseDate,omitempty"`
	VoteAverage float64            `json:"voteAverage,omitempty" bson:"voteAverage,omitempty"`
	Genres      []string           `json:"genres,omitempty" bson:"genres,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// MovieInfo es la vista de una película tal como la entrega el catálogo externo.
type MovieInfo struct {
	TMDBID      int      `json:"tmdbId"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview,omitempty"`
	PosterPath  string   `json:"posterPath,omitempty"`
	ReleaseDate string   `json:"releaseDate,omitempty"`
	VoteAverage float64  `json:"voteAverage,omitempty"`
	Genres      []string `json:"genres,omitempty"`
}

// MoviePage es una página de resultados de TMDB (popular / search).
type MoviePage struct {
	Page         int         `json:"page"`
	TotalPages   int         `json:"totalPages"`
	TotalResults int         `json:"totalResults"`
	Results      []MovieInfo `json:"results"`
}

// NewMovieDoc arma la entrada del catálogo a partir de la respuesta externa.
func NewMovieDoc(info *MovieInfo, now time.Time) *MovieDoc {
	return &MovieDoc{
		TMDBID:      info.TMDBID,
		Title:       info.Title,
		Overview:    info.Overview,
		PosterPath:  info.PosterPath,
		ReleaseDate: info.ReleaseDate,
		VoteAverage: info.VoteAverage,
		Genres:      info.Genres,
		CreatedAt:   now,
	}
}

// Info devuelve la entrada local con la forma de MovieInfo.
func (m *MovieDoc) Info() MovieInfo {
	return MovieInfo{
		TMDBID:      m.TMDBID,
		Title:       m.Title,
		Overview:    m.Overview,
		PosterPath:  m.PosterPath,
		ReleaseDate: m.ReleaseDate,
		VoteAverage: m.VoteAverage,
		Genres:      m.Genres,
	}
}

// MovieDetail es lo que devuelve GET /movies/{id}: la ficha y, si ya existe,
// el id local.
type MovieDetail struct {
	MovieInfo
	LocalID *primitive.ObjectID `json:"localId,omitempty"`
	Source  string              `json:"source"` // catalog | tmdb
}
