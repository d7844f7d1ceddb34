// Package memory implementa los stores en memoria que usan los tests.
// Respeta los mismos índices únicos que Mongo.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogRepository es un catálogo en memoria indexado por tmdbId.
type CatalogRepository struct {
	sync.RWMutex
	data map[int]models.MovieDoc
}

var _ repository.CatalogStore = (*CatalogRepository)(nil)

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{data: map[int]models.MovieDoc{}}
}

func (r *CatalogRepository) FindByExternalID(_ context.Context, tmdbID int) (*models.MovieDoc, error) {
	r.RLock()
	defer r.RUnlock()

	m, ok := r.data[tmdbID]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *CatalogRepository) Create(_ context.Context, m *models.MovieDoc) error {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.data[m.TMDBID]; ok {
		return repository.ErrDuplicateKey
	}
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	r.data[m.TMDBID] = *m
	return nil
}

func (r *CatalogRepository) List(_ context.Context, limit, offset int) ([]models.MovieDoc, error) {
	r.RLock()
	out := make([]models.MovieDoc, 0, len(r.data))
	for _, m := range r.data {
		out = append(out, m)
	}
	r.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].TMDBID < out[j].TMDBID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return page(out, limit, offset), nil
}

// Len devuelve la cantidad de entradas guardadas.
func (r *CatalogRepository) Len() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.data)
}

type ratingKey struct {
	account string
	movie   primitive.ObjectID
}

// RatingRepository guarda un rating por (cuenta, película).
type RatingRepository struct {
	sync.RWMutex
	byID  map[primitive.ObjectID]*models.Rating
	byKey map[ratingKey]primitive.ObjectID
	now   func() time.Time
}

var _ repository.RatingStore = (*RatingRepository)(nil)

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{
		byID:  map[primitive.ObjectID]*models.Rating{},
		byKey: map[ratingKey]primitive.ObjectID{},
		now:   time.Now,
	}
}

func (r *RatingRepository) FindByAccountAndMovie(_ context.Context, accountID string, movieID primitive.ObjectID) (*models.Rating, error) {
	r.RLock()
	defer r.RUnlock()

	id, ok := r.byKey[ratingKey{accountID, movieID}]
	if !ok {
		return nil, nil
	}
	cp := *r.byID[id]
	return &cp, nil
}

func (r *RatingRepository) Create(_ context.Context, rt *models.Rating) error {
	r.Lock()
	defer r.Unlock()

	key := ratingKey{rt.AccountID, rt.MovieID}
	if _, ok := r.byKey[key]; ok {
		return repository.ErrDuplicateKey
	}
	if rt.ID.IsZero() {
		rt.ID = primitive.NewObjectID()
	}
	now := r.now().UTC()
	if rt.CreatedAt.IsZero() {
		rt.CreatedAt = now
	}
	rt.UpdatedAt = now

	cp := *rt
	r.byID[rt.ID] = &cp
	r.byKey[key] = rt.ID
	return nil
}

func (r *RatingRepository) UpdateValue(_ context.Context, ratingID primitive.ObjectID, value int) (*models.Rating, error) {
	r.Lock()
	defer r.Unlock()

	rt, ok := r.byID[ratingID]
	if !ok {
		return nil, nil
	}
	rt.Rating = value
	rt.UpdatedAt = r.now().UTC()
	cp := *rt
	return &cp, nil
}

func (r *RatingRepository) ListByAccount(_ context.Context, accountID string, limit, offset int) ([]models.Rating, error) {
	r.RLock()
	out := []models.Rating{}
	for _, rt := range r.byID {
		if rt.AccountID == accountID {
			out = append(out, *rt)
		}
	}
	r.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID.Hex() < out[j].ID.Hex()
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return page(out, limit, offset), nil
}

// Len devuelve la cantidad de ratings guardados.
func (r *RatingRepository) Len() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.byID)
}

// UserRepository guarda cuentas con email único.
type UserRepository struct {
	sync.RWMutex
	byID    map[primitive.ObjectID]models.UserDoc
	byEmail map[string]primitive.ObjectID
}

var _ repository.UserStore = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    map[primitive.ObjectID]models.UserDoc{},
		byEmail: map[string]primitive.ObjectID{},
	}
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*models.UserDoc, error) {
	r.RLock()
	defer r.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	u := r.byID[id]
	return &u, nil
}

func (r *UserRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.UserDoc, error) {
	r.RLock()
	defer r.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepository) Insert(_ context.Context, u *models.UserDoc) error {
	r.Lock()
	defer r.Unlock()

	u.Email = strings.ToLower(u.Email)
	if _, ok := r.byEmail[u.Email]; ok {
		return repository.ErrDuplicateKey
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.byID[u.ID] = *u
	r.byEmail[u.Email] = u.ID
	return nil
}

// RecommendationRepository guarda el historial de recomendaciones.
type RecommendationRepository struct {
	sync.Mutex
	data []models.Recommendation
}

var _ repository.RecommendationStore = (*RecommendationRepository)(nil)

func NewRecommendationRepository() *RecommendationRepository {
	return &RecommendationRepository{}
}

func (r *RecommendationRepository) Insert(_ context.Context, rec *models.Recommendation) error {
	r.Lock()
	defer r.Unlock()

	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	r.data = append(r.data, *rec)
	return nil
}

func (r *RecommendationRepository) FindByAccount(_ context.Context, accountID string, limit int64) ([]models.Recommendation, error) {
	r.Lock()
	defer r.Unlock()

	var out []models.Recommendation
	for i := len(r.data) - 1; i >= 0 && (limit <= 0 || int64(len(out)) < limit); i-- {
		if r.data[i].AccountID == accountID {
			out = append(out, r.data[i])
		}
	}
	return out, nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return items[:0]
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
