package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/apperr"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/cache"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/identity"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/logging"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/metrics"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/mlclient"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/repository"

	"github.com/rs/zerolog"
)

const (
	DefaultLimit = 10
	MaxLimit     = 50 // por seguridad, no deja pedir 1000 ítems
)

// Recommender es el servicio ML externo.
type Recommender interface {
	Recommend(ctx context.Context, mode string, subject, limit int) ([]models.RecItem, error)
}

type RecommendService struct {
	ml         Recommender
	recRepo    repository.RecommendationStore
	reconciler identity.Reconciler
	cacheTTL   time.Duration
	logger     zerolog.Logger
}

func NewRecommendService(
	ml Recommender,
	recRepo repository.RecommendationStore,
	reconciler identity.Reconciler,
	cacheTTL time.Duration,
) *RecommendService {
	return &RecommendService{
		ml:         ml,
		recRepo:    recRepo,
		reconciler: reconciler,
		cacheTTL:   cacheTTL,
		logger:     logging.WithComponent("recommend-service"),
	}
}

// ====== Petición de recomendaciones ======

// RecQuery: ItemID se usa en content-based, AccountID en collaborative / hybrid.
type RecQuery struct {
	Mode      string
	AccountID string
	ItemID    int
	Limit     int
	Refresh   bool
}

func cacheKey(mode string, subject, limit int) string {
	// refresh no entra en la key, solo decide si se lee la caché
	return fmt.Sprintf("rec:%s:%d:limit:%d", mode, subject, limit)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// subject resuelve el id que se manda al servicio ML. Para los modos por
// usuario es el id reconciliado; el id de la cuenta nunca sale del proceso.
func (s *RecommendService) subject(q RecQuery) (int, error) {
	const op = "recommend.subject"
	switch q.Mode {
	case models.ModeContentBased:
		if q.ItemID <= 0 {
			return 0, apperr.New(apperr.KindInvalidArgument, op, "movie id must be a positive integer")
		}
		return q.ItemID, nil
	case models.ModeCollaborative, models.ModeHybrid:
		if q.AccountID == "" {
			return 0, apperr.New(apperr.KindUnauthenticated, op, "authentication required for "+q.Mode+" recommendations")
		}
		return s.reconciler.Reconcile(q.AccountID)
	default:
		return 0, apperr.New(apperr.KindInvalidArgument, op, fmt.Sprintf("unknown recommendation mode %q", q.Mode))
	}
}

// GetRecommendations delega en el servicio ML. Sin efectos sobre ratings ni
// catálogo; solo escribe caché e historial.
func (s *RecommendService) GetRecommendations(ctx context.Context, q RecQuery) (*models.RecommendationResult, error) {
	const op = "recommend.get"

	subject, err := s.subject(q)
	if err != nil {
		return nil, err
	}
	limit := normalizeLimit(q.Limit)
	key := cacheKey(q.Mode, subject, limit)

	// 1) Cache Redis (solo si refresh = false)
	if !q.Refresh {
		var cached []models.RecItem
		if ok, err := cache.GetJSON(ctx, key, &cached); err != nil {
			metrics.CacheLookups.WithLabelValues("recommendations", "error").Inc()
		} else if ok {
			metrics.CacheLookups.WithLabelValues("recommendations", "hit").Inc()
			return &models.RecommendationResult{
				Mode: q.Mode, Subject: subject, Limit: limit, Cached: true, Recommendations: cached,
			}, nil
		} else {
			metrics.CacheLookups.WithLabelValues("recommendations", "miss").Inc()
		}
	}

	// 2) Servicio ML
	items, err := s.ml.Recommend(ctx, q.Mode, subject, limit)
	if err != nil {
		return nil, mapRecommenderErr(op, err)
	}
	if items == nil {
		items = []models.RecItem{}
	}

	// 3) Guardar historial en Mongo (no rompemos la respuesta si falla)
	if s.recRepo != nil {
		hist := &models.Recommendation{
			AccountID: q.AccountID,
			Mode:      q.Mode,
			Subject:   subject,
			Limit:     limit,
			Items:     items,
			CreatedAt: time.Now(),
		}
		if err := s.recRepo.Insert(ctx, hist); err != nil {
			s.logger.Warn().Err(err).Msg("error guardando recomendación en Mongo")
		}
	}

	// 4) Cachear en Redis
	if err := cache.SetJSON(ctx, key, items, s.cacheTTL); err != nil {
		s.logger.Warn().Err(err).Msg("error cacheando recomendación en Redis")
	}

	return &models.RecommendationResult{
		Mode: q.Mode, Subject: subject, Limit: limit, Recommendations: items,
	}, nil
}

func mapRecommenderErr(op string, err error) error {
	switch {
	case errors.Is(err, mlclient.ErrRejected):
		return apperr.Wrap(apperr.KindUpstreamError, op, err)
	case errors.Is(err, mlclient.ErrProtocol):
		return apperr.Wrap(apperr.KindUpstreamProtocolError, op, err)
	default:
		return apperr.Wrap(apperr.KindUpstreamUnavailable, op, err)
	}
}

// History devuelve las últimas recomendaciones pedidas por la cuenta.
func (s *RecommendService) History(ctx context.Context, accountID string, limit int) ([]models.Recommendation, error) {
	const op = "recommend.history"
	account, err := parseAccountID(op, accountID)
	if err != nil {
		return nil, err
	}
	if s.recRepo == nil {
		return []models.Recommendation{}, nil
	}

	out, err := s.recRepo.FindByAccount(ctx, account, int64(normalizeLimit(limit)))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorageError, op, err)
	}
	if out == nil {
		out = []models.Recommendation{}
	}
	return out, nil
}
