package service

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/apperr"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/identity"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/logging"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/metrics"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// Métricas de la evaluación offline de los tres algoritmos.
//
//go:embed data/performance.json
var performanceJSON []byte

// MaxPopularLimit acota el limit que se reenvía a /api/temporal/popular.
const MaxPopularLimit = 100

// TemporalSource es la parte del servicio ML que expone el análisis temporal.
type TemporalSource interface {
	Temporal(ctx context.Context, kind string, limit int) ([]byte, error)
	UserWeights(ctx context.Context, userID int) ([]byte, error)
}

type AnalyticsService struct {
	ml         TemporalSource
	reconciler identity.Reconciler
	dir        string
	maxAge     time.Duration
	now        func() time.Time
	logger     zerolog.Logger
}

func NewAnalyticsService(
	ml TemporalSource,
	reconciler identity.Reconciler,
	snapshotDir string,
	maxAge time.Duration,
) *AnalyticsService {
	return &AnalyticsService{
		ml:         ml,
		reconciler: reconciler,
		dir:        snapshotDir,
		maxAge:     maxAge,
		now:        time.Now,
		logger:     logging.WithComponent("analytics-service"),
	}
}

func validTemporalKind(kind string) bool {
	switch kind {
	case models.TemporalTrends, models.TemporalSeasonal, models.TemporalPopular, models.TemporalFullReport:
		return true
	}
	return false
}

// snapshotKey separa los snapshots de popular por limit; el resto de los
// análisis no tiene parámetros.
func snapshotKey(kind string, limit int) string {
	if kind == models.TemporalPopular && limit > 0 {
		return kind + "-" + strconv.Itoa(limit)
	}
	return kind
}

// snapshot es lo que se guarda en <dir>/<key>.json.
type snapshot struct {
	Kind string          `json:"kind"`
	AsOf time.Time       `json:"asOf"`
	Data json.RawMessage `json:"data"`
}

// Temporal pide el análisis en vivo y lo guarda como snapshot. Si el servicio
// ML falla se responde con el último snapshot, marcando source y stale.
// limit sólo aplica a popular (0 deja el default del servicio ML).
func (s *AnalyticsService) Temporal(ctx context.Context, kind string, limit int) (*models.TemporalReport, error) {
	const op = "analytics.temporal"
	if !validTemporalKind(kind) {
		return nil, apperr.New(apperr.KindInvalidArgument, op, fmt.Sprintf("unknown temporal analysis %q", kind))
	}
	if kind != models.TemporalPopular {
		limit = 0
	}
	if limit < 0 || limit > MaxPopularLimit {
		return nil, apperr.New(apperr.KindInvalidArgument, op,
			fmt.Sprintf("limit must be between 1 and %d", MaxPopularLimit))
	}
	key := snapshotKey(kind, limit)

	data, liveErr := s.ml.Temporal(ctx, kind, limit)
	if liveErr == nil {
		now := s.now().UTC()
		if err := s.writeSnapshot(key, snapshot{Kind: kind, AsOf: now, Data: data}); err != nil {
			s.logger.Warn().Err(err).Str("kind", kind).Msg("no se pudo guardar snapshot")
		}
		return &models.TemporalReport{Kind: kind, Source: models.SourceLive, AsOf: now, Data: data}, nil
	}

	s.logger.Warn().Err(liveErr).Str("kind", kind).Msg("servicio ML falló, buscando snapshot")
	snap, err := s.readSnapshot(key)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Error().Err(err).Str("kind", kind).Msg("snapshot ilegible")
		}
		return nil, mapRecommenderErr(op, liveErr)
	}

	metrics.SnapshotServed.WithLabelValues(kind).Inc()
	return &models.TemporalReport{
		Kind:   kind,
		Source: models.SourceSnapshot,
		AsOf:   snap.AsOf,
		Stale:  s.maxAge > 0 && s.now().Sub(snap.AsOf) > s.maxAge,
		Data:   []byte(snap.Data),
	}, nil
}

func (s *AnalyticsService) snapshotPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// writeSnapshot escribe en un temporal y renombra, así un lector nunca ve
// un archivo a medias.
func (s *AnalyticsService) writeSnapshot(key string, snap snapshot) error {
	if s.dir == "" {
		return nil
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.snapshotPath(key))
}

func (s *AnalyticsService) readSnapshot(key string) (*snapshot, error) {
	if s.dir == "" {
		return nil, os.ErrNotExist
	}
	b, err := os.ReadFile(s.snapshotPath(key))
	if err != nil {
		return nil, err
	}
	var snap snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, err
	}
	if len(snap.Data) == 0 {
		return nil, fmt.Errorf("snapshot %s has no data", key)
	}
	return &snap, nil
}

// UserWeights pide al servicio ML el promedio ponderado en el tiempo de la
// cuenta. No hay snapshot: es un dato por usuario y sin historial el servicio
// responde success:false, que se informa como UpstreamError.
func (s *AnalyticsService) UserWeights(ctx context.Context, accountID string) (*models.UserWeights, error) {
	const op = "analytics.user_weights"
	if accountID == "" {
		return nil, apperr.New(apperr.KindUnauthenticated, op, "authentication required")
	}
	userID, err := s.reconciler.Reconcile(accountID)
	if err != nil {
		return nil, err
	}

	data, err := s.ml.UserWeights(ctx, userID)
	if err != nil {
		return nil, mapRecommenderErr(op, err)
	}
	return &models.UserWeights{ReconciledUserID: userID, Data: data}, nil
}

// Performance devuelve las métricas offline y el algoritmo con menor RMSE.
func (s *AnalyticsService) Performance() (*models.PerformanceReport, error) {
	var rep models.PerformanceReport
	if err := json.Unmarshal(performanceJSON, &rep); err != nil {
		return nil, apperr.Wrap(apperr.KindUnknown, "analytics.performance", err)
	}

	rep.Best = models.ModeContentBased
	best := rep.ContentBased.RMSE
	if rep.Collaborative.RMSE < best {
		rep.Best, best = models.ModeCollaborative, rep.Collaborative.RMSE
	}
	if rep.Hybrid.RMSE < best {
		rep.Best = models.ModeHybrid
	}
	return &rep, nil
}
