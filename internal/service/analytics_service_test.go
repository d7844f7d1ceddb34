package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/apperr"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/identity"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/mlclient"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTemporal struct {
	data      []byte
	err       error
	limits    []int
	weights   []byte
	weightErr error
	users     []int
}

func (f *fakeTemporal) Temporal(_ context.Context, _ string, limit int) ([]byte, error) {
	f.limits = append(f.limits, limit)
	return f.data, f.err
}

func (f *fakeTemporal) UserWeights(_ context.Context, userID int) ([]byte, error) {
	f.users = append(f.users, userID)
	return f.weights, f.weightErr
}

var testReconciler = identity.NewReconciler(identity.DefaultUserSpace)

func TestTemporal_LiveWritesSnapshot(t *testing.T) {
	dir := t.TempDir()
	ml := &fakeTemporal{data: []byte(`{"yearly":[{"year":2000,"rating":3.6}]}`)}
	svc := NewAnalyticsService(ml, testReconciler, dir, time.Hour)

	rep, err := svc.Temporal(context.Background(), models.TemporalTrends, 0)
	require.NoError(t, err)
	assert.Equal(t, models.SourceLive, rep.Source)
	assert.False(t, rep.Stale)
	assert.JSONEq(t, string(ml.data), string(rep.Data))

	_, err = os.Stat(filepath.Join(dir, "trends.json"))
	assert.NoError(t, err)

	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestTemporal_FallsBackToSnapshot(t *testing.T) {
	dir := t.TempDir()
	ml := &fakeTemporal{data: []byte(`{"seasonal":[1,2,3]}`)}
	svc := NewAnalyticsService(ml, testReconciler, dir, time.Hour)

	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return t0 }
	_, err := svc.Temporal(context.Background(), models.TemporalSeasonal, 0)
	require.NoError(t, err)

	// el servicio ML se cae
	ml.err = fmt.Errorf("%w: connection refused", mlclient.ErrUnavailable)

	svc.now = func() time.Time { return t0.Add(30 * time.Minute) }
	rep, err := svc.Temporal(context.Background(), models.TemporalSeasonal, 0)
	require.NoError(t, err)
	assert.Equal(t, models.SourceSnapshot, rep.Source)
	assert.True(t, rep.AsOf.Equal(t0))
	assert.False(t, rep.Stale)
	assert.JSONEq(t, `{"seasonal":[1,2,3]}`, string(rep.Data))

	svc.now = func() time.Time { return t0.Add(2 * time.Hour) }
	rep, err = svc.Temporal(context.Background(), models.TemporalSeasonal, 0)
	require.NoError(t, err)
	assert.True(t, rep.Stale)
}

func TestTemporal_NoSnapshotReportsUpstreamError(t *testing.T) {
	svc := NewAnalyticsService(&fakeTemporal{err: mlclient.ErrUnavailable}, testReconciler, t.TempDir(), time.Hour)

	_, err := svc.Temporal(context.Background(), models.TemporalPopular, 0)
	assert.Equal(t, apperr.KindUpstreamUnavailable, apperr.KindOf(err))

	svc = NewAnalyticsService(&fakeTemporal{err: mlclient.ErrRejected}, testReconciler, t.TempDir(), time.Hour)
	_, err = svc.Temporal(context.Background(), models.TemporalPopular, 0)
	assert.Equal(t, apperr.KindUpstreamError, apperr.KindOf(err))
}

func TestTemporal_UnknownKind(t *testing.T) {
	svc := NewAnalyticsService(&fakeTemporal{}, testReconciler, t.TempDir(), time.Hour)

	_, err := svc.Temporal(context.Background(), "weekly", 0)
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
}

func TestTemporal_PopularForwardsLimit(t *testing.T) {
	dir := t.TempDir()
	ml := &fakeTemporal{data: []byte(`{"popular":[]}`)}
	svc := NewAnalyticsService(ml, testReconciler, dir, time.Hour)

	_, err := svc.Temporal(context.Background(), models.TemporalPopular, 10)
	require.NoError(t, err)
	_, err = svc.Temporal(context.Background(), models.TemporalTrends, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 0}, ml.limits)

	// cada limit de popular tiene su propio snapshot
	_, err = os.Stat(filepath.Join(dir, "popular-10.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "popular.json"))
	assert.True(t, os.IsNotExist(err))

	_, err = svc.Temporal(context.Background(), models.TemporalPopular, MaxPopularLimit+1)
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
	_, err = svc.Temporal(context.Background(), models.TemporalPopular, -1)
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
}

func TestTemporal_FullReport(t *testing.T) {
	ml := &fakeTemporal{data: []byte(`{"report":"...","file":"temporal_report.txt"}`)}
	svc := NewAnalyticsService(ml, testReconciler, t.TempDir(), time.Hour)

	rep, err := svc.Temporal(context.Background(), models.TemporalFullReport, 0)
	require.NoError(t, err)
	assert.Equal(t, models.TemporalFullReport, rep.Kind)
}

func TestUserWeights_ReconcilesAccount(t *testing.T) {
	ml := &fakeTemporal{weights: []byte(`{"time_weighted_avg":3.9}`)}
	svc := NewAnalyticsService(ml, testReconciler, "", 0)

	account := "64b7f0c2a1e4d3b2c1a09f8e"
	want, err := testReconciler.Reconcile(account)
	require.NoError(t, err)

	rep, err := svc.UserWeights(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, want, rep.ReconciledUserID)
	assert.Equal(t, []int{want}, ml.users)
	assert.JSONEq(t, `{"time_weighted_avg":3.9}`, string(rep.Data))
}

func TestUserWeights_Errors(t *testing.T) {
	ml := &fakeTemporal{weightErr: fmt.Errorf("%w: No rating history for this user (status 404)", mlclient.ErrRejected)}
	svc := NewAnalyticsService(ml, testReconciler, "", 0)

	_, err := svc.UserWeights(context.Background(), "64b7f0c2a1e4d3b2c1a09f8e")
	assert.Equal(t, apperr.KindUpstreamError, apperr.KindOf(err))

	_, err = svc.UserWeights(context.Background(), "")
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))

	_, err = svc.UserWeights(context.Background(), "not-hex!")
	assert.Equal(t, apperr.KindMalformedIdentity, apperr.KindOf(err))
	assert.Len(t, ml.users, 1)
}

func TestPerformance(t *testing.T) {
	svc := NewAnalyticsService(&fakeTemporal{}, testReconciler, "", 0)

	rep, err := svc.Performance()
	require.NoError(t, err)
	assert.InDelta(t, 1.0381, rep.ContentBased.RMSE, 1e-9)
	assert.InDelta(t, 0.6409, rep.Collaborative.F1, 1e-9)
	assert.InDelta(t, 0.7117, rep.Hybrid.MAE, 1e-9)
	assert.Equal(t, models.ModeHybrid, rep.Best)
}
