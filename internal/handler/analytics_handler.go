package handler

import (
	"net/http"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/service"

	"github.com/go-chi/chi/v5"
)

type AnalyticsHandler struct {
	svc *service.AnalyticsService
}

func NewAnalyticsHandler(s *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: s}
}

// @Summary Análisis temporal
// @Description Proxy al servicio ML. Si no responde se sirve el último snapshot guardado.
// @Tags analytics
// @Produce json
// @Param kind path string true "trends | seasonal | popular | report"
// @Param limit query int false "sólo para popular (1-100)"
// @Success 200 {object} models.TemporalReport
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /analytics/temporal/{kind} [get]
func (h *AnalyticsHandler) Temporal(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		badRequest(w, r, "analytics.temporal", err.Error())
		return
	}
	rep, err := h.svc.Temporal(r.Context(), chi.URLParam(r, "kind"), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// @Summary Promedio ponderado en el tiempo de la cuenta
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserWeights
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /analytics/temporal/user-weights [get]
func (h *AnalyticsHandler) UserWeights(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.UserWeights(r.Context(), AccountIDFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// @Summary Métricas offline de los algoritmos
// @Tags analytics
// @Produce json
// @Success 200 {object} models.PerformanceReport
// @Router /analytics/performance [get]
func (h *AnalyticsHandler) Performance(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.Performance()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}
