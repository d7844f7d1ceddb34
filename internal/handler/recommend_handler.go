package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/apperr"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/logging"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

func (h *RecommendHandler) respond(w http.ResponseWriter, r *http.Request, q service.RecQuery) {
	res, err := h.svc.GetRecommendations(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// parseCommon lee limit y refresh de la query.
func parseCommon(r *http.Request, q *service.RecQuery) error {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		return apperr.New(apperr.KindInvalidArgument, "recommend.query", err.Error())
	}
	q.Limit = limit
	q.Refresh = r.URL.Query().Get("refresh") == "true"
	q.AccountID = AccountIDFromContext(r.Context())
	return nil
}

// @Summary Recomendaciones por contenido
// @Tags recommend
// @Produce json
// @Param movieId path int true "id de película del servicio ML"
// @Param limit query int false "cantidad de recomendaciones (default 10, máx 50)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} models.RecommendationResult
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /recommendations/content-based/{movieId} [get]
func (h *RecommendHandler) ContentBased(w http.ResponseWriter, r *http.Request) {
	q := service.RecQuery{Mode: models.ModeContentBased}
	if err := parseCommon(r, &q); err != nil {
		writeError(w, r, err)
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "movieId"))
	if err != nil {
		badRequest(w, r, "recommend.query", "movie id must be a positive integer")
		return
	}
	q.ItemID = id
	h.respond(w, r, q)
}

// @Summary Recomendaciones para la cuenta (collaborative | hybrid)
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param mode path string true "collaborative | hybrid"
// @Param limit query int false "cantidad de recomendaciones (default 10, máx 50)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} models.RecommendationResult
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /recommendations/{mode} [get]
func (h *RecommendHandler) ForAccount(w http.ResponseWriter, r *http.Request) {
	q := service.RecQuery{Mode: chi.URLParam(r, "mode")}
	if q.Mode == models.ModeContentBased {
		badRequest(w, r, "recommend.query", "content-based recommendations need a movie id")
		return
	}
	if err := parseCommon(r, &q); err != nil {
		writeError(w, r, err)
		return
	}
	h.respond(w, r, q)
}

// @Summary Historial de recomendaciones de la cuenta
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param limit query int false "límite (default 10, máx 50)"
// @Success 200 {array} models.Recommendation
// @Router /me/recommendations [get]
func (h *RecommendHandler) History(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		badRequest(w, r, "recommend.history", err.Error())
		return
	}
	hist, err := h.svc.History(r.Context(), AccountIDFromContext(r.Context()), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, hist)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsMessage es lo que viaja por el WebSocket: start, recommendations o error.
type wsMessage struct {
	Type        string                       `json:"type"`
	Msg         string                       `json:"msg,omitempty"`
	Error       string                       `json:"error,omitempty"`
	Message     string                       `json:"message,omitempty"`
	Result      *models.RecommendationResult `json:"result,omitempty"`
	GeneratedAt *time.Time                   `json:"generatedAt,omitempty"`
}

// @Summary Recomendaciones en tiempo real (WebSocket)
// @Tags recommend
// @Produce json
// @Param mode path string true "content-based | collaborative | hybrid"
// @Param movieId query int false "id de película (content-based)"
// @Param limit query int false "cantidad de recomendaciones (máx 50)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} wsMessage
// @Router /ws/recommendations/{mode} [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	q := service.RecQuery{Mode: chi.URLParam(r, "mode")}
	if err := parseCommon(r, &q); err != nil {
		writeError(w, r, err)
		return
	}
	if q.Mode == models.ModeContentBased {
		q.ItemID, _ = strconv.Atoi(r.URL.Query().Get("movieId"))
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade ya respondió al cliente
		return
	}
	defer conn.Close()

	log := logging.WithComponent("ws")

	// Mensaje inicial
	if err := conn.WriteJSON(wsMessage{Type: "start", Msg: "conexión WS abierta, pidiendo recomendaciones"}); err != nil {
		log.Debug().Err(err).Msg("cliente WS desconectado")
		return
	}

	res, err := h.svc.GetRecommendations(r.Context(), q)
	if err != nil {
		_ = conn.WriteJSON(wsMessage{
			Type:    "error",
			Error:   errorName(err),
			Message: err.Error(),
		})
		return
	}

	now := time.Now().UTC()
	if err := conn.WriteJSON(wsMessage{Type: "recommendations", Result: res, GeneratedAt: &now}); err != nil {
		log.Debug().Err(err).Msg("cliente WS desconectado")
		return
	}
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
}
