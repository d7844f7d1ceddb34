package handler

import (
	"net/http"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/service"
)

type RatingHandler struct {
	svc *service.RatingService
}

func NewRatingHandler(s *service.RatingService) *RatingHandler { return &RatingHandler{svc: s} }

// @Summary Crear/actualizar rating
// @Description Califica una película por su id de TMDB. Si la película no está en el catálogo se agrega.
// @Tags ratings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.RatingRequest true "rating"
// @Success 201 {object} models.Rating
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /movies/rating [post]
func (h *RatingHandler) PostRating(w http.ResponseWriter, r *http.Request) {
	var req models.RatingRequest
	if err := decodeJSON(r, "rating.submit", &req); err != nil {
		writeError(w, r, err)
		return
	}

	rt, err := h.svc.SubmitRating(r.Context(), AccountIDFromContext(r.Context()), req.MovieID, req.Rating)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rt)
}

// @Summary Listar mis ratings
// @Tags ratings
// @Security BearerAuth
// @Produce json
// @Param limit query int false "límite (default: 100)"
// @Param offset query int false "offset"
// @Success 200 {array} models.Rating
// @Router /me/ratings [get]
func (h *RatingHandler) GetMyRatings(w http.ResponseWriter, r *http.Request) {
	const op = "rating.list"
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		badRequest(w, r, op, err.Error())
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		badRequest(w, r, op, err.Error())
		return
	}

	list, err := h.svc.ListMine(r.Context(), AccountIDFromContext(r.Context()), limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if list == nil {
		list = []models.Rating{}
	}
	writeJSON(w, http.StatusOK, list)
}
