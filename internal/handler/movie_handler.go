package handler

import (
	"net/http"
	"strconv"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/apperr"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/identity"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/service"

	"github.com/go-chi/chi/v5"
)

type MovieHandler struct {
	svc        *service.MovieService
	reconciler identity.Reconciler
}

func NewMovieHandler(s *service.MovieService, reconciler identity.Reconciler) *MovieHandler {
	return &MovieHandler{svc: s, reconciler: reconciler}
}

// @Summary Catálogo local (paginado)
// @Tags movies
// @Produce json
// @Param limit query int false "límite (default: 50, máx 200)"
// @Param offset query int false "offset"
// @Success 200 {array} models.MovieDoc
// @Router /movies [get]
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "movie.list"
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

	movies, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if movies == nil {
		movies = []models.MovieDoc{}
	}
	writeJSON(w, http.StatusOK, movies)
}

// @Summary Películas populares (TMDB)
// @Tags movies
// @Produce json
// @Param page query int false "página (default: 1)"
// @Success 200 {object} models.MoviePage
// @Failure 502 {object} errorResponse
// @Router /movies/popular [get]
func (h *MovieHandler) Popular(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		badRequest(w, r, "movie.popular", err.Error())
		return
	}

	res, err := h.svc.Popular(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// @Summary Buscar películas (TMDB)
// @Tags movies
// @Produce json
// @Param query query string true "texto a buscar"
// @Param page query int false "página (default: 1)"
// @Success 200 {object} models.MoviePage
// @Failure 400 {object} errorResponse
// @Router /movies/search [get]
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		badRequest(w, r, "movie.search", err.Error())
		return
	}

	res, err := h.svc.Search(r.Context(), r.URL.Query().Get("query"), page)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// @Summary Detalle de película
// @Description Devuelve la entrada del catálogo si existe; si no, la ficha de TMDB sin guardarla.
// @Tags movies
// @Produce json
// @Param id path int true "id de TMDB"
// @Success 200 {object} models.MovieDetail
// @Failure 404 {object} errorResponse
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w, r, "movie.detail", "movie id must be a positive integer")
		return
	}

	m, err := h.svc.Detail(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// @Summary Id de usuario en el servicio ML
// @Tags movies
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.MLIdentity
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /movies/user/ml-id [get]
func (h *MovieHandler) MLIdentity(w http.ResponseWriter, r *http.Request) {
	accountID := AccountIDFromContext(r.Context())
	if accountID == "" {
		writeError(w, r, apperr.New(apperr.KindUnauthenticated, "movie.ml-id", "authentication required"))
		return
	}

	id, err := h.reconciler.Reconcile(accountID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MLIdentity{
		AccountID:    accountID,
		ReconciledID: id,
		UserSpace:    h.reconciler.UserSpace,
	})
}
