package handler

import (
	"net/http"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/logging"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
)

// ratingWritesPerMinute limita POST /movies/rating por cuenta.
const ratingWritesPerMinute = 30

type Handlers struct {
	Auth      *AuthHandler
	Movie     *MovieHandler
	Rating    *RatingHandler
	Recommend *RecommendHandler
	Analytics *AnalyticsHandler
}

type RouterOptions struct {
	JWTSecret    string
	CORSOrigins  []string
	RateLimitRPM int // 0 desactiva el límite global
}

func NewRouter(h Handlers, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if opts.RateLimitRPM > 0 {
		r.Use(httprate.Limit(opts.RateLimitRPM, time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(tooManyRequests),
		))
	}

	authMw := JWTAuth(opts.JWTSecret)
	optionalAuth := OptionalJWTAuth(opts.JWTSecret)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", Health)
	r.Handle("/metrics", metrics.Handler())

	r.Post("/auth/register", h.Auth.Register)
	r.Post("/auth/login", h.Auth.Login)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", h.Movie.List)
		r.Get("/popular", h.Movie.Popular)
		r.Get("/search", h.Movie.Search)

		r.Group(func(r chi.Router) {
			r.Use(authMw)
			r.With(httprate.Limit(ratingWritesPerMinute, time.Minute,
				httprate.WithKeyFuncs(keyByAccount),
				httprate.WithLimitHandler(tooManyRequests),
			)).Post("/rating", h.Rating.PostRating)
			r.Get("/user/ml-id", h.Movie.MLIdentity)
		})

		r.Get("/{id}", h.Movie.GetMovie)
	})

	r.Group(func(r chi.Router) {
		r.Use(optionalAuth)
		r.Get("/recommendations/content-based/{movieId}", h.Recommend.ContentBased)
		r.Get("/recommendations/{mode}", h.Recommend.ForAccount)
		r.Get("/ws/recommendations/{mode}", h.Recommend.GetRecommendationsWS)
	})

	// ---- Endpoints /me ----
	r.Group(func(r chi.Router) {
		r.Use(authMw)
		r.Route("/me", func(r chi.Router) {
			r.Get("/ratings", h.Rating.GetMyRatings)
			r.Get("/recommendations", h.Recommend.History)
		})
	})

	// la ruta estática gana sobre {kind}
	r.With(authMw).Get("/analytics/temporal/user-weights", h.Analytics.UserWeights)
	r.Get("/analytics/temporal/{kind}", h.Analytics.Temporal)
	r.Get("/analytics/performance", h.Analytics.Performance)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

func keyByAccount(r *http.Request) (string, error) {
	if id := AccountIDFromContext(r.Context()); id != "" {
		return id, nil
	}
	return httprate.KeyByIP(r)
}

func tooManyRequests(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusTooManyRequests, errorResponse{
		Error:   "RateLimited",
		Message: "too many requests, try again later",
	})
}

// requestLogger es el access log en zerolog.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log := logging.WithComponent("http")
		ev := log.Info()
		if status >= http.StatusInternalServerError {
			ev = log.Warn()
		}
		ev.Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
