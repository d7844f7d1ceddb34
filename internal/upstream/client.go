// Package upstream es el cliente HTTP compartido para servicios externos
// (TMDB, servicio ML): timeout por request, circuit breaker y métricas.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/logging"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/metrics"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
)

// ErrUnavailable cubre todo lo que impide obtener una respuesta HTTP:
// red caída, timeout o breaker abierto.
var ErrUnavailable = errors.New("upstream unavailable")

// errServerStatus marca un 5xx para que el breaker lo cuente como falla.
var errServerStatus = errors.New("upstream server error")

const maxBodyBytes = 4 << 20

// Response es una respuesta ya leída.
type Response struct {
	Status int
	Body   []byte
}

type Config struct {
	Name             string
	Timeout          time.Duration
	FailureThreshold uint32        // fallas consecutivas para abrir
	OpenTimeout      time.Duration // tiempo abierto antes de pasar a half-open
	HTTPClient       *http.Client
}

type Client struct {
	name   string
	http   *http.Client
	cb     *gobreaker.CircuitBreaker[*Response]
	logger zerolog.Logger
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}

	c := &Client{
		name:   cfg.Name,
		http:   hc,
		logger: logging.WithComponent("upstream").With().Str("service", cfg.Name).Logger(),
	}

	metrics.BreakerState.WithLabelValues(cfg.Name).Set(0)

	c.cb = gobreaker.NewCircuitBreaker[*Response](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		// cancelar el request propio no es culpa del servicio externo
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn().Str("from", from.String()).Str("to", to.String()).Msg("[CIRCUIT BREAKER] cambio de estado")
			metrics.BreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})
	return c
}

// Get hace un GET y devuelve la respuesta para cualquier status HTTP.
// Los 5xx se devuelven sin error pero cuentan como falla para el breaker.
// Sin respuesta, el error envuelve ErrUnavailable.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	start := time.Now()
	var resp *Response

	_, err := c.cb.Execute(func() (*Response, error) {
		r, err := c.do(ctx, url)
		if err != nil {
			return nil, err
		}
		resp = r
		if r.Status >= http.StatusInternalServerError {
			return r, errServerStatus
		}
		return r, nil
	})
	metrics.UpstreamDuration.WithLabelValues(c.name).Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		c.observe(resp.Status)
		return resp, nil
	case errors.Is(err, errServerStatus):
		c.observe(resp.Status)
		c.logger.Warn().Int("status", resp.Status).Msg("respuesta 5xx")
		return resp, nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.UpstreamRequests.WithLabelValues(c.name, "rejected").Inc()
		return nil, fmt.Errorf("%s: %w: %v", c.name, ErrUnavailable, err)
	default:
		metrics.UpstreamRequests.WithLabelValues(c.name, "unreachable").Inc()
		c.logger.Warn().Err(err).Msg("servicio no alcanzable")
		return nil, fmt.Errorf("%s: %w: %v", c.name, ErrUnavailable, err)
	}
}

// State devuelve el estado actual del breaker (closed, half-open, open).
func (c *Client) State() string {
	return c.cb.State().String()
}

func (c *Client) do(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	return &Response{Status: res.StatusCode, Body: body}, nil
}

func (c *Client) observe(status int) {
	outcome := "ok"
	switch {
	case status >= 500:
		outcome = "server_error"
	case status >= 400:
		outcome = "client_error"
	}
	metrics.UpstreamRequests.WithLabelValues(c.name, outcome).Inc()
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
