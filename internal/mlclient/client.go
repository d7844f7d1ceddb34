// Package mlclient habla con el servicio externo de recomendaciones por HTTP.
package mlclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/upstream"

	"github.com/goccy/go-json"
)

var (
	// ErrUnavailable: sin respuesta, timeout, breaker abierto o 5xx sin payload.
	ErrUnavailable = errors.New("ml service unavailable")
	// ErrRejected: el servicio respondió con success:false.
	ErrRejected = errors.New("ml service rejected the request")
	// ErrProtocol: respuesta 2xx que no cumple el formato esperado.
	ErrProtocol = errors.New("ml service protocol error")
)

type Client struct {
	baseURL string
	http    *upstream.Client
}

func NewClient(baseURL string, up *upstream.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: up}
}

// Recommend pide recomendaciones. subject es el id de película para
// content-based o el id de usuario reconciliado para collaborative / hybrid.
func (c *Client) Recommend(ctx context.Context, mode string, subject, limit int) ([]models.RecItem, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	path := fmt.Sprintf("/recommend/%s/%d?%s", url.PathEscape(mode), subject, q.Encode())

	data, err := c.call(ctx, path)
	if err != nil {
		return nil, err
	}

	var payload recData
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode data: %v", ErrProtocol, err)
	}
	if payload.Recommendations == nil {
		return nil, fmt.Errorf("%w: missing data.recommendations", ErrProtocol)
	}
	return *payload.Recommendations, nil
}

// Temporal devuelve el bloque data crudo de /api/temporal/{kind}. limit se
// manda sólo si es positivo; hoy sólo lo usa popular.
func (c *Client) Temporal(ctx context.Context, kind string, limit int) ([]byte, error) {
	path := "/api/temporal/" + url.PathEscape(kind)
	if limit > 0 {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(limit))
		path += "?" + q.Encode()
	}
	return c.call(ctx, path)
}

// UserWeights devuelve el promedio ponderado en el tiempo de un usuario ya
// reconciliado. Sin historial el servicio responde 404 con success:false,
// que llega como ErrRejected.
func (c *Client) UserWeights(ctx context.Context, userID int) ([]byte, error) {
	return c.call(ctx, fmt.Sprintf("/api/temporal/user-weights/%d", userID))
}

// call hace el GET y clasifica la respuesta. Devuelve el campo data.
func (c *Client) call(ctx context.Context, path string) ([]byte, error) {
	res, err := c.http.Get(ctx, c.baseURL+path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(res.Body, &env)

	// un success:false explícito manda sobre el status
	if decodeErr == nil && env.Success != nil && !*env.Success {
		msg := env.Error
		if msg == "" {
			msg = "no error message"
		}
		return nil, fmt.Errorf("%w: %s (status %d)", ErrRejected, msg, res.Status)
	}

	switch {
	case res.Status >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, res.Status)
	case res.Status < 200 || res.Status >= 300:
		return nil, fmt.Errorf("%w: status %d", ErrRejected, res.Status)
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrProtocol, decodeErr)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, fmt.Errorf("%w: missing data", ErrProtocol)
	}
	return env.Data, nil
}
