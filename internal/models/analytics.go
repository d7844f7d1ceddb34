package models

import (
	"encoding/json"
	"time"
)

const (
	TemporalTrends     = "trends"
	TemporalSeasonal   = "seasonal"
	TemporalPopular    = "popular"
	TemporalFullReport = "report" // informe en texto que arma el servicio ML
)

const (
	SourceLive     = "live"
	SourceSnapshot = "snapshot"
)

// TemporalReport envuelve la respuesta del análisis temporal indicando
// de dónde salió.
type TemporalReport struct {
	Kind   string          `json:"kind"`
	Source string          `json:"source"` // live | snapshot
	AsOf   time.Time       `json:"asOf"`
	Stale  bool            `json:"stale"`
	Data   json.RawMessage `json:"data" swaggertype:"object"`
}

// UserWeights es el promedio ponderado en el tiempo de la cuenta, calculado
// por el servicio ML sobre el id reconciliado.
type UserWeights struct {
	ReconciledUserID int             `json:"reconciledUserId"`
	Data             json.RawMessage `json:"data" swaggertype:"object"`
}

// AlgorithmMetrics son las métricas offline de un algoritmo.
type AlgorithmMetrics struct {
	RMSE      float64 `json:"rmse"`
	MAE       float64 `json:"mae"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1Score"`
	Coverage  float64 `json:"coverage"`
	Diversity float64 `json:"diversity"`
}

type PerformanceReport struct {
	ContentBased  AlgorithmMetrics `json:"contentBased"`
	Collaborative AlgorithmMetrics `json:"collaborative"`
	Hybrid        AlgorithmMetrics `json:"hybrid"`
	Best          string           `json:"best"`
}
