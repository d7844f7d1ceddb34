package mlclient

import (
	"encoding/json"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
)

// Sobre común de todas las respuestas del servicio ML:
// {"success": bool, "data": {...}, "error": "..."}.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Payload de /recommend/{mode}/{id}. Recommendations es puntero para
// distinguir "ausente" de "lista vacía".
type recData struct {
	Recommendations *[]models.RecItem `json:"recommendations"`
}
