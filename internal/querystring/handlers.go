package querystring

import (
	"encoding/json"
	"net/http"

	"github.com/kasir-id/backend-kasir/internal/common"
)

// Handler wires the codec to HTTP.
type Handler struct{}

// Encode serialises the posted JSON object.
func (Handler) Encode(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json body", nil)
		return
	}
	encoded, err := Encode(payload)
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	common.Data(w, http.StatusOK, map[string]string{"encoded": encoded})
}

// Parse decodes the q query parameter.
func (Handler) Parse(w http.ResponseWriter, r *http.Request) {
	common.Data(w, http.StatusOK, Parse(r.URL.Query().Get("q")))
}
