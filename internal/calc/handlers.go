package calc

import (
	"net/http"

	"github.com/kasir-id/backend-kasir/internal/common"
)

// Handler wires the sum helper to HTTP.
type Handler struct{}

// Sum adds the a and b query parameters.
func (Handler) Sum(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := Sum(q.Get("a"), q.Get("b"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	common.Data(w, http.StatusOK, map[string]int{"sum": result})
}
