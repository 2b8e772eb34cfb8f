// Package adventures serves the adventure endpoints: individual reads
// and the edition provisioning operation.
package adventures

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/dalemusser/adventurehub/internal/app/provision"
	adventurestore "github.com/dalemusser/adventurehub/internal/app/store/adventures"
)

// Handler is the feature-level entry point for Adventures.
type Handler struct {
	Store     *adventurestore.Store
	Provision *provision.Service
	Log       *zap.Logger
}

// NewHandler constructs an Adventures handler bound to its store, the
// provisioning service, and a logger.
func NewHandler(store *adventurestore.Store, svc *provision.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Store:     store,
		Provision: svc,
		Log:       logger,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
