// internal/app/features/adventures/get.go
package adventures

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/dalemusser/adventurehub/internal/app/system/apierr"
	"github.com/dalemusser/adventurehub/internal/app/system/timeouts"
)

// ServeGet returns a single adventure by ID.
// GET /adventures/{id}
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")

	// A malformed hex string cannot match any document; report it the
	// same way as a missing one.
	id, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		apierr.Write(w, apierr.New(apierr.KindNotFound, "adventure_not_found",
			"unable to find adventure with id %s", idParam))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	adventure, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apierr.Write(w, apierr.New(apierr.KindNotFound, "adventure_not_found",
				"unable to find adventure with id %s", idParam))
			return
		}
		h.Log.Error("adventure lookup failed", zap.String("id", idParam), zap.Error(err))
		apierr.Write(w, apierr.Wrap(err, apierr.KindInternal, "internal", "internal error"))
		return
	}

	writeJSON(w, http.StatusOK, adventure)
}
