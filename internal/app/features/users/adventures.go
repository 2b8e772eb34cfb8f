// internal/app/features/users/adventures.go
package users

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/dalemusser/adventurehub/internal/app/system/apierr"
	"github.com/dalemusser/adventurehub/internal/app/system/timeouts"
)

// ServeAdventures lists every adventure the user owns, ordered by
// edition then template order. A user with no adventures gets an empty
// list, not an error.
// GET /users/{id}/adventures
func (h *Handler) ServeAdventures(w http.ResponseWriter, r *http.Request) {
	id, idParam, aerr := parseID(r)
	if aerr != nil {
		apierr.Write(w, aerr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	if _, err := h.Store.GetByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apierr.Write(w, notFound(idParam))
			return
		}
		h.Log.Error("user lookup failed", zap.String("id", idParam), zap.Error(err))
		apierr.Write(w, apierr.Wrap(err, apierr.KindInternal, "internal", "internal error"))
		return
	}

	adventures, err := h.Adventures.ListByUser(ctx, id)
	if err != nil {
		h.Log.Error("adventure list failed", zap.String("user_id", idParam), zap.Error(err))
		apierr.Write(w, apierr.Wrap(err, apierr.KindInternal, "internal", "internal error"))
		return
	}

	writeJSON(w, http.StatusOK, adventures)
}
