// internal/app/features/users/delete.go
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

// HandleDelete removes a user by ID.
// DELETE /users/{id} → 202 on success.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, idParam, aerr := parseID(r)
	if aerr != nil {
		apierr.Write(w, aerr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apierr.Write(w, notFound(idParam))
			return
		}
		h.Log.Error("user delete failed", zap.String("id", idParam), zap.Error(err))
		apierr.Write(w, apierr.Wrap(err, apierr.KindInternal, "delete_failed", "failed to remove user"))
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{
		"id":     idParam,
		"status": "removed",
	})
}
