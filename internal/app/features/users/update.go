// internal/app/features/users/update.go
package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/dalemusser/adventurehub/internal/app/system/apierr"
	"github.com/dalemusser/adventurehub/internal/app/system/timeouts"
)

// HandleReplace overwrites the user with the given ID from the payload.
// PUT /users/{id}
func (h *Handler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	id, idParam, aerr := parseID(r)
	if aerr != nil {
		apierr.Write(w, aerr)
		return
	}

	var payload userPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		apierr.Write(w, apierr.New(apierr.KindValidation, "invalid_body", "request body is not valid JSON"))
		return
	}

	user, err := payload.toModel()
	if err != nil {
		apierr.Write(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	stored, err := h.Store.Replace(ctx, id, user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apierr.Write(w, notFound(idParam))
			return
		}
		h.Log.Error("user replace failed", zap.String("id", idParam), zap.Error(err))
		apierr.Write(w, apierr.Wrap(err, apierr.KindInternal, "update_failed", "failed to update user"))
		return
	}

	writeJSON(w, http.StatusOK, stored)
}
