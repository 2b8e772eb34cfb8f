// internal/app/features/users/create.go
package users

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/dalemusser/adventurehub/internal/app/system/apierr"
	"github.com/dalemusser/adventurehub/internal/app/system/timeouts"
)

// HandleCreate upserts a user by email: the document whose email
// matches is replaced, otherwise a new one is inserted.
// POST /users → 201 when created, 200 when an existing user was updated.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
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

	stored, created, err := h.Store.UpsertByEmail(ctx, user)
	if err != nil {
		h.Log.Error("user upsert failed", zap.String("email", user.Email), zap.Error(err))
		apierr.Write(w, apierr.Wrap(err, apierr.KindInternal, "upsert_failed", "failed to create user"))
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, stored)
}
