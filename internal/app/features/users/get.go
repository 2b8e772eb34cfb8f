// internal/app/features/users/get.go
package users

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

// notFound builds the standard user-not-found error for an ID param.
func notFound(idParam string) *apierr.Error {
	return apierr.New(apierr.KindNotFound, "user_not_found",
		"unable to find user with id %s", idParam)
}

// parseID maps the {id} URL parameter to an ObjectID. Malformed hex is
// indistinguishable from a missing user.
func parseID(r *http.Request) (primitive.ObjectID, string, *apierr.Error) {
	idParam := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return primitive.NilObjectID, idParam, notFound(idParam)
	}
	return id, idParam, nil
}

// ServeGet returns a single user by ID.
// GET /users/{id}
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, idParam, aerr := parseID(r)
	if aerr != nil {
		apierr.Write(w, aerr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	user, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apierr.Write(w, notFound(idParam))
			return
		}
		h.Log.Error("user lookup failed", zap.String("id", idParam), zap.Error(err))
		apierr.Write(w, apierr.Wrap(err, apierr.KindInternal, "internal", "internal error"))
		return
	}

	writeJSON(w, http.StatusOK, user)
}
