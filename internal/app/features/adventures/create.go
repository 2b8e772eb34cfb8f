// internal/app/features/adventures/create.go
package adventures

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/dalemusser/adventurehub/internal/app/provision"
	"github.com/dalemusser/adventurehub/internal/app/system/apierr"
	"github.com/dalemusser/adventurehub/internal/app/system/timeouts"
)

// provisionRequest is the POST /adventures body.
type provisionRequest struct {
	UserID   string   `json:"userId"`
	Editions []string `json:"editions"`
}

// HandleProvision provisions the requested editions for a user.
// POST /adventures
func (h *Handler) HandleProvision(w http.ResponseWriter, r *http.Request) {
	var req provisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Write(w, apierr.New(apierr.KindValidation, "invalid_body", "request body is not valid JSON"))
		return
	}
	if len(req.Editions) == 0 {
		apierr.Write(w, apierr.New(apierr.KindValidation, "missing_editions", "editions must be a non-empty list"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long)
	defer cancel()

	// The workflow validates edition names before resolving the user,
	// so a bad ID paired with bad editions reports the editions.
	result, err := h.Provision.Provision(ctx, req.UserID, req.Editions)
	if err != nil {
		h.writeProvisionError(w, req, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) writeProvisionError(w http.ResponseWriter, req provisionRequest, err error) {
	var unknown *provision.UnknownEditionsError
	if errors.As(err, &unknown) {
		apierr.Write(w, apierr.Wrap(err, apierr.KindValidation, "unknown_edition", "%s", unknown.Error()))
		return
	}
	if errors.Is(err, provision.ErrUserNotFound) {
		apierr.Write(w, apierr.New(apierr.KindNotFound, "user_not_found",
			"unable to find user with id %s", req.UserID))
		return
	}
	var owned *provision.OwnedEditionsError
	if errors.As(err, &owned) {
		apierr.Write(w, apierr.Wrap(err, apierr.KindConflict, "edition_owned", "%s", owned.Error()))
		return
	}
	if errors.Is(err, provision.ErrNothingCreated) {
		apierr.Write(w, apierr.Wrap(err, apierr.KindInternal, "creation_failed", "failed to create new adventures"))
		return
	}

	h.Log.Error("provisioning failed",
		zap.String("user_id", req.UserID),
		zap.Strings("editions", req.Editions),
		zap.Error(err))
	apierr.Write(w, apierr.Wrap(err, apierr.KindInternal, "creation_failed", "failed to create new adventures"))
}
