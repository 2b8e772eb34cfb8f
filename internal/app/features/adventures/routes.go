// internal/app/features/adventures/routes.go
package adventures

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the Adventure routes under the base path (typically
// "/adventures" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/{id}", h.ServeGet)
	r.Post("/", h.HandleProvision)

	return r
}
