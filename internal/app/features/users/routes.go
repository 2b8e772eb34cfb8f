// internal/app/features/users/routes.go
package users

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the User routes under the base path (typically
// "/users" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/{id}", h.ServeGet)
	r.Get("/{id}/adventures", h.ServeAdventures)
	r.Post("/", h.HandleCreate)
	r.Put("/{id}", h.HandleReplace)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
