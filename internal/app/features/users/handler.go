// Package users serves the user CRUD endpoints.
package users

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	adventurestore "github.com/dalemusser/adventurehub/internal/app/store/adventures"
	userstore "github.com/dalemusser/adventurehub/internal/app/store/users"
	"github.com/dalemusser/adventurehub/internal/app/system/apierr"
	"github.com/dalemusser/adventurehub/internal/domain/models"
)

// Handler is the feature-level entry point for Users.
type Handler struct {
	Store      *userstore.Store
	Adventures *adventurestore.Store
	Log        *zap.Logger
}

// NewHandler constructs a Users handler bound to the user store, the
// adventure store (for the owned-adventures listing), and a logger.
func NewHandler(store *userstore.Store, adventures *adventurestore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store:      store,
		Adventures: adventures,
		Log:        logger,
	}
}

// userPayload is the POST/PUT body for a user.
type userPayload struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Identities []models.Identity `json:"identities"`
	Editions   []string          `json:"editions"`
}

// toModel validates the payload and converts it to a User. Edition
// names are parsed against the closed enumeration; every invalid name
// is reported.
func (p userPayload) toModel() (models.User, error) {
	if p.Email == "" {
		return models.User{}, apierr.New(apierr.KindValidation, "missing_email", "email is required")
	}
	if p.Name == "" {
		return models.User{}, apierr.New(apierr.KindValidation, "missing_name", "name is required")
	}

	var editions []models.Edition
	var invalid []string
	for _, name := range p.Editions {
		e, err := models.ParseEdition(name)
		if err != nil {
			invalid = append(invalid, name)
			continue
		}
		editions = append(editions, e)
	}
	if len(invalid) > 0 {
		return models.User{}, apierr.New(apierr.KindValidation, "unknown_edition",
			"unknown editions: %s", strings.Join(invalid, ", "))
	}

	return models.User{
		Name:       p.Name,
		Email:      p.Email,
		Identities: p.Identities,
		Editions:   editions,
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
