// Package seeds holds the static per-edition adventure templates that
// provisioning materializes for a user. The catalog ships inside the
// binary; editing a seed file means a redeploy.
package seeds

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dalemusser/adventurehub/internal/domain/models"
)

//go:embed couples.json family.json
var seedFS embed.FS

// Template is one seed adventure. Provisioning fills in the owning
// user and the edition tag.
type Template struct {
	Name          string         `json:"name"`
	Order         int            `json:"order"`
	Icons         []models.Icon  `json:"icons"`
	Cost          []int          `json:"cost"`
	TimeOfDay     string         `json:"timeOfDay"`
	Duration      []int          `json:"duration"`
	DurationUnits string         `json:"durationUnits"`
	Completed     bool           `json:"completed"`
	Photo         string         `json:"photo,omitempty"`
	Notes         string         `json:"notes,omitempty"`
}

var (
	catalog  map[models.Edition][]Template
	loadErr  error
	loadOnce sync.Once
)

func load() {
	catalog = make(map[models.Edition][]Template, len(models.Editions()))
	for _, edition := range models.Editions() {
		data, err := seedFS.ReadFile(string(edition) + ".json")
		if err != nil {
			loadErr = fmt.Errorf("seed file for edition %q: %w", edition, err)
			return
		}

		var templates []Template
		if err := json.Unmarshal(data, &templates); err != nil {
			loadErr = fmt.Errorf("parsing seeds for edition %q: %w", edition, err)
			return
		}
		if len(templates) == 0 {
			loadErr = fmt.Errorf("edition %q has no seed templates", edition)
			return
		}
		for _, tpl := range templates {
			if err := validate(tpl); err != nil {
				loadErr = fmt.Errorf("edition %q, template %q: %w", edition, tpl.Name, err)
				return
			}
		}
		catalog[edition] = templates
	}
}

func validate(tpl Template) error {
	if tpl.Name == "" {
		return fmt.Errorf("missing name")
	}
	if len(tpl.Icons) == 0 {
		return fmt.Errorf("icons must be non-empty")
	}
	for _, ic := range tpl.Icons {
		if _, err := models.ParseIcon(string(ic)); err != nil {
			return err
		}
	}
	if len(tpl.Cost) == 0 {
		return fmt.Errorf("cost must be non-empty")
	}
	if len(tpl.Duration) == 0 {
		return fmt.Errorf("duration must be non-empty")
	}
	return nil
}

// Verify parses and validates every embedded seed file. Called once at
// startup so a bad seed file fails the deploy, not the first purchase.
func Verify() error {
	loadOnce.Do(load)
	return loadErr
}

// Templates returns the seed templates for an edition in file order.
// The returned slice is shared; callers must not modify it.
func Templates(edition models.Edition) ([]Template, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	templates, ok := catalog[edition]
	if !ok {
		return nil, fmt.Errorf("no seed catalog for edition %q", edition)
	}
	return templates, nil
}
