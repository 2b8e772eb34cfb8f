// internal/domain/models/edition.go
package models

import (
	"fmt"
	"strings"
)

// Edition is a named bundle of adventures a user can own.
type Edition string

const (
	EditionCouples Edition = "couples"
	EditionFamily  Edition = "family"
)

// Editions lists every known edition in a stable order.
func Editions() []Edition {
	return []Edition{EditionCouples, EditionFamily}
}

// ParseEdition maps free-form text onto an Edition, case-insensitively.
func ParseEdition(s string) (Edition, error) {
	switch Edition(strings.ToLower(strings.TrimSpace(s))) {
	case EditionCouples:
		return EditionCouples, nil
	case EditionFamily:
		return EditionFamily, nil
	}
	return "", fmt.Errorf("unknown edition %q", s)
}

// Icon tags an adventure with a planning hint shown in the client.
type Icon string

const (
	IconActive    Icon = "active"
	IconAway      Icon = "away"
	IconDaylight  Icon = "daylight"
	IconFilming   Icon = "filming"
	IconGetWet    Icon = "getWet"
	IconHome      Icon = "home"
	IconIndoors   Icon = "indoors"
	IconMeal      Icon = "meal"
	IconMess      Icon = "mess"
	IconNighttime Icon = "nighttime"
	IconOutdoors  Icon = "outdoors"
	IconPlanAhead Icon = "planAhead"
	IconSnacks    Icon = "snacks"
	IconSupplies  Icon = "supplies"
)

var icons = map[Icon]bool{
	IconActive: true, IconAway: true, IconDaylight: true, IconFilming: true,
	IconGetWet: true, IconHome: true, IconIndoors: true, IconMeal: true,
	IconMess: true, IconNighttime: true, IconOutdoors: true,
	IconPlanAhead: true, IconSnacks: true, IconSupplies: true,
}

// Icons lists every known icon tag.
func Icons() []Icon {
	return []Icon{
		IconActive, IconAway, IconDaylight, IconFilming, IconGetWet,
		IconHome, IconIndoors, IconMeal, IconMess, IconNighttime,
		IconOutdoors, IconPlanAhead, IconSnacks, IconSupplies,
	}
}

// ParseIcon validates an icon tag. Icon values are case-sensitive
// ("getWet", "planAhead") because they key client-side assets.
func ParseIcon(s string) (Icon, error) {
	if icons[Icon(s)] {
		return Icon(s), nil
	}
	return "", fmt.Errorf("unknown icon %q", s)
}
