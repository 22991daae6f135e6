// Package engine implements the catalog's filtering, grouping and
// developer-scoping core. Every function is pure: it reads the slices it
// is given, allocates fresh results, and never touches storage or
// transport. Callers re-run it on every query change against a fresh
// catalog snapshot.
package engine

import (
	"strings"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"
)

// FilterProperties returns the properties satisfying every active
// criterion, preserving input order. An empty set-valued criterion
// matches everything; ranges are inclusive on both ends. A min greater
// than its max is a valid, unsatisfiable filter.
func FilterProperties(properties []models.Property, criteria models.FilterCriteria) []models.Property {
	search := strings.ToLower(strings.TrimSpace(criteria.Search))

	result := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if matchesCriteria(p, criteria, search) {
			result = append(result, p)
		}
	}
	return result
}

func matchesCriteria(p models.Property, c models.FilterCriteria, search string) bool {
	if search != "" &&
		!strings.Contains(strings.ToLower(p.Title), search) &&
		!strings.Contains(strings.ToLower(p.Description), search) {
		return false
	}
	if len(c.Zones) > 0 && !containsString(c.Zones, p.Zone) {
		return false
	}
	if p.Price < c.PriceMin || p.Price > c.PriceMax {
		return false
	}
	if len(c.Types) > 0 && !containsString(c.Types, p.Type) {
		return false
	}
	// Exact membership, not "N or more". The reference behavior filters
	// on the bedroom count itself even where labels read "N+".
	if len(c.Bedrooms) > 0 && !containsInt(c.Bedrooms, p.Bedrooms) {
		return false
	}
	if p.Area < c.AreaMin || p.Area > c.AreaMax {
		return false
	}
	if len(c.Statuses) > 0 && !containsString(c.Statuses, p.Status) {
		return false
	}
	return true
}

// HasActiveFilters reports whether criteria restricts anything relative
// to the given view defaults. It selects between the flat filtered list
// and the grouped-by-project browse view.
func HasActiveFilters(criteria, defaults models.FilterCriteria) bool {
	if strings.TrimSpace(criteria.Search) != "" {
		return true
	}
	if len(criteria.Zones) > 0 || len(criteria.Types) > 0 ||
		len(criteria.Bedrooms) > 0 || len(criteria.Statuses) > 0 {
		return true
	}
	return criteria.PriceMin != defaults.PriceMin ||
		criteria.PriceMax != defaults.PriceMax ||
		criteria.AreaMin != defaults.AreaMin ||
		criteria.AreaMax != defaults.AreaMax
}

func containsString(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

func containsInt(set []int, value int) bool {
	for _, n := range set {
		if n == value {
			return true
		}
	}
	return false
}
