package utils

import (
	"strings"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"
)

func IsValidZone(zone string) bool {
	return contains(models.Zones, zone)
}

func IsValidPropertyType(t string) bool {
	return contains(models.PropertyTypes, t)
}

func IsValidPropertyStatus(status string) bool {
	return contains(models.PropertyStatuses, status)
}

func IsValidProjectStatus(status string) bool {
	return contains(models.ProjectStatuses, status)
}

// IsValidArea accepts either no drawn boundary at all or a polygon of at
// least three points, as delivered by the area picker.
func IsValidArea(area []models.LatLng) bool {
	return len(area) == 0 || len(area) >= 3
}

func IsValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && strings.Contains(email[at:], ".")
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
