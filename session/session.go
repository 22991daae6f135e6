// Package session keeps the visitor's browse state: the current filter
// criteria and the optional developer microsite scope. Only the query is
// stored, never results; every read of a session recomputes against the
// live catalog.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"
)

type BrowseSession struct {
	ID          string                `json:"id"`
	DeveloperID string                `json:"developerId"`
	Criteria    models.FilterCriteria `json:"criteria"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

func NewBrowseSession() BrowseSession {
	now := time.Now().UTC()
	return BrowseSession{
		ID:        uuid.NewString(),
		Criteria:  models.DefaultCriteria(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SelectDeveloper switches the microsite scope. Changing developer
// context invalidates the prior query, so criteria and search text go
// back to defaults.
func (s *BrowseSession) SelectDeveloper(developerID string) {
	s.DeveloperID = developerID
	s.Criteria = models.DefaultCriteria()
	s.UpdatedAt = time.Now().UTC()
}

func (s *BrowseSession) SetCriteria(criteria models.FilterCriteria) {
	s.Criteria = criteria
	s.UpdatedAt = time.Now().UTC()
}
