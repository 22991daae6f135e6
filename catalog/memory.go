package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/utils"
)

// MemoryStore is the process-wide in-memory catalog. Reads hand out
// copies so callers can never mutate the shared state; writes append
// under the lock after validation.
type MemoryStore struct {
	mu         sync.RWMutex
	properties []models.Property
	projects   []models.Project
	developers []models.Developer
}

func NewMemoryStore(properties []models.Property, projects []models.Project, developers []models.Developer) (*MemoryStore, error) {
	store := &MemoryStore{
		properties: append([]models.Property(nil), properties...),
		projects:   append([]models.Project(nil), projects...),
		developers: append([]models.Developer(nil), developers...),
	}
	if err := store.resolveDeveloperJoins(); err != nil {
		return nil, err
	}
	return store, nil
}

// NewSeededStore loads the static bundled dataset.
func NewSeededStore() *MemoryStore {
	store, err := NewMemoryStore(SeedProperties(), SeedProjects(), SeedDevelopers())
	if err != nil {
		// The bundled dataset is validated by tests; a bad seed is a
		// build defect, not a runtime condition.
		panic(err)
	}
	return store
}

// resolveDeveloperJoins fills in missing developer ids from the legacy
// name column and rejects ids that point nowhere. Properties referencing
// unknown projects are tolerated here; the engine skips them.
func (s *MemoryStore) resolveDeveloperJoins() error {
	byID := make(map[string]models.Developer, len(s.developers))
	byName := make(map[string]models.Developer, len(s.developers))
	for _, d := range s.developers {
		byID[d.ID] = d
		if _, taken := byName[d.Name]; !taken {
			byName[d.Name] = d
		}
	}
	for i, project := range s.projects {
		if project.DeveloperID != "" {
			if _, ok := byID[project.DeveloperID]; !ok {
				return fmt.Errorf("project %s: %w", project.ID, ErrUnknownDeveloper)
			}
			continue
		}
		if d, ok := byName[project.Developer]; ok {
			s.projects[i].DeveloperID = d.ID
		}
	}
	return nil
}

func (s *MemoryStore) GetAllProperties(ctx context.Context) ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Property(nil), s.properties...), nil
}

func (s *MemoryStore) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Project(nil), s.projects...), nil
}

func (s *MemoryStore) GetAllDevelopers(ctx context.Context) ([]models.Developer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Developer(nil), s.developers...), nil
}

func (s *MemoryStore) GetProperty(ctx context.Context, id string) (models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.properties {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Property{}, ErrNotFound
}

func (s *MemoryStore) GetProject(ctx context.Context, id string) (models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, project := range s.projects {
		if project.ID == id {
			return project, nil
		}
	}
	return models.Project{}, ErrNotFound
}

func (s *MemoryStore) GetDeveloper(ctx context.Context, id string) (models.Developer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.developers {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Developer{}, ErrNotFound
}

func (s *MemoryStore) AddDeveloper(ctx context.Context, developer models.Developer) error {
	if developer.ID == "" || developer.Name == "" {
		return fmt.Errorf("catalog: developer id and name are required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.developers {
		if d.ID == developer.ID {
			return ErrDuplicateID
		}
	}
	s.developers = append(s.developers, developer)
	return nil
}

func (s *MemoryStore) AddProject(ctx context.Context, project models.Project) error {
	if err := validateProject(project); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.ID == project.ID {
			return ErrDuplicateID
		}
	}
	found := false
	for _, d := range s.developers {
		if d.ID == project.DeveloperID {
			found = true
			break
		}
	}
	if !found {
		return ErrUnknownDeveloper
	}
	s.projects = append(s.projects, project)
	return nil
}

func (s *MemoryStore) AddProperty(ctx context.Context, property models.Property) error {
	if err := validateProperty(property); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.properties {
		if p.ID == property.ID {
			return ErrDuplicateID
		}
	}
	found := false
	for _, project := range s.projects {
		if project.ID == property.ProjectID {
			found = true
			break
		}
	}
	if !found {
		return ErrUnknownProject
	}
	s.properties = append(s.properties, property)
	return nil
}

func validateProject(project models.Project) error {
	if project.ID == "" || project.Name == "" {
		return fmt.Errorf("catalog: project id and name are required")
	}
	if project.DeveloperID == "" {
		return fmt.Errorf("catalog: project requires a developer id")
	}
	if !utils.IsValidZone(project.Zone) {
		return fmt.Errorf("catalog: unknown zone %q", project.Zone)
	}
	if !utils.IsValidProjectStatus(project.Status) {
		return fmt.Errorf("catalog: unknown project status %q", project.Status)
	}
	if project.TotalUnits < 0 || project.AvailableUnits < 0 || project.AvailableUnits > project.TotalUnits {
		return fmt.Errorf("catalog: available units must be between 0 and total units")
	}
	if !utils.IsValidArea(project.Area) {
		return fmt.Errorf("catalog: project area needs at least 3 points")
	}
	return nil
}

func validateProperty(property models.Property) error {
	if property.ID == "" || property.Title == "" {
		return fmt.Errorf("catalog: property id and title are required")
	}
	if property.Price <= 0 || property.Area <= 0 {
		return fmt.Errorf("catalog: price and area must be positive")
	}
	if property.Bedrooms < 0 || property.Bathrooms < 0 {
		return fmt.Errorf("catalog: bedrooms and bathrooms cannot be negative")
	}
	if !utils.IsValidZone(property.Zone) {
		return fmt.Errorf("catalog: unknown zone %q", property.Zone)
	}
	if !utils.IsValidPropertyType(property.Type) {
		return fmt.Errorf("catalog: unknown property type %q", property.Type)
	}
	if !utils.IsValidPropertyStatus(property.Status) {
		return fmt.Errorf("catalog: unknown property status %q", property.Status)
	}
	return nil
}
