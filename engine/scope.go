package engine

import "github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"

// ScopeToDeveloper narrows the catalog to one developer's projects and
// their properties. An empty or unknown developer id fails open and
// returns the full catalog unchanged.
func ScopeToDeveloper(properties []models.Property, projects []models.Project, developers []models.Developer, developerID string) ([]models.Property, []models.Project) {
	if developerID == "" {
		return properties, projects
	}

	var developer *models.Developer
	for i := range developers {
		if developers[i].ID == developerID {
			developer = &developers[i]
			break
		}
	}
	if developer == nil {
		return properties, projects
	}

	scopedProjects := make([]models.Project, 0, len(projects))
	projectIDs := make(map[string]struct{})
	for _, project := range projects {
		if !ownedBy(project, *developer) {
			continue
		}
		scopedProjects = append(scopedProjects, project)
		projectIDs[project.ID] = struct{}{}
	}

	scopedProperties := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if _, ok := projectIDs[p.ProjectID]; ok {
			scopedProperties = append(scopedProperties, p)
		}
	}
	return scopedProperties, scopedProjects
}

// ownedBy joins on the developer id, falling back to case-sensitive name
// equality for records written before the id column existed.
func ownedBy(project models.Project, developer models.Developer) bool {
	if project.DeveloperID != "" {
		return project.DeveloperID == developer.ID
	}
	return project.Developer == developer.Name
}
