package engine

import "github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"

type ProjectGroup struct {
	Project    models.Project    `json:"project"`
	Properties []models.Property `json:"properties"`
}

// GroupByProject organizes properties under their owning project,
// following the input project order and keeping property order inside
// each group. Projects with no matching properties are dropped, and
// properties referencing a project not in the list are skipped.
func GroupByProject(properties []models.Property, projects []models.Project) []ProjectGroup {
	groups := make([]ProjectGroup, 0, len(projects))
	for _, project := range projects {
		var members []models.Property
		for _, p := range properties {
			if p.ProjectID == project.ID {
				members = append(members, p)
			}
		}
		if len(members) == 0 {
			continue
		}
		groups = append(groups, ProjectGroup{Project: project, Properties: members})
	}
	return groups
}

// CountGrouped is the displayed total for the grouped view: the sum of
// group sizes, which excludes orphaned properties.
func CountGrouped(groups []ProjectGroup) int {
	total := 0
	for _, g := range groups {
		total += len(g.Properties)
	}
	return total
}
