package engine

import "github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"

func testCatalog() ([]models.Property, []models.Project, []models.Developer) {
	developers := []models.Developer{
		{ID: "dev-1", Name: "Constructora Premium"},
		{ID: "dev-2", Name: "Grupo Andino"},
	}
	projects := []models.Project{
		{ID: "proj-1", Name: "Altos del Norte", Zone: "Norte", DeveloperID: "dev-1", Developer: "Constructora Premium"},
		{ID: "proj-2", Name: "Mirador del Sur", Zone: "Sur", DeveloperID: "dev-2", Developer: "Grupo Andino"},
		{ID: "proj-3", Name: "Plaza Central", Zone: "Centro", DeveloperID: "dev-2", Developer: "Grupo Andino"},
	}
	properties := []models.Property{
		{
			ID: "prop-1", ProjectID: "proj-1", Title: "Apartamento moderno",
			Description: "Vista panorámica en el corazón del Norte",
			Price:       185000, Zone: "Norte", Type: models.PropertyTypeApartment,
			Bedrooms: 2, Bathrooms: 2, Area: 85,
			Status: models.PropertyStatusAvailable,
		},
		{
			ID: "prop-2", ProjectID: "proj-1", Title: "Penthouse exclusivo",
			Description: "Terraza privada con jacuzzi",
			Price:       450000, Zone: "Norte", Type: models.PropertyTypePenthouse,
			Bedrooms: 3, Bathrooms: 3, Area: 180,
			Status: models.PropertyStatusReserved,
		},
		{
			ID: "prop-3", ProjectID: "proj-2", Title: "Casa familiar",
			Description: "Jardín amplio y parqueo doble",
			Price:       320000, Zone: "Sur", Type: models.PropertyTypeHouse,
			Bedrooms: 4, Bathrooms: 3, Area: 220,
			Status: models.PropertyStatusAvailable,
		},
		{
			ID: "prop-4", ProjectID: "proj-3", Title: "Estudio céntrico",
			Description: "Ideal para inversión",
			Price:       95000, Zone: "Centro", Type: models.PropertyTypeApartment,
			Bedrooms: 1, Bathrooms: 1, Area: 45,
			Status: models.PropertyStatusSold,
		},
		{
			ID: "prop-5", ProjectID: "proj-3", Title: "Apartamento céntrico",
			Description: "A pasos de la plaza",
			Price:       120000, Zone: "Centro", Type: models.PropertyTypeApartment,
			Bedrooms: 2, Bathrooms: 1, Area: 60,
			Status: models.PropertyStatusAvailable,
		},
	}
	return properties, projects, developers
}

func propertyIDs(properties []models.Property) []string {
	ids := make([]string, 0, len(properties))
	for _, p := range properties {
		ids = append(ids, p.ID)
	}
	return ids
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
