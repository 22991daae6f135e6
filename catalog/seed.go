package catalog

import "github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"

// The static bundled dataset the catalog ships with. A deployment backed
// by mongo seeds its collections from the same records on first run.

func SeedDevelopers() []models.Developer {
	return []models.Developer{
		{
			ID:                "dev-1",
			Name:              "Constructora Premium",
			Description:       "Más de 20 años desarrollando proyectos residenciales de alta gama.",
			Contact:           models.DeveloperContact{Email: "info@constructorapremium.com", Phone: "+506 2222-1100"},
			ActiveProjects:    2,
			CompletedProjects: 8,
			TotalProjects:     10,
			Highlights:        []string{"Certificación LEED", "Entrega puntual garantizada"},
		},
		{
			ID:                "dev-2",
			Name:              "Grupo Andino",
			Description:       "Desarrollos urbanos accesibles en las zonas de mayor crecimiento.",
			Contact:           models.DeveloperContact{Email: "ventas@grupoandino.com", Phone: "+506 2233-4455"},
			ActiveProjects:    1,
			CompletedProjects: 4,
			TotalProjects:     5,
			Highlights:        []string{"Financiamiento directo"},
		},
		{
			ID:                "dev-3",
			Name:              "Inmobiliaria del Valle",
			Description:       "Especialistas en vivienda familiar en la periferia.",
			Contact:           models.DeveloperContact{Email: "contacto@inmovalle.com", Phone: "+506 2244-6677"},
			ActiveProjects:    1,
			CompletedProjects: 2,
			TotalProjects:     3,
			Highlights:        []string{"Amplias zonas verdes", "Seguridad 24/7"},
		},
	}
}

func SeedProjects() []models.Project {
	return []models.Project{
		{
			ID:             "proj-1",
			Name:           "Altos del Norte",
			Description:    "Torre residencial con amenidades de club privado.",
			Location:       "Avenida Central, sector Norte",
			Zone:           "Norte",
			Amenities:      []string{"Piscina", "Gimnasio", "Rancho BBQ", "Coworking"},
			DeliveryDate:   "Diciembre 2026",
			TotalUnits:     48,
			AvailableUnits: 31,
			Status:         models.ProjectStatusUnderConstruction,
			DeveloperID:    "dev-1",
			Developer:      "Constructora Premium",
			Coordinates:    &models.LatLng{Lat: 9.9520, Lng: -84.0910},
			Area: []models.LatLng{
				{Lat: 9.9523, Lng: -84.0915},
				{Lat: 9.9525, Lng: -84.0905},
				{Lat: 9.9517, Lng: -84.0903},
				{Lat: 9.9515, Lng: -84.0913},
			},
			ZoneInfo: models.ZoneInfo{
				Climate:        "Templado, 19-26 °C la mayor parte del año.",
				Geography:      "Meseta con pendiente suave hacia el norte.",
				Social:         "Zona de restaurantes, colegios bilingües y comercio.",
				Infrastructure: "Acceso directo a la ruta nacional y tren urbano.",
			},
		},
		{
			ID:             "proj-2",
			Name:           "Mirador del Sur",
			Description:    "Condominio horizontal de casas con jardines privados.",
			Location:       "Camino Viejo al Sur, km 4",
			Zone:           "Sur",
			Amenities:      []string{"Parque infantil", "Senderos", "Casa club"},
			DeliveryDate:   "Junio 2025",
			TotalUnits:     24,
			AvailableUnits: 9,
			Status:         models.ProjectStatusCompleted,
			DeveloperID:    "dev-3",
			Developer:      "Inmobiliaria del Valle",
			Coordinates:    &models.LatLng{Lat: 9.8902, Lng: -84.0730},
			ZoneInfo: models.ZoneInfo{
				Climate:        "Cálido con brisa de montaña por las tardes.",
				Geography:      "Colinas con vista al valle.",
				Social:         "Comunidad residencial consolidada y tranquila.",
				Infrastructure: "Centro comercial y clínica a cinco minutos.",
			},
		},
		{
			ID:             "proj-3",
			Name:           "Plaza Central",
			Description:    "Apartamentos de uso mixto sobre la plaza principal.",
			Location:       "Calle 2, Centro",
			Zone:           "Centro",
			Amenities:      []string{"Rooftop", "Comercio en primera planta"},
			DeliveryDate:   "Entrega inmediata",
			TotalUnits:     60,
			AvailableUnits: 12,
			Status:         models.ProjectStatusCompleted,
			DeveloperID:    "dev-2",
			Developer:      "Grupo Andino",
			Coordinates:    &models.LatLng{Lat: 9.9333, Lng: -84.0833},
			ZoneInfo: models.ZoneInfo{
				Climate:        "Urbano templado.",
				Geography:      "Terreno plano en el casco histórico.",
				Social:         "Vida urbana, teatros, universidades.",
				Infrastructure: "Todas las rutas de transporte público.",
			},
		},
		{
			ID:             "proj-4",
			Name:           "Bosques del Este",
			Description:    "Preventa de duplex rodeados de zonas protegidas.",
			Location:       "Carretera al Este, frente al parque",
			Zone:           "Este",
			Amenities:      []string{"Ciclovía", "Huertas comunales", "Pet park"},
			DeliveryDate:   "Marzo 2027",
			TotalUnits:     36,
			AvailableUnits: 36,
			Status:         models.ProjectStatusPreSale,
			DeveloperID:    "dev-1",
			Developer:      "Constructora Premium",
			Coordinates:    &models.LatLng{Lat: 9.9400, Lng: -84.0200},
			Area: []models.LatLng{
				{Lat: 9.9405, Lng: -84.0210},
				{Lat: 9.9410, Lng: -84.0195},
				{Lat: 9.9398, Lng: -84.0188},
				{Lat: 9.9390, Lng: -84.0205},
			},
			ZoneInfo: models.ZoneInfo{
				Climate:        "Fresco, influencia de montaña.",
				Geography:      "Bordea un corredor biológico.",
				Social:         "Comunidad familiar en expansión.",
				Infrastructure: "Nueva radial en construcción.",
			},
		},
	}
}

func SeedProperties() []models.Property {
	floor := func(n int) *int { return &n }
	return []models.Property{
		{
			ID: "prop-001", ProjectID: "proj-1",
			Title:       "Apartamento 2 habitaciones vista norte",
			Description: "Apartamento moderno con vista panorámica a la ciudad.",
			Price:       185000, Zone: "Norte", Type: models.PropertyTypeApartment,
			Bedrooms: 2, Bathrooms: 2, Area: 85,
			Status:   models.PropertyStatusAvailable,
			Features: []string{"Cocina abierta", "Closets de piso a techo"},
			Floor:    floor(7), Parking: true, Balcony: true,
			Coordinates: &models.LatLng{Lat: 9.9521, Lng: -84.0909},
		},
		{
			ID: "prop-002", ProjectID: "proj-1",
			Title:       "Penthouse con terraza privada",
			Description: "Último nivel, doble altura y terraza con jacuzzi.",
			Price:       465000, Zone: "Norte", Type: models.PropertyTypePenthouse,
			Bedrooms: 3, Bathrooms: 4, Area: 210,
			Status:   models.PropertyStatusReserved,
			Features: []string{"Doble altura", "Jacuzzi", "Bodega"},
			Floor:    floor(12), Parking: true, Balcony: true,
		},
		{
			ID: "prop-003", ProjectID: "proj-1",
			Title:       "Apartamento 1 habitación",
			Description: "Unidad compacta ideal para inversión o primera vivienda.",
			Price:       128000, Zone: "Norte", Type: models.PropertyTypeApartment,
			Bedrooms: 1, Bathrooms: 1, Area: 52,
			Status:   models.PropertyStatusAvailable,
			Features: []string{"Línea blanca incluida"},
			Floor:    floor(3), Parking: false, Balcony: false,
		},
		{
			ID: "prop-101", ProjectID: "proj-2",
			Title:       "Casa esquinera con jardín",
			Description: "Casa de dos plantas con jardín amplio y parqueo doble.",
			Price:       298000, Zone: "Sur", Type: models.PropertyTypeHouse,
			Bedrooms: 3, Bathrooms: 3, Area: 185,
			Status:   models.PropertyStatusAvailable,
			Features: []string{"Jardín esquinero", "Tanque de captación"},
			Parking:  true, Garden: true,
		},
		{
			ID: "prop-102", ProjectID: "proj-2",
			Title:       "Casa modelo familiar",
			Description: "Cuatro habitaciones, cuarto de servicio y terraza.",
			Price:       342000, Zone: "Sur", Type: models.PropertyTypeHouse,
			Bedrooms: 4, Bathrooms: 3, Area: 215,
			Status:   models.PropertyStatusSold,
			Features: []string{"Cuarto de servicio", "Terraza techada"},
			Parking:  true, Garden: true,
		},
		{
			ID: "prop-201", ProjectID: "proj-3",
			Title:       "Estudio céntrico amueblado",
			Description: "Estudio listo para habitar sobre la plaza principal.",
			Price:       96000, Zone: "Centro", Type: models.PropertyTypeApartment,
			Bedrooms: 0, Bathrooms: 1, Area: 38,
			Status:   models.PropertyStatusSold,
			Features: []string{"Amueblado", "Vista a la plaza"},
			Floor:    floor(4),
		},
		{
			ID: "prop-202", ProjectID: "proj-3",
			Title:       "Apartamento céntrico 2 habitaciones",
			Description: "A pasos del bulevar, ideal para vivir sin auto.",
			Price:       142000, Zone: "Centro", Type: models.PropertyTypeApartment,
			Bedrooms: 2, Bathrooms: 2, Area: 74,
			Status:   models.PropertyStatusAvailable,
			Features: []string{"Balcón francés"},
			Floor:    floor(6), Balcony: true,
		},
		{
			ID: "prop-203", ProjectID: "proj-3",
			Title:       "Duplex en esquina con rooftop",
			Description: "Duplex de dos niveles con acceso directo al rooftop.",
			Price:       230000, Zone: "Centro", Type: models.PropertyTypeDuplex,
			Bedrooms: 3, Bathrooms: 2, Area: 120,
			Status:   models.PropertyStatusReserved,
			Features: []string{"Dos niveles", "Acceso a rooftop"},
			Floor:    floor(9), Parking: true, Balcony: true,
		},
		{
			ID: "prop-301", ProjectID: "proj-4",
			Title:       "Duplex de preventa etapa 1",
			Description: "Duplex nuevo rodeado de bosque, precio de lanzamiento.",
			Price:       176000, Zone: "Este", Type: models.PropertyTypeDuplex,
			Bedrooms: 2, Bathrooms: 2, Area: 98,
			Status:   models.PropertyStatusAvailable,
			Features: []string{"Precio de preventa", "Acabados a escoger"},
			Parking:  true, Garden: true,
		},
		{
			ID: "prop-302", ProjectID: "proj-4",
			Title:       "Duplex esquinero etapa 1",
			Description: "Lote esquinero con jardín ampliado y vista al parque.",
			Price:       189000, Zone: "Este", Type: models.PropertyTypeDuplex,
			Bedrooms: 3, Bathrooms: 2, Area: 112,
			Status:   models.PropertyStatusAvailable,
			Features: []string{"Lote esquinero", "Jardín ampliado"},
			Parking:  true, Garden: true,
		},
	}
}
