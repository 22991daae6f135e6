package engine

import "github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"

type ZoneCount struct {
	Zone       string `json:"zone"`
	Properties int    `json:"properties"`
	Projects   int    `json:"projects"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// CatalogMeta feeds the storefront filter controls: per-zone counts and
// the observed price/area bounds of the catalog.
type CatalogMeta struct {
	Zones      []ZoneCount `json:"zones"`
	PriceRange PriceRange  `json:"priceRange"`
	AreaRange  PriceRange  `json:"areaRange"`
}

func BuildCatalogMeta(properties []models.Property, projects []models.Project) CatalogMeta {
	meta := CatalogMeta{Zones: []ZoneCount{}}

	byZone := make(map[string]*ZoneCount)
	zoneOrder := []string{}
	for _, zone := range models.Zones {
		byZone[zone] = &ZoneCount{Zone: zone}
		zoneOrder = append(zoneOrder, zone)
	}
	for _, p := range properties {
		zc, ok := byZone[p.Zone]
		if !ok {
			zc = &ZoneCount{Zone: p.Zone}
			byZone[p.Zone] = zc
			zoneOrder = append(zoneOrder, p.Zone)
		}
		zc.Properties++
	}
	for _, project := range projects {
		zc, ok := byZone[project.Zone]
		if !ok {
			zc = &ZoneCount{Zone: project.Zone}
			byZone[project.Zone] = zc
			zoneOrder = append(zoneOrder, project.Zone)
		}
		zc.Projects++
	}
	for _, zone := range zoneOrder {
		meta.Zones = append(meta.Zones, *byZone[zone])
	}

	for i, p := range properties {
		if i == 0 || p.Price < meta.PriceRange.Min {
			meta.PriceRange.Min = p.Price
		}
		if p.Price > meta.PriceRange.Max {
			meta.PriceRange.Max = p.Price
		}
		if i == 0 || p.Area < meta.AreaRange.Min {
			meta.AreaRange.Min = p.Area
		}
		if p.Area > meta.AreaRange.Max {
			meta.AreaRange.Max = p.Area
		}
	}
	return meta
}
