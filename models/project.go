package models

const (
	ProjectStatusPreSale           = "preventa"
	ProjectStatusUnderConstruction = "construccion"
	ProjectStatusCompleted         = "terminado"
)

var ProjectStatuses = []string{
	ProjectStatusPreSale,
	ProjectStatusUnderConstruction,
	ProjectStatusCompleted,
}

var Zones = []string{"Norte", "Sur", "Este", "Oeste", "Centro"}

type ZoneInfo struct {
	Climate        string `bson:"climate" json:"climate"`
	Geography      string `bson:"geography" json:"geography"`
	Social         string `bson:"social" json:"social"`
	Infrastructure string `bson:"infrastructure" json:"infrastructure"`
}

type Project struct {
	ID             string   `bson:"_id" json:"id"`
	Name           string   `bson:"name" json:"name"`
	Description    string   `bson:"description" json:"description"`
	Location       string   `bson:"location" json:"location"`
	Zone           string   `bson:"zone" json:"zone"`
	Amenities      []string `bson:"amenities" json:"amenities"`
	DeliveryDate   string   `bson:"deliveryDate" json:"deliveryDate"`
	TotalUnits     int      `bson:"totalUnits" json:"totalUnits"`
	AvailableUnits int      `bson:"availableUnits" json:"availableUnits"`
	Status         string   `bson:"status" json:"status"`
	// DeveloperID is the canonical join to Developer. Developer holds the
	// company name and is only consulted when DeveloperID is empty, to
	// keep catalogs from before the id column readable.
	DeveloperID string   `bson:"developerId" json:"developerId"`
	Developer   string   `bson:"developer" json:"developer"`
	Coordinates *LatLng  `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
	Area        []LatLng `bson:"area,omitempty" json:"area,omitempty"`
	ZoneInfo    ZoneInfo `bson:"zoneInfo" json:"zoneInfo"`
}
