package models

const (
	PropertyTypeApartment = "apartamento"
	PropertyTypeHouse     = "casa"
	PropertyTypeDuplex    = "duplex"
	PropertyTypePenthouse = "penthouse"
)

const (
	PropertyStatusAvailable = "disponible"
	PropertyStatusReserved  = "reservado"
	PropertyStatusSold      = "vendido"
)

var PropertyTypes = []string{
	PropertyTypeApartment,
	PropertyTypeHouse,
	PropertyTypeDuplex,
	PropertyTypePenthouse,
}

var PropertyStatuses = []string{
	PropertyStatusAvailable,
	PropertyStatusReserved,
	PropertyStatusSold,
}

type LatLng struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

type Property struct {
	ID          string   `bson:"_id" json:"id"`
	ProjectID   string   `bson:"projectId" json:"projectId"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Price       float64  `bson:"price" json:"price"`
	Zone        string   `bson:"zone" json:"zone"`
	Type        string   `bson:"type" json:"type"`
	Bedrooms    int      `bson:"bedrooms" json:"bedrooms"`
	Bathrooms   int      `bson:"bathrooms" json:"bathrooms"`
	Area        float64  `bson:"area" json:"area"`
	Status      string   `bson:"status" json:"status"`
	Features    []string `bson:"features" json:"features"`
	Floor       *int     `bson:"floor,omitempty" json:"floor,omitempty"`
	Parking     bool     `bson:"parking" json:"parking"`
	Balcony     bool     `bson:"balcony" json:"balcony"`
	Garden      bool     `bson:"garden" json:"garden"`
	Coordinates *LatLng  `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
}
