package models

// Documented defaults for the browse views. A criteria value equal to
// DefaultCriteria() means "unrestricted" and selects the grouped display.
const (
	DefaultPriceMin = 0.0
	DefaultPriceMax = 2000000.0
	DefaultAreaMin  = 0.0
	DefaultAreaMax  = 1000.0
)

// FilterCriteria is the query object for the filtering engine. Every
// field is always present: an empty set means no restriction, and the
// ranges default to the full documented span.
type FilterCriteria struct {
	Zones    []string `json:"zones"`
	Types    []string `json:"types"`
	Bedrooms []int    `json:"bedrooms"`
	Statuses []string `json:"statuses"`
	PriceMin float64  `json:"priceMin"`
	PriceMax float64  `json:"priceMax"`
	AreaMin  float64  `json:"areaMin"`
	AreaMax  float64  `json:"areaMax"`
	Search   string   `json:"search"`
}

func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		Zones:    []string{},
		Types:    []string{},
		Bedrooms: []int{},
		Statuses: []string{},
		PriceMin: DefaultPriceMin,
		PriceMax: DefaultPriceMax,
		AreaMin:  DefaultAreaMin,
		AreaMax:  DefaultAreaMax,
	}
}
