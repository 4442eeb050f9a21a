package schema

// GeoJSON - mongo compatible geo location object
type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // longitude, latitude
}

// Location - a point of geolocation
type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// NewPoint converts a location into a GeoJSON point
func NewPoint(loc Location) *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{loc.Longitude, loc.Latitude},
	}
}
