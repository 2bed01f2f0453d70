package itinerary

// Location is a GeoJSON style point
type Location struct {
	Type        string    `json:"-" groups:"basic"`
	Coordinates []float64 `json:"coordinates" groups:"basic"`
}

func (l *Location) Longitude() float64 {
	return l.Coordinates[0]
}

func (l *Location) Latitude() float64 {
	return l.Coordinates[1]
}

// IsComplete reports whether the location carries a usable coordinate pair.
// Imported data occasionally has a location record with missing axes.
func (l *Location) IsComplete() bool {
	return l != nil && len(l.Coordinates) == 2
}
