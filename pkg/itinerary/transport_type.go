package itinerary

type TransportType string

const (
	TransportTypeBus      TransportType = "Bus"
	TransportTypeCoach                  = "Coach"
	TransportTypeTram                   = "Tram"
	TransportTypeTrain                  = "Train"
	TransportTypeMetro                  = "Metro"
	TransportTypeBoat                   = "Boat"
	TransportTypeWalk                   = "Walk"
	TransportTypeCableCar               = "CableCar"
	TransportTypeUnknown                = "UNKNOWN"
)
