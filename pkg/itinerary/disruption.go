package itinerary

import "time"

// Disruption is a reported incident affecting either a single station or an
// entire transit line. Records are immutable once created and are shared by
// reference between the journey they were reported against and any
// alternatives derived from it.
type Disruption struct {
	PrimaryIdentifier string `groups:"basic" bson:",omitempty"`

	Type DisruptionType `groups:"basic" bson:",omitempty"`

	// TargetIdentifier is a stop point reference for Station disruptions and
	// a line code for Line disruptions
	TargetIdentifier string `groups:"basic" bson:",omitempty"`

	JourneyRef     string `groups:"internal" bson:",omitempty"`
	UserIdentifier string `groups:"internal" bson:",omitempty"`

	CreationDateTime time.Time `groups:"basic" bson:",omitempty"`
}

type DisruptionType string

const (
	DisruptionTypeStation DisruptionType = "Station"
	DisruptionTypeLine    DisruptionType = "Line"
)
