package itinerary

import "time"

// Place is a resolved stop place - the output of resolving a free text
// query against the stops collection.
type Place struct {
	PrimaryIdentifier string `groups:"basic" bson:",omitempty"`

	Name string `groups:"basic" bson:",omitempty"`

	Location *Location `groups:"basic" json:",omitempty" bson:",omitempty"`

	CreationDateTime time.Time `groups:"detailed" bson:",omitempty"`
}
