package itinerary

import "time"

// Point is a stop, station or waypoint located within a Segment.
type Point struct {
	PrimaryIdentifier string `groups:"basic" bson:",omitempty"`

	Sequence int `groups:"basic"`

	Segment *Segment `groups:"internal" json:"-" bson:"-"`

	Type PointType `groups:"basic" bson:",omitempty"`

	StopPointRef string `groups:"basic" json:",omitempty" bson:",omitempty"`
	StopAreaRef  string `groups:"basic" json:",omitempty" bson:",omitempty"`

	Name string `groups:"basic" bson:",omitempty"`

	Location *Location `groups:"basic" json:",omitempty" bson:",omitempty"`

	ArrivalTime   time.Time `groups:"basic" bson:",omitempty"`
	DepartureTime time.Time `groups:"basic" bson:",omitempty"`

	Status PointStatus `groups:"basic" bson:",omitempty"`
}

type PointType string

const (
	PointTypeOrigin            PointType = "Origin"
	PointTypeDestination       PointType = "Destination"
	PointTypeTransferArrival   PointType = "TransferArrival"
	PointTypeTransferDeparture PointType = "TransferDeparture"
	PointTypeIntermediateStop  PointType = "IntermediateStop"
	PointTypeWalkingWaypoint   PointType = "WalkingWaypoint"
)

type PointStatus string

const (
	PointStatusNormal    PointStatus = "Normal"
	PointStatusDisrupted PointStatus = "Disrupted"
)

// MarkDisrupted is the only way a point transitions to Disrupted.
func (p *Point) MarkDisrupted() {
	p.Status = PointStatusDisrupted
}

// ClearDisrupted resets the point back to Normal. The rerouting flow never
// calls this; it exists for manual corrections.
func (p *Point) ClearDisrupted() {
	p.Status = PointStatusNormal
}
