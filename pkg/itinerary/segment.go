package itinerary

import "time"

// Segment is one homogeneous leg of a journey - a single line ride, a walk
// or a transfer between stops.
type Segment struct {
	Sequence int `groups:"basic"`

	Journey *Journey `groups:"internal" json:"-" bson:"-"`

	Type          SegmentType   `groups:"basic" bson:",omitempty"`
	TransportType TransportType `groups:"basic" bson:",omitempty"`

	// Line details are only meaningful for PublicTransport segments
	LineCode    string `groups:"basic" json:",omitempty" bson:",omitempty"`
	LineName    string `groups:"basic" json:",omitempty" bson:",omitempty"`
	LineColour  string `groups:"basic" json:",omitempty" bson:",omitempty"`
	NetworkName string `groups:"basic" json:",omitempty" bson:",omitempty"`

	DepartureTime time.Time `groups:"basic" bson:",omitempty"`
	ArrivalTime   time.Time `groups:"basic" bson:",omitempty"`

	Duration time.Duration `groups:"basic" bson:",omitempty"`
	Distance int           `groups:"basic" bson:",omitempty"`

	AirConditioned bool `groups:"detailed"`

	Points []*Point `groups:"basic" bson:",omitempty"`
}

type SegmentType string

const (
	SegmentTypePublicTransport SegmentType = "PublicTransport"
	SegmentTypeWalking         SegmentType = "Walking"
	SegmentTypeTransfer        SegmentType = "Transfer"
)

// AddPoint appends the point and sets its back-reference to this segment.
func (s *Segment) AddPoint(point *Point) {
	point.Segment = s
	s.Points = append(s.Points, point)
}
