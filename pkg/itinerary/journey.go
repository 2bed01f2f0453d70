package itinerary

import (
	"time"
)

// Journey is a complete door-to-door trip owned by a single user. It is the
// aggregate root: it exclusively owns its ordered Segments, which in turn
// exclusively own their ordered Points. Disruptions are shared by reference
// so that rerouted journeys inherit the full disruption history.
type Journey struct {
	PrimaryIdentifier string `groups:"basic" bson:",omitempty"`
	UserIdentifier    string `groups:"internal" bson:",omitempty"`

	CreationDateTime     time.Time `groups:"detailed" bson:",omitempty"`
	ModificationDateTime time.Time `groups:"detailed" bson:",omitempty"`

	OriginName          string    `groups:"basic" bson:",omitempty"`
	DestinationName     string    `groups:"basic" bson:",omitempty"`
	OriginLocation      *Location `groups:"basic" json:",omitempty" bson:",omitempty"`
	DestinationLocation *Location `groups:"basic" json:",omitempty" bson:",omitempty"`

	PlannedDepartureTime time.Time `groups:"basic" bson:",omitempty"`
	PlannedArrivalTime   time.Time `groups:"basic" bson:",omitempty"`
	ActualDepartureTime  time.Time `groups:"detailed" bson:",omitempty"`
	ActualArrivalTime    time.Time `groups:"detailed" bson:",omitempty"`

	Status JourneyStatus `groups:"basic" bson:",omitempty"`

	ComfortEnabled bool `groups:"detailed"`
	TouristicMode  bool `groups:"detailed"`

	DisruptionCount int `groups:"basic"`

	Segments []*Segment `groups:"basic" bson:",omitempty"`

	Disruptions []*Disruption `groups:"detailed" bson:",omitempty"`

	RecommendedPlaces []string `groups:"detailed" json:",omitempty" bson:",omitempty"`
}

type JourneyStatus string

const (
	JourneyStatusPlanned    JourneyStatus = "Planned"
	JourneyStatusInProgress JourneyStatus = "InProgress"
	JourneyStatusCompleted  JourneyStatus = "Completed"
	JourneyStatusCancelled  JourneyStatus = "Cancelled"
)

// AddSegment appends the segment and sets its back-reference to this journey.
// Both sides of the relationship are always set together.
func (j *Journey) AddSegment(segment *Segment) {
	segment.Journey = j
	j.Segments = append(j.Segments, segment)
}

// ReplaceSegments clears the current segments and re-adds the given ones,
// re-establishing back-references on every segment.
func (j *Journey) ReplaceSegments(segments []*Segment) {
	j.Segments = nil

	for _, segment := range segments {
		j.AddSegment(segment)
	}
}

// AllPoints returns every point of the journey flattened into a single
// slice, ordered by segment sequence then point sequence.
func (j *Journey) AllPoints() []*Point {
	var points []*Point

	for _, segment := range j.Segments {
		points = append(points, segment.Points...)
	}

	return points
}

// PointByStopAreaRef returns the first point (in flattened order) whose stop
// area reference matches, or nil.
func (j *Journey) PointByStopAreaRef(stopAreaRef string) *Point {
	if stopAreaRef == "" {
		return nil
	}

	for _, point := range j.AllPoints() {
		if point.StopAreaRef == stopAreaRef {
			return point
		}
	}

	return nil
}

// PointByStopPointRef returns the first point (in flattened order) whose stop
// point reference matches, or nil.
func (j *Journey) PointByStopPointRef(stopPointRef string) *Point {
	if stopPointRef == "" {
		return nil
	}

	for _, point := range j.AllPoints() {
		if point.StopPointRef == stopPointRef {
			return point
		}
	}

	return nil
}

// NextPointAfter returns the point immediately following the given one in
// the flattened order, or nil if the point is the last one or does not
// belong to this journey. Matching is done on the point identifier rather
// than slice index as callers may hold an independently loaded copy.
func (j *Journey) NextPointAfter(point *Point) *Point {
	if point == nil {
		return nil
	}

	points := j.AllPoints()

	for i, candidate := range points {
		if candidate.PrimaryIdentifier == point.PrimaryIdentifier {
			if i+1 < len(points) {
				return points[i+1]
			}

			return nil
		}
	}

	return nil
}

// LineUsed reports whether any segment of the journey runs on the given
// line code.
func (j *Journey) LineUsed(lineCode string) bool {
	if lineCode == "" {
		return false
	}

	for _, segment := range j.Segments {
		if segment.LineCode == lineCode {
			return true
		}
	}

	return false
}

// RecalculateDisruptionSummary recounts the disrupted points across all
// segments and stores the total on the journey. The count is not kept in
// sync automatically; callers recalculate after marking points.
func (j *Journey) RecalculateDisruptionSummary() {
	count := 0

	for _, point := range j.AllPoints() {
		if point.Status == PointStatusDisrupted {
			count += 1
		}
	}

	j.DisruptionCount = count
}

// AddDisruption attaches a disruption reference to the journey. No
// de-duplication is performed; reporting the same line twice yields two
// entries.
func (j *Journey) AddDisruption(disruption *Disruption) {
	j.Disruptions = append(j.Disruptions, disruption)
}

// RelinkOwnership re-establishes the parent back-references on every
// segment and point. Back-references are not stored, so this runs after
// decoding a journey document from the database.
func (j *Journey) RelinkOwnership() {
	for _, segment := range j.Segments {
		segment.Journey = j

		for _, point := range segment.Points {
			point.Segment = segment
		}
	}
}
