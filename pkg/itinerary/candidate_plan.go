package itinerary

import "time"

// CandidatePlan is one itinerary proposed by a trip planner. Plans arrive in
// the planner's preference order and that order is preserved all the way
// through filtering and assembly.
type CandidatePlan struct {
	Legs []CandidateLeg

	StartTime   time.Time
	ArrivalTime time.Time
	Duration    time.Duration
}

// CandidateLeg is a single leg of a candidate plan.
type CandidateLeg struct {
	Type          SegmentType
	TransportType TransportType

	LineCode    string
	LineName    string
	LineColour  string
	NetworkName string

	DepartureTime time.Time
	ArrivalTime   time.Time

	Duration time.Duration
	Distance int

	AirConditioned       bool
	WheelchairAccessible bool

	Stops []CandidateStop
}

// CandidateStop is a stop visited by a candidate leg.
type CandidateStop struct {
	StopPointRef string
	StopAreaRef  string

	Name string

	Location *Location

	ArrivalTime   time.Time
	DepartureTime time.Time
}

// UsesLine reports whether any leg of the plan runs on the given line code.
func (p *CandidatePlan) UsesLine(lineCode string) bool {
	if lineCode == "" {
		return false
	}

	for _, leg := range p.Legs {
		if leg.LineCode == lineCode {
			return true
		}
	}

	return false
}

// TransferCount counts the changes between public transport legs.
func (p *CandidatePlan) TransferCount() int {
	transitLegs := 0

	for _, leg := range p.Legs {
		if leg.Type == SegmentTypePublicTransport {
			transitLegs += 1
		}
	}

	if transitLegs <= 1 {
		return 0
	}

	return transitLegs - 1
}

// WalkingDistance sums the distance of all walking legs in metres.
func (p *CandidatePlan) WalkingDistance() int {
	distance := 0

	for _, leg := range p.Legs {
		if leg.Type == SegmentTypeWalking {
			distance += leg.Distance
		}
	}

	return distance
}
