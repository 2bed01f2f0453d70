// Package assembler turns candidate plans into full Journey aggregates.
package assembler

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/voyago/voyago/pkg/itinerary"
	"github.com/voyago/voyago/pkg/planner"
)

type Assembler struct {
}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// AssembleJourney builds a brand new Journey aggregate from a candidate
// plan. Assembled journeys always start out Planned.
func (a *Assembler) AssembleJourney(userIdentifier string, origin *itinerary.Place, destination *itinerary.Place, plan itinerary.CandidatePlan, preferences planner.Preferences) (*itinerary.Journey, error) {
	if len(plan.Legs) == 0 {
		return nil, errors.New("candidate plan has no legs")
	}

	journey := &itinerary.Journey{
		PrimaryIdentifier: fmt.Sprintf("VOYAGO:JOURNEY:%s", uuid.NewString()),
		UserIdentifier:    userIdentifier,

		CreationDateTime:     time.Now(),
		ModificationDateTime: time.Now(),

		PlannedDepartureTime: plan.StartTime,
		PlannedArrivalTime:   plan.ArrivalTime,

		Status: itinerary.JourneyStatusPlanned,

		ComfortEnabled: preferences.ComfortEnabled,
		TouristicMode:  preferences.TouristicMode,
	}

	if origin != nil {
		journey.OriginName = origin.Name
		journey.OriginLocation = origin.Location
	}
	if destination != nil {
		journey.DestinationName = destination.Name
		journey.DestinationLocation = destination.Location
	}

	for legIndex, leg := range plan.Legs {
		segment := &itinerary.Segment{}

		err := copier.CopyWithOption(segment, leg, copier.Option{IgnoreEmpty: true, DeepCopy: true})
		if err != nil {
			return nil, fmt.Errorf("copying candidate leg: %w", err)
		}

		segment.Sequence = legIndex
		segment.Points = nil

		for stopIndex, stop := range leg.Stops {
			point := &itinerary.Point{
				PrimaryIdentifier: fmt.Sprintf("VOYAGO:POINT:%s", uuid.NewString()),

				Sequence: stopIndex,

				Type: pointType(plan, legIndex, stopIndex),

				StopPointRef: stop.StopPointRef,
				StopAreaRef:  stop.StopAreaRef,

				Name:     stop.Name,
				Location: stop.Location,

				ArrivalTime:   stop.ArrivalTime,
				DepartureTime: stop.DepartureTime,

				Status: itinerary.PointStatusNormal,
			}

			segment.AddPoint(point)
		}

		journey.AddSegment(segment)
	}

	return journey, nil
}

func pointType(plan itinerary.CandidatePlan, legIndex int, stopIndex int) itinerary.PointType {
	leg := plan.Legs[legIndex]

	firstOverall := legIndex == 0 && stopIndex == 0
	lastOverall := legIndex == len(plan.Legs)-1 && stopIndex == len(leg.Stops)-1

	switch {
	case firstOverall:
		return itinerary.PointTypeOrigin
	case lastOverall:
		return itinerary.PointTypeDestination
	case leg.Type == itinerary.SegmentTypeWalking:
		return itinerary.PointTypeWalkingWaypoint
	case stopIndex == 0:
		return itinerary.PointTypeTransferDeparture
	case stopIndex == len(leg.Stops)-1:
		return itinerary.PointTypeTransferArrival
	default:
		return itinerary.PointTypeIntermediateStop
	}
}

var _ planner.JourneyAssembler = (*Assembler)(nil)
