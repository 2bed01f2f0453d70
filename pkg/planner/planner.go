// Package planner defines the capability contracts the rerouting engine
// calls out to. Implementations live in their own packages so deterministic
// fakes can drive tests without network or database access.
package planner

import (
	"context"
	"time"

	"github.com/voyago/voyago/pkg/itinerary"
)

// TripPlanner produces candidate itinerary plans between two stop
// references, ordered by the planner's own preference.
type TripPlanner interface {
	CalculateJourneyPlans(ctx context.Context, originRef string, destinationRef string, departureTime time.Time) ([]itinerary.CandidatePlan, error)
}

// StopResolver resolves a free text place query to a stop place, creating a
// record if the place has not been seen before.
type StopResolver interface {
	ResolvePlace(ctx context.Context, query string) (*itinerary.Place, error)
}

// CandidateFilter narrows candidate plans against a comfort profile. When
// comfort is disabled the candidates pass through untouched.
type CandidateFilter interface {
	FilterByComfortProfile(candidates []itinerary.CandidatePlan, planningContext PlanningContext, comfortEnabled bool) []itinerary.CandidatePlan
}

// JourneyAssembler converts one candidate plan into a brand new Journey
// aggregate for the given user.
type JourneyAssembler interface {
	AssembleJourney(userIdentifier string, origin *itinerary.Place, destination *itinerary.Place, plan itinerary.CandidatePlan, preferences Preferences) (*itinerary.Journey, error)
}

// PlanningContext is the comfort profile a candidate plan is judged against.
type PlanningContext struct {
	MaxTransfers           int
	MaxWalkingDistance     int // metres
	RequireAirConditioning bool
	WheelchairAccessible   bool
}

// Preferences carries the journey level flags copied onto assembled
// journeys.
type Preferences struct {
	ComfortEnabled bool
	TouristicMode  bool
}
