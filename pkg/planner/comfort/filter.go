// Package comfort filters candidate plans against a user comfort profile.
package comfort

import (
	"github.com/voyago/voyago/pkg/itinerary"
	"github.com/voyago/voyago/pkg/planner"
	"github.com/voyago/voyago/pkg/util"
)

type Filter struct {
}

func NewFilter() *Filter {
	return &Filter{}
}

// FilterByComfortProfile drops candidates that violate the profile. The
// relative order of surviving candidates is preserved; no re-ranking takes
// place here.
func (f *Filter) FilterByComfortProfile(candidates []itinerary.CandidatePlan, planningContext planner.PlanningContext, comfortEnabled bool) []itinerary.CandidatePlan {
	if !comfortEnabled {
		return candidates
	}

	filtered := make([]itinerary.CandidatePlan, len(candidates))
	copy(filtered, candidates)

	util.InPlaceFilter(&filtered, func(candidate itinerary.CandidatePlan) bool {
		return f.matchesProfile(candidate, planningContext)
	})

	return filtered
}

func (f *Filter) matchesProfile(candidate itinerary.CandidatePlan, planningContext planner.PlanningContext) bool {
	if planningContext.MaxTransfers > 0 && candidate.TransferCount() > planningContext.MaxTransfers {
		return false
	}

	if planningContext.MaxWalkingDistance > 0 && candidate.WalkingDistance() > planningContext.MaxWalkingDistance {
		return false
	}

	for _, leg := range candidate.Legs {
		if leg.Type != itinerary.SegmentTypePublicTransport {
			continue
		}

		if planningContext.RequireAirConditioning && !leg.AirConditioned {
			return false
		}

		if planningContext.WheelchairAccessible && !leg.WheelchairAccessible {
			return false
		}
	}

	return true
}

var _ planner.CandidateFilter = (*Filter)(nil)
