// Package reroute implements disruption reporting against journey
// aggregates and the calculation of alternative journeys.
package reroute

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/voyago/voyago/pkg/itinerary"
	"github.com/voyago/voyago/pkg/planner"
	"github.com/voyago/voyago/pkg/util"
)

// At most this many alternative journeys are assembled per report,
// regardless of how many candidates the planner returns.
const maxAlternatives = 3

type Service struct {
	journeys    JourneyRepository
	disruptions DisruptionRepository

	tripPlanner  planner.TripPlanner
	stopResolver planner.StopResolver
	filter       planner.CandidateFilter
	assembler    planner.JourneyAssembler

	events EventPublisher

	planningContext planner.PlanningContext
}

func NewService(journeys JourneyRepository, disruptions DisruptionRepository, tripPlanner planner.TripPlanner, stopResolver planner.StopResolver, filter planner.CandidateFilter, assembler planner.JourneyAssembler) *Service {
	return &Service{
		journeys:    journeys,
		disruptions: disruptions,

		tripPlanner:  tripPlanner,
		stopResolver: stopResolver,
		filter:       filter,
		assembler:    assembler,
	}
}

// WithEventPublisher enables best effort event publishing for created
// disruptions.
func (s *Service) WithEventPublisher(events EventPublisher) *Service {
	s.events = events
	return s
}

// WithPlanningContext sets the comfort profile candidates are filtered
// against when a journey has comfort mode enabled.
func (s *Service) WithPlanningContext(planningContext planner.PlanningContext) *Service {
	s.planningContext = planningContext
	return s
}

// ReportStationDisruption marks the matching point of the journey as
// disrupted, records the disruption and - unless the disrupted point is the
// journey's last - derives a new origin and calculates up to three
// alternative journeys.
func (s *Service) ReportStationDisruption(ctx context.Context, journeyIdentifier string, stopPointRef string, userIdentifier string) (*RerouteResult, error) {
	journey, err := s.loadJourney(ctx, journeyIdentifier)
	if err != nil {
		return nil, err
	}

	point := journey.PointByStopPointRef(stopPointRef)
	if point == nil {
		point = journey.PointByStopAreaRef(stopPointRef)
	}
	if point == nil {
		return nil, fmt.Errorf("%w: %s does not match any point of journey %s", ErrStopNotInJourney, stopPointRef, journeyIdentifier)
	}

	point.MarkDisrupted()
	journey.RecalculateDisruptionSummary()

	disruption, err := s.recordDisruption(ctx, journey, itinerary.DisruptionTypeStation, stopPointRef, userIdentifier)
	if err != nil {
		return nil, err
	}

	result := &RerouteResult{
		Disruption:     disruption,
		DisruptedPoint: point,
		Alternatives:   []*itinerary.Journey{},
	}

	nextPoint := journey.NextPointAfter(point)
	if nextPoint == nil {
		// Disrupted point is the end of the journey, nothing to replan
		return result, nil
	}
	result.NewOriginPoint = nextPoint

	originRef := deriveOriginRef(nextPoint)
	if originRef == "" {
		log.Warn().
			Str("journey", journey.PrimaryIdentifier).
			Str("point", nextPoint.PrimaryIdentifier).
			Msg("No usable origin identifier on successor point, skipping alternative calculation")

		return result, nil
	}

	result.Alternatives = s.safeCalculateAlternatives(ctx, journey, func() ([]*itinerary.Journey, error) {
		origin, err := s.stopResolver.ResolvePlace(ctx, nextPoint.Name)
		if err != nil {
			return nil, fmt.Errorf("resolving origin place: %w", err)
		}

		destination, err := s.stopResolver.ResolvePlace(ctx, journey.DestinationName)
		if err != nil {
			return nil, fmt.Errorf("resolving destination place: %w", err)
		}

		// Freshly created places have no coordinates, backfill from the
		// successor point when it has them
		if !origin.Location.IsComplete() && nextPoint.Location.IsComplete() {
			origin.Location = nextPoint.Location
		}

		return s.calculateAlternatives(ctx, journey, originRef, destination.PrimaryIdentifier, origin, destination, "")
	})

	return result, nil
}

// ReportLineDisruption records a line disruption against the journey and
// calculates alternatives from the journey's original origin, excluding any
// candidate that uses the disrupted line.
func (s *Service) ReportLineDisruption(ctx context.Context, journeyIdentifier string, lineCode string, userIdentifier string) (*RerouteResult, error) {
	journey, err := s.loadJourney(ctx, journeyIdentifier)
	if err != nil {
		return nil, err
	}

	disruption, err := s.recordDisruption(ctx, journey, itinerary.DisruptionTypeLine, lineCode, userIdentifier)
	if err != nil {
		return nil, err
	}

	result := &RerouteResult{
		Disruption:   disruption,
		Alternatives: []*itinerary.Journey{},
	}

	result.Alternatives = s.safeCalculateAlternatives(ctx, journey, func() ([]*itinerary.Journey, error) {
		origin, err := s.stopResolver.ResolvePlace(ctx, journey.OriginName)
		if err != nil {
			return nil, fmt.Errorf("resolving origin place: %w", err)
		}

		destination, err := s.stopResolver.ResolvePlace(ctx, journey.DestinationName)
		if err != nil {
			return nil, fmt.Errorf("resolving destination place: %w", err)
		}

		return s.calculateAlternatives(ctx, journey, origin.PrimaryIdentifier, destination.PrimaryIdentifier, origin, destination, lineCode)
	})

	return result, nil
}

func (s *Service) loadJourney(ctx context.Context, journeyIdentifier string) (*itinerary.Journey, error) {
	journey, err := s.journeys.GetByPrimaryIdentifier(ctx, journeyIdentifier)
	if err != nil {
		return nil, err
	}
	if journey == nil {
		return nil, fmt.Errorf("%w: %s", ErrJourneyNotFound, journeyIdentifier)
	}

	return journey, nil
}

// recordDisruption creates and persists the disruption record, attaches it
// to the journey and persists the mutated aggregate. Storage failures here
// propagate to the caller.
func (s *Service) recordDisruption(ctx context.Context, journey *itinerary.Journey, disruptionType itinerary.DisruptionType, targetIdentifier string, userIdentifier string) (*itinerary.Disruption, error) {
	disruption := &itinerary.Disruption{
		PrimaryIdentifier: fmt.Sprintf("VOYAGO:DISRUPTION:%s", uuid.NewString()),

		Type:             disruptionType,
		TargetIdentifier: targetIdentifier,

		JourneyRef:     journey.PrimaryIdentifier,
		UserIdentifier: userIdentifier,

		CreationDateTime: time.Now(),
	}

	err := s.disruptions.Insert(ctx, disruption)
	if err != nil {
		return nil, fmt.Errorf("persisting disruption: %w", err)
	}

	journey.AddDisruption(disruption)

	err = s.journeys.Update(ctx, journey)
	if err != nil {
		return nil, fmt.Errorf("persisting journey: %w", err)
	}

	s.publishDisruptionCreated(disruption)

	return disruption, nil
}

func (s *Service) publishDisruptionCreated(disruption *itinerary.Disruption) {
	if s.events == nil {
		return
	}

	err := s.events.PublishDisruptionCreated(disruption)
	if err != nil {
		log.Error().Err(err).Str("disruption", disruption.PrimaryIdentifier).Msg("Failed to publish disruption event")
	}
}

// safeCalculateAlternatives is the failure boundary around alternative
// calculation. Whatever goes wrong inside - planner, filter, resolver,
// assembler or persistence - is logged and turned into an empty list so the
// report itself still succeeds.
func (s *Service) safeCalculateAlternatives(ctx context.Context, journey *itinerary.Journey, calculate func() ([]*itinerary.Journey, error)) []*itinerary.Journey {
	alternatives, err := calculate()
	if err != nil {
		log.Error().Err(err).Str("journey", journey.PrimaryIdentifier).Msg("Alternative calculation failed")

		return []*itinerary.Journey{}
	}

	return alternatives
}

func (s *Service) calculateAlternatives(ctx context.Context, original *itinerary.Journey, originRef string, destinationRef string, origin *itinerary.Place, destination *itinerary.Place, excludedLine string) ([]*itinerary.Journey, error) {
	candidates, err := s.tripPlanner.CalculateJourneyPlans(ctx, originRef, destinationRef, time.Now())
	if err != nil {
		return nil, fmt.Errorf("calculating journey plans: %w", err)
	}

	candidates = s.filter.FilterByComfortProfile(candidates, s.planningContext, original.ComfortEnabled)

	if excludedLine != "" {
		util.InPlaceFilter(&candidates, func(candidate itinerary.CandidatePlan) bool {
			return !candidate.UsesLine(excludedLine)
		})
	}

	if len(candidates) == 0 {
		return []*itinerary.Journey{}, nil
	}

	// Take the first few candidates in the order the planner returned them
	if len(candidates) > maxAlternatives {
		candidates = candidates[:maxAlternatives]
	}

	preferences := planner.Preferences{
		ComfortEnabled: original.ComfortEnabled,
		TouristicMode:  original.TouristicMode,
	}

	alternatives := []*itinerary.Journey{}

	for _, candidate := range candidates {
		alternative, err := s.assembler.AssembleJourney(original.UserIdentifier, origin, destination, candidate, preferences)
		if err != nil {
			return nil, fmt.Errorf("assembling alternative journey: %w", err)
		}

		// Alternatives inherit the original's full disruption history, by
		// reference, including the one just reported
		for _, disruption := range original.Disruptions {
			alternative.AddDisruption(disruption)
		}

		err = s.journeys.Insert(ctx, alternative)
		if err != nil {
			return nil, fmt.Errorf("persisting alternative journey: %w", err)
		}

		alternatives = append(alternatives, alternative)
	}

	return alternatives, nil
}

// deriveOriginRef picks the identifier used to replan from the successor
// point. Stop area beats stop point beats a synthetic coordinate
// identifier; empty when the point carries none of them.
func deriveOriginRef(point *itinerary.Point) string {
	if point.StopAreaRef != "" {
		return point.StopAreaRef
	}

	if point.StopPointRef != "" {
		return point.StopPointRef
	}

	if point.Location.IsComplete() {
		return fmt.Sprintf("VOYAGO:COORD:%f;%f", point.Location.Longitude(), point.Location.Latitude())
	}

	return ""
}
