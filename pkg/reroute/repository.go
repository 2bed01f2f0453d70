package reroute

import (
	"context"

	"github.com/voyago/voyago/pkg/itinerary"
)

// JourneyRepository loads and stores journey aggregates. A missing journey
// is reported as (nil, nil); errors are reserved for storage failures.
type JourneyRepository interface {
	GetByPrimaryIdentifier(ctx context.Context, identifier string) (*itinerary.Journey, error)
	Insert(ctx context.Context, journey *itinerary.Journey) error
	Update(ctx context.Context, journey *itinerary.Journey) error
}

// DisruptionRepository stores disruption records. Records are immutable so
// there is no update operation.
type DisruptionRepository interface {
	Insert(ctx context.Context, disruption *itinerary.Disruption) error
}

// EventPublisher pushes domain events onto the events queue. Publishing is
// best effort; the reporting pipeline never fails on a publish error.
type EventPublisher interface {
	PublishDisruptionCreated(disruption *itinerary.Disruption) error
}
