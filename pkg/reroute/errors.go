package reroute

import "errors"

var (
	// ErrJourneyNotFound is returned when a journey identifier does not
	// resolve to a stored aggregate.
	ErrJourneyNotFound = errors.New("journey not found")

	// ErrStopNotInJourney is returned when a reported stop identifier
	// matches neither a stop point nor a stop area anywhere in the journey.
	ErrStopNotInJourney = errors.New("stop not part of journey")
)
