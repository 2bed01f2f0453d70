package reroute

import "github.com/voyago/voyago/pkg/itinerary"

// RerouteResult is the outcome of a disruption report. DisruptedPoint and
// NewOriginPoint are only set for station reports. Alternatives is never
// nil; an empty slice means either no valid alternative exists or the
// planning pipeline failed - the two cases are deliberately
// indistinguishable to the caller.
type RerouteResult struct {
	Disruption *itinerary.Disruption `groups:"basic"`

	DisruptedPoint *itinerary.Point `groups:"basic" json:",omitempty"`
	NewOriginPoint *itinerary.Point `groups:"basic" json:",omitempty"`

	Alternatives []*itinerary.Journey `groups:"basic"`
}
