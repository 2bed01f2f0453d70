package itinerary_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/voyago/pkg/itinerary"
)

func buildPoint(identifier string, pointType itinerary.PointType) *itinerary.Point {
	return &itinerary.Point{
		PrimaryIdentifier: fmt.Sprintf("VOYAGO:POINT:%s", identifier),

		Type: pointType,

		StopPointRef: fmt.Sprintf("SP:%s", identifier),
		StopAreaRef:  fmt.Sprintf("SA:%s", identifier),

		Name:   identifier,
		Status: itinerary.PointStatusNormal,
	}
}

// buildJourney assembles a metro ride, a walk and a bus ride with two
// points each.
func buildJourney() *itinerary.Journey {
	journey := &itinerary.Journey{
		PrimaryIdentifier: "VOYAGO:JOURNEY:TEST",
		OriginName:        "a1",
		DestinationName:   "c2",
	}

	metro := &itinerary.Segment{
		Type:          itinerary.SegmentTypePublicTransport,
		TransportType: itinerary.TransportTypeMetro,
		LineCode:      "M1",
		LineName:      "Metro One",
	}
	metro.AddPoint(buildPoint("a1", itinerary.PointTypeOrigin))
	metro.AddPoint(buildPoint("a2", itinerary.PointTypeTransferArrival))

	walk := &itinerary.Segment{
		Sequence:      1,
		Type:          itinerary.SegmentTypeWalking,
		TransportType: itinerary.TransportTypeWalk,
	}
	walk.AddPoint(buildPoint("b1", itinerary.PointTypeWalkingWaypoint))
	walk.AddPoint(buildPoint("b2", itinerary.PointTypeWalkingWaypoint))

	bus := &itinerary.Segment{
		Sequence:      2,
		Type:          itinerary.SegmentTypePublicTransport,
		TransportType: itinerary.TransportTypeBus,
		LineCode:      "42",
		LineName:      "Bus FortyTwo",
	}
	bus.AddPoint(buildPoint("c1", itinerary.PointTypeTransferDeparture))
	bus.AddPoint(buildPoint("c2", itinerary.PointTypeDestination))

	journey.AddSegment(metro)
	journey.AddSegment(walk)
	journey.AddSegment(bus)

	return journey
}

func TestAllPointsOrdering(t *testing.T) {
	journey := buildJourney()

	points := journey.AllPoints()
	require.Len(t, points, 6)

	var names []string
	for _, point := range points {
		names = append(names, point.Name)
	}

	assert.Equal(t, []string{"a1", "a2", "b1", "b2", "c1", "c2"}, names)
}

func TestAddSegmentSetsBackReference(t *testing.T) {
	journey := buildJourney()

	for _, segment := range journey.Segments {
		assert.Same(t, journey, segment.Journey)

		for _, point := range segment.Points {
			assert.Same(t, segment, point.Segment)
		}
	}
}

func TestReplaceSegmentsPreservesBackReferences(t *testing.T) {
	journey := buildJourney()

	replacement := &itinerary.Segment{
		Type:     itinerary.SegmentTypePublicTransport,
		LineCode: "T9",
	}
	replacement.AddPoint(buildPoint("z1", itinerary.PointTypeOrigin))

	journey.ReplaceSegments([]*itinerary.Segment{replacement})

	require.Len(t, journey.Segments, 1)
	assert.Same(t, journey, journey.Segments[0].Journey)
}

func TestPointByStopAreaRef(t *testing.T) {
	journey := buildJourney()

	point := journey.PointByStopAreaRef("SA:b2")
	require.NotNil(t, point)
	assert.Equal(t, "b2", point.Name)

	assert.Nil(t, journey.PointByStopAreaRef("SA:unknown"))
	assert.Nil(t, journey.PointByStopAreaRef(""))
}

func TestNextPointAfter(t *testing.T) {
	journey := buildJourney()
	points := journey.AllPoints()

	// Crosses the segment boundary
	next := journey.NextPointAfter(points[1])
	require.NotNil(t, next)
	assert.Equal(t, "b1", next.Name)

	// Last point overall has no successor
	assert.Nil(t, journey.NextPointAfter(points[len(points)-1]))

	// Points that are not part of the journey have no successor either
	assert.Nil(t, journey.NextPointAfter(buildPoint("stranger", itinerary.PointTypeIntermediateStop)))
	assert.Nil(t, journey.NextPointAfter(nil))
}

func TestNextPointAfterMatchesByIdentifier(t *testing.T) {
	journey := buildJourney()

	// An independently loaded copy of the same point still matches
	loadedCopy := buildPoint("a1", itinerary.PointTypeOrigin)

	next := journey.NextPointAfter(loadedCopy)
	require.NotNil(t, next)
	assert.Equal(t, "a2", next.Name)
}

func TestLineUsed(t *testing.T) {
	journey := buildJourney()

	assert.True(t, journey.LineUsed("M1"))
	assert.True(t, journey.LineUsed("42"))
	assert.False(t, journey.LineUsed("M2"))
	assert.False(t, journey.LineUsed(""))
}

func TestRecalculateDisruptionSummary(t *testing.T) {
	journey := buildJourney()

	journey.RecalculateDisruptionSummary()
	assert.Equal(t, 0, journey.DisruptionCount)

	points := journey.AllPoints()
	points[0].MarkDisrupted()
	points[3].MarkDisrupted()

	journey.RecalculateDisruptionSummary()
	assert.Equal(t, 2, journey.DisruptionCount)

	points[0].ClearDisrupted()

	journey.RecalculateDisruptionSummary()
	assert.Equal(t, 1, journey.DisruptionCount)
}

func TestAddDisruptionDoesNotDeduplicate(t *testing.T) {
	journey := buildJourney()

	disruption := &itinerary.Disruption{
		PrimaryIdentifier: "VOYAGO:DISRUPTION:TEST",
		Type:              itinerary.DisruptionTypeLine,
		TargetIdentifier:  "M1",
	}

	journey.AddDisruption(disruption)
	journey.AddDisruption(disruption)

	assert.Len(t, journey.Disruptions, 2)
}

func TestRelinkOwnership(t *testing.T) {
	journey := buildJourney()

	// Simulate a decode from storage where back-references are lost
	for _, segment := range journey.Segments {
		segment.Journey = nil
		for _, point := range segment.Points {
			point.Segment = nil
		}
	}

	journey.RelinkOwnership()

	for _, segment := range journey.Segments {
		assert.Same(t, journey, segment.Journey)
		for _, point := range segment.Points {
			assert.Same(t, segment, point.Segment)
		}
	}
}
