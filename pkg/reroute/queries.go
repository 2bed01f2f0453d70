package reroute

import (
	"context"
	"strings"

	"github.com/voyago/voyago/pkg/itinerary"
	"golang.org/x/exp/slices"
)

// JourneyByIdentifier loads a fully materialized journey aggregate.
func (s *Service) JourneyByIdentifier(ctx context.Context, journeyIdentifier string) (*itinerary.Journey, error) {
	return s.loadJourney(ctx, journeyIdentifier)
}

// LinesForJourney projects the distinct transit lines a journey uses, in
// first seen order, de-duplicated by line code.
func (s *Service) LinesForJourney(ctx context.Context, journeyIdentifier string) ([]itinerary.LineInfo, error) {
	journey, err := s.loadJourney(ctx, journeyIdentifier)
	if err != nil {
		return nil, err
	}

	var lines []itinerary.LineInfo
	var seenCodes []string

	for _, segment := range journey.Segments {
		if segment.Type != itinerary.SegmentTypePublicTransport {
			continue
		}

		lineCode := strings.TrimSpace(segment.LineCode)
		if lineCode == "" || slices.Contains(seenCodes, lineCode) {
			continue
		}

		lines = append(lines, itinerary.LineInfo{
			LineCode:      lineCode,
			LineName:      segment.LineName,
			LineColour:    segment.LineColour,
			TransportType: segment.TransportType,
		})
		seenCodes = append(seenCodes, lineCode)
	}

	return lines, nil
}

// StopsForJourney projects every stop of the journey's transit segments
// with a continuously incrementing zero based sequence and the owning line
// code. Walking and transfer segments are skipped.
func (s *Service) StopsForJourney(ctx context.Context, journeyIdentifier string) ([]itinerary.StopInfo, error) {
	journey, err := s.loadJourney(ctx, journeyIdentifier)
	if err != nil {
		return nil, err
	}

	var stops []itinerary.StopInfo
	sequence := 0

	for _, segment := range journey.Segments {
		if segment.Type == itinerary.SegmentTypeWalking || segment.Type == itinerary.SegmentTypeTransfer {
			continue
		}

		for _, point := range segment.Points {
			stops = append(stops, itinerary.StopInfo{
				Sequence: sequence,

				StopPointRef: point.StopPointRef,
				StopAreaRef:  point.StopAreaRef,

				Name: point.Name,

				LineCode: segment.LineCode,

				Location: point.Location,
			})
			sequence += 1
		}
	}

	return stops, nil
}
