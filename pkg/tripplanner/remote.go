// Package tripplanner is the client for the external trip planning
// service. Only the wire contract lives here; the planning itself happens
// remotely.
package tripplanner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/voyago/voyago/pkg/itinerary"
	"github.com/voyago/voyago/pkg/planner"
	"github.com/voyago/voyago/pkg/util"
)

const defaultEndpoint = "http://localhost:9090/planner"

type RemotePlanner struct {
	endpoint string
	client   *http.Client
}

func NewRemotePlanner() *RemotePlanner {
	endpoint := defaultEndpoint

	env := util.GetEnvironmentVariables()
	if env["VOYAGO_PLANNER_ENDPOINT"] != "" {
		endpoint = env["VOYAGO_PLANNER_ENDPOINT"]
	}

	return &RemotePlanner{
		endpoint: endpoint,
		client:   http.DefaultClient,
	}
}

type planResponse struct {
	Plans []itinerary.CandidatePlan
}

// CalculateJourneyPlans asks the remote planner for itineraries between the
// two stop references. The response order is the planner's preference order
// and is preserved. A failed call is not retried; the caller degrades to
// zero alternatives.
func (p *RemotePlanner) CalculateJourneyPlans(ctx context.Context, originRef string, destinationRef string, departureTime time.Time) ([]itinerary.CandidatePlan, error) {
	requestURL := fmt.Sprintf("%s/%s/%s?datetime=%s",
		strings.TrimSuffix(p.endpoint, "/"),
		url.PathEscape(originRef),
		url.PathEscape(destinationRef),
		url.QueryEscape(departureTime.Format(time.RFC3339)),
	)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating planner request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := p.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("calling planner: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode >= 400 {
		body, _ := io.ReadAll(response.Body)
		return nil, fmt.Errorf("planner returned %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded planResponse
	err = json.NewDecoder(response.Body).Decode(&decoded)
	if err != nil {
		return nil, fmt.Errorf("decoding planner response: %w", err)
	}

	return decoded.Plans, nil
}

var _ planner.TripPlanner = (*RemotePlanner)(nil)
