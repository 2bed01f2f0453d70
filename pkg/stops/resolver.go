// Package stops resolves free text place queries against the stops
// collection.
package stops

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/voyago/voyago/pkg/database"
	"github.com/voyago/voyago/pkg/itinerary"
	"github.com/voyago/voyago/pkg/planner"
	"go.mongodb.org/mongo-driver/bson"
)

type Resolver struct {
}

func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolvePlace looks the query up by identifier or name and creates a
// minimal record when the place has never been seen before.
func (r *Resolver) ResolvePlace(ctx context.Context, query string) (*itinerary.Place, error) {
	if query == "" {
		return nil, fmt.Errorf("empty place query")
	}

	stopsCollection := database.GetCollection("stops")

	var place *itinerary.Place
	stopsCollection.FindOne(ctx, bson.M{"$or": bson.A{
		bson.M{"primaryidentifier": query},
		bson.M{"name": query},
	}}).Decode(&place)

	if place != nil {
		return place, nil
	}

	place = &itinerary.Place{
		PrimaryIdentifier: fmt.Sprintf("VOYAGO:PLACE:%s", uuid.NewString()),
		Name:              query,
		CreationDateTime:  time.Now(),
	}

	_, err := stopsCollection.InsertOne(ctx, place)
	if err != nil {
		return nil, fmt.Errorf("creating place record: %w", err)
	}

	log.Debug().Str("query", query).Str("identifier", place.PrimaryIdentifier).Msg("Created place record for unseen query")

	return place, nil
}

var _ planner.StopResolver = (*Resolver)(nil)
